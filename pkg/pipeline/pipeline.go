// Package pipeline provides the core chart-generation pipeline for Orgchart.
//
// This package implements the complete load → build → render pipeline shared
// by every CLI entry point. Centralizing the flow here keeps the render and
// dot subcommands in exact agreement about defaults and validation.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate the YAML organization description
//  2. Build: Construct the reporting graph from the validated records
//  3. Render: Generate output in the requested formats (DOT, PNG)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Source:  "org.yaml",
//	    Formats: []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tidyorg/orgchart/pkg/org"
	"github.com/tidyorg/orgchart/pkg/render"
)

// Format constants for output formats.
const (
	FormatDOT = "dot"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatPNG: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the chart pipeline.
type Options struct {
	// Load options
	Source string `json:"source"`

	// Build options
	Newline bool `json:"newline,omitempty"` // Split names and labels at the first space

	// Render options
	Formats []string      `json:"formats,omitempty"`
	Layout  render.Config `json:"layout,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the built reporting graph.
	Graph *org.Graph

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Source == "" {
		return fmt.Errorf("source is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Layout.ApplyDefaults()
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// WantsPNG returns true if a PNG artifact was requested.
func (o *Options) WantsPNG() bool {
	for _, f := range o.Formats {
		if f == FormatPNG {
			return true
		}
	}
	return false
}
