package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tidyorg/orgchart/pkg/org"
	"github.com/tidyorg/orgchart/pkg/render/dot"
	"github.com/tidyorg/orgchart/pkg/render/raster"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → build → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	doc, err := org.Load(opts.Source)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Info("loaded organization",
		"source", opts.Source,
		"nodes", len(doc.Nodes),
		"edges", len(doc.Edges),
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	g, err := org.Build(doc, org.BuildOptions{Newline: opts.Newline})
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Graph = g
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	r.Logger.Info("built reporting graph",
		"people", g.NodeCount(),
		"reportings", g.EdgeCount(),
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		artifact, err := r.renderFormat(ctx, g, opts, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = artifact
	}
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) renderFormat(ctx context.Context, g *org.Graph, opts Options, format string) ([]byte, error) {
	switch format {
	case FormatDOT:
		return dot.Marshal(g, opts.Layout), nil
	case FormatPNG:
		return raster.Render(ctx, g, opts.Layout)
	default:
		return nil, ValidateFormat(format)
	}
}
