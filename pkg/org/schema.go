// Package org loads declarative organisation descriptions and assembles them
// into directed graphs of people and reporting relationships.
//
// # Input Format
//
// The source is a YAML document with two required top-level sequences:
//
//	nodes:
//	  - id: Ty Coon
//	    label: CEO
//	    team: Exec
//	    status: perm
//	    manager: yes
//	  - id: Tech Minion
//	    label: Engineer
//	    status: perm
//	edges:
//	  - source: Ty Coon
//	    target: Tech Minion
//	    relationship: direct
//
// Each node must carry a unique id. Every edge must reference declared node
// ids; self-loops are rejected. Both sequences may be empty but must be
// present.
//
// # Pipeline Position
//
// Loading is a pure transform from bytes to validated records ([Document]).
// [Build] then turns a Document into a [Graph], applying display-form
// normalization (team uppercasing, optional first-space line wrapping).
// Exporters in pkg/render consume the Graph; nothing here touches the
// filesystem except the [Load] convenience wrapper.
package org

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/tidyorg/orgchart/pkg/errors"
)

// NodeRecord is one person entry from the source file, prior to graph
// construction. Fields are carried verbatim; display normalization happens
// in Build.
type NodeRecord struct {
	ID      string `yaml:"id"`
	Label   string `yaml:"label"`  // job title
	Team    string `yaml:"team"`   // free text, uppercased at build time
	Status  string `yaml:"status"` // see ParseStatus for accepted values
	Manager Flag   `yaml:"manager"`
	Note    string `yaml:"note"`
	Rank    string `yaml:"rank"`
}

// EdgeRecord is one reporting relationship entry from the source file.
type EdgeRecord struct {
	Source       string `yaml:"source"`
	Target       string `yaml:"target"`
	Label        string `yaml:"label"`
	Relationship Scalar `yaml:"relationship"` // name or legacy numeric code
}

// Document is a validated in-memory representation of an org source file.
type Document struct {
	Nodes []NodeRecord
	Edges []EdgeRecord
}

// Flag is a yes/no field. The source format spells booleans as "yes"/"no",
// but bare true/false is accepted as well.
type Flag bool

// UnmarshalYAML implements yaml.Unmarshaler for Flag.
func (f *Flag) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "yes", "y", "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}

// Scalar captures a YAML scalar as its raw string form, so that fields like
// relationship can be written either as a name ("direct") or as a bare
// number (1) without a decode error.
type Scalar string

// UnmarshalYAML implements yaml.Unmarshaler for Scalar.
func (s *Scalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", value.Line)
	}
	*s = Scalar(value.Value)
	return nil
}

// rawDocument mirrors the YAML structure with pointer slices so a missing
// sequence can be told apart from an empty one.
type rawDocument struct {
	Nodes *[]NodeRecord `yaml:"nodes"`
	Edges *[]EdgeRecord `yaml:"edges"`
}

// Read decodes and validates an org description from r.
//
// It returns a PARSE_ERROR if the input is not well-formed YAML, and a
// VALIDATION_ERROR if the nodes or edges sequence is missing, a node id is
// empty or duplicated, or an edge references an undeclared node. The offending
// record is identified in the error message.
func Read(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(false)

	var raw rawDocument
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.New(apperrors.ErrCodeParse, "source is empty")
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeParse, err, "source is not valid YAML")
	}

	if raw.Nodes == nil {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "source has no 'nodes' sequence")
	}
	if raw.Edges == nil {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "source has no 'edges' sequence")
	}

	doc := &Document{Nodes: *raw.Nodes, Edges: *raw.Edges}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Load reads and validates the org description file at path.
// This is a convenience wrapper around [Read] for file-based input.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// validate checks the referential invariants of the document: unique,
// well-formed node ids and edge endpoints that reference declared nodes.
func (d *Document) validate() error {
	seen := make(map[string]int, len(d.Nodes))
	for i, n := range d.Nodes {
		if err := apperrors.ValidateNodeID(n.ID); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeValidation, err, "node %d", i)
		}
		if prev, dup := seen[n.ID]; dup {
			return apperrors.New(apperrors.ErrCodeValidation,
				"duplicate node id %q (nodes %d and %d)", n.ID, prev, i)
		}
		seen[n.ID] = i
	}

	for i, e := range d.Edges {
		if e.Source == "" || e.Target == "" {
			return apperrors.New(apperrors.ErrCodeValidation,
				"edge %d is missing a source or target", i)
		}
		if _, ok := seen[e.Source]; !ok {
			return apperrors.New(apperrors.ErrCodeValidation,
				"edge %d references unknown source node %q", i, e.Source)
		}
		if _, ok := seen[e.Target]; !ok {
			return apperrors.New(apperrors.ErrCodeValidation,
				"edge %d references unknown target node %q", i, e.Target)
		}
		if e.Source == e.Target {
			return apperrors.New(apperrors.ErrCodeValidation,
				"edge %d is a self-loop on %q", i, e.Source)
		}
	}

	return nil
}
