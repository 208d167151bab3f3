package org

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/tidyorg/orgchart/pkg/errors"
)

const exampleYAML = `
nodes:
  - id: A
    label: CEO
    status: perm
    manager: yes
    team: Team A
  - id: B
    label: CTO
    status: perm
    manager: no
    team: Team B
edges:
  - source: A
    target: B
    relationship: 1
`

func TestRead(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNodes int
		wantEdges int
		wantCode  apperrors.Code
		check     func(t *testing.T, doc *Document)
	}{
		{
			name:      "example document",
			input:     exampleYAML,
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, doc *Document) {
				if doc.Nodes[0].ID != "A" {
					t.Errorf("Nodes[0].ID = %q, want A", doc.Nodes[0].ID)
				}
				if !bool(doc.Nodes[0].Manager) {
					t.Error("Nodes[0].Manager = false, want true")
				}
				if bool(doc.Nodes[1].Manager) {
					t.Error("Nodes[1].Manager = true, want false")
				}
				if string(doc.Edges[0].Relationship) != "1" {
					t.Errorf("Edges[0].Relationship = %q, want 1", doc.Edges[0].Relationship)
				}
			},
		},
		{
			name:      "empty sequences",
			input:     "nodes: []\nedges: []\n",
			wantNodes: 0,
			wantEdges: 0,
		},
		{
			name:      "symbolic relationship",
			input:     "nodes:\n  - id: a\n  - id: b\nedges:\n  - source: a\n    target: b\n    relationship: indirect\n",
			wantNodes: 2,
			wantEdges: 1,
		},
		{
			name:     "empty document",
			input:    "",
			wantCode: apperrors.ErrCodeParse,
		},
		{
			name:     "malformed yaml",
			input:    "nodes: [\n",
			wantCode: apperrors.ErrCodeParse,
		},
		{
			name:     "missing nodes sequence",
			input:    "edges: []\n",
			wantCode: apperrors.ErrCodeValidation,
		},
		{
			name:     "missing edges sequence",
			input:    "nodes: []\n",
			wantCode: apperrors.ErrCodeValidation,
		},
		{
			name:     "node without id",
			input:    "nodes:\n  - label: CEO\nedges: []\n",
			wantCode: apperrors.ErrCodeValidation,
		},
		{
			name:     "duplicate node id",
			input:    "nodes:\n  - id: a\n  - id: a\nedges: []\n",
			wantCode: apperrors.ErrCodeValidation,
		},
		{
			name:     "edge references unknown source",
			input:    "nodes:\n  - id: a\nedges:\n  - source: ghost\n    target: a\n",
			wantCode: apperrors.ErrCodeValidation,
		},
		{
			name:     "edge references unknown target",
			input:    "nodes:\n  - id: a\nedges:\n  - source: a\n    target: ghost\n",
			wantCode: apperrors.ErrCodeValidation,
		},
		{
			name:     "self-loop",
			input:    "nodes:\n  - id: a\nedges:\n  - source: a\n    target: a\n",
			wantCode: apperrors.ErrCodeValidation,
		},
		{
			name:     "edge missing endpoints",
			input:    "nodes:\n  - id: a\nedges:\n  - relationship: 1\n",
			wantCode: apperrors.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Read(strings.NewReader(tt.input))

			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("Read() succeeded, want %s", tt.wantCode)
				}
				if got := apperrors.GetCode(err); got != tt.wantCode {
					t.Fatalf("Read() error code = %s, want %s (err: %v)", got, tt.wantCode, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if got := len(doc.Nodes); got != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", got, tt.wantNodes)
			}
			if got := len(doc.Edges); got != tt.wantEdges {
				t.Errorf("edges = %d, want %d", got, tt.wantEdges)
			}
			if tt.check != nil {
				tt.check(t, doc)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "org.yaml")
	if err := os.WriteFile(path, []byte(exampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(doc.Nodes) != 2 || len(doc.Edges) != 1 {
		t.Errorf("Load() = %d nodes, %d edges, want 2 nodes, 1 edge", len(doc.Nodes), len(doc.Edges))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() succeeded for missing file")
	}
	if got := apperrors.GetCode(err); got != apperrors.ErrCodeIO {
		t.Errorf("Load() error code = %s, want %s", got, apperrors.ErrCodeIO)
	}
}
