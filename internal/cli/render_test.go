package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tidyorg/orgchart/pkg/pipeline"
	"github.com/tidyorg/orgchart/pkg/render"
)

func TestParseFormats(t *testing.T) {
	def := []string{"dot", "png"}

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty uses default", "", []string{"dot", "png"}},
		{"single format", "dot", []string{"dot"}},
		{"multiple formats", "dot,png", []string{"dot", "png"}},
		{"png only", "png", []string{"png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input, def)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		source string
		want   string
	}{
		{"derived from source", "", "team/org.yaml", "team/org"},
		{"output with format extension", "chart.png", "org.yaml", "chart"},
		{"output with dot extension", "chart.dot", "org.yaml", "chart"},
		{"output with other extension", "chart.out", "org.yaml", "chart.out"},
		{"bare output", "chart", "org.yaml", "chart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.source); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.source, got, tt.want)
			}
		})
	}
}

func TestValidFormatsMap(t *testing.T) {
	if !pipeline.ValidFormats["dot"] || !pipeline.ValidFormats["png"] {
		t.Error("dot and png must be valid formats")
	}
	if pipeline.ValidFormats["svg"] {
		t.Error("ValidFormats[svg] should be false")
	}
}

func TestPipelineOptionsConfigFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "org.yaml")
	if err := os.WriteFile(source, []byte("nodes:\n  - id: A\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	config := "font_size = 20.0\nscale = 4.0\n"
	if err := os.WriteFile(filepath.Join(dir, pipeline.ConfigFilename), []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := renderOpts{
		source:   source,
		formats:  []string{pipeline.FormatDOT},
		fontSize: 12, // explicit flag wins over the file
	}
	popts, err := pipelineOptions(context.Background(), &opts)
	if err != nil {
		t.Fatal(err)
	}

	if popts.Layout.FontSize != 12 {
		t.Errorf("FontSize = %v, config file overrode the flag", popts.Layout.FontSize)
	}
	if popts.Layout.Scale != 4 {
		t.Errorf("Scale = %v, want 4 from config file", popts.Layout.Scale)
	}
	if popts.Layout.NodeSize != 0 {
		t.Errorf("NodeSize = %v, want 0 (left for pipeline defaults)", popts.Layout.NodeSize)
	}
}

func TestRunRenderWritesFiles(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "org.yaml")
	doc := "nodes:\n  - id: A\n  - id: B\nedges:\n  - source: B\n    target: A\n"
	if err := os.WriteFile(source, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := renderOpts{
		source:  source,
		formats: []string{pipeline.FormatDOT},
	}
	if err := runRender(context.Background(), &opts); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "org.dot"))
	if err != nil {
		t.Fatalf("dot output not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("dot output is empty")
	}
}

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "org.yaml")
	if err := os.WriteFile(source, []byte("nodes:\n  - id: A\nedges: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runValidate(context.Background(), source); err != nil {
		t.Fatal(err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	doc := "nodes:\n  - id: A\nedges:\n  - source: A\n    target: A\n"
	if err := os.WriteFile(bad, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runValidate(context.Background(), bad); err == nil {
		t.Error("expected error for self-loop edge")
	}
}

func TestDefaultConstants(t *testing.T) {
	if render.DefaultOffset != 7 {
		t.Errorf("render.DefaultOffset = %v, want 7", render.DefaultOffset)
	}
	if render.DefaultFontSize != 16 {
		t.Errorf("render.DefaultFontSize = %v, want 16", render.DefaultFontSize)
	}
	if render.DefaultMargin != 0.1 {
		t.Errorf("render.DefaultMargin = %v, want 0.1", render.DefaultMargin)
	}
}
