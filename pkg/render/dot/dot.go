// Package dot serializes org graphs to Graphviz DOT text.
//
// The output is deterministic: people and edges are emitted in their source
// order, so the same graph and configuration always produce byte-identical
// text. That makes the format suitable for reproducible diffs, golden-file
// test assertions, and consumption by third-party graph editors.
package dot

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	apperrors "github.com/tidyorg/orgchart/pkg/errors"
	"github.com/tidyorg/orgchart/pkg/org"
	"github.com/tidyorg/orgchart/pkg/render"
	"github.com/tidyorg/orgchart/pkg/render/styles"
)

// Marshal converts an org graph to Graphviz DOT form.
//
// Graph-level attributes come from cfg (connector splines, node and rank
// separation, font size, raster dpi). Each person becomes a box node carrying
// its resolved fill color and border weight; the team name is attached as an
// external label. Each reporting relationship becomes a directed edge with
// its resolved line style.
func Marshal(g *org.Graph, cfg render.Config) []byte {
	cfg.ApplyDefaults()

	var buf bytes.Buffer
	buf.WriteString("digraph org {\n")
	buf.WriteString("  rankdir=TB;\n")
	fmt.Fprintf(&buf, "  splines=%s;\n", splines(cfg))
	fmt.Fprintf(&buf, "  nodesep=%s;\n", trimFloat(cfg.Margin))
	fmt.Fprintf(&buf, "  ranksep=%s;\n", trimFloat(cfg.Offset/10))
	fmt.Fprintf(&buf, "  dpi=%s;\n", trimFloat(72*cfg.Scale))
	fmt.Fprintf(&buf, "  node [shape=box, style=filled, width=%s, fontsize=%s, fontname=\"sans-serif\"];\n",
		trimFloat(cfg.NodeSize), trimFloat(cfg.FontSize))
	edgeFont := cfg.FontSize - 4
	if edgeFont < 1 {
		edgeFont = cfg.FontSize
	}
	fmt.Fprintf(&buf, "  edge [fontsize=%s];\n", trimFloat(edgeFont))
	buf.WriteString("\n")

	for _, p := range g.People() {
		attrs := nodeAttrs(p)
		fmt.Fprintf(&buf, "  %s [%s];\n", quote(p.ID), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Reportings() {
		attrs := edgeAttrs(e)
		fmt.Fprintf(&buf, "  %s -> %s [%s];\n", quote(e.From), quote(e.To), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}

// Write serializes the graph to w.
func Write(g *org.Graph, cfg render.Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := w.Write(Marshal(g, cfg)); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeIO, err, "write DOT output")
	}
	return nil
}

// Export writes the graph as a DOT file at path.
// This is a convenience wrapper around [Write] for file-based output.
func Export(g *org.Graph, cfg render.Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := apperrors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeIO, err, "create %s", path)
	}
	defer f.Close()
	return Write(g, cfg, f)
}

// nodeAttrs builds the DOT attribute list for one person.
func nodeAttrs(p *org.Person) []string {
	st := styles.ForPerson(p)

	attrs := []string{
		fmt.Sprintf("label=%s", quote(nodeLabel(p))),
		fmt.Sprintf("fillcolor=%s", st.FillColor),
		fmt.Sprintf("fontcolor=%s", st.FontColor),
		fmt.Sprintf("color=%s", st.BorderColor),
		fmt.Sprintf("penwidth=%s", trimFloat(st.BorderWidth)),
	}
	if p.Team != "" {
		attrs = append(attrs, fmt.Sprintf("xlabel=%s", quote(p.Team)))
	}
	return attrs
}

// nodeLabel stacks the display name, job title, and note into the box text.
func nodeLabel(p *org.Person) string {
	lines := []string{p.DisplayName()}
	if p.Label != "" {
		lines = append(lines, p.Label)
	}
	if p.Note != "" {
		lines = append(lines, p.Note)
	}
	return strings.Join(lines, "\n")
}

// edgeAttrs builds the DOT attribute list for one reporting edge.
func edgeAttrs(e org.Reporting) []string {
	st := styles.ForEdge(e.Relation)

	attrs := []string{
		fmt.Sprintf("style=%s", st.LineStyle),
		fmt.Sprintf("color=%s", st.Color),
		fmt.Sprintf("penwidth=%s", trimFloat(st.Weight)),
	}
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%s", quote(e.Label)))
	}
	return attrs
}

// splines maps the configured curvature style to a Graphviz splines mode.
func splines(cfg render.Config) string {
	if cfg.Orthogonal() {
		return "ortho"
	}
	return "spline"
}

// quote escapes s as a double-quoted DOT string. Embedded newlines become
// the \n escape so wrapped labels survive serialization.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}

// trimFloat formats a float without trailing zeros, keeping the output
// stable across configurations that mix ints and fractions.
func trimFloat(f float64) string {
	s := fmt.Sprintf("%.4f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
