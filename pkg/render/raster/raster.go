// Package raster renders org graphs to PNG images.
//
// Vertex placement is delegated to the Graphviz layout engine via
// github.com/goccy/go-graphviz; this package never computes positions itself.
// The graph is serialized to DOT first, so the image applies exactly the
// styles and layout parameters the text exporter emits.
package raster

import (
	"bytes"
	"context"
	"os"

	"github.com/goccy/go-graphviz"

	apperrors "github.com/tidyorg/orgchart/pkg/errors"
	"github.com/tidyorg/orgchart/pkg/org"
	"github.com/tidyorg/orgchart/pkg/render"
	"github.com/tidyorg/orgchart/pkg/render/dot"
)

// Render lays out the graph and rasterizes it to PNG bytes.
//
// The layout configuration is validated up front; an out-of-range parameter
// (e.g. a negative node size) is reported as a RENDER_ERROR before the layout
// engine is touched. Engine failures are likewise RENDER_ERRORs - they
// indicate a misconfiguration, not a transient condition, so nothing is
// retried.
func Render(ctx context.Context, g *org.Graph, cfg render.Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := dot.Marshal(g, cfg)

	graph, err := graphviz.ParseBytes(src)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeRender, err, "parse generated DOT")
	}
	defer graph.Close()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeRender, err, "init layout engine")
	}
	defer gv.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.PNG, &buf); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeRender, err, "render PNG")
	}
	return buf.Bytes(), nil
}

// Export renders the graph and writes the PNG to path.
//
// Rendering happens fully in memory before the destination is opened, so a
// RENDER_ERROR never leaves a partial file behind. Write failures are
// reported as IO_ERROR.
func Export(ctx context.Context, g *org.Graph, cfg render.Config, path string) error {
	data, err := Render(ctx, g, cfg)
	if err != nil {
		return err
	}
	if err := apperrors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
