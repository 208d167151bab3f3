package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tidyorg/orgchart/pkg/pipeline"
	"github.com/tidyorg/orgchart/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
// Zero values mean "not set"; file config and pipeline defaults fill them in.
type renderOpts struct {
	source   string  // input org file (YAML)
	output   string  // output file path or base path
	formats  []string
	nodeSize float64 // node box width in inches
	margin   float64 // separation between sibling nodes
	fontSize float64 // node label font size in points
	offset   float64 // vertical rank separation, in points/10
	scale    float64 // raster DPI multiplier
	style    string  // edge routing: arc, arc3, angle, angle3
	newline  bool    // split names and labels at the first space
}

// newRenderCmd creates the render command for generating charts.
// By default it produces both the DOT text and the PNG image next to the
// source file.
//
// Default settings:
//   - node size: 1.8in, margin: 0.1, font size: 16pt
//   - offset: 7 (rank separation), scale: 2 (144 dpi)
//   - style: arc (curved edges)
func newRenderCmd() *cobra.Command {
	var opts renderOpts
	var formatsStr string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an org chart to PNG and DOT",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr, []string{pipeline.FormatDOT, pipeline.FormatPNG})
			return runRender(cmd.Context(), &opts)
		},
	}

	addSourceFlag(cmd, &opts.source)
	addLayoutFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.output, "output", "", "output file or base path (default: derived from source)")
	cmd.Flags().StringVar(&formatsStr, "format", "", "output format(s): dot, png (comma-separated; default both)")

	return cmd
}

// addSourceFlag registers the required --source flag.
func addSourceFlag(cmd *cobra.Command, dest *string) {
	cmd.Flags().StringVarP(dest, "source", "s", "", "organization description file (YAML)")
	_ = cmd.MarkFlagRequired("source")
}

// addLayoutFlags registers the layout flags shared by render and dot.
func addLayoutFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().Float64VarP(&opts.margin, "margin", "m", 0, "separation between sibling nodes")
	cmd.Flags().Float64VarP(&opts.nodeSize, "nodesize", "n", 0, "node box width in inches")
	cmd.Flags().StringVarP(&opts.style, "style", "f", "", "edge routing style: arc, arc3, angle, angle3")
	cmd.Flags().Float64VarP(&opts.offset, "offset", "o", 0, "vertical separation between ranks")
	cmd.Flags().Float64VarP(&opts.fontSize, "fontsize", "x", 0, "label font size in points")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "raster resolution multiplier")
	cmd.Flags().BoolVar(&opts.newline, "newline", false, "split names and labels at the first space")
}

// parseFormats parses the --format flag into a slice of output formats.
func parseFormats(s string, def []string) []string {
	if s == "" {
		return def
	}
	return strings.Split(s, ",")
}

// pipelineOptions converts the parsed flags to pipeline options, applying
// any orgchart.toml found next to the source file. Explicit flags win over
// the file; the file wins over built-in defaults.
func pipelineOptions(ctx context.Context, opts *renderOpts) (pipeline.Options, error) {
	logger := loggerFromContext(ctx)

	popts := pipeline.Options{
		Source:  opts.source,
		Newline: opts.newline,
		Formats: opts.formats,
		Logger:  logger,
		Layout: render.Config{
			NodeSize: opts.nodeSize,
			Margin:   opts.margin,
			FontSize: opts.fontSize,
			Offset:   opts.offset,
			Scale:    opts.scale,
			CStyle:   opts.style,
		},
	}

	if path := pipeline.FindConfig(opts.source); path != "" {
		logger.Debugf("Applying config file %s", path)
		fc, err := pipeline.LoadConfig(path)
		if err != nil {
			return pipeline.Options{}, err
		}
		fc.Apply(&popts)
	}

	return popts, nil
}

// basePath derives the base output path from the output and source paths.
// If output is empty, it strips the extension from source. If output ends in
// a known format extension, that extension is stripped.
func basePath(output, source string) string {
	if output == "" {
		return strings.TrimSuffix(source, filepath.Ext(source))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender executes the full pipeline and writes one file per format.
func runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", opts.source)
	prog := newProgress(logger)

	popts, err := pipelineOptions(ctx, opts)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}

	base := basePath(opts.output, opts.source)
	printSuccess("Rendered %s", opts.source)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount)

	for _, format := range popts.Formats {
		path := base + "." + format
		if err := writeArtifact(result.Artifacts[format], path); err != nil {
			return err
		}
		printFile(path, len(result.Artifacts[format]))
	}

	prog.done(fmt.Sprintf("Rendered %d people", result.Stats.NodeCount))
	return nil
}

// writeArtifact writes data to path, overwriting any existing file.
func writeArtifact(data []byte, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.Write(data)
	return err
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
