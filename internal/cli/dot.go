package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tidyorg/orgchart/pkg/pipeline"
)

// newDotCmd creates the dot command, which emits the Graphviz DOT text for
// an org file without invoking the layout engine. With no --output it writes
// to stdout, making it easy to pipe into a local Graphviz installation.
func newDotCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Emit Graphviz DOT text for an org chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = []string{pipeline.FormatDOT}
			return runDot(cmd.Context(), &opts)
		},
	}

	addSourceFlag(cmd, &opts.source)
	addLayoutFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.output, "output", "", "output file (default: stdout)")

	return cmd
}

// runDot executes the pipeline for the DOT format only and writes the text
// to the output path or stdout.
func runDot(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Generating DOT for %s", opts.source)

	popts, err := pipelineOptions(ctx, opts)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}

	if err := writeArtifact(result.Artifacts[pipeline.FormatDOT], opts.output); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Infof("Wrote %s", opts.output)
	}
	return nil
}
