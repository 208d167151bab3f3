package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tidyorg/orgchart/pkg/errors"
	"github.com/tidyorg/orgchart/pkg/org"
)

// newValidateCmd creates the validate command, which checks an org file for
// structural problems without rendering anything.
func newValidateCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an org file without rendering",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), source)
		},
	}

	addSourceFlag(cmd, &source)

	return cmd
}

// runValidate loads and builds the graph, reporting the first problem found.
func runValidate(ctx context.Context, source string) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Validating %s", source)

	doc, err := org.Load(source)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	g, err := org.Build(doc, org.BuildOptions{})
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	printSuccess("%s is valid", source)
	printStats(g.NodeCount(), g.EdgeCount())
	return nil
}
