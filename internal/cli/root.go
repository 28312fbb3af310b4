package cli

import (
	"context"
	"errors"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phasemap/phasemap/pkg/buildinfo"
	apperrors "github.com/phasemap/phasemap/pkg/errors"
)

// newRootCmd builds the phasemap command tree with all subcommands
// (render, plan) attached.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via loggerFromContext.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "phasemap",
		Short:         "Phasemap renders implementation roadmap diagrams",
		Long:          `Phasemap is a CLI tool for rendering phased implementation roadmaps as PNG diagrams: rows of colored phase boxes with item and method breakdowns, a legend with statistics, and technical notes.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newPlanCmd())

	return root
}

// Execute runs the phasemap CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Failures other than context cancellation are reported with their
// user-facing message before being returned, so main only has to map
// the error to an exit code.
func Execute(ctx context.Context) error {
	err := newRootCmd().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		printError("%s", apperrors.UserMessage(err))
	}
	return err
}
