// internal/cli/root.go

// Package cli binds the cobra command surface to the engine in internal/app.
// Commands are thin: flags plus config-file overlay in, an options record
// out. All writers are injected so the whole tree is testable.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"g4diff/internal/app"
	"g4diff/internal/config"
	"g4diff/internal/exitcode"
	"g4diff/internal/report"
)

// commandContext carries the optional config-file overlay to subcommands.
type commandContext struct {
	cfg config.File
}

// NewRoot builds the g4diff command tree against the given writers.
func NewRoot(stdout, stderr io.Writer) *cobra.Command {
	cc := &commandContext{}
	var configPath string

	root := &cobra.Command{
		Use:   "g4diff",
		Short: "Reconcile whole-reference vs chunked G4 pipeline runs",
		Long: `g4diff reconciles the result sets of a G4 motif pipeline executed under
two strategies (whole-reference "mmap" vs chunked "stream"), validates hits
against the reference sequence, and correlates disagreements back to the
trace-log chunk that produced them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return nil
			}
			f, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cc.cfg = *f
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file; explicit flags override its values")

	root.AddCommand(
		newDiffCmd(cc),
		newRawDiffCmd(cc),
		newChunkMapCmd(cc),
		newTraceCmd(cc),
	)
	return root
}

// Run executes the command tree and maps failures to exit statuses:
// 0 clean, 1 validation failures, 2 configuration errors, 3 write errors.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := NewRoot(stdout, stderr)
	root.SetArgs(argv)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitcode.OK
	}
	if report.IsBrokenPipe(err) {
		return exitcode.OK
	}
	var xe *app.ExitError
	if errors.As(err, &xe) {
		fmt.Fprintln(stderr, xe.Err)
		return xe.Code
	}
	fmt.Fprintln(stderr, err)
	return exitcode.Config
}
