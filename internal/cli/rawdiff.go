// internal/cli/rawdiff.go
package cli

import (
	"github.com/spf13/cobra"

	"g4diff/internal/app"
	"g4diff/internal/config"
)

func newRawDiffCmd(cc *commandContext) *cobra.Command {
	var o app.RawDiffOptions
	cmd := &cobra.Command{
		Use:   "rawdiff",
		Short: "Diff RAW_G4 candidate sets between execution modes per traced sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fl := cmd.Flags()
			config.ApplyInt(&o.MaxSamples, cc.cfg.RawDiff.MaxSamples, fl.Changed("max-samples"))
			config.ApplyString(&o.OutDir, cc.cfg.RawDiff.OutDir, fl.Changed("out-dir"))
			return app.RunRawDiff(o, cmd.OutOrStdout())
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&o.Summary, "summary", "", "summary.txt produced by the trace command")
	fl.StringVar(&o.OutDir, "out-dir", "rawdiff_reports", "directory for per-sequence reports")
	fl.IntVar(&o.MaxSamples, "max-samples", 50, "max example rows per diff side (-1 = all)")
	_ = cmd.MarkFlagRequired("summary")
	return cmd
}
