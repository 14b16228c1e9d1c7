// internal/cli/trace.go
package cli

import (
	"github.com/spf13/cobra"

	"g4diff/internal/app"
	"g4diff/internal/config"
)

func newTraceCmd(cc *commandContext) *cobra.Command {
	var o app.TraceOptions
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Extract trace-log lines for the sequences with the most diff entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fl := cmd.Flags()
			config.ApplyInt(&o.TopN, cc.cfg.Trace.TopN, fl.Changed("top-n"))
			config.ApplyString(&o.OutDir, cc.cfg.Trace.OutDir, fl.Changed("out-dir"))
			return app.RunTrace(o, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&o.DiffPatch, "diff", "", "unified diff between the two runs' CSV outputs")
	fl.StringVar(&o.MmapCSV, "mmap-csv", "", "combined CSV used to learn the sequence column")
	fl.StringVar(&o.MmapLog, "mmap-log", "", "whole-reference run log")
	fl.StringVar(&o.StreamLog, "stream-log", "", "chunked-mode run log")
	fl.StringVar(&o.OutDir, "out-dir", "trace_selected", "directory for per-sequence trace files")
	fl.IntVar(&o.TopN, "top-n", 10, "how many top differing sequences to extract")
	_ = cmd.MarkFlagRequired("diff")
	_ = cmd.MarkFlagRequired("mmap-csv")
	_ = cmd.MarkFlagRequired("mmap-log")
	_ = cmd.MarkFlagRequired("stream-log")
	return cmd
}
