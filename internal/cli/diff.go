// internal/cli/diff.go
package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"g4diff/internal/app"
	"g4diff/internal/config"
)

func newDiffCmd(cc *commandContext) *cobra.Command {
	var o app.DiffOptions
	cmd := &cobra.Command{
		Use:   "diff <csv_a> <csv_b> <fasta>",
		Short: "Compare two hit tables and validate differing rows against the reference",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.CSVA, o.CSVB, o.FastaPath = args[0], args[1], args[2]
			applyDiffConfig(&o, cc.cfg.Diff, cmd.Flags())
			if o.Chromosome == "" {
				return errors.New("--chromosome is required")
			}
			return app.RunDiff(o, cmd.OutOrStdout())
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&o.Chromosome, "chromosome", "", "FASTA header (without '>') to validate against")
	fl.IntVar(&o.ReportLimit, "report-limit", 20, "max per-row details per difference direction (-1 = all)")
	fl.BoolVar(&o.CaseSensitive, "case-sensitive", false, "case-sensitive FASTA vs CSV sequence comparison")
	return cmd
}

func applyDiffConfig(o *app.DiffOptions, sec config.DiffSection, fl *pflag.FlagSet) {
	config.ApplyString(&o.Chromosome, sec.Chromosome, fl.Changed("chromosome"))
	config.ApplyInt(&o.ReportLimit, sec.ReportLimit, fl.Changed("report-limit"))
	config.ApplyBool(&o.CaseSensitive, sec.CaseSensitive, fl.Changed("case-sensitive"))
}
