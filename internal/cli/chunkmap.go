// internal/cli/chunkmap.go
package cli

import (
	"github.com/spf13/cobra"

	"g4diff/internal/app"
	"g4diff/internal/config"
)

func newChunkMapCmd(cc *commandContext) *cobra.Command {
	var o app.ChunkMapOptions
	cmd := &cobra.Command{
		Use:   "chunkmap",
		Short: "Map stream-only hit rows to the chunk that produced them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fl := cmd.Flags()
			config.ApplyInt(&o.SampleLimit, cc.cfg.ChunkMap.SampleLimit, fl.Changed("sample-limit"))
			config.ApplyInt(&o.TopOffsets, cc.cfg.ChunkMap.TopOffsets, fl.Changed("top-offsets"))
			return app.RunChunkMap(o, cmd.OutOrStdout())
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&o.StreamCSV, "stream-csv", "", "chunked-mode combined hit table")
	fl.StringVar(&o.MmapCSV, "mmap-csv", "", "whole-reference combined hit table")
	fl.StringVar(&o.Log, "log", "", "chunked-mode run log (carries STREAM_CHUNK events)")
	fl.StringVar(&o.Out, "out", "stream_only_chunk_mapping.csv", "detail CSV output path")
	fl.IntVar(&o.SampleLimit, "sample-limit", 10000, "max mapped records written to the detail CSV (-1 = all)")
	fl.IntVar(&o.TopOffsets, "top-offsets", 30, "chunk offsets listed in the aggregate summary (-1 = all)")
	fl.BoolVar(&o.CaseSensitive, "case-sensitive", false, "preserve sequence case when parsing hit tables")
	_ = cmd.MarkFlagRequired("stream-csv")
	_ = cmd.MarkFlagRequired("mmap-csv")
	_ = cmd.MarkFlagRequired("log")
	return cmd
}
