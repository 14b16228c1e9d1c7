// internal/config/config.go

// Package config holds the explicit configuration record for one engine
// invocation: every input/output path and limit, with an optional YAML
// overlay file. There is no process-wide mutable path state.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// File mirrors the flag surface per subcommand. Pointer fields distinguish
// "absent from file" from zero values, so explicitly set flags always win.
type File struct {
	Diff     DiffSection     `yaml:"diff"`
	RawDiff  RawDiffSection  `yaml:"rawdiff"`
	ChunkMap ChunkMapSection `yaml:"chunkmap"`
	Trace    TraceSection    `yaml:"trace"`
}

type DiffSection struct {
	Chromosome    *string `yaml:"chromosome"`
	ReportLimit   *int    `yaml:"report_limit"`
	CaseSensitive *bool   `yaml:"case_sensitive"`
}

type RawDiffSection struct {
	MaxSamples *int    `yaml:"max_samples"`
	OutDir     *string `yaml:"out_dir"`
}

type ChunkMapSection struct {
	SampleLimit *int `yaml:"sample_limit"`
	TopOffsets  *int `yaml:"top_offsets"`
}

type TraceSection struct {
	TopN   *int    `yaml:"top_n"`
	OutDir *string `yaml:"out_dir"`
}

// Load reads and parses a YAML config file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

// Overlay helpers: apply a file value only when the flag was not set
// explicitly on the command line.

func ApplyString(dst *string, src *string, changed bool) {
	if !changed && src != nil {
		*dst = *src
	}
}

func ApplyInt(dst *int, src *int, changed bool) {
	if !changed && src != nil {
		*dst = *src
	}
}

func ApplyBool(dst *bool, src *bool, changed bool) {
	if !changed && src != nil {
		*dst = *src
	}
}
