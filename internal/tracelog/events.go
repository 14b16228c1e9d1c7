// internal/tracelog/events.go

// Package tracelog extracts structured events from the pipeline's free-form
// debug logs. The log format is best-effort diagnostic output, not a schema
// the pipeline guarantees to honor, so the scanner is strict first and
// permissive second, and drops what it cannot recover.
package tracelog

import "g4diff/internal/hits"

// Kind tags the recognized event variants.
type Kind int

const (
	KindRawCandidate Kind = iota // RAW_G4 candidate emission
	KindFamilyGroup              // FAMILY grouping
	KindMergedHit                // MERGED_G4 consolidated hit
	KindStreamHit                // STREAM_HIT chunked-mode hit
	KindChunkBoundary            // STREAM_CHUNK boundary announcement
)

func (k Kind) String() string {
	switch k {
	case KindRawCandidate:
		return "RAW_G4"
	case KindFamilyGroup:
		return "FAMILY"
	case KindMergedHit:
		return "MERGED_G4"
	case KindStreamHit:
		return "STREAM_HIT"
	case KindChunkBoundary:
		return "STREAM_CHUNK"
	}
	return "UNKNOWN"
}

// Mode is the execution strategy that produced a log line. Fixed at event
// creation, never reinterpreted.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeMmap         // whole-reference
	ModeStream       // chunked
)

func (m Mode) String() string {
	switch m {
	case ModeMmap:
		return "MMAP"
	case ModeStream:
		return "STREAM"
	}
	return "UNKNOWN"
}

// ChunkEvent is one chunk-boundary announcement: the chunked strategy
// starting on a sub-window of the reference. Totally ordered by Line within
// one log.
type ChunkEvent struct {
	Line    int
	Offset  int
	Length  int
	Snippet string
}

// Event is one recognized log line. Candidate is meaningful for the
// candidate-like kinds; Chunk for KindChunkBoundary. Raw preserves the
// original line text for reporting.
type Event struct {
	Line      int
	Kind      Kind
	Mode      Mode
	Candidate hits.Candidate
	Chunk     ChunkEvent
	Raw       string
}

// ModeSets partitions candidates by the execution mode that produced them.
type ModeSets struct {
	Mmap   []hits.Candidate
	Stream []hits.Candidate
}

// PartitionRaw collects RAW_G4 candidates by execution mode. Events whose
// mode could not be determined are skipped: a candidate without a mode has
// no side of the comparison to land on.
func PartitionRaw(events []Event) ModeSets {
	var s ModeSets
	for _, ev := range events {
		if ev.Kind != KindRawCandidate {
			continue
		}
		switch ev.Mode {
		case ModeMmap:
			s.Mmap = append(s.Mmap, ev.Candidate)
		case ModeStream:
			s.Stream = append(s.Stream, ev.Candidate)
		}
	}
	return s
}
