// internal/tracelog/scanner.go
package tracelog

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"g4diff/internal/hits"
)

// Strict line grammars, matching what the pipeline actually prints.
// Anything a strict pattern misses goes through the per-field fallback.
var (
	rawRe = regexp.MustCompile(`start=(\d+)\s+end=(\d+)\s+gscore=(\d+)\s+seq=(.+)$`)

	chunkRe = regexp.MustCompile(
		`DEBUG STREAM_CHUNK \(offset=(\d+), len=(\d+)\): contains target; snippet="([^"]*)"`)
	mergedRe = regexp.MustCompile(
		`DEBUG MERGED_G4(?: \(offset=(\d+)\))?: start=(\d+) end=(\d+) gscore=(\d+) seq=([a-z]+)`)
	streamHitRe = regexp.MustCompile(
		`DEBUG STREAM_HIT \(offset=(\d+)\): start=(\d+) end=(\d+) gscore=(\d+) seq=([a-z]+)`)

	// permissive fallback pieces
	startRe  = regexp.MustCompile(`start=(\d+)`)
	endRe    = regexp.MustCompile(`end=(\d+)`)
	gscoreRe = regexp.MustCompile(`g?score=(\d+)`)
	seqRe    = regexp.MustCompile(`seq=(.+)$`)
	offsetRe = regexp.MustCompile(`offset=(\d+)`)
	lenRe    = regexp.MustCompile(`len=(\d+)`)
	snipRe   = regexp.MustCompile(`snippet="([^"]*)"`)
)

// ScanLine classifies one log line. The boolean is false for lines without a
// recognized marker and for marker lines whose fields cannot be recovered
// even permissively; both are silent skips.
func ScanLine(idx int, line string) (Event, bool) {
	kind, ok := classify(line)
	if !ok {
		return Event{}, false
	}
	ev := Event{Line: idx, Kind: kind, Mode: modeOf(line), Raw: line}

	if kind == KindChunkBoundary {
		chunk, ok := parseChunk(idx, line)
		if !ok {
			return Event{}, false
		}
		ev.Chunk = chunk
		return ev, true
	}

	cand, ok := parseCandidate(kind, line)
	if !ok {
		return Event{}, false
	}
	ev.Candidate = cand
	return ev, true
}

// Scan produces the ordered event sequence for one log stream. Line indices
// are 0-based positions in the raw log, counting unrecognized lines too, so
// they stay comparable with chunk boundary positions.
func Scan(r io.Reader) ([]Event, error) {
	var events []Event
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	idx := 0
	for sc.Scan() {
		if ev, ok := ScanLine(idx, sc.Text()); ok {
			events = append(events, ev)
		}
		idx++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// ScanFile scans a log file from disk.
func ScanFile(path string) ([]Event, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Scan(fh)
}

func classify(line string) (Kind, bool) {
	switch {
	case strings.Contains(line, "STREAM_CHUNK"):
		return KindChunkBoundary, true
	case strings.Contains(line, "STREAM_HIT"):
		return KindStreamHit, true
	case strings.Contains(line, "MERGED_G4"):
		return KindMergedHit, true
	case strings.Contains(line, "RAW_G4"):
		return KindRawCandidate, true
	case strings.Contains(line, "FAMILY"):
		return KindFamilyGroup, true
	}
	return 0, false
}

func modeOf(line string) Mode {
	switch {
	case strings.HasPrefix(line, "[MMAP]"):
		return ModeMmap
	case strings.HasPrefix(line, "[STREAM]"):
		return ModeStream
	case strings.Contains(line, "MMAP"):
		return ModeMmap
	case strings.Contains(line, "STREAM"):
		return ModeStream
	}
	return ModeUnknown
}

func parseCandidate(kind Kind, line string) (hits.Candidate, bool) {
	var m []string
	switch kind {
	case KindMergedHit:
		if g := mergedRe.FindStringSubmatch(line); g != nil {
			m = g[2:]
		}
	case KindStreamHit:
		if g := streamHitRe.FindStringSubmatch(line); g != nil {
			m = g[2:]
		}
	default:
		if g := rawRe.FindStringSubmatch(line); g != nil {
			m = g[1:]
		}
	}
	if m != nil {
		return hits.Candidate{
			Start:  mustInt(m[0]),
			End:    mustInt(m[1]),
			GScore: mustInt(m[2]),
			Seq:    strings.TrimSpace(m[3]),
		}, true
	}
	return fallbackCandidate(line)
}

// fallbackCandidate attempts to locate each field independently; all four
// must be recoverable or the line is dropped.
func fallbackCandidate(line string) (hits.Candidate, bool) {
	start, ok1 := findInt(startRe, line)
	end, ok2 := findInt(endRe, line)
	score, ok3 := findInt(gscoreRe, line)
	seq := seqRe.FindStringSubmatch(line)
	if !ok1 || !ok2 || !ok3 || seq == nil {
		return hits.Candidate{}, false
	}
	return hits.Candidate{Start: start, End: end, GScore: score, Seq: strings.TrimSpace(seq[1])}, true
}

func parseChunk(idx int, line string) (ChunkEvent, bool) {
	if g := chunkRe.FindStringSubmatch(line); g != nil {
		return ChunkEvent{
			Line:    idx,
			Offset:  mustInt(g[1]),
			Length:  mustInt(g[2]),
			Snippet: g[3],
		}, true
	}
	off, ok1 := findInt(offsetRe, line)
	length, ok2 := findInt(lenRe, line)
	if !ok1 || !ok2 {
		return ChunkEvent{}, false
	}
	snippet := ""
	if g := snipRe.FindStringSubmatch(line); g != nil {
		snippet = g[1]
	}
	return ChunkEvent{Line: idx, Offset: off, Length: length, Snippet: snippet}, true
}

func findInt(re *regexp.Regexp, s string) (int, bool) {
	g := re.FindStringSubmatch(s)
	if g == nil {
		return 0, false
	}
	return mustInt(g[1]), true
}

func mustInt(s string) int {
	v, _ := strconv.Atoi(s) // submatches are \d+ by construction
	return v
}
