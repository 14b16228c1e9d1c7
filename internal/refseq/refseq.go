// internal/refseq/refseq.go
package refseq

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Map holds reference sequences keyed by record name: the first
// whitespace-delimited token after '>'. Loaded once, read-only afterwards.
type Map map[string]string

// ErrContentBeforeHeader is returned when sequence text appears before any
// '>' record marker.
var ErrContentBeforeHeader = errors.New("fasta content appears before any header")

// Parse reads a multi-record FASTA stream. Sequence lines belonging to the
// same record name concatenate in order; blank lines are skipped.
func Parse(r io.Reader) (Map, error) {
	parts := map[string][]string{}
	order := []string{}
	current := ""
	seen := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			current = firstToken(line[1:])
			seen = true
			if _, ok := parts[current]; !ok {
				parts[current] = nil
				order = append(order, current)
			}
			continue
		}
		if !seen {
			return nil, ErrContentBeforeHeader
		}
		parts[current] = append(parts[current], line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	m := make(Map, len(order))
	for _, name := range order {
		m[name] = strings.Join(parts[name], "")
	}
	return m, nil
}

// Load opens a FASTA file (plain, .gz, or "-" for stdin) and parses it.
func Load(path string) (Map, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	m, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Names returns the record names in lexical order, for error messages that
// list the available alternatives.
func (m Map) Names() []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func firstToken(s string) string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}
