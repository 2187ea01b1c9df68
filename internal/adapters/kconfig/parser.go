package kconfig

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/kconf/internal/core/domain"
	"go.trai.ch/zerr"
)

// entry is the result of parsing one well-formed .config line.
type entry struct {
	key   string
	value string
}

// parseLine splits a .config line on the first '='. Lines without one
// (blank lines, comments, "# CONFIG_FOO is not set") are reported as skipped
// rather than as errors.
func parseLine(line string) (entry, bool) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return entry{}, false
	}
	return entry{
		key:   strings.TrimSpace(key),
		value: strings.Trim(strings.TrimSpace(value), `"`),
	}, true
}

// parse reads <kdir>/.config into a fresh Mapping. An unreadable file is
// logged and yields an empty mapping; the error never reaches callers.
func (s *Store) parse(kdir string) domain.Mapping {
	path := filepath.Join(kdir, domain.ConfigFileName)

	data, err := s.readFile(path)
	if err != nil {
		s.log.Error(zerr.With(zerr.Wrap(err, "failed to read kernel config"), "path", path))
		return domain.Mapping{}
	}

	m := make(domain.Mapping)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if e, ok := parseLine(scanner.Text()); ok {
			m[e.key] = e.value
		}
	}
	if err := scanner.Err(); err != nil {
		// Only possible for pathological line lengths; keep what parsed.
		s.log.Warn(fmt.Sprintf("truncated scan of kernel config %s: %v", path, err))
	}

	s.log.Info(fmt.Sprintf("parsed kernel config %s (%d options)", path, len(m)))
	return m
}
