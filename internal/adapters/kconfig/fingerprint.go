package kconfig

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a stable 64-bit hash of the directory's parsed mapping,
// rendered as 16 hex digits. Two directories with identical resolved options
// fingerprint identically regardless of line order in their .config files.
func (s *Store) Fingerprint(kdir string) string {
	m := s.Mapping(kdir)

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	hasher := xxhash.New()
	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.WriteString("=")
		_, _ = hasher.WriteString(m[k])
		_, _ = hasher.WriteString("\n")
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
