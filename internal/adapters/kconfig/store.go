// Package kconfig implements the kernel configuration store with arch inference.
package kconfig

import (
	"os"
	"sync"

	"golang.org/x/sync/singleflight"

	"go.trai.ch/kconf/internal/core/domain"
	"go.trai.ch/kconf/internal/core/ports"
)

var (
	_ ports.ConfigStore  = (*Store)(nil)
	_ ports.ArchDetector = (*Store)(nil)
)

// Store parses kernel .config files and caches one Mapping per kernel
// directory. Entries are never evicted; a directory's config file is read at
// most once per Store lifetime.
type Store struct {
	log ports.Logger

	mu    sync.RWMutex
	cache map[string]domain.Mapping
	group singleflight.Group

	readFile func(string) ([]byte, error)
}

// NewStore creates a Store reporting failures through the given logger.
func NewStore(log ports.Logger) *Store {
	return &Store{
		log:      log,
		cache:    make(map[string]domain.Mapping),
		readFile: os.ReadFile,
	}
}

// Mapping returns the parsed option mapping for the given kernel directory,
// parsing and caching it on first access. A missing or unreadable .config is
// logged and cached as an empty mapping.
func (s *Store) Mapping(kdir string) domain.Mapping {
	s.mu.RLock()
	m, ok := s.cache[kdir]
	s.mu.RUnlock()
	if ok {
		return m
	}

	// singleflight collapses concurrent first reads of the same directory so
	// the file is still parsed only once.
	v, _, _ := s.group.Do(kdir, func() (any, error) {
		s.mu.RLock()
		m, ok := s.cache[kdir]
		s.mu.RUnlock()
		if ok {
			return m, nil
		}

		m = s.parse(kdir)

		s.mu.Lock()
		s.cache[kdir] = m
		s.mu.Unlock()
		return m, nil
	})
	return v.(domain.Mapping)
}

// Value returns the value of the given option, reporting whether it is present.
func (s *Store) Value(kdir, option string) (string, bool) {
	return s.Mapping(kdir).Value(option)
}

// Enabled reports whether the given option is set to "y".
func (s *Store) Enabled(kdir, option string) bool {
	return s.Mapping(kdir).Enabled(option)
}
