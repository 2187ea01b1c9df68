package ports

import "go.trai.ch/kconf/internal/core/domain"

// ConfigStore answers queries against a kernel build configuration. Lookups
// never fail: a missing or unreadable .config behaves like an empty one, with
// the cause reported through the logger only.
//
//go:generate mockgen -source=config_store.go -destination=mocks/mock_config_store.go -package=mocks
type ConfigStore interface {
	// Mapping returns the parsed option mapping for the given kernel
	// directory, parsing and caching it on first access.
	Mapping(kdir string) domain.Mapping

	// Value returns the value of the given option, reporting whether it is present.
	Value(kdir, option string) (string, bool)

	// Enabled reports whether the given option is set to "y".
	Enabled(kdir, option string) bool

	// Fingerprint returns a stable hash of the directory's parsed mapping,
	// suitable as a build cache key.
	Fingerprint(kdir string) string
}
