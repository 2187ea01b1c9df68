// Package app implements the application layer for kconf.
package app

import (
	"encoding/json"
	"io"

	"go.trai.ch/kconf/internal/core/domain"
	"go.trai.ch/kconf/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a report.
type Format string

const (
	// FormatYAML encodes reports as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON encodes reports as indented JSON.
	FormatJSON Format = "json"
)

// App represents the main application logic.
type App struct {
	store    ports.ConfigStore
	detector ports.ArchDetector
}

// New creates a new App instance.
func New(store ports.ConfigStore, detector ports.ArchDetector) *App {
	return &App{
		store:    store,
		detector: detector,
	}
}

// Value returns the value of a config option in the given kernel directory.
// Returns domain.ErrOptionNotFound when the option is absent.
func (a *App) Value(kdir, option string) (string, error) {
	v, ok := a.store.Value(kdir, option)
	if !ok {
		return "", zerr.With(domain.ErrOptionNotFound, "option", option)
	}
	return v, nil
}

// Enabled reports whether a config option is set to "y".
func (a *App) Enabled(kdir, option string) bool {
	return a.store.Enabled(kdir, option)
}

// Arch returns the inferred target architecture of the kernel directory.
// Returns domain.ErrArchUnknown when none could be determined.
func (a *App) Arch(kdir string) (string, error) {
	arch, ok := a.detector.Arch(kdir)
	if !ok {
		return "", zerr.With(domain.ErrArchUnknown, "kdir", kdir)
	}
	return arch, nil
}

// Fingerprint returns the stable fingerprint of the kernel configuration.
func (a *App) Fingerprint(kdir string) string {
	return a.store.Fingerprint(kdir)
}

// Report assembles the full configuration report for a kernel directory.
// An undeterminable architecture leaves the field empty rather than failing.
func (a *App) Report(kdir string) *domain.Report {
	arch, _ := a.detector.Arch(kdir)
	return &domain.Report{
		KernelDir:   kdir,
		Arch:        arch,
		Fingerprint: a.store.Fingerprint(kdir),
		Options:     a.store.Mapping(kdir),
	}
}

// WriteReport encodes the report for kdir to w in the given format.
func (a *App) WriteReport(w io.Writer, kdir string, format Format) error {
	report := a.Report(kdir)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return zerr.Wrap(err, "failed to encode report")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(report); err != nil {
			return zerr.Wrap(err, "failed to encode report")
		}
		if err := enc.Close(); err != nil {
			return zerr.Wrap(err, "failed to flush report")
		}
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", string(format))
	}
	return nil
}
