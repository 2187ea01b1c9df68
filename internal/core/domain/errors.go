package domain

import "go.trai.ch/zerr"

var (
	// ErrOptionNotFound is returned when a requested config option is not present.
	ErrOptionNotFound = zerr.New("config option not found")

	// ErrArchUnknown is returned when no architecture could be inferred for a kernel tree.
	ErrArchUnknown = zerr.New("could not determine kernel architecture")

	// ErrUnknownFormat is returned when a report format is not recognized.
	ErrUnknownFormat = zerr.New("unknown report format")
)
