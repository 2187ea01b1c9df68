package app

import "go.trai.ch/kconf/internal/core/ports"

// Components contains all the initialized application components.
type Components struct {
	App      *App
	Logger   ports.Logger
	Store    ports.ConfigStore
	Detector ports.ArchDetector
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, store ports.ConfigStore, detector ports.ArchDetector) *Components {
	return &Components{
		App:      app,
		Logger:   logger,
		Store:    store,
		Detector: detector,
	}
}
