// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/kconf/internal/adapters/kconfig"
	_ "go.trai.ch/kconf/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/kconf/internal/app"
)
