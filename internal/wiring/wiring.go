// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/prov/internal/adapters/cas"
	_ "go.trai.ch/prov/internal/adapters/config"
	_ "go.trai.ch/prov/internal/adapters/httpsrc"
	_ "go.trai.ch/prov/internal/adapters/logger"
	_ "go.trai.ch/prov/internal/adapters/manifest"
	_ "go.trai.ch/prov/internal/adapters/snapshot"
	_ "go.trai.ch/prov/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/prov/internal/app"
	_ "go.trai.ch/prov/internal/engine/resolver"
)
