package app

import (
	"github.com/courierbuild/courier/internal/core/ports"
)

// Components bundles the top-level objects the CLI entry point needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
