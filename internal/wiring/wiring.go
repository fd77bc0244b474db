// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/courierbuild/courier/internal/adapters/archive"
	_ "github.com/courierbuild/courier/internal/adapters/config"
	_ "github.com/courierbuild/courier/internal/adapters/fetch"
	_ "github.com/courierbuild/courier/internal/adapters/fs"
	_ "github.com/courierbuild/courier/internal/adapters/logger"
	_ "github.com/courierbuild/courier/internal/adapters/telemetry"
	_ "github.com/courierbuild/courier/internal/adapters/template"
	// Register app and engine nodes.
	_ "github.com/courierbuild/courier/internal/app"
	_ "github.com/courierbuild/courier/internal/engine/delivery"
)
