// Package app implements the application layer for courier.
package app

import (
	"context"

	"github.com/courierbuild/courier/internal/core/domain"
	"github.com/courierbuild/courier/internal/core/ports"
	"github.com/courierbuild/courier/internal/engine/delivery"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ManifestLoader
	deliverer *delivery.Deliverer
	logger    ports.Logger
}

// New creates a new App instance.
func New(loader ports.ManifestLoader, deliverer *delivery.Deliverer, logger ports.Logger) *App {
	return &App{
		loader:    loader,
		deliverer: deliverer,
		logger:    logger,
	}
}

// Deliver reads the build environment, loads the manifest at configPath and
// delivers every package it names.
func (a *App) Deliver(ctx context.Context, configPath string) error {
	env, err := domain.BuildEnvFromOS()
	if err != nil {
		return zerr.Wrap(err, "failed to read build environment")
	}

	manifest, err := a.loader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	return a.deliverer.Deliver(ctx, manifest, env)
}
