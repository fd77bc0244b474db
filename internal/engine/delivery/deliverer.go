// Package delivery implements the package delivery pipeline.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/courierbuild/courier/internal/core/domain"
	"github.com/courierbuild/courier/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Deliverer runs the delivery pipeline for every package in a manifest:
// resolve the source template, fetch, extract, locate the placeholder and
// inject the pre-built artifact over it.
type Deliverer struct {
	resolver  ports.TemplateResolver
	fetcher   ports.Fetcher
	extractor ports.Extractor
	locator   ports.OutputLocator
	injector  ports.Injector
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewDeliverer creates a new Deliverer.
func NewDeliverer(
	resolver ports.TemplateResolver,
	fetcher ports.Fetcher,
	extractor ports.Extractor,
	locator ports.OutputLocator,
	injector ports.Injector,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Deliverer {
	return &Deliverer{
		resolver:  resolver,
		fetcher:   fetcher,
		extractor: extractor,
		locator:   locator,
		injector:  injector,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Deliver processes every package in the manifest. Packages are independent:
// each one is attempted even when others fail, so a partial delivery leaves
// every successful package in place. The returned error aggregates all
// per-package failures.
func (d *Deliverer) Deliver(ctx context.Context, manifest *domain.Manifest, env domain.BuildEnv) error {
	stagingRoot, err := os.MkdirTemp("", "courier-staging-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create staging directory")
	}
	defer os.RemoveAll(stagingRoot) //nolint:errcheck // Best effort cleanup

	// Failures are collected by package position so the aggregate error is
	// deterministic regardless of completion order.
	failures := make([]error, len(manifest.Packages))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, pkg := range manifest.Packages {
		g.Go(func() error {
			if err := d.deliverPackage(ctx, pkg, manifest.Substitutions, env, stagingRoot); err != nil {
				failures[i] = zerr.With(err, "package", pkg.Name)
			}
			return nil
		})
	}
	_ = g.Wait()

	errs := []error{domain.ErrDeliveryFailed}
	for _, err := range failures {
		if err != nil {
			d.logger.Error(err)
			errs = append(errs, err)
		}
	}
	if len(errs) == 1 {
		return nil
	}
	return errors.Join(errs...)
}

func (d *Deliverer) deliverPackage(
	ctx context.Context,
	pkg domain.PackageSpec,
	user map[string]domain.Substitution,
	env domain.BuildEnv,
	stagingRoot string,
) (err error) {
	ctx, vertex := d.telemetry.Record(ctx, "deliver "+pkg.Name)
	defer func() { vertex.Done(err) }()

	vars := domain.MergedSubstitutions(env, pkg, user)
	source, err := d.resolver.Resolve(pkg.Source, vars)
	if err != nil {
		return err
	}

	locator, err := domain.ClassifyLocator(source, env.ProjectRoot)
	if err != nil {
		return err
	}
	// The manifest loader rejects remote non-copy strategies against the raw
	// template. A substitution can still smuggle in a URL, so the resolved
	// locator is checked again here.
	if locator.Scheme.Remote() && pkg.Link != domain.LinkCopy {
		return zerr.With(domain.ErrRemoteLinkStrategy, "source", locator.Location)
	}

	staging := filepath.Join(stagingRoot, pkg.Name)
	if err := os.MkdirAll(staging, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create package staging directory")
	}

	fmt.Fprintf(vertex, "fetching %s\n", locator.Location)
	resource, err := d.fetcher.Fetch(ctx, locator, staging)
	if err != nil {
		return err
	}

	contents, err := d.extractor.Extract(resource, staging)
	if err != nil {
		return err
	}

	target, err := d.locator.Locate(pkg.Name, env)
	if err != nil {
		return err
	}

	// Artifacts recovered from an archive live in the staging directory,
	// which is removed when the run ends. Links into it would not survive,
	// so archive contents are always copied.
	strategy := pkg.Link
	if resource.Archive && strategy != domain.LinkCopy {
		d.logger.Warn(fmt.Sprintf("package %s: %s strategy does not apply to archive contents, copying instead", pkg.Name, strategy))
		strategy = domain.LinkCopy
	}

	if err := d.injector.Inject(contents.PrimaryPath, target, strategy); err != nil {
		return err
	}
	fmt.Fprintf(vertex, "delivered %s (%s)\n", target.Path(), resource.Digest)

	for _, aux := range contents.Auxiliaries {
		auxTarget, err := d.locator.AuxiliaryTarget(aux.Name, env)
		if err != nil {
			return err
		}
		if err := d.injector.Inject(aux.Path, auxTarget, domain.LinkCopy); err != nil {
			return err
		}
		fmt.Fprintf(vertex, "delivered auxiliary %s\n", auxTarget.Path())
	}

	d.logger.Info(fmt.Sprintf("delivered %s to %s", pkg.Name, target.Path()))
	return nil
}
