// Package config provides the delivery manifest loader for courier.
package config

import (
	"os"
	"sort"

	"github.com/courierbuild/courier/internal/core/domain"
	"github.com/courierbuild/courier/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a manifest file from the given path and returns a validated
// domain.Manifest. All configuration errors surface here, before any
// network activity.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest file")
	}

	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest file")
	}

	manifest := &domain.Manifest{
		Substitutions: make(map[string]domain.Substitution, len(file.Substitutions)),
		Packages:      make([]domain.PackageSpec, 0, len(file.Packages)),
	}

	for name, dto := range file.Substitutions {
		manifest.Substitutions[name] = domain.Substitution{Value: dto.value, Env: dto.env}
	}

	for name, dto := range file.Packages {
		spec, err := buildPackage(name, dto)
		if err != nil {
			return nil, err
		}
		manifest.Packages = append(manifest.Packages, spec)
	}

	// YAML maps iterate in random order; keep package order stable.
	sort.Slice(manifest.Packages, func(i, j int) bool {
		return manifest.Packages[i].Name < manifest.Packages[j].Name
	})

	return manifest, nil
}

func buildPackage(name string, dto packageDTO) (domain.PackageSpec, error) {
	if name == "" {
		return domain.PackageSpec{}, zerr.New("package name must not be empty")
	}
	if dto.Source == "" {
		return domain.PackageSpec{}, zerr.With(domain.ErrEmptyPackageSource, "package", name)
	}

	link, err := domain.ParseLinkStrategy(dto.Link)
	if err != nil {
		return domain.PackageSpec{}, zerr.With(err, "package", name)
	}

	// The scheme marker precedes any placeholder, so the raw template is
	// classifiable before substitution.
	scheme, err := domain.ClassifyScheme(dto.Source)
	if err != nil {
		return domain.PackageSpec{}, zerr.With(err, "package", name)
	}

	if scheme.Remote() && link != domain.LinkCopy {
		err := zerr.With(domain.ErrRemoteLinkStrategy, "package", name)
		err = zerr.With(err, "link", string(link))
		return domain.PackageSpec{}, zerr.With(err, "source", dto.Source)
	}

	return domain.PackageSpec{
		Name:    name,
		Source:  dto.Source,
		Version: dto.Version,
		Link:    link,
	}, nil
}
