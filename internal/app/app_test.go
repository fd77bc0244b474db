package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/courierbuild/courier/internal/adapters/archive"
	"github.com/courierbuild/courier/internal/adapters/fetch"
	"github.com/courierbuild/courier/internal/adapters/fs"
	"github.com/courierbuild/courier/internal/adapters/telemetry"
	"github.com/courierbuild/courier/internal/adapters/template"
	"github.com/courierbuild/courier/internal/app"
	"github.com/courierbuild/courier/internal/core/domain"
	"github.com/courierbuild/courier/internal/core/ports/mocks"
	"github.com/courierbuild/courier/internal/engine/delivery"
)

type silentLogger struct{}

func (silentLogger) Info(string) {}
func (silentLogger) Warn(string) {}
func (silentLogger) Error(error) {}

func newDeliverer() *delivery.Deliverer {
	log := silentLogger{}
	return delivery.NewDeliverer(
		template.NewResolver(),
		fetch.NewFetcher(log),
		archive.NewExtractor(),
		fs.NewLocator(log),
		fs.NewInjector(),
		log,
		telemetry.NewNoOp(),
	)
}

func setBuildEnv(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	outDir := filepath.Join(root, "target", "debug", "build", "script", "out")
	depsDir := filepath.Join(root, "target", "debug", "deps")
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		t.Fatalf("Failed to create out dir: %v", err)
	}
	if err := os.MkdirAll(depsDir, 0o750); err != nil {
		t.Fatalf("Failed to create deps dir: %v", err)
	}

	t.Setenv(domain.EnvTarget, "x86_64-unknown-linux-gnu")
	t.Setenv(domain.EnvProfile, "debug")
	t.Setenv(domain.EnvOutDir, outDir)
	t.Setenv(domain.EnvProjectRoot, root)
	return root
}

func TestApp_Deliver(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := setBuildEnv(t)

	placeholder := filepath.Join(root, "target", "debug", "deps", "libsecretlib-0123abcd.rlib")
	if err := os.WriteFile(placeholder, []byte("placeholder"), 0o644); err != nil {
		t.Fatalf("Failed to create placeholder: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "prebuilt.rlib"), []byte("prebuilt"), 0o644); err != nil {
		t.Fatalf("Failed to create artifact: %v", err)
	}

	manifest := &domain.Manifest{
		Packages: []domain.PackageSpec{{
			Name:   "secretlib",
			Source: "prebuilt.rlib",
			Link:   domain.LinkCopy,
		}},
	}

	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLoader.EXPECT().Load("courier.yaml").Return(manifest, nil)

	a := app.New(mockLoader, newDeliverer(), silentLogger{})
	if err := a.Deliver(context.Background(), "courier.yaml"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	got, err := os.ReadFile(placeholder)
	if err != nil {
		t.Fatalf("Failed to read delivered artifact: %v", err)
	}
	if string(got) != "prebuilt" {
		t.Errorf("Expected placeholder to be replaced, got: %s", got)
	}
}

func TestApp_Deliver_MissingEnv(t *testing.T) {
	ctrl := gomock.NewController(t)
	setBuildEnv(t)
	t.Setenv(domain.EnvTarget, "")

	// The loader must not run when the environment is incomplete.
	mockLoader := mocks.NewMockManifestLoader(ctrl)

	a := app.New(mockLoader, newDeliverer(), silentLogger{})
	err := a.Deliver(context.Background(), "courier.yaml")
	if !errors.Is(err, domain.ErrMissingEnvVariable) {
		t.Errorf("Expected ErrMissingEnvVariable, got: %v", err)
	}
}

func TestApp_Deliver_LoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	setBuildEnv(t)

	loadErr := errors.New("manifest parse error")
	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLoader.EXPECT().Load("courier.yaml").Return(nil, loadErr)

	a := app.New(mockLoader, newDeliverer(), silentLogger{})
	err := a.Deliver(context.Background(), "courier.yaml")
	if !errors.Is(err, loadErr) {
		t.Errorf("Expected the loader error, got: %v", err)
	}
}
