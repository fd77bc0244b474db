package domain

import (
	"os"

	"go.trai.ch/zerr"
)

// Environment variable names supplied by the build orchestrator when it
// invokes the build script.
const (
	EnvTarget      = "TARGET"
	EnvProfile     = "PROFILE"
	EnvOutDir      = "OUT_DIR"
	EnvProjectRoot = "CARGO_MANIFEST_DIR"
	EnvToolchain   = "COURIER_TOOLCHAIN"
)

// BuildEnv is the build context for one invocation: target triple, build
// profile, toolchain identifier and the orchestrator's directories. It is
// passed explicitly into every component so synthetic environments can be
// used in tests.
type BuildEnv struct {
	// Target is the target-triple identifier, e.g. "x86_64-unknown-linux-gnu".
	Target string

	// Profile is the build profile, e.g. "debug" or "release".
	Profile string

	// Toolchain is the compiler's short version identifier. Optional: when
	// empty, source templates cannot reference the "toolchain" variable.
	Toolchain string

	// ProjectRoot anchors relative file sources.
	ProjectRoot string

	// OutDir is the per-package build output directory from which the shared
	// dependency artifact directory is derived.
	OutDir string
}

// BuildEnvFromOS reads the build context from the process environment.
// Target, profile, output directory and project root are required.
func BuildEnvFromOS() (BuildEnv, error) {
	env := BuildEnv{Toolchain: os.Getenv(EnvToolchain)}

	for _, v := range []struct {
		name string
		dst  *string
	}{
		{EnvTarget, &env.Target},
		{EnvProfile, &env.Profile},
		{EnvOutDir, &env.OutDir},
		{EnvProjectRoot, &env.ProjectRoot},
	} {
		val, ok := os.LookupEnv(v.name)
		if !ok || val == "" {
			return BuildEnv{}, zerr.With(ErrMissingEnvVariable, "variable", v.name)
		}
		*v.dst = val
	}

	return env, nil
}
