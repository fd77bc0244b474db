// Package domain contains the core types for package delivery.
package domain

import (
	"go.trai.ch/zerr"
)

// LinkStrategy selects how a delivered artifact is placed at its target path.
type LinkStrategy string

const (
	// LinkCopy replaces the target with a copy of the artifact bytes.
	LinkCopy LinkStrategy = "copy"
	// LinkHard replaces the target with a hard link to the artifact.
	LinkHard LinkStrategy = "hard"
	// LinkSymbolic replaces the target with a symbolic link to the artifact.
	LinkSymbolic LinkStrategy = "symbolic"
)

// ParseLinkStrategy parses a strategy name from the manifest. The empty
// string defaults to LinkCopy.
func ParseLinkStrategy(s string) (LinkStrategy, error) {
	switch s {
	case "", string(LinkCopy):
		return LinkCopy, nil
	case string(LinkHard):
		return LinkHard, nil
	case string(LinkSymbolic):
		return LinkSymbolic, nil
	default:
		return "", zerr.With(ErrInvalidLinkStrategy, "value", s)
	}
}

// Substitution is a single template variable binding. A literal binding
// carries its value directly; an environment binding names a variable that is
// read at resolution time.
type Substitution struct {
	// Value is the literal value, or the environment variable name when Env
	// is true.
	Value string

	// Env marks Value as an environment variable indirection.
	Env bool
}

// PackageSpec describes one dependency whose compiled placeholder is to be
// replaced with a pre-built artifact.
type PackageSpec struct {
	// Name is the dependency name as known to the build graph.
	Name string

	// Source is the locator template, pre-substitution.
	Source string

	// Version is the declared dependency version, if any. It is exposed to
	// the source template as the built-in "version" variable.
	Version string

	// Link is the placement strategy for the primary artifact.
	Link LinkStrategy
}

// Manifest is the parsed delivery configuration: the set of packages to
// deliver plus user-declared substitution variables.
type Manifest struct {
	// Packages is ordered by name for deterministic iteration.
	Packages []PackageSpec

	// Substitutions are user-declared variables. They override built-ins of
	// the same name wholesale.
	Substitutions map[string]Substitution
}

// MergedSubstitutions seeds the built-in variables from the build environment
// and the package spec, then applies user declarations on top. A user
// variable with a built-in's name replaces it entirely.
func MergedSubstitutions(env BuildEnv, spec PackageSpec, user map[string]Substitution) map[string]Substitution {
	vars := map[string]Substitution{
		"target":  {Value: env.Target},
		"profile": {Value: env.Profile},
	}
	if env.Toolchain != "" {
		vars["toolchain"] = Substitution{Value: env.Toolchain}
	}
	if spec.Version != "" {
		vars["version"] = Substitution{Value: spec.Version}
	}
	for name, sub := range user {
		vars[name] = sub
	}
	return vars
}
