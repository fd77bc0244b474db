package config

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// manifestFile represents the structure of the courier.yaml manifest.
type manifestFile struct {
	Substitutions map[string]substitutionDTO `yaml:"substitutions"`
	Packages      map[string]packageDTO      `yaml:"packages"`
}

// packageDTO represents a package entry in the manifest.
type packageDTO struct {
	Source  string `yaml:"source"`
	Version string `yaml:"version"`
	Link    string `yaml:"link"`
}

// substitutionDTO accepts either a plain scalar (a literal value) or a
// mapping with an "env" key (an environment variable indirection).
type substitutionDTO struct {
	value string
	env   bool
}

func (s *substitutionDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.value = node.Value
		return nil
	case yaml.MappingNode:
		var indirection struct {
			Env string `yaml:"env"`
		}
		if err := node.Decode(&indirection); err != nil {
			return zerr.Wrap(err, "invalid substitution entry")
		}
		if indirection.Env == "" {
			return zerr.New("substitution mapping requires a non-empty 'env' key")
		}
		s.value = indirection.Env
		s.env = true
		return nil
	default:
		return zerr.New("substitution must be a string or an 'env' mapping")
	}
}
