// Package template implements {{var}} substitution for source locators.
package template

import (
	"os"
	"strings"

	"github.com/courierbuild/courier/internal/core/domain"
	"github.com/courierbuild/courier/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TemplateResolver = (*Resolver)(nil)

// Resolver expands {{var}} placeholders against an explicit variable map.
// It never substitutes silently: unknown names, malformed placeholders and
// unset environment indirections are all reported.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

const (
	openMarker  = "{{"
	closeMarker = "}}"
)

// Resolve substitutes every placeholder in the template.
func (r *Resolver) Resolve(template string, vars map[string]domain.Substitution) (string, error) {
	var out strings.Builder
	rest := template

	for {
		open := strings.Index(rest, openMarker)
		if open < 0 {
			break
		}

		out.WriteString(rest[:open])
		rest = rest[open+len(openMarker):]

		end := strings.Index(rest, closeMarker)
		if end < 0 {
			return "", zerr.With(zerr.With(domain.ErrMalformedTemplate, "template", template), "reason", "unclosed placeholder")
		}

		name := strings.TrimSpace(rest[:end])
		rest = rest[end+len(closeMarker):]

		if !validName(name) {
			return "", zerr.With(zerr.With(domain.ErrMalformedTemplate, "template", template), "placeholder", name)
		}

		value, err := lookup(name, vars)
		if err != nil {
			return "", zerr.With(err, "template", template)
		}
		out.WriteString(value)
	}

	// A stray close marker means the braces were unbalanced.
	if strings.Contains(rest, closeMarker) {
		return "", zerr.With(zerr.With(domain.ErrMalformedTemplate, "template", template), "reason", "unmatched '}}'")
	}

	out.WriteString(rest)
	return out.String(), nil
}

func lookup(name string, vars map[string]domain.Substitution) (string, error) {
	sub, ok := vars[name]
	if !ok {
		return "", zerr.With(domain.ErrUnknownVariable, "variable", name)
	}
	if !sub.Env {
		return sub.Value, nil
	}

	value, ok := os.LookupEnv(sub.Value)
	if !ok {
		return "", zerr.With(zerr.With(domain.ErrMissingEnvVariable, "variable", sub.Value), "substitution", name)
	}
	return value, nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}
