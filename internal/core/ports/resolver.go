// Package ports defines the core interfaces for the application.
package ports

import "github.com/courierbuild/courier/internal/core/domain"

// TemplateResolver expands {{var}} placeholders in source locator templates.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type TemplateResolver interface {
	// Resolve substitutes every placeholder in the template using the given
	// variable bindings. Environment-backed bindings are read at resolution
	// time. Referencing an undeclared variable is an error, never an empty
	// substitution.
	Resolve(template string, vars map[string]domain.Substitution) (string, error)
}
