package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Scheme classifies how a resolved source locator is fetched.
type Scheme string

const (
	// SchemeFile is a local filesystem path.
	SchemeFile Scheme = "file"
	// SchemeHTTP is a plain HTTP URL.
	SchemeHTTP Scheme = "http"
	// SchemeHTTPS is an HTTPS URL.
	SchemeHTTPS Scheme = "https"
)

// Remote reports whether the scheme requires a network fetch.
func (s Scheme) Remote() bool {
	return s == SchemeHTTP || s == SchemeHTTPS
}

// ResolvedLocator is a fully substituted, scheme-classified source locator.
// For SchemeFile, Location is an absolute path; otherwise it is the full URL.
type ResolvedLocator struct {
	Scheme   Scheme
	Location string
}

// ClassifyScheme determines the scheme of a source locator string without
// touching the rest of it. Sources without a scheme marker are local paths.
func ClassifyScheme(source string) (Scheme, error) {
	marker := strings.Index(source, "://")
	if marker < 0 {
		return SchemeFile, nil
	}
	switch scheme := source[:marker]; scheme {
	case "file":
		return SchemeFile, nil
	case "http":
		return SchemeHTTP, nil
	case "https":
		return SchemeHTTPS, nil
	default:
		return "", zerr.With(ErrUnsupportedScheme, "scheme", scheme)
	}
}

// ClassifyLocator classifies a resolved source string and normalizes local
// paths. Relative file paths are interpreted against the project root;
// absolute paths stand alone. The "file://" prefix is stripped before path
// interpretation.
func ClassifyLocator(source, projectRoot string) (ResolvedLocator, error) {
	scheme, err := ClassifyScheme(source)
	if err != nil {
		return ResolvedLocator{}, err
	}
	if scheme != SchemeFile {
		return ResolvedLocator{Scheme: scheme, Location: source}, nil
	}

	path := strings.TrimPrefix(source, "file://")
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectRoot, path)
	}
	return ResolvedLocator{Scheme: SchemeFile, Location: filepath.Clean(path)}, nil
}
