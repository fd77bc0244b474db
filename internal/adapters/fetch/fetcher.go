// Package fetch materializes package sources from local paths and HTTP URLs.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/courierbuild/courier/internal/core/domain"
	"github.com/courierbuild/courier/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fetcher = (*Fetcher)(nil)

// maxRedirects bounds redirect chains on remote fetches.
const maxRedirects = 5

// gzipMagic is the two-byte signature of a gzip stream. Archive detection is
// content-based: a URL need not carry an accurate extension.
var gzipMagic = []byte{0x1f, 0x8b}

// Fetcher implements ports.Fetcher for file, http and https locators.
type Fetcher struct {
	client *http.Client
	logger ports.Logger
}

// NewFetcher creates a Fetcher with bounded redirects and transport-level
// timeouts. There is deliberately no whole-request timeout: artifact sizes
// vary and the orchestrator owns any build-level deadline.
func NewFetcher(logger ports.Logger) *Fetcher {
	return &Fetcher{
		logger: logger,
		client: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				IdleConnTimeout:       90 * time.Second,
			},
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
}

// Fetch retrieves the resource behind the locator.
func (f *Fetcher) Fetch(ctx context.Context, locator domain.ResolvedLocator, stagingDir string) (domain.FetchedResource, error) {
	switch locator.Scheme {
	case domain.SchemeFile:
		return f.fetchFile(locator.Location)
	case domain.SchemeHTTP, domain.SchemeHTTPS:
		return f.fetchRemote(ctx, locator.Location, stagingDir)
	default:
		return domain.FetchedResource{}, zerr.With(domain.ErrUnsupportedScheme, "scheme", string(locator.Scheme))
	}
}

func (f *Fetcher) fetchFile(path string) (domain.FetchedResource, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.FetchedResource{}, zerr.With(domain.ErrSourceNotFound, "path", path)
		}
		return domain.FetchedResource{}, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", path)
	}
	if info.IsDir() {
		return domain.FetchedResource{}, zerr.With(zerr.New("source is a directory"), "path", path)
	}

	digest, err := hashFile(path)
	if err != nil {
		return domain.FetchedResource{}, err
	}

	archive, err := hasGzipSignature(path)
	if err != nil {
		return domain.FetchedResource{}, err
	}

	return domain.FetchedResource{Path: path, Digest: digest, Archive: archive}, nil
}

func (f *Fetcher) fetchRemote(ctx context.Context, url, stagingDir string) (domain.FetchedResource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.FetchedResource{}, zerr.With(zerr.Wrap(err, "failed to build request"), "url", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.FetchedResource{}, zerr.With(zerr.Wrap(domain.ErrTransport, err.Error()), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := zerr.With(domain.ErrUnexpectedStatus, "status", resp.Status)
		return domain.FetchedResource{}, zerr.With(err, "url", url)
	}

	// Stream to disk rather than buffering: archives can be large and the
	// extractor reads from a file anyway.
	path := filepath.Join(stagingDir, "download")
	out, err := os.Create(path) //nolint:gosec // stagingDir is owned by this invocation
	if err != nil {
		return domain.FetchedResource{}, zerr.Wrap(err, "failed to create staging file")
	}

	hasher := xxhash.New()
	_, copyErr := io.Copy(io.MultiWriter(out, hasher), resp.Body)
	closeErr := out.Close()
	if copyErr != nil {
		return domain.FetchedResource{}, zerr.With(zerr.Wrap(domain.ErrTransport, copyErr.Error()), "url", url)
	}
	if closeErr != nil {
		return domain.FetchedResource{}, zerr.Wrap(closeErr, "failed to finalize staging file")
	}

	archive, err := hasGzipSignature(path)
	if err != nil {
		return domain.FetchedResource{}, err
	}

	digest := fmt.Sprintf("%016x", hasher.Sum64())
	f.logger.Info(fmt.Sprintf("fetched %s (digest %s)", url, digest))

	return domain.FetchedResource{Path: path, Digest: digest, Archive: archive, Remote: true}, nil
}

// hashFile computes the xxhash of a file's content.
func hashFile(path string) (string, error) {
	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open source"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash source"), "path", path)
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// hasGzipSignature reports whether the file starts with the gzip magic bytes.
func hasGzipSignature(path string) (bool, error) {
	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to open resource"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	header := make([]byte, len(gzipMagic))
	n, err := io.ReadFull(file, header)
	if err != nil {
		// Files shorter than the signature are plain artifacts.
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to read resource header"), "path", path)
	}
	return n == len(gzipMagic) && header[0] == gzipMagic[0] && header[1] == gzipMagic[1], nil
}
