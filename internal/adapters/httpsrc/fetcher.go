// Package httpsrc implements the SnapshotFetcher port over HTTP.
package httpsrc

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/prov/internal/core/domain"
	"go.trai.ch/prov/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

// Fetcher implements ports.SnapshotFetcher with a content-addressed cache.
//
// The cache is an injected dependency so tests can substitute an isolated
// temporary store. A cache hit is silent: it is observable only through the
// absence of network I/O. No retries happen here; callers decide retry policy.
type Fetcher struct {
	store      ports.SnapshotStore
	httpClient *http.Client
}

// NewFetcher creates a SnapshotFetcher backed by the given cache.
func NewFetcher(store ports.SnapshotStore) *Fetcher {
	return NewFetcherWithClient(store, &http.Client{Timeout: httpClientTimeout})
}

// NewFetcherWithClient creates a Fetcher with a custom http client.
func NewFetcherWithClient(store ports.SnapshotStore, client *http.Client) *Fetcher {
	return &Fetcher{
		store:      store,
		httpClient: client,
	}
}

// Fetch retrieves the snapshot identified by the locator, consulting the
// cache first. Fetched bytes are verified against the locator's declared pin
// before being promoted to the cache; a mismatch is fatal and never retried.
func (f *Fetcher) Fetch(ctx context.Context, locator domain.SourceLocator) (domain.Snapshot, error) {
	key := locator.Key()

	if data, err := f.store.Get(key); err == nil {
		if err := verifyPin(locator, data); err != nil {
			return domain.Snapshot{}, err
		}
		if vertex, ok := ports.VertexFromContext(ctx); ok {
			vertex.Cached()
		}
		return domain.NewSnapshot(locator, data), nil
	}

	data, err := f.download(ctx, locator)
	if err != nil {
		return domain.Snapshot{}, err
	}

	if err := verifyPin(locator, data); err != nil {
		// Mismatched content is never promoted to the cache.
		return domain.Snapshot{}, err
	}

	if err := f.store.Put(key, data); err != nil {
		// A cache write failure does not invalidate the fetched snapshot.
		return domain.Snapshot{}, zerr.With(err, "locator", locator.String())
	}

	return domain.NewSnapshot(locator, data), nil
}

func (f *Fetcher) download(ctx context.Context, locator domain.SourceLocator) ([]byte, error) {
	url := snapshotURL(locator)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, wrapFetchErr(err, locator)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, wrapFetchErr(err, locator)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrFetchFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "locator", locator.String())
	}

	// A partial body is returned as an error here, before any cache promotion.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapFetchErr(err, locator)
	}

	return body, nil
}

// snapshotURL joins the collection URL and the pinned revision.
func snapshotURL(locator domain.SourceLocator) string {
	return strings.TrimSuffix(locator.URL, "/") + "/" + locator.Revision
}

func verifyPin(locator domain.SourceLocator, data []byte) error {
	if locator.Pin == "" {
		return nil
	}
	digest := domain.ContentDigest(data)
	if digest == locator.Pin {
		return nil
	}
	err := zerr.With(domain.ErrIntegrityMismatch, "locator", locator.String())
	err = zerr.With(err, "declared", locator.Pin)
	return zerr.With(err, "actual", digest)
}

func wrapFetchErr(err error, locator domain.SourceLocator) error {
	sentinel := domain.ErrFetchFailed
	if errors.Is(err, context.DeadlineExceeded) {
		sentinel = domain.ErrFetchTimeout
	}
	wrapped := zerr.With(sentinel, "locator", locator.String())
	return zerr.With(wrapped, "cause", err.Error())
}

var _ ports.SnapshotFetcher = (*Fetcher)(nil)
