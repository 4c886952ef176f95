// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/prov/internal/core/domain"
)

// SnapshotFetcher retrieves immutable snapshots of package collections.
//
// Implementations cache fetched snapshots keyed by locator: a second Fetch of
// the same locator returns the cached copy without network I/O. No retries are
// performed internally; callers decide retry policy.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type SnapshotFetcher interface {
	// Fetch retrieves the snapshot identified by the locator.
	//
	// Returns domain.ErrFetchFailed on transport failure, domain.ErrFetchTimeout
	// when the context deadline expires, and domain.ErrIntegrityMismatch when the
	// payload does not match the locator's declared pin.
	Fetch(ctx context.Context, locator domain.SourceLocator) (domain.Snapshot, error)
}
