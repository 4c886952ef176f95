package ports

// SnapshotStore is a content-addressed cache for fetched snapshots.
//
// The store is append-only and keyed by content: writers of identical content
// never conflict, so it is safe to share across concurrent invocations. It is
// an explicit, injected dependency of the fetcher, never a hidden singleton.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get returns the cached bytes for the key.
	// Returns domain.ErrCacheMiss when the key is absent.
	Get(key string) ([]byte, error)

	// Put stores the bytes under the key. Overwriting identical content is
	// idempotent; partial writes are never visible to readers.
	Put(key string, data []byte) error

	// Clear removes every cache entry.
	Clear() error
}
