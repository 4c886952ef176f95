package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ManifestVersion is the current manifest format version.
const ManifestVersion = 1

// ManifestEntry is one materialized package record, consumed by the external
// launcher to construct a process environment.
type ManifestEntry struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	ContentHash string `json:"content_hash"`
	Path        string `json:"path"`
}

// Manifest is the serialized form of a ResolvedEnvironment.
// Read-only once written.
type Manifest struct {
	// Version is the manifest format version, allowing future schema migrations.
	Version int `json:"version"`

	// EnvID identifies the request that produced this manifest.
	EnvID string `json:"env_id"`

	// Checksum guards the entry list against truncation or manual edits.
	Checksum string `json:"checksum"`

	// Entries are ordered by name, matching the resolved environment.
	Entries []ManifestEntry `json:"entries"`
}

// ComputeChecksum returns the xxhash of the entry list in order.
// NUL separators avoid collisions between adjacent fields.
func ComputeChecksum(entries []ManifestEntry) string {
	digest := xxhash.New()
	for _, entry := range entries {
		_, _ = digest.WriteString(entry.Name)
		_, _ = digest.Write([]byte{0})
		_, _ = digest.WriteString(entry.Version)
		_, _ = digest.Write([]byte{0})
		_, _ = digest.WriteString(entry.ContentHash)
		_, _ = digest.Write([]byte{0})
		_, _ = digest.WriteString(entry.Path)
		_, _ = digest.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", digest.Sum64())
}
