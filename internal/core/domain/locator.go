// Package domain contains the core domain models for environment provisioning.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// SourceLocator identifies exactly one immutable snapshot of a package collection.
// The same locator always yields byte-identical snapshot content.
type SourceLocator struct {
	// URL is the base address of the package collection.
	URL string

	// Revision pins the exact state of the collection.
	Revision string

	// Pin is an optional hex-encoded sha256 of the snapshot payload, declared
	// by the descriptor. When set, fetched bytes must match it.
	Pin string
}

// Key returns a deterministic cache key for the locator: sha256 of "url@revision".
func (l SourceLocator) Key() string {
	hash := sha256.Sum256([]byte(l.URL + "@" + l.Revision))
	return hex.EncodeToString(hash[:])
}

// String returns the locator in url@revision form for error metadata.
func (l SourceLocator) String() string {
	return l.URL + "@" + l.Revision
}

// Snapshot is an immutable fetched copy of a package collection at a pinned
// revision. Digest is the sha256 of Data, computed after fetch.
type Snapshot struct {
	Locator SourceLocator
	Digest  string
	Data    []byte
}

// NewSnapshot creates a Snapshot for the given locator, computing its digest.
func NewSnapshot(locator SourceLocator, data []byte) Snapshot {
	return Snapshot{
		Locator: locator,
		Digest:  ContentDigest(data),
		Data:    data,
	}
}

// ContentDigest returns the hex-encoded sha256 of the given bytes.
func ContentDigest(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
