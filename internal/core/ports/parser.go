package ports

import "go.trai.ch/prov/internal/core/domain"

// SnapshotParser turns a fetched snapshot into a package index.
// Parsing is a pure function of the snapshot: deterministic, no side effects.
//
//go:generate go run go.uber.org/mock/mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type SnapshotParser interface {
	// Parse decodes the snapshot payload into an index.
	// Returns domain.ErrSnapshotParseFailed on malformed content.
	Parse(snapshot domain.Snapshot) (*domain.PackageIndex, error)
}
