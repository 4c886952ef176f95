package ports

import "go.trai.ch/prov/internal/core/domain"

// ManifestWriter persists resolved environments for the external launcher.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_writer.go -destination=mocks/mock_manifest_writer.go -package=mocks
type ManifestWriter interface {
	// Write serializes the environment to the destination path.
	// The commit is atomic: either the full manifest is visible or nothing is.
	// Returns domain.ErrManifestWriteFailed on destination unavailability.
	Write(env domain.ResolvedEnvironment, envID, destination string) (*domain.Manifest, error)

	// Read loads a previously written manifest and verifies its checksum.
	Read(path string) (*domain.Manifest, error)
}
