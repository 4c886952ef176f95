// Package manifest implements the ManifestWriter port with atomic JSON commits.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/prov/internal/core/domain"
	"go.trai.ch/prov/internal/core/ports"
	"go.trai.ch/zerr"
)

// Writer implements ports.ManifestWriter.
//
// Manifests are committed with a temp-file-and-rename so a reader never
// observes a partial manifest: either the full file is there or nothing is.
type Writer struct {
	storeRoot string
}

// NewWriter creates a ManifestWriter resolving entry paths under the default store root.
func NewWriter() *Writer {
	return NewWriterWithStore(domain.DefaultStorePath())
}

// NewWriterWithStore creates a Writer resolving entry paths under the given root.
func NewWriterWithStore(storeRoot string) *Writer {
	return &Writer{storeRoot: filepath.Clean(storeRoot)}
}

// Write serializes the environment to the destination path.
func (w *Writer) Write(env domain.ResolvedEnvironment, envID, destination string) (*domain.Manifest, error) {
	entries := make([]domain.ManifestEntry, 0, len(env.Packages))
	for _, pkg := range env.Packages {
		entries = append(entries, domain.ManifestEntry{
			Name:        pkg.Name.String(),
			Version:     pkg.Version.String(),
			ContentHash: pkg.ContentHash,
			Path:        w.entryPath(pkg),
		})
	}

	m := &domain.Manifest{
		Version:  domain.ManifestVersion,
		EnvID:    envID,
		Checksum: domain.ComputeChecksum(entries),
		Entries:  entries,
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, wrapWriteErr(err, destination)
	}
	data = append(data, '\n')

	if err := atomicWrite(destination, data); err != nil {
		return nil, wrapWriteErr(err, destination)
	}

	return m, nil
}

// Read loads a previously written manifest and verifies its checksum.
func (w *Writer) Read(path string) (*domain.Manifest, error) {
	//nolint:gosec // Path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		readErr := zerr.With(domain.ErrManifestReadFailed, "path", path)
		return nil, zerr.With(readErr, "cause", err.Error())
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		readErr := zerr.With(domain.ErrManifestReadFailed, "path", path)
		return nil, zerr.With(readErr, "cause", err.Error())
	}

	if checksum := domain.ComputeChecksum(m.Entries); checksum != m.Checksum {
		sumErr := zerr.With(domain.ErrManifestChecksumMismatch, "path", path)
		sumErr = zerr.With(sumErr, "declared", m.Checksum)
		return nil, zerr.With(sumErr, "actual", checksum)
	}

	return &m, nil
}

// entryPath resolves the filesystem path the launcher should use for a package.
func (w *Writer) entryPath(pkg domain.PackageMetadata) string {
	return filepath.Join(w.storeRoot, pkg.ContentHash+"-"+pkg.Name.String()+"-"+pkg.Version.String())
}

func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "manifest-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

func wrapWriteErr(err error, destination string) error {
	writeErr := zerr.With(domain.ErrManifestWriteFailed, "path", destination)
	return zerr.With(writeErr, "cause", err.Error())
}

var _ ports.ManifestWriter = (*Writer)(nil)
