package domain

import "path/filepath"

const (
	// ProvDirName is the name of the internal workspace directory.
	ProvDirName = ".prov"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// SnapshotDirName is the name of the snapshot cache directory.
	SnapshotDirName = "snapshots"

	// StoreDirName is the name of the package store directory referenced by manifests.
	StoreDirName = "store"

	// DescriptorFileName is the name of the project descriptor file.
	DescriptorFileName = "prov.yaml"

	// ManifestFileName is the default name of the materialized environment manifest.
	ManifestFileName = "prov.manifest.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultSnapshotCachePath returns the default path for the snapshot cache.
// It joins .prov, cache, and snapshots.
func DefaultSnapshotCachePath() string {
	return filepath.Join(ProvDirName, CacheDirName, SnapshotDirName)
}

// DefaultStorePath returns the default root for materialized package paths.
// It joins .prov and store.
func DefaultStorePath() string {
	return filepath.Join(ProvDirName, StoreDirName)
}

// DefaultManifestPath returns the default destination for the environment manifest.
// It joins .prov and prov.manifest.json.
func DefaultManifestPath() string {
	return filepath.Join(ProvDirName, ManifestFileName)
}
