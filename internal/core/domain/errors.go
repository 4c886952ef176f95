package domain

import "go.trai.ch/zerr"

var (
	// ErrFetchFailed is returned when a snapshot cannot be retrieved from its source.
	ErrFetchFailed = zerr.New("failed to fetch snapshot")

	// ErrFetchTimeout is returned when a snapshot fetch exceeds its deadline.
	ErrFetchTimeout = zerr.New("snapshot fetch timed out")

	// ErrIntegrityMismatch is returned when fetched bytes do not match the declared pin.
	// This is always fatal and never retried: accepting mismatched content would break
	// the reproducibility contract.
	ErrIntegrityMismatch = zerr.New("snapshot content does not match declared hash")

	// ErrSnapshotParseFailed is returned when a snapshot payload cannot be decoded.
	ErrSnapshotParseFailed = zerr.New("failed to parse snapshot")

	// ErrEmptySnapshot is returned when a snapshot declares no packages.
	ErrEmptySnapshot = zerr.New("snapshot contains no packages")

	// ErrPackageNotFound is returned when a requested or transitively required
	// package is absent from the index.
	ErrPackageNotFound = zerr.New("package not found in index")

	// ErrVersionConflict is returned when the closure requires two different
	// versions of the same package.
	ErrVersionConflict = zerr.New("conflicting package versions required")

	// ErrVersionAmbiguous is returned when an unconstrained request matches more
	// than one indexed version.
	ErrVersionAmbiguous = zerr.New("multiple versions match, constraint required")

	// ErrInvalidConstraint is returned when a version constraint cannot be parsed.
	ErrInvalidConstraint = zerr.New("invalid version constraint")

	// ErrInvalidPackageSpec is returned when a package spec is malformed.
	ErrInvalidPackageSpec = zerr.New("invalid package spec, expected name or name@constraint")

	// ErrNoPackagesRequested is returned when the descriptor requests nothing.
	ErrNoPackagesRequested = zerr.New("no packages requested")

	// ErrNoSources is returned when the descriptor declares no sources.
	ErrNoSources = zerr.New("no snapshot sources declared")

	// ErrDuplicateSource is returned when two descriptor sources share a locator.
	ErrDuplicateSource = zerr.New("duplicate snapshot source")

	// ErrManifestWriteFailed is returned when the environment manifest cannot be committed.
	ErrManifestWriteFailed = zerr.New("failed to write environment manifest")

	// ErrManifestReadFailed is returned when an environment manifest cannot be read back.
	ErrManifestReadFailed = zerr.New("failed to read environment manifest")

	// ErrManifestChecksumMismatch is returned when a manifest fails its checksum on read.
	ErrManifestChecksumMismatch = zerr.New("manifest checksum mismatch")

	// ErrCacheCreateFailed is returned when the snapshot cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create snapshot cache directory")

	// ErrCacheReadFailed is returned when reading from the snapshot cache fails.
	ErrCacheReadFailed = zerr.New("failed to read from snapshot cache")

	// ErrCacheWriteFailed is returned when writing to the snapshot cache fails.
	ErrCacheWriteFailed = zerr.New("failed to write to snapshot cache")

	// ErrCacheMiss is returned when a locator has no cached snapshot.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrConfigReadFailed is returned when the descriptor file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read descriptor file")

	// ErrConfigParseFailed is returned when the descriptor file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse descriptor file")

	// ErrConfigNotFound is returned when no descriptor file can be found.
	ErrConfigNotFound = zerr.New("could not find prov.yaml")
)
