package domain

import "go.trai.ch/zerr"

// PackageIndex maps package names to the versions a set of snapshots provides.
// It is a pure function of its input snapshots: parsing and merging are
// deterministic and never mutate existing entries.
type PackageIndex struct {
	packages map[InternedString][]PackageMetadata
}

// NewPackageIndex creates a new empty PackageIndex.
func NewPackageIndex() *PackageIndex {
	return &PackageIndex{
		packages: make(map[InternedString][]PackageMetadata),
	}
}

// Add inserts a package version into the index.
// Re-adding an identical name@version with the same content hash is a no-op,
// so merging overlapping snapshots stays idempotent. The same name@version
// with a different content hash is a conflict.
func (i *PackageIndex) Add(pkg PackageMetadata) error {
	for _, existing := range i.packages[pkg.Name] {
		if existing.Version != pkg.Version {
			continue
		}
		if existing.ContentHash == pkg.ContentHash {
			return nil
		}
		err := zerr.With(ErrVersionConflict, "package", pkg.Name.String())
		err = zerr.With(err, "version", pkg.Version.String())
		err = zerr.With(err, "content_hash", existing.ContentHash)
		return zerr.With(err, "conflicting_content_hash", pkg.ContentHash)
	}
	i.packages[pkg.Name] = append(i.packages[pkg.Name], pkg)
	return nil
}

// Lookup returns all indexed versions of the named package.
// The returned slice is empty when the name is absent.
func (i *PackageIndex) Lookup(name InternedString) []PackageMetadata {
	return i.packages[name]
}

// Merge adds every entry of other into this index.
func (i *PackageIndex) Merge(other *PackageIndex) error {
	for _, versions := range other.packages {
		for _, pkg := range versions {
			if err := i.Add(pkg); err != nil {
				return err
			}
		}
	}
	return nil
}

// Len returns the number of distinct package names in the index.
func (i *PackageIndex) Len() int {
	return len(i.packages)
}
