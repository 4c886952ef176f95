package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// ResolvedEnvironment is an ordered, dependency-closed, conflict-free set of
// packages. Entries are sorted by name so repeated resolutions of the same
// request produce identical output.
type ResolvedEnvironment struct {
	Packages []PackageMetadata
}

// NewResolvedEnvironment sorts the given packages by name and returns the
// environment. Validation is a separate step.
func NewResolvedEnvironment(packages []PackageMetadata) ResolvedEnvironment {
	sorted := make([]PackageMetadata, len(packages))
	copy(sorted, packages)
	slices.SortFunc(sorted, func(a, b PackageMetadata) int {
		return strings.Compare(a.Name.String(), b.Name.String())
	})
	return ResolvedEnvironment{Packages: sorted}
}

// Validate checks the environment invariants: no two entries share a name,
// and every dependency named by any entry is present in the set.
func (e ResolvedEnvironment) Validate() error {
	byName := make(map[InternedString]PackageMetadata, len(e.Packages))
	for _, pkg := range e.Packages {
		if existing, exists := byName[pkg.Name]; exists {
			err := zerr.With(ErrVersionConflict, "package", pkg.Name.String())
			err = zerr.With(err, "version", existing.Version.String())
			return zerr.With(err, "conflicting_version", pkg.Version.String())
		}
		byName[pkg.Name] = pkg
	}

	for _, pkg := range e.Packages {
		for _, dep := range pkg.Dependencies {
			if _, exists := byName[dep.Name]; !exists {
				err := zerr.With(ErrPackageNotFound, "package", dep.Name.String())
				return zerr.With(err, "required_by", pkg.ID())
			}
		}
	}

	return nil
}

// Lookup returns the entry with the given name, if present.
func (e ResolvedEnvironment) Lookup(name InternedString) (PackageMetadata, bool) {
	for _, pkg := range e.Packages {
		if pkg.Name == name {
			return pkg, true
		}
	}
	return PackageMetadata{}, false
}
