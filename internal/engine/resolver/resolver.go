// Package resolver implements the environment resolution engine.
package resolver

import (
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/prov/internal/core/domain"
	"go.trai.ch/prov/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver computes dependency closures over a package index.
//
// Resolution is a breadth-first traversal from the requested set. Version
// constraints are matched with semver; when several indexed versions satisfy a
// constraint the highest wins, which keeps output deterministic. Duplicate-name
// requirements that land on different versions fail fast with both versions
// named, never silently coalesced.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// pending is one queued requirement plus the package that introduced it.
type pending struct {
	req        domain.Requirement
	requiredBy string
}

// Resolve returns the transitive closure of the requested packages, sorted by name.
func (r *Resolver) Resolve(index *domain.PackageIndex, requested []domain.Requirement) (domain.ResolvedEnvironment, error) {
	if len(requested) == 0 {
		return domain.ResolvedEnvironment{}, domain.ErrNoPackagesRequested
	}

	queue := make([]pending, 0, len(requested))
	for _, req := range requested {
		queue = append(queue, pending{req: req})
	}

	chosen := make(map[domain.InternedString]domain.PackageMetadata)

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		pkg, err := pick(index, item)
		if err != nil {
			return domain.ResolvedEnvironment{}, err
		}

		if existing, exists := chosen[pkg.Name]; exists {
			if existing.Version == pkg.Version {
				continue
			}
			conflictErr := zerr.With(domain.ErrVersionConflict, "package", pkg.Name.String())
			conflictErr = zerr.With(conflictErr, "version", existing.Version.String())
			conflictErr = zerr.With(conflictErr, "conflicting_version", pkg.Version.String())
			if item.requiredBy != "" {
				conflictErr = zerr.With(conflictErr, "required_by", item.requiredBy)
			}
			return domain.ResolvedEnvironment{}, conflictErr
		}

		chosen[pkg.Name] = pkg
		for _, dep := range pkg.Dependencies {
			queue = append(queue, pending{req: dep, requiredBy: pkg.ID()})
		}
	}

	packages := make([]domain.PackageMetadata, 0, len(chosen))
	for _, pkg := range chosen {
		packages = append(packages, pkg)
	}

	env := domain.NewResolvedEnvironment(packages)
	if err := env.Validate(); err != nil {
		return domain.ResolvedEnvironment{}, err
	}
	return env, nil
}

// pick selects the index entry satisfying the requirement.
func pick(index *domain.PackageIndex, item pending) (domain.PackageMetadata, error) {
	candidates := index.Lookup(item.req.Name)
	if len(candidates) == 0 {
		return domain.PackageMetadata{}, notFound(item, "")
	}

	if item.req.Constraint == "" {
		if len(candidates) > 1 {
			err := zerr.With(domain.ErrVersionAmbiguous, "package", item.req.Name.String())
			return domain.PackageMetadata{}, zerr.With(err, "candidates", versionList(candidates))
		}
		return candidates[0], nil
	}

	constraint, err := semver.NewConstraint(item.req.Constraint)
	if err != nil {
		specErr := zerr.With(domain.ErrInvalidConstraint, "package", item.req.Name.String())
		return domain.PackageMetadata{}, zerr.With(specErr, "constraint", item.req.Constraint)
	}

	var best domain.PackageMetadata
	var bestVersion *semver.Version
	for _, candidate := range candidates {
		version, parseErr := semver.NewVersion(candidate.Version.String())
		if parseErr != nil || !constraint.Check(version) {
			continue
		}
		if bestVersion == nil || version.GreaterThan(bestVersion) {
			best = candidate
			bestVersion = version
		}
	}

	if bestVersion == nil {
		return domain.PackageMetadata{}, notFound(item, versionList(candidates))
	}
	return best, nil
}

func notFound(item pending, available string) error {
	err := zerr.With(domain.ErrPackageNotFound, "package", item.req.Name.String())
	if item.req.Constraint != "" {
		err = zerr.With(err, "constraint", item.req.Constraint)
	}
	if item.requiredBy != "" {
		err = zerr.With(err, "required_by", item.requiredBy)
	}
	if available != "" {
		err = zerr.With(err, "available", available)
	}
	return err
}

func versionList(candidates []domain.PackageMetadata) string {
	list := ""
	for i, candidate := range candidates {
		if i > 0 {
			list += ", "
		}
		list += candidate.Version.String()
	}
	return list
}

var _ ports.EnvironmentResolver = (*Resolver)(nil)
