package ports

import "go.trai.ch/prov/internal/core/domain"

// EnvironmentResolver computes the dependency closure of a requested package set.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type EnvironmentResolver interface {
	// Resolve looks up the requested packages in the index and returns their
	// transitive closure, sorted by name.
	//
	// Returns domain.ErrPackageNotFound if a requested or transitively required
	// name is absent, and domain.ErrVersionConflict if two different versions of
	// the same name are required. Conflicts fail fast; no version is ever picked
	// silently.
	Resolve(index *domain.PackageIndex, requested []domain.Requirement) (domain.ResolvedEnvironment, error)
}
