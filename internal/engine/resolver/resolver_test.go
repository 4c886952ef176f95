package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prov/internal/core/domain"
	"go.trai.ch/prov/internal/engine/resolver"
)

func pkg(name, version string, deps ...string) domain.PackageMetadata {
	requirements := make([]domain.Requirement, 0, len(deps))
	for _, spec := range deps {
		req, err := domain.ParseRequirement(spec)
		if err != nil {
			panic(err)
		}
		requirements = append(requirements, req)
	}
	return domain.PackageMetadata{
		Name:         domain.NewInternedString(name),
		Version:      domain.NewInternedString(version),
		ContentHash:  name + "-" + version,
		Dependencies: requirements,
	}
}

func indexOf(t *testing.T, packages ...domain.PackageMetadata) *domain.PackageIndex {
	t.Helper()
	index := domain.NewPackageIndex()
	for _, p := range packages {
		require.NoError(t, index.Add(p))
	}
	return index
}

func requested(t *testing.T, specs ...string) []domain.Requirement {
	t.Helper()
	requirements := make([]domain.Requirement, 0, len(specs))
	for _, spec := range specs {
		req, err := domain.ParseRequirement(spec)
		require.NoError(t, err)
		requirements = append(requirements, req)
	}
	return requirements
}

func names(env domain.ResolvedEnvironment) []string {
	out := make([]string, 0, len(env.Packages))
	for _, p := range env.Packages {
		out = append(out, p.Name.String())
	}
	return out
}

func TestResolver_Resolve_SinglePackage(t *testing.T) {
	index := indexOf(t, pkg("flatbuffers", "2.0.0"))

	env, err := resolver.NewResolver().Resolve(index, requested(t, "flatbuffers@2.0.0"))
	require.NoError(t, err)
	require.Len(t, env.Packages, 1)
	assert.Equal(t, "flatbuffers", env.Packages[0].Name.String())
	assert.Equal(t, "2.0.0", env.Packages[0].Version.String())
}

func TestResolver_Resolve_TransitiveClosure(t *testing.T) {
	index := indexOf(t,
		pkg("app", "1.0.0", "lib@1.0.0"),
		pkg("lib", "1.0.0", "zlib@1.3.0"),
		pkg("zlib", "1.3.0"),
	)

	env, err := resolver.NewResolver().Resolve(index, requested(t, "app@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, []string{"app", "lib", "zlib"}, names(env))
}

func TestResolver_Resolve_SharedDependency(t *testing.T) {
	index := indexOf(t,
		pkg("a", "1.0.0", "zlib@1.3.0"),
		pkg("b", "1.0.0", "zlib@1.3.0"),
		pkg("zlib", "1.3.0"),
	)

	env, err := resolver.NewResolver().Resolve(index, requested(t, "a@1.0.0", "b@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "zlib"}, names(env))
}

func TestResolver_Resolve_HighestSatisfyingVersion(t *testing.T) {
	index := indexOf(t,
		pkg("zlib", "1.2.13"),
		pkg("zlib", "1.3.0"),
		pkg("zlib", "2.0.0"),
	)

	env, err := resolver.NewResolver().Resolve(index, requested(t, "zlib@^1.2"))
	require.NoError(t, err)
	require.Len(t, env.Packages, 1)
	assert.Equal(t, "1.3.0", env.Packages[0].Version.String())
}

func TestResolver_Resolve_UnconstrainedSingleCandidate(t *testing.T) {
	index := indexOf(t, pkg("flatbuffers", "2.0.0"))

	env, err := resolver.NewResolver().Resolve(index, requested(t, "flatbuffers"))
	require.NoError(t, err)
	require.Len(t, env.Packages, 1)
	assert.Equal(t, "2.0.0", env.Packages[0].Version.String())
}

func TestResolver_Resolve_UnconstrainedAmbiguous(t *testing.T) {
	index := indexOf(t,
		pkg("zlib", "1.2.13"),
		pkg("zlib", "1.3.0"),
	)

	_, err := resolver.NewResolver().Resolve(index, requested(t, "zlib"))
	assert.ErrorIs(t, err, domain.ErrVersionAmbiguous)
}

func TestResolver_Resolve_NotFound(t *testing.T) {
	index := indexOf(t, pkg("flatbuffers", "2.0.0"))

	_, err := resolver.NewResolver().Resolve(index, requested(t, "missing@1.0.0"))
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestResolver_Resolve_NoSatisfyingVersion(t *testing.T) {
	index := indexOf(t, pkg("zlib", "1.3.0"))

	_, err := resolver.NewResolver().Resolve(index, requested(t, "zlib@^2.0"))
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestResolver_Resolve_TransitiveNotFound(t *testing.T) {
	index := indexOf(t, pkg("app", "1.0.0", "ghost@1.0.0"))

	_, err := resolver.NewResolver().Resolve(index, requested(t, "app@1.0.0"))
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestResolver_Resolve_VersionConflict(t *testing.T) {
	index := indexOf(t,
		pkg("a", "1.0.0", "zlib@1.2.13"),
		pkg("b", "1.0.0", "zlib@1.3.0"),
		pkg("zlib", "1.2.13"),
		pkg("zlib", "1.3.0"),
	)

	_, err := resolver.NewResolver().Resolve(index, requested(t, "a@1.0.0", "b@1.0.0"))
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestResolver_Resolve_InvalidConstraint(t *testing.T) {
	index := indexOf(t, pkg("zlib", "1.3.0"))

	_, err := resolver.NewResolver().Resolve(index, requested(t, "zlib@not-a-constraint"))
	assert.ErrorIs(t, err, domain.ErrInvalidConstraint)
}

func TestResolver_Resolve_EmptyRequest(t *testing.T) {
	_, err := resolver.NewResolver().Resolve(domain.NewPackageIndex(), nil)
	assert.ErrorIs(t, err, domain.ErrNoPackagesRequested)
}

func TestResolver_Resolve_Deterministic(t *testing.T) {
	index := indexOf(t,
		pkg("a", "1.0.0", "c@1.0.0"),
		pkg("b", "1.0.0", "c@1.0.0"),
		pkg("c", "1.0.0"),
	)

	first, err := resolver.NewResolver().Resolve(index, requested(t, "b@1.0.0", "a@1.0.0"))
	require.NoError(t, err)
	second, err := resolver.NewResolver().Resolve(index, requested(t, "a@1.0.0", "b@1.0.0"))
	require.NoError(t, err)

	assert.Equal(t, names(first), names(second))
}
