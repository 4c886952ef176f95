package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Requirement represents a dependency edge or a user request before resolution.
// Constraint is empty for unconstrained requirements.
type Requirement struct {
	// Name is the package name (e.g., "flatbuffers").
	Name InternedString

	// Constraint is an optional semver constraint (e.g., "2.0.0", "^2.0", ">=1.2").
	Constraint string
}

// ParseRequirement parses a package spec in "name" or "name@constraint" form.
func ParseRequirement(spec string) (Requirement, error) {
	name, constraint, found := strings.Cut(spec, "@")
	if name == "" || (found && constraint == "") {
		return Requirement{}, zerr.With(ErrInvalidPackageSpec, "spec", spec)
	}
	return Requirement{
		Name:       NewInternedString(name),
		Constraint: constraint,
	}, nil
}

// String returns the requirement in spec form.
func (r Requirement) String() string {
	if r.Constraint == "" {
		return r.Name.String()
	}
	return r.Name.String() + "@" + r.Constraint
}

// PackageMetadata describes one package version in a snapshot.
// Immutable once parsed.
type PackageMetadata struct {
	// Name is the canonical package name.
	Name InternedString

	// Version is the concrete version string (e.g., "2.0.0").
	Version InternedString

	// ContentHash addresses the package content.
	ContentHash string

	// Dependencies are the packages this one requires at runtime.
	Dependencies []Requirement
}

// ID returns the package identity in name@version form.
func (p PackageMetadata) ID() string {
	return p.Name.String() + "@" + p.Version.String()
}
