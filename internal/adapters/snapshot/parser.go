// Package snapshot implements the SnapshotParser port for JSON collection documents.
package snapshot

import (
	"encoding/json"

	"go.trai.ch/prov/internal/core/domain"
	"go.trai.ch/prov/internal/core/ports"
	"go.trai.ch/zerr"
)

// Parser implements ports.SnapshotParser.
// Parsing is a pure function of the snapshot payload.
type Parser struct{}

// NewParser creates a new snapshot parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a JSON collection document into a package index.
func (p *Parser) Parse(snap domain.Snapshot) (*domain.PackageIndex, error) {
	var doc collectionDocument
	if err := json.Unmarshal(snap.Data, &doc); err != nil {
		parseErr := zerr.With(domain.ErrSnapshotParseFailed, "locator", snap.Locator.String())
		return nil, zerr.With(parseErr, "cause", err.Error())
	}

	if len(doc.Packages) == 0 {
		return nil, zerr.With(domain.ErrEmptySnapshot, "locator", snap.Locator.String())
	}

	index := domain.NewPackageIndex()
	for _, dto := range doc.Packages {
		pkg, err := dto.toDomain()
		if err != nil {
			return nil, zerr.With(err, "locator", snap.Locator.String())
		}
		if err := index.Add(pkg); err != nil {
			return nil, zerr.With(err, "locator", snap.Locator.String())
		}
	}

	return index, nil
}

func (d packageDTO) toDomain() (domain.PackageMetadata, error) {
	if d.Name == "" || d.Version == "" || d.ContentHash == "" {
		err := zerr.With(domain.ErrSnapshotParseFailed, "package", d.Name)
		return domain.PackageMetadata{}, zerr.With(err, "reason", "missing name, version, or content_hash")
	}

	deps := make([]domain.Requirement, 0, len(d.Dependencies))
	for _, spec := range d.Dependencies {
		req, err := domain.ParseRequirement(spec)
		if err != nil {
			return domain.PackageMetadata{}, zerr.With(err, "package", d.Name)
		}
		deps = append(deps, req)
	}

	return domain.PackageMetadata{
		Name:         domain.NewInternedString(d.Name),
		Version:      domain.NewInternedString(d.Version),
		ContentHash:  d.ContentHash,
		Dependencies: deps,
	}, nil
}

var _ ports.SnapshotParser = (*Parser)(nil)
