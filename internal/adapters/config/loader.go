// Package config provides the descriptor loader for prov.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/prov/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML descriptor file.
type Loader struct {
	// Filename is the descriptor file name looked up in the working directory.
	Filename string
}

// NewLoader creates a Loader for the default descriptor file name.
func NewLoader() *Loader {
	return &Loader{Filename: domain.DescriptorFileName}
}

// Load reads the descriptor from the given working directory.
func (l *Loader) Load(cwd string) (*domain.Descriptor, error) {
	path := filepath.Join(cwd, l.Filename)
	return Load(path)
}

// Load reads a descriptor file from the given path.
func Load(path string) (*domain.Descriptor, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		readErr := zerr.With(domain.ErrConfigReadFailed, "path", path)
		return nil, zerr.With(readErr, "cause", err.Error())
	}

	var provfile Provfile
	if err := yaml.Unmarshal(data, &provfile); err != nil {
		parseErr := zerr.With(domain.ErrConfigParseFailed, "path", path)
		return nil, zerr.With(parseErr, "cause", err.Error())
	}

	return toDomain(&provfile)
}

// toDomain converts the DTO to a validated descriptor.
func toDomain(provfile *Provfile) (*domain.Descriptor, error) {
	if len(provfile.Sources) == 0 {
		return nil, domain.ErrNoSources
	}
	if len(provfile.Packages) == 0 {
		return nil, domain.ErrNoPackagesRequested
	}

	seen := make(map[string]bool, len(provfile.Sources))
	sources := make([]domain.SourceLocator, 0, len(provfile.Sources))
	for _, dto := range provfile.Sources {
		if dto.URL == "" || dto.Revision == "" {
			parseErr := zerr.With(domain.ErrConfigParseFailed, "url", dto.URL)
			return nil, zerr.With(parseErr, "reason", "source requires url and revision")
		}
		locator := domain.SourceLocator{URL: dto.URL, Revision: dto.Revision, Pin: dto.SHA256}
		if seen[locator.Key()] {
			return nil, zerr.With(domain.ErrDuplicateSource, "source", locator.String())
		}
		seen[locator.Key()] = true
		sources = append(sources, locator)
	}

	requested := make([]domain.Requirement, 0, len(provfile.Packages))
	for _, spec := range provfile.Packages {
		req, err := domain.ParseRequirement(spec)
		if err != nil {
			return nil, err
		}
		requested = append(requested, req)
	}

	timeout := domain.DefaultFetchTimeout
	if provfile.Timeout != "" {
		parsed, err := time.ParseDuration(provfile.Timeout)
		if err != nil {
			parseErr := zerr.With(domain.ErrConfigParseFailed, "timeout", provfile.Timeout)
			return nil, zerr.With(parseErr, "cause", err.Error())
		}
		timeout = parsed
	}

	return &domain.Descriptor{
		Sources:     sources,
		Requested:   requested,
		Concurrency: provfile.Concurrency,
		Timeout:     timeout,
	}, nil
}
