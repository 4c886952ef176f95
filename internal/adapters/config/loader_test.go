package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prov/internal/adapters/config"
	"go.trai.ch/prov/internal/core/domain"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, domain.DescriptorFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestLoader_Load(t *testing.T) {
	dir := writeDescriptor(t, `
version: "1"
sources:
  - url: https://pkgs.example.com/stable
    revision: 8f1c2d3
    sha256: abc
packages:
  - flatbuffers@^2.0
  - zlib
concurrency: 4
timeout: 10s
`)

	descriptor, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	require.Len(t, descriptor.Sources, 1)
	assert.Equal(t, "https://pkgs.example.com/stable", descriptor.Sources[0].URL)
	assert.Equal(t, "8f1c2d3", descriptor.Sources[0].Revision)
	assert.Equal(t, "abc", descriptor.Sources[0].Pin)

	require.Len(t, descriptor.Requested, 2)
	assert.Equal(t, "flatbuffers", descriptor.Requested[0].Name.String())
	assert.Equal(t, "^2.0", descriptor.Requested[0].Constraint)
	assert.Equal(t, "zlib", descriptor.Requested[1].Name.String())
	assert.Empty(t, descriptor.Requested[1].Constraint)

	assert.Equal(t, 4, descriptor.Concurrency)
	assert.Equal(t, 10*time.Second, descriptor.Timeout)
}

func TestLoader_Load_Defaults(t *testing.T) {
	dir := writeDescriptor(t, `
sources:
  - url: https://pkgs.example.com/stable
    revision: 8f1c2d3
packages:
  - zlib@1.3.0
`)

	descriptor, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.Zero(t, descriptor.Concurrency)
	assert.Equal(t, domain.DefaultFetchTimeout, descriptor.Timeout)
	assert.Empty(t, descriptor.Sources[0].Pin)
}

func TestLoader_Load_NotFound(t *testing.T) {
	_, err := config.NewLoader().Load(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoader_Load_Malformed(t *testing.T) {
	dir := writeDescriptor(t, "sources: [\n")

	_, err := config.NewLoader().Load(dir)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoader_Load_NoSources(t *testing.T) {
	dir := writeDescriptor(t, `
packages:
  - zlib@1.3.0
`)

	_, err := config.NewLoader().Load(dir)
	assert.ErrorIs(t, err, domain.ErrNoSources)
}

func TestLoader_Load_NoPackages(t *testing.T) {
	dir := writeDescriptor(t, `
sources:
  - url: https://pkgs.example.com/stable
    revision: 8f1c2d3
`)

	_, err := config.NewLoader().Load(dir)
	assert.ErrorIs(t, err, domain.ErrNoPackagesRequested)
}

func TestLoader_Load_SourceMissingRevision(t *testing.T) {
	dir := writeDescriptor(t, `
sources:
  - url: https://pkgs.example.com/stable
packages:
  - zlib@1.3.0
`)

	_, err := config.NewLoader().Load(dir)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoader_Load_DuplicateSource(t *testing.T) {
	dir := writeDescriptor(t, `
sources:
  - url: https://pkgs.example.com/stable
    revision: 8f1c2d3
  - url: https://pkgs.example.com/stable
    revision: 8f1c2d3
packages:
  - zlib@1.3.0
`)

	_, err := config.NewLoader().Load(dir)
	assert.ErrorIs(t, err, domain.ErrDuplicateSource)
}

func TestLoader_Load_BadPackageSpec(t *testing.T) {
	dir := writeDescriptor(t, `
sources:
  - url: https://pkgs.example.com/stable
    revision: 8f1c2d3
packages:
  - "@^1.2"
`)

	_, err := config.NewLoader().Load(dir)
	assert.ErrorIs(t, err, domain.ErrInvalidPackageSpec)
}

func TestLoader_Load_BadTimeout(t *testing.T) {
	dir := writeDescriptor(t, `
sources:
  - url: https://pkgs.example.com/stable
    revision: 8f1c2d3
packages:
  - zlib@1.3.0
timeout: soon
`)

	_, err := config.NewLoader().Load(dir)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}
