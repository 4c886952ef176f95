package ports

import "go.trai.ch/prov/internal/core/domain"

// ConfigLoader loads and validates the provisioning descriptor.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the descriptor from the given working directory.
	Load(cwd string) (*domain.Descriptor, error)
}
