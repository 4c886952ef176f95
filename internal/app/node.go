package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prov/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/prov/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/prov/internal/adapters/httpsrc"            //nolint:depguard // Wired in app layer
	"go.trai.ch/prov/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/prov/internal/adapters/manifest"           //nolint:depguard // Wired in app layer
	"go.trai.ch/prov/internal/adapters/snapshot"           //nolint:depguard // Wired in app layer
	"go.trai.ch/prov/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/prov/internal/core/ports"
	"go.trai.ch/prov/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			httpsrc.NodeID,
			snapshot.NodeID,
			resolver.NodeID,
			manifest.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			cas.NodeID,
			manifest.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[ports.SnapshotFetcher](ctx)
	if err != nil {
		return nil, err
	}

	parser, err := graft.Dep[ports.SnapshotParser](ctx)
	if err != nil {
		return nil, err
	}

	envResolver, err := graft.Dep[ports.EnvironmentResolver](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ManifestWriter](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, fetcher, parser, envResolver, writer, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ManifestWriter](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
		Store:  store,
		Writer: writer,
	}, nil
}
