// Package app implements the provisioning pipeline for prov.
package app

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"go.trai.ch/prov/internal/core/domain"
	"go.trai.ch/prov/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App orchestrates the provisioning pipeline:
// fetch snapshots, build the index, resolve the closure, write the manifest.
//
// The pipeline is a single pass. Stages run sequentially; only the snapshot
// fetches for independent sources fan out concurrently. The first failure
// halts the run, reporting the failing stage and cause.
type App struct {
	configLoader ports.ConfigLoader
	fetcher      ports.SnapshotFetcher
	parser       ports.SnapshotParser
	resolver     ports.EnvironmentResolver
	writer       ports.ManifestWriter
	telemetry    ports.Telemetry
	logger       ports.Logger

	mu    sync.RWMutex
	stage domain.Stage
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fetcher ports.SnapshotFetcher,
	parser ports.SnapshotParser,
	resolver ports.EnvironmentResolver,
	writer ports.ManifestWriter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		fetcher:      fetcher,
		parser:       parser,
		resolver:     resolver,
		writer:       writer,
		telemetry:    telemetry,
		logger:       logger,
		stage:        domain.StageIdle,
	}
}

// SyncOptions configures a provisioning run.
type SyncOptions struct {
	// Cwd is the directory holding the descriptor file.
	Cwd string

	// ManifestPath overrides the manifest destination. Empty means the default.
	ManifestPath string
}

// Sync runs the full pipeline and returns the committed manifest.
func (a *App) Sync(ctx context.Context, opts SyncOptions) (*domain.Manifest, error) {
	descriptor, env, err := a.resolveDescriptor(ctx, opts.Cwd)
	if err != nil {
		return nil, err
	}

	a.setStage(domain.StageWriting)
	destination := opts.ManifestPath
	if destination == "" {
		destination = domain.DefaultManifestPath()
	}

	_, vertex := a.telemetry.Record(ctx, "write manifest")
	m, err := a.writer.Write(env, descriptor.EnvID(), destination)
	vertex.Complete(err)
	if err != nil {
		return nil, a.fail(err)
	}

	a.setStage(domain.StageDone)
	a.logger.Info(fmt.Sprintf("materialized %d packages to %s", len(m.Entries), destination))
	return m, nil
}

// Resolve runs the pipeline up to resolution, without writing a manifest.
func (a *App) Resolve(ctx context.Context, cwd string) (domain.ResolvedEnvironment, error) {
	_, env, err := a.resolveDescriptor(ctx, cwd)
	if err != nil {
		return domain.ResolvedEnvironment{}, err
	}
	a.setStage(domain.StageDone)
	return env, nil
}

// Stage returns the current pipeline stage.
func (a *App) Stage() domain.Stage {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.stage
}

// Close flushes the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func (a *App) resolveDescriptor(ctx context.Context, cwd string) (*domain.Descriptor, domain.ResolvedEnvironment, error) {
	if cwd == "" {
		cwd = "."
	}

	descriptor, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, domain.ResolvedEnvironment{}, a.fail(err)
	}

	a.setStage(domain.StageFetching)
	snapshots, err := a.fetchAll(ctx, descriptor)
	if err != nil {
		return nil, domain.ResolvedEnvironment{}, a.fail(err)
	}

	a.setStage(domain.StageIndexing)
	index, err := a.buildIndex(ctx, snapshots)
	if err != nil {
		return nil, domain.ResolvedEnvironment{}, a.fail(err)
	}

	a.setStage(domain.StageResolving)
	_, vertex := a.telemetry.Record(ctx, "resolve closure")
	env, err := a.resolver.Resolve(index, descriptor.Requested)
	vertex.Complete(err)
	if err != nil {
		return nil, domain.ResolvedEnvironment{}, a.fail(err)
	}

	return descriptor, env, nil
}

// fetchAll retrieves every source snapshot, fanning out bounded by the
// descriptor's concurrency setting. Results keep source order so downstream
// merging stays deterministic.
func (a *App) fetchAll(ctx context.Context, descriptor *domain.Descriptor) ([]domain.Snapshot, error) {
	concurrency := descriptor.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	snapshots := make([]domain.Snapshot, len(descriptor.Sources))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, locator := range descriptor.Sources {
		g.Go(func() error {
			// The vertex rides on the fetch context so the fetcher can mark cache hits.
			fetchCtx, vertex := a.telemetry.Record(groupCtx, "fetch "+locator.String())
			if descriptor.Timeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(fetchCtx, descriptor.Timeout)
				defer cancel()
			}

			snap, err := a.fetcher.Fetch(fetchCtx, locator)
			vertex.Complete(err)
			if err != nil {
				return err
			}

			snapshots[i] = snap
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

func (a *App) buildIndex(ctx context.Context, snapshots []domain.Snapshot) (*domain.PackageIndex, error) {
	_, vertex := a.telemetry.Record(ctx, "index snapshots")

	index := domain.NewPackageIndex()
	for _, snap := range snapshots {
		parsed, err := a.parser.Parse(snap)
		if err != nil {
			vertex.Complete(err)
			return nil, err
		}
		if err := index.Merge(parsed); err != nil {
			vertex.Complete(err)
			return nil, err
		}
	}

	vertex.Complete(nil)
	return index, nil
}

func (a *App) setStage(stage domain.Stage) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stage = stage
}

// fail transitions to the Failed stage, tagging the error with the stage that broke.
func (a *App) fail(err error) error {
	a.mu.Lock()
	failedAt := a.stage
	a.stage = domain.StageFailed
	a.mu.Unlock()
	return zerr.With(err, "stage", string(failedAt))
}
