package httpsrc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prov/internal/adapters/cas"
	"go.trai.ch/prov/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot fetcher Graft node.
const NodeID graft.ID = "adapter.snapshot_fetcher"

func init() {
	graft.Register(graft.Node[ports.SnapshotFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID},
		Run: func(ctx context.Context) (ports.SnapshotFetcher, error) {
			store, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(store), nil
		},
	})
}
