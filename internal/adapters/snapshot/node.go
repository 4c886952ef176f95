package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prov/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot parser Graft node.
const NodeID graft.ID = "adapter.snapshot_parser"

func init() {
	graft.Register(graft.Node[ports.SnapshotParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SnapshotParser, error) {
			return NewParser(), nil
		},
	})
}
