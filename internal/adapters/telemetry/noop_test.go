package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"go.trai.ch/prov/internal/adapters/telemetry"
	"go.trai.ch/prov/internal/core/ports"
)

func TestNoOp(t *testing.T) {
	recorder := telemetry.NewNoOp()

	ctx, vertex := recorder.Record(context.Background(), "fetch snapshot")
	if _, ok := ports.VertexFromContext(ctx); !ok {
		t.Error("expected vertex on the returned context")
	}

	if _, err := vertex.Stdout().Write([]byte("discarded")); err != nil {
		t.Errorf("Stdout write failed: %v", err)
	}
	if _, err := vertex.Stderr().Write([]byte("discarded")); err != nil {
		t.Errorf("Stderr write failed: %v", err)
	}

	vertex.Cached()
	vertex.Complete(errors.New("ignored"))

	if err := recorder.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
