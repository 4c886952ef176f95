package domain_test

import (
	"testing"

	"go.trai.ch/prov/internal/core/domain"
)

func TestSourceLocator_Key(t *testing.T) {
	locator := domain.SourceLocator{URL: "https://pkgs.example.com/stable", Revision: "8f1c2d3"}

	if locator.Key() != locator.Key() {
		t.Error("expected stable cache key")
	}

	other := domain.SourceLocator{URL: "https://pkgs.example.com/stable", Revision: "deadbee"}
	if locator.Key() == other.Key() {
		t.Error("expected different revisions to produce different keys")
	}

	// The pin does not participate in the key: it pins content, not identity.
	pinned := locator
	pinned.Pin = "abc"
	if locator.Key() != pinned.Key() {
		t.Error("expected pin to not affect the cache key")
	}
}

func TestNewSnapshot_ComputesDigest(t *testing.T) {
	locator := domain.SourceLocator{URL: "https://pkgs.example.com/stable", Revision: "8f1c2d3"}
	snap := domain.NewSnapshot(locator, []byte(`{"packages":[]}`))

	if snap.Digest != domain.ContentDigest(snap.Data) {
		t.Error("expected digest to match content")
	}
	if len(snap.Digest) != 64 {
		t.Errorf("expected 64-char hex digest, got %d chars", len(snap.Digest))
	}
}

func TestStage_IsTerminal(t *testing.T) {
	if domain.StageFetching.IsTerminal() {
		t.Error("fetching is not terminal")
	}
	if !domain.StageDone.IsTerminal() {
		t.Error("done is terminal")
	}
	if !domain.StageFailed.IsTerminal() {
		t.Error("failed is terminal")
	}
}
