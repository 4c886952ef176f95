package domain_test

import (
	"testing"

	"go.trai.ch/prov/internal/core/domain"
)

func locators() []domain.SourceLocator {
	return []domain.SourceLocator{
		{URL: "https://pkgs.example.com/stable", Revision: "8f1c2d3"},
		{URL: "https://pkgs.example.com/extras", Revision: "77aa001"},
	}
}

func requirements(specs ...string) []domain.Requirement {
	reqs := make([]domain.Requirement, 0, len(specs))
	for _, spec := range specs {
		req, err := domain.ParseRequirement(spec)
		if err != nil {
			panic(err)
		}
		reqs = append(reqs, req)
	}
	return reqs
}

func TestGenerateEnvID_Deterministic(t *testing.T) {
	first := domain.GenerateEnvID(locators(), requirements("flatbuffers", "zlib@^1.2"))
	second := domain.GenerateEnvID(locators(), requirements("flatbuffers", "zlib@^1.2"))

	if first != second {
		t.Errorf("expected identical IDs, got %s and %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("expected 64-char hex ID, got %d chars", len(first))
	}
}

func TestGenerateEnvID_OrderIndependent(t *testing.T) {
	forward := domain.GenerateEnvID(locators(), requirements("flatbuffers", "zlib@^1.2"))

	reversed := locators()
	reversed[0], reversed[1] = reversed[1], reversed[0]
	backward := domain.GenerateEnvID(reversed, requirements("zlib@^1.2", "flatbuffers"))

	if forward != backward {
		t.Errorf("expected order-independent IDs, got %s and %s", forward, backward)
	}
}

func TestGenerateEnvID_SensitiveToRequest(t *testing.T) {
	base := domain.GenerateEnvID(locators(), requirements("flatbuffers"))
	changed := domain.GenerateEnvID(locators(), requirements("flatbuffers@2.0.0"))

	if base == changed {
		t.Error("expected different IDs for different constraints")
	}
}
