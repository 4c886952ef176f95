package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/prov/internal/core/domain"
)

func TestParseRequirement(t *testing.T) {
	tests := []struct {
		name           string
		spec           string
		wantName       string
		wantConstraint string
		wantErr        bool
	}{
		{name: "bare name", spec: "flatbuffers", wantName: "flatbuffers"},
		{name: "pinned version", spec: "flatbuffers@2.0.0", wantName: "flatbuffers", wantConstraint: "2.0.0"},
		{name: "caret constraint", spec: "zlib@^1.2", wantName: "zlib", wantConstraint: "^1.2"},
		{name: "empty spec", spec: "", wantErr: true},
		{name: "missing constraint", spec: "zlib@", wantErr: true},
		{name: "missing name", spec: "@1.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := domain.ParseRequirement(tt.spec)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidPackageSpec) {
					t.Fatalf("expected ErrInvalidPackageSpec, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Name.String() != tt.wantName {
				t.Errorf("expected name %q, got %q", tt.wantName, req.Name.String())
			}
			if req.Constraint != tt.wantConstraint {
				t.Errorf("expected constraint %q, got %q", tt.wantConstraint, req.Constraint)
			}
		})
	}
}

func TestRequirement_String(t *testing.T) {
	bare := domain.Requirement{Name: domain.NewInternedString("flatbuffers")}
	if bare.String() != "flatbuffers" {
		t.Errorf("expected %q, got %q", "flatbuffers", bare.String())
	}

	pinned := domain.Requirement{Name: domain.NewInternedString("flatbuffers"), Constraint: "2.0.0"}
	if pinned.String() != "flatbuffers@2.0.0" {
		t.Errorf("expected %q, got %q", "flatbuffers@2.0.0", pinned.String())
	}
}

func TestPackageMetadata_ID(t *testing.T) {
	pkg := domain.PackageMetadata{
		Name:    domain.NewInternedString("flatbuffers"),
		Version: domain.NewInternedString("2.0.0"),
	}
	if pkg.ID() != "flatbuffers@2.0.0" {
		t.Errorf("expected %q, got %q", "flatbuffers@2.0.0", pkg.ID())
	}
}
