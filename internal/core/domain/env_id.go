package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
)

// GenerateEnvID creates a deterministic hash identifying a provisioning request:
// the set of snapshot sources plus the requested package specs. Two requests
// with the same sources and specs produce the same ID regardless of order.
func GenerateEnvID(locators []SourceLocator, requested []Requirement) string {
	sources := make([]string, 0, len(locators))
	for _, locator := range locators {
		sources = append(sources, locator.String())
	}
	slices.Sort(sources)

	specs := make([]string, 0, len(requested))
	for _, req := range requested {
		specs = append(specs, req.String())
	}
	slices.Sort(specs)

	var builder strings.Builder
	for _, source := range sources {
		builder.WriteString(source)
		builder.WriteString(";")
	}
	builder.WriteString("|")
	for _, spec := range specs {
		builder.WriteString(spec)
		builder.WriteString(";")
	}

	hash := sha256.Sum256([]byte(builder.String()))
	return hex.EncodeToString(hash[:])
}
