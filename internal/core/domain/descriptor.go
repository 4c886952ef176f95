package domain

import "time"

// DefaultFetchTimeout bounds each snapshot fetch unless the descriptor overrides it.
const DefaultFetchTimeout = 30 * time.Second

// Descriptor is the validated form of the prov.yaml input: the snapshot
// sources to pin and the packages to materialize from them.
type Descriptor struct {
	// Sources are the pinned snapshot locators. At least one is required.
	Sources []SourceLocator

	// Requested are the packages the environment must contain.
	Requested []Requirement

	// Concurrency bounds parallel snapshot fetches. Zero means one per CPU.
	Concurrency int

	// Timeout bounds each individual fetch.
	Timeout time.Duration
}

// EnvID returns the deterministic identity of this descriptor's request.
func (d Descriptor) EnvID() string {
	return GenerateEnvID(d.Sources, d.Requested)
}
