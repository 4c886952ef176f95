package domain

// Stage represents the lifecycle state of a provisioning run.
// The pipeline is a single pass: Idle → Fetching → Indexing → Resolving →
// Writing → Done, with Failed reachable from any non-terminal stage.
type Stage string

const (
	// StageIdle indicates no run has started.
	StageIdle Stage = "idle"
	// StageFetching indicates snapshots are being retrieved.
	StageFetching Stage = "fetching"
	// StageIndexing indicates snapshots are being parsed into the package index.
	StageIndexing Stage = "indexing"
	// StageResolving indicates the dependency closure is being computed.
	StageResolving Stage = "resolving"
	// StageWriting indicates the manifest is being committed.
	StageWriting Stage = "writing"
	// StageDone indicates the run completed successfully.
	StageDone Stage = "done"
	// StageFailed indicates the run halted on an error.
	StageFailed Stage = "failed"
)

// IsTerminal reports whether the stage is Done or Failed.
func (s Stage) IsTerminal() bool {
	return s == StageDone || s == StageFailed
}
