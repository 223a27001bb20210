package pipeline

import (
	"github.com/agentstation/utc"

	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/reconcile"
	"github.com/openchem/molmap/pkg/summary"
)

// Result collects everything a finalization run produced.
type Result struct {
	// RunID correlates log lines and reports from the same run.
	RunID string `json:"run_id" yaml:"run_id"`

	StartedAt  utc.Time `json:"started_at" yaml:"started_at"`
	FinishedAt utc.Time `json:"finished_at" yaml:"finished_at"`

	// Conformers are the finalized records, ordered by conformer ID.
	// Empty when the run was configured to discard them.
	Conformers []*dataset.Conformer `json:"conformers,omitempty" yaml:"conformers,omitempty"`

	// Conflicts are the stage disagreements detected during merging. The
	// merged records are still part of the output; conflicts exist for
	// audit, not as rejections.
	Conflicts []*reconcile.Conflict `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`

	// Anomalies are advisory findings that never block a record.
	Anomalies []Anomaly `json:"anomalies,omitempty" yaml:"anomalies,omitempty"`

	// Failures are the records whose finalization aborted. Each failure
	// covers one conformer ID; the rest of the run is unaffected.
	Failures []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`

	// FateCounts tallies finalized records by fate name.
	FateCounts map[string]int64 `json:"fate_counts" yaml:"fate_counts"`

	// Summaries holds the per-topology statistics rollup.
	Summaries *summary.Accumulator `json:"-" yaml:"-"`
}

// AnomalyKind names a class of advisory finding.
type AnomalyKind string

// Advisory finding classes.
const (
	// AnomalyZeroValue marks a quantity stored as exactly zero in a field
	// where zero almost certainly means the value was dropped upstream.
	AnomalyZeroValue AnomalyKind = "zero_value"

	// AnomalyNoStartingTopology marks a record with several bond
	// topologies but none flagged as the one it was enumerated from.
	AnomalyNoStartingTopology AnomalyKind = "no_starting_topology"

	// AnomalyUnexpectedDuplicate marks a record that was still a bare
	// duplicate marker after its group merged, so no fate applies.
	AnomalyUnexpectedDuplicate AnomalyKind = "unexpected_duplicate"
)

// Anomaly is one advisory finding attached to a conformer.
type Anomaly struct {
	ConformerID int64       `json:"conformer_id" yaml:"conformer_id"`
	Kind        AnomalyKind `json:"kind" yaml:"kind"`
	Detail      string      `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Failure records a conformer whose finalization aborted.
type Failure struct {
	ConformerID int64  `json:"conformer_id" yaml:"conformer_id"`
	Err         error  `json:"-" yaml:"-"`
	Message     string `json:"message" yaml:"message"`
}
