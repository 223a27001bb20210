package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/openchem/molmap/pkg/constants"
	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/logging"
	"github.com/openchem/molmap/pkg/reconcile"
	"github.com/openchem/molmap/pkg/summary"
)

// Pipeline finalizes collections of partial conformer records.
type Pipeline struct {
	opts *options
}

// New creates a Pipeline with the given options.
func New(opts ...Option) (*Pipeline, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return &Pipeline{opts: o}, nil
}

// outcome is what finalizing one record group produced.
type outcome struct {
	conformer *dataset.Conformer
	conflicts []*reconcile.Conflict
	anomalies []Anomaly
	failure   *Failure
}

// Run finalizes the given records and returns the run's result.
//
// Records sharing a conformer ID form one group and are reduced on the same
// worker; groups have no ordering dependency and run concurrently. A group
// that fails aborts only itself and is reported as a Failure.
func (p *Pipeline) Run(ctx context.Context, records []*dataset.Conformer) (*Result, error) {
	runID := uuid.New().String()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.FromContext(ctx)

	result := &Result{
		RunID:      runID,
		StartedAt:  utc.Now(),
		FateCounts: make(map[string]int64),
		Summaries:  summary.NewAccumulator(),
	}

	groups := groupByConformerID(records)
	logger.Info().
		Str("run_id", runID).
		Int("records", len(records)).
		Int("groups", len(groups)).
		Int("workers", p.opts.workers).
		Msg("Finalizing conformer records")

	groupChan := make(chan []*dataset.Conformer, constants.RecordChannelBuffer)
	outcomeChan := make(chan outcome, len(groups))
	partials := make([]*summary.Accumulator, p.opts.workers)

	var wg sync.WaitGroup
	for i := 0; i < p.opts.workers; i++ {
		acc := summary.NewAccumulator()
		partials[i] = acc
		wg.Add(1)
		go func() {
			defer wg.Done()
			for group := range groupChan {
				outcomeChan <- p.finalizeGroup(group, acc)
			}
		}()
	}

	var canceled error
feed:
	for _, group := range groups {
		select {
		case <-ctx.Done():
			canceled = ctx.Err()
			break feed
		case groupChan <- group:
		}
	}
	close(groupChan)
	wg.Wait()
	close(outcomeChan)

	for out := range outcomeChan {
		if out.failure != nil {
			logger.Debug().
				Int64("conformer_id", out.failure.ConformerID).
				Str("error", out.failure.Message).
				Msg("Record finalization failed")
			result.Failures = append(result.Failures, *out.failure)
			continue
		}
		if p.opts.keepConformers {
			result.Conformers = append(result.Conformers, out.conformer)
		}
		result.Conflicts = append(result.Conflicts, out.conflicts...)
		result.Anomalies = append(result.Anomalies, out.anomalies...)
		result.FateCounts[out.conformer.Fate.String()]++
	}

	for _, acc := range partials {
		result.Summaries.Merge(acc)
	}

	sort.Slice(result.Conformers, func(i, j int) bool {
		return result.Conformers[i].ConformerID < result.Conformers[j].ConformerID
	})
	sort.Slice(result.Conflicts, func(i, j int) bool {
		return result.Conflicts[i].ConformerID < result.Conflicts[j].ConformerID
	})
	sort.Slice(result.Anomalies, func(i, j int) bool {
		return result.Anomalies[i].ConformerID < result.Anomalies[j].ConformerID
	})
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].ConformerID < result.Failures[j].ConformerID
	})

	result.FinishedAt = utc.Now()
	logger.Info().
		Str("run_id", runID).
		Int("finalized", len(groups)-len(result.Failures)).
		Int("conflicts", len(result.Conflicts)).
		Int("anomalies", len(result.Anomalies)).
		Int("failures", len(result.Failures)).
		Msg("Finalization finished")

	if canceled != nil {
		return result, canceled
	}
	return result, nil
}

// finalizeGroup reduces one conformer's partial records to the canonical
// record: merge, error code cleanup, fate assignment, then the statistics
// fold into the worker's accumulator.
func (p *Pipeline) finalizeGroup(group []*dataset.Conformer, acc *summary.Accumulator) outcome {
	id := group[0].ConformerID
	out := outcome{}

	merged := group[0]
	for _, next := range group[1:] {
		var conflict *reconcile.Conflict
		var err error
		merged, conflict, err = reconcile.Merge(merged, next)
		if err != nil {
			return failed(id, err)
		}
		if conflict != nil {
			out.conflicts = append(out.conflicts, conflict)
		}
	}

	source, err := reconcile.Classify(merged)
	if err != nil {
		return failed(id, err)
	}

	// A group that is still a bare duplicate marker has no calculation to
	// normalize or grade; its outcome lives on the absorbing conformer.
	if source == reconcile.SourceDuplicate {
		out.conformer = merged
		out.anomalies = append(out.anomalies, Anomaly{
			ConformerID: id,
			Kind:        AnomalyUnexpectedDuplicate,
			Detail:      fmt.Sprintf("absorbed by conformer %d", merged.DuplicatedBy),
		})
		return out
	}

	if err := reconcile.CleanUpErrorCodes(merged, source); err != nil {
		return failed(id, err)
	}
	reconcile.CleanUpSentinelValues(merged)

	fate, err := reconcile.DetermineFate(merged, source)
	if err != nil {
		return failed(id, err)
	}
	merged.Fate = fate

	if p.opts.scanZeroValues {
		for _, field := range merged.FindZeroValues() {
			out.anomalies = append(out.anomalies, Anomaly{
				ConformerID: id,
				Kind:        AnomalyZeroValue,
				Detail:      field,
			})
		}
	}
	if len(merged.BondTopologies) > 1 {
		if _, err := summary.StartingTopologyIndex(merged); err != nil {
			out.anomalies = append(out.anomalies, Anomaly{
				ConformerID: id,
				Kind:        AnomalyNoStartingTopology,
				Detail:      fmt.Sprintf("%d bond topologies, none flagged", len(merged.BondTopologies)),
			})
		}
	}

	if err := acc.AddConformer(merged); err != nil {
		return failed(id, err)
	}

	out.conformer = merged
	return out
}

// groupByConformerID buckets records by identity, preserving arrival order
// within each bucket.
func groupByConformerID(records []*dataset.Conformer) [][]*dataset.Conformer {
	byID := make(map[int64]int)
	var groups [][]*dataset.Conformer
	for _, r := range records {
		if i, ok := byID[r.ConformerID]; ok {
			groups[i] = append(groups[i], r)
			continue
		}
		byID[r.ConformerID] = len(groups)
		groups = append(groups, []*dataset.Conformer{r})
	}
	return groups
}

// failed wraps a group error into an outcome.
func failed(id int64, err error) outcome {
	return outcome{failure: &Failure{
		ConformerID: id,
		Err:         err,
		Message:     err.Error(),
	}}
}
