// Package summary rolls conformer fates up into per-bond-topology counts.
// Each conformer contributes one summary for the topology it was enumerated
// from and one detected-match summary for every other topology its geometry
// turned out to fit.
package summary

import (
	"fmt"
	"sort"

	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/errors"
)

// StartingTopologyIndex locates the topology a conformer was enumerated
// from. A sole topology is the starting one by definition; otherwise the
// flag decides. Fails with ErrNoStartingTopology when no topology is
// flagged, which happens for records predating topology detection.
func StartingTopologyIndex(c *dataset.Conformer) (int, error) {
	if len(c.BondTopologies) == 1 {
		return 0, nil
	}
	for i := range c.BondTopologies {
		if c.BondTopologies[i].IsStartingTopology {
			return i, nil
		}
	}
	return 0, fmt.Errorf("conformer %d: %w", c.ConformerID, errors.ErrNoStartingTopology)
}

// ForConformer expands one conformer into the summaries it contributes.
//
// The starting topology receives the attempt and the outcome counts. Every
// other topology receives a detected-match count, but only for outcomes
// where the geometry was actually calculated; duplicates and failed
// geometries never matched anything. Detected-match summaries come first,
// the starting topology's summary last.
//
// The fate must be assigned before calling; an undefined fate is an error.
func ForConformer(c *dataset.Conformer) ([]dataset.BondTopologySummary, error) {
	if c.Fate == dataset.FateUndefined {
		return nil, fmt.Errorf("summarizing conformer %d: %w", c.ConformerID, errors.ErrFateUnset)
	}

	var primary *dataset.BondTopologySummary
	var others []int

	startIndex, err := StartingTopologyIndex(c)
	if err == nil {
		primary = &dataset.BondTopologySummary{
			BondTopology:             c.BondTopologies[startIndex],
			CountAttemptedConformers: 1,
		}
		for i := range c.BondTopologies {
			if i != startIndex {
				others = append(others, i)
			}
		}
	} else {
		// Without a starting topology everything counts as a detected match.
		for i := range c.BondTopologies {
			others = append(others, i)
		}
	}

	var summaries []dataset.BondTopologySummary
	detected := func(set func(*dataset.BondTopologySummary)) {
		for _, i := range others {
			s := dataset.BondTopologySummary{BondTopology: c.BondTopologies[i]}
			set(&s)
			summaries = append(summaries, s)
		}
	}

	switch c.Fate {
	case dataset.FateDuplicateSameTopology:
		if primary != nil {
			primary.CountDuplicatesSameTopology = 1
		}

	case dataset.FateDuplicateDifferentTopology:
		if primary != nil {
			primary.CountDuplicatesDifferentTopology = 1
		}

	case dataset.FateGeometryOptimizationProblem,
		dataset.FateDisassociated,
		dataset.FateForceConstantFailure,
		dataset.FateDiscardedOther:
		if primary != nil {
			primary.CountFailedGeometryOptimization = 1
		}

	case dataset.FateNoCalculationResults:
		if primary != nil {
			primary.CountKeptGeometry = 1
			primary.CountMissingCalculation = 1
		}

	case dataset.FateCalculationWithSeriousError,
		dataset.FateCalculationWithMajorError,
		dataset.FateCalculationWithModerateError:
		if primary != nil {
			primary.CountKeptGeometry = 1
			primary.CountCalculationWithError = 1
		}
		detected(func(s *dataset.BondTopologySummary) { s.CountDetectedMatchWithError = 1 })

	case dataset.FateCalculationWithWarningSerious,
		dataset.FateCalculationWithWarningVibrational:
		if primary != nil {
			primary.CountKeptGeometry = 1
			primary.CountCalculationWithWarning = 1
		}
		detected(func(s *dataset.BondTopologySummary) { s.CountDetectedMatchWithWarning = 1 })

	case dataset.FateSuccess:
		if primary != nil {
			primary.CountKeptGeometry = 1
			primary.CountCalculationSuccess = 1
		}
		detected(func(s *dataset.BondTopologySummary) { s.CountDetectedMatchSuccess = 1 })

	default:
		return nil, errors.NewInternalError("summary",
			fmt.Sprintf("unhandled fate %q for conformer %d", c.Fate, c.ConformerID))
	}

	if primary != nil {
		summaries = append(summaries, *primary)
	}
	return summaries, nil
}

// Accumulator folds per-conformer summaries into running totals, one per
// bond topology. Not safe for concurrent use; give each worker its own and
// combine them with Merge.
type Accumulator struct {
	byID map[int64]*dataset.BondTopologySummary
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{byID: make(map[int64]*dataset.BondTopologySummary)}
}

// Add folds one summary into the totals for its topology.
func (a *Accumulator) Add(s *dataset.BondTopologySummary) {
	id := s.BondTopology.BondTopologyID
	if existing, ok := a.byID[id]; ok {
		existing.Add(s)
		return
	}
	clone := *s
	a.byID[id] = &clone
}

// AddConformer expands a conformer into summaries and folds them in.
func (a *Accumulator) AddConformer(c *dataset.Conformer) error {
	summaries, err := ForConformer(c)
	if err != nil {
		return err
	}
	for i := range summaries {
		a.Add(&summaries[i])
	}
	return nil
}

// Merge folds another accumulator's totals into this one.
func (a *Accumulator) Merge(other *Accumulator) {
	for _, s := range other.byID {
		a.Add(s)
	}
}

// Len returns the number of distinct bond topologies accumulated.
func (a *Accumulator) Len() int {
	return len(a.byID)
}

// Summaries returns the totals ordered by bond topology ID.
func (a *Accumulator) Summaries() []dataset.BondTopologySummary {
	out := make([]dataset.BondTopologySummary, 0, len(a.byID))
	for _, s := range a.byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BondTopology.BondTopologyID < out[j].BondTopology.BondTopologyID
	})
	return out
}
