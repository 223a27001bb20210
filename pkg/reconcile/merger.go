package reconcile

import (
	"fmt"
	"math"

	"github.com/openchem/molmap/pkg/constants"
	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/errors"
)

// toleranceCheck compares one scalar property between the stage1 and stage2
// records of a conformer.
type toleranceCheck struct {
	name  string
	atol  float64
	field func(*dataset.Properties) *dataset.ScalarValue
}

// toleranceChecks lists the scalar properties both stages report, with the
// absolute disagreement allowed before a conflict is flagged.
var toleranceChecks = []toleranceCheck{
	{
		name: "initial_geometry_energy",
		atol: constants.EnergyTolerance,
		field: func(p *dataset.Properties) *dataset.ScalarValue {
			return p.InitialGeometryEnergy
		},
	},
	{
		name: "initial_geometry_gradient_norm",
		atol: constants.GradientNormTolerance,
		field: func(p *dataset.Properties) *dataset.ScalarValue {
			return p.InitialGeometryGradientNorm
		},
	},
	{
		name: "optimized_geometry_energy",
		atol: constants.EnergyTolerance,
		field: func(p *dataset.Properties) *dataset.ScalarValue {
			return p.OptimizedGeometryEnergy
		},
	},
	{
		name: "optimized_geometry_gradient_norm",
		atol: constants.GradientNormTolerance,
		field: func(p *dataset.Properties) *dataset.ScalarValue {
			return p.OptimizedGeometryGradientNorm
		},
	},
}

// acceptedLegacyCodes enumerates the stage1 code combinations, as
// (nstat1, nstatc, frequencies, nstatt), that occur in the source archive
// without signaling a stage disagreement.
var acceptedLegacyCodes = map[[4]int]bool{
	{1, 1, 1, 1}:   true,
	{3, 1, 1, 1}:   true,
	{2, 3, 2, 1}:   true,
	{5, 1, 3, 1}:   true,
	{1, 1, 101, 1}: true,
}

// Merge combines two partial records for the same conformer into one.
//
// Records from different extraction passes complement each other: duplicate
// markers contribute bookkeeping, stage1 records contribute the geometry
// screening, stage2 records contribute the full calculation. Two records
// from the same stage cannot be merged, except duplicate markers, which
// accumulate.
//
// The returned conflict is non-nil when the stage1 and stage2 values
// disagree beyond tolerance. The merge still completes in that case; the
// caller decides what to do with the conflict. Both inputs may be mutated
// and only the returned record should be kept.
func Merge(a, b *dataset.Conformer) (*dataset.Conformer, *Conflict, error) {
	if a.ConformerID != b.ConformerID {
		return nil, nil, errors.NewInvalidRecordError(a.ConformerID,
			fmt.Sprintf("cannot merge with conformer %d", b.ConformerID))
	}

	sourceA, err := Classify(a)
	if err != nil {
		return nil, nil, err
	}
	sourceB, err := Classify(b)
	if err != nil {
		return nil, nil, err
	}

	if sourceA == sourceB {
		if sourceA != SourceDuplicate {
			return nil, nil, errors.NewUnmergeableError(a.ConformerID, sourceA.String(),
				"both records carry results from the same stage")
		}
		// Duplicate markers accumulate bookkeeping.
		if b.DuplicatedBy != 0 {
			a.DuplicatedBy = b.DuplicatedBy
		}
		a.DuplicateOf = append(a.DuplicateOf, b.DuplicateOf...)
		return a, nil, nil
	}

	// Order the pair so the earlier stage comes first.
	if sourceB < sourceA {
		a, b = b, a
		sourceA, sourceB = sourceB, sourceA
	}

	if len(a.InitialGeometries) > 1 || len(b.InitialGeometries) > 1 {
		return nil, nil, errors.NewInvalidRecordError(a.ConformerID,
			"record carries more than one initial geometry")
	}
	if len(a.BondTopologies) > 1 || len(b.BondTopologies) > 1 {
		return nil, nil, errors.NewInvalidRecordError(a.ConformerID,
			"record carries more than one bond topology")
	}
	if len(a.BondTopologies) == 1 && len(b.BondTopologies) == 1 &&
		!a.BondTopologies[0].Equal(&b.BondTopologies[0]) {
		return nil, nil, errors.NewInvalidRecordError(a.ConformerID,
			"records carry different bond topologies")
	}

	// Snapshot both sides before anything is copied between them.
	conflict := newConflict(a, b)

	result, other := b, a
	hasConflict := false
	if sourceA == SourceStage1 && sourceB == SourceStage2 {
		result, other, hasConflict = mergeStages(a, b)
	}

	if result.DuplicatedBy != 0 && other.DuplicatedBy != 0 &&
		result.DuplicatedBy != other.DuplicatedBy {
		return nil, nil, errors.NewInvalidRecordError(result.ConformerID,
			fmt.Sprintf("records disagree on duplicated_by: %d and %d",
				other.DuplicatedBy, result.DuplicatedBy))
	}
	if other.DuplicatedBy > result.DuplicatedBy {
		result.DuplicatedBy = other.DuplicatedBy
	}
	result.DuplicateOf = append(result.DuplicateOf, other.DuplicateOf...)

	if !hasConflict {
		conflict = nil
	}
	return result, conflict, nil
}

// mergeStages folds a stage1 record into its stage2 counterpart. The stage2
// record normally survives; when the stage2 calculation was abandoned the
// stage1 record survives instead, with a status recording the abort.
// Reports which record survived and whether the stages disagree.
func mergeStages(stage1, stage2 *dataset.Conformer) (result, other *dataset.Conformer, hasConflict bool) {
	if len(stage1.BondTopologies) != 1 || len(stage2.BondTopologies) != 1 {
		hasConflict = true
	}
	if len(stage1.InitialGeometries) != len(stage2.InitialGeometries) {
		hasConflict = true
	}
	if (stage1.OptimizedGeometry != nil) != (stage2.OptimizedGeometry != nil) {
		hasConflict = true
	}

	// Stage2 extraction never re-parses the legacy codes, so the stage1
	// values carry over unconditionally.
	e1 := stage1.Errors()
	e2 := stage2.MutableErrors()
	e2.ErrorNstat1 = e1.ErrorNstat1
	e2.ErrorNstatC = e1.ErrorNstatC
	e2.ErrorNstatT = e1.ErrorNstatT
	e2.ErrorFrequencies = e1.ErrorFrequencies

	for _, check := range toleranceChecks {
		v2 := scalar(check.field(stage2.Properties))
		if v2 == constants.Stage2SentinelValue {
			continue
		}
		v1 := scalar(check.field(stage1.Properties))
		if math.Abs(v1-v2) > check.atol {
			hasConflict = true
		}
	}

	if e1.ErrorFrequencies == constants.FrequenciesSuspectCode {
		if stage2.ConformerID != constants.FrequenciesSuspectException {
			hasConflict = true
		}
	} else if !acceptedLegacyCodes[[4]int{
		e1.ErrorNstat1, e1.ErrorNstatC, e1.ErrorFrequencies, e1.ErrorNstatT,
	}] {
		hasConflict = true
	}

	// The stage1 view of the initial geometry is authoritative.
	stage2.Properties.InitialGeometryEnergy = &dataset.ScalarValue{
		Value: scalar(stage1.Properties.InitialGeometryEnergy),
	}
	stage2.Properties.InitialGeometryGradientNorm = &dataset.ScalarValue{
		Value: scalar(stage1.Properties.InitialGeometryGradientNorm),
	}
	if len(stage1.InitialGeometries) > 0 {
		if len(stage2.InitialGeometries) > 0 {
			stage2.InitialGeometries[0] = stage1.InitialGeometries[0]
		} else {
			stage2.InitialGeometries = append(stage2.InitialGeometries, stage1.InitialGeometries[0])
		}
	}

	status := e2.Status
	if status != constants.StatusStage2AbortedLow && status != constants.StatusStage2AbortedHigh {
		return stage2, stage1, hasConflict
	}

	// The stage2 calculation was abandoned. The stage1 record survives with
	// the abort folded into its status and goes to the complete database,
	// flagging imaginary modes from the screening frequencies.
	e1m := stage1.MutableErrors()
	e1m.Status = constants.StatusCollapseBase + status/10
	stage1.WhichDatabase = dataset.AvailabilityComplete
	hasNegative, hasStrongNegative := false, false
	if hf := stage1.Properties.HarmonicFrequencies; hf != nil {
		for _, f := range hf.Values {
			if f < constants.StrongImaginaryFrequencyCutoff {
				hasStrongNegative = true
			}
			if f < 0 {
				hasNegative = true
			}
		}
	}
	switch {
	case hasStrongNegative:
		e1m.WarnVibImaginary = 2
	case hasNegative:
		e1m.WarnVibImaginary = 1
	}
	return stage1, stage2, hasConflict
}
