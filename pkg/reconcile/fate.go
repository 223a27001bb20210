package reconcile

import (
	"fmt"

	"github.com/openchem/molmap/pkg/constants"
	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/errors"
)

// DetermineFate decides the curation outcome for a conformer record.
//
// Duplicate markers stay undefined; their outcome lives on the conformer
// that absorbed them. Stage1 fates say what stopped the pipeline: the
// conformer collapsed into another one, its geometry failed or fell apart,
// or nothing past the screening was calculated. Stage2 fates restate the
// severity grade. Call after CleanUpErrorCodes so the status is assigned.
func DetermineFate(c *dataset.Conformer, source Source) (dataset.FateCategory, error) {
	switch source {
	case SourceDuplicate:
		return dataset.FateUndefined, nil

	case SourceStage1:
		if c.DuplicatedBy > 0 {
			if dataset.BondTopologyIDFromConformerID(c.ConformerID) ==
				dataset.BondTopologyIDFromConformerID(c.DuplicatedBy) {
				return dataset.FateDuplicateSameTopology, nil
			}
			return dataset.FateDuplicateDifferentTopology, nil
		}
		switch c.Errors().Status {
		case constants.StatusOptimizationFailed:
			return dataset.FateGeometryOptimizationProblem, nil
		case constants.StatusDisassociated:
			return dataset.FateDisassociated, nil
		case constants.StatusAbortedCollapsedLow, constants.StatusAbortedCollapsedHigh:
			return dataset.FateDiscardedOther, nil
		}
		return dataset.FateNoCalculationResults, nil

	case SourceStage2:
		switch ErrorLevel(c, source) {
		case LevelSeriousError:
			return dataset.FateCalculationWithSeriousError, nil
		case LevelMajorError:
			return dataset.FateCalculationWithMajorError, nil
		case LevelModerateError:
			return dataset.FateCalculationWithModerateError, nil
		case LevelWarningSerious:
			return dataset.FateCalculationWithWarningSerious, nil
		case LevelWarningVibrational:
			return dataset.FateCalculationWithWarningVibrational, nil
		}
		return dataset.FateSuccess, nil
	}
	return dataset.FateUndefined, errors.NewInternalError("reconcile",
		fmt.Sprintf("unhandled record source %q", source))
}
