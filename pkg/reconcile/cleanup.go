package reconcile

import (
	"github.com/openchem/molmap/pkg/constants"
	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/errors"
)

// CleanUpErrorCodes rewrites the legacy stage1 codes into a status value,
// then clears them. Stage2 records already carry a meaningful status, so
// only the clearing applies. Duplicate markers have no codes to clean and
// are rejected.
//
// A stage1 record whose status is already assigned keeps it. Otherwise the
// nstat1 code decides: a completed screening becomes StatusMarkedDuplicate
// when the record was collapsed into another conformer, a disassociation
// becomes StatusDisassociated, and a failed optimization becomes
// StatusOptimizationFailed with the geometry results dropped.
func CleanUpErrorCodes(c *dataset.Conformer, source Source) error {
	switch source {
	case SourceStage1:
		e := c.MutableErrors()
		switch {
		case e.Status != 0:
			// Already assigned, keep it.
		case e.ErrorNstat1 == constants.Nstat1Complete || e.ErrorNstat1 == constants.Nstat1CompleteAlternate:
			if c.DuplicatedBy != 0 {
				e.Status = constants.StatusMarkedDuplicate
			}
		case e.ErrorNstat1 == constants.Nstat1Disassociated:
			e.Status = constants.StatusDisassociated
		case e.ErrorNstat1 == constants.Nstat1OptimizationFailed:
			e.Status = constants.StatusOptimizationFailed
			c.Properties.InitialGeometryEnergy = nil
			c.Properties.InitialGeometryGradientNorm = nil
			c.Properties.OptimizedGeometryEnergy = nil
			c.Properties.OptimizedGeometryGradientNorm = nil
			c.OptimizedGeometry = nil
		}
	case SourceStage2:
		// Status is already meaningful.
	default:
		return errors.NewInvalidRecordError(c.ConformerID,
			"duplicate records have no error codes to clean")
	}

	e := c.MutableErrors()
	e.ErrorNstat1 = 0
	e.ErrorNstatC = 0
	e.ErrorNstatT = 0
	e.ErrorFrequencies = 0
	return nil
}

// CleanUpSentinelValues drops the scalar geometry fields holding the stage2
// sentinel, which marks quantities the calculation never produced. Safe to
// call repeatedly.
func CleanUpSentinelValues(c *dataset.Conformer) {
	p := c.Properties
	if p == nil {
		return
	}
	for _, f := range []**dataset.ScalarValue{
		&p.InitialGeometryEnergy,
		&p.InitialGeometryGradientNorm,
		&p.OptimizedGeometryEnergy,
		&p.OptimizedGeometryGradientNorm,
	} {
		if *f != nil && (*f).Value == constants.Stage2SentinelValue {
			*f = nil
		}
	}
}
