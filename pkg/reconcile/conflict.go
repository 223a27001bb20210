package reconcile

import (
	"github.com/openchem/molmap/pkg/dataset"
)

// Conflict captures the values a stage1 record and its stage2 counterpart
// disagreed on during a merge. The snapshot is taken before any fields are
// copied between the records, so both sides show what extraction produced.
type Conflict struct {
	ConformerID int64 `json:"conformer_id" yaml:"conformer_id"`

	// Legacy error codes from the stage1 record.
	ErrorNstat1      int `json:"error_nstat1" yaml:"error_nstat1"`
	ErrorNstatC      int `json:"error_nstatc" yaml:"error_nstatc"`
	ErrorFrequencies int `json:"error_frequencies" yaml:"error_frequencies"`
	ErrorNstatT      int `json:"error_nstatt" yaml:"error_nstatt"`

	Stage1 ConflictSide `json:"stage1" yaml:"stage1"`
	Stage2 ConflictSide `json:"stage2" yaml:"stage2"`
}

// ConflictSide holds one record's view of the quantities compared during a
// stage1/stage2 merge. Unset scalar fields read as zero.
type ConflictSide struct {
	InitialGeometryEnergy         float64 `json:"initial_geometry_energy" yaml:"initial_geometry_energy"`
	InitialGeometryGradientNorm   float64 `json:"initial_geometry_gradient_norm" yaml:"initial_geometry_gradient_norm"`
	OptimizedGeometryEnergy       float64 `json:"optimized_geometry_energy" yaml:"optimized_geometry_energy"`
	OptimizedGeometryGradientNorm float64 `json:"optimized_geometry_gradient_norm" yaml:"optimized_geometry_gradient_norm"`
	HasInitialGeometry            bool    `json:"has_initial_geometry" yaml:"has_initial_geometry"`
	HasOptimizedGeometry          bool    `json:"has_optimized_geometry" yaml:"has_optimized_geometry"`
}

// newConflict snapshots the quantities compared during a stage1/stage2
// merge, with the stage1 record first.
func newConflict(stage1, stage2 *dataset.Conformer) *Conflict {
	e := stage1.Errors()
	return &Conflict{
		ConformerID:      stage1.ConformerID,
		ErrorNstat1:      e.ErrorNstat1,
		ErrorNstatC:      e.ErrorNstatC,
		ErrorFrequencies: e.ErrorFrequencies,
		ErrorNstatT:      e.ErrorNstatT,
		Stage1:           conflictSide(stage1),
		Stage2:           conflictSide(stage2),
	}
}

func conflictSide(c *dataset.Conformer) ConflictSide {
	side := ConflictSide{
		HasInitialGeometry:   len(c.InitialGeometries) > 0,
		HasOptimizedGeometry: c.OptimizedGeometry != nil,
	}
	if p := c.Properties; p != nil {
		side.InitialGeometryEnergy = scalar(p.InitialGeometryEnergy)
		side.InitialGeometryGradientNorm = scalar(p.InitialGeometryGradientNorm)
		side.OptimizedGeometryEnergy = scalar(p.OptimizedGeometryEnergy)
		side.OptimizedGeometryGradientNorm = scalar(p.OptimizedGeometryGradientNorm)
	}
	return side
}

// scalar returns the stored value, or zero when the field is unset.
func scalar(v *dataset.ScalarValue) float64 {
	if v == nil {
		return 0
	}
	return v.Value
}
