// Package dataset defines the record types for the small molecule conformer
// collection: conformers, their computed properties, their plausible bond
// topologies, and the per-topology statistics kept alongside a release.
package dataset

import (
	"github.com/openchem/molmap/pkg/constants"
)

// Conformer is a single geometry of a molecule together with everything the
// calculation pipeline knows about it. Records arrive partial, as a duplicate
// marker, a stage1 result, or a stage2 result, and are merged into one
// canonical Conformer per ID.
type Conformer struct {
	// Identity
	ConformerID            int64  `json:"conformer_id" yaml:"conformer_id"`                                             // Bond topology ID * 1000 + conformer index
	OriginalConformerIndex *int64 `json:"original_conformer_index,omitempty" yaml:"original_conformer_index,omitempty"` // Position in the source archive ordering

	// Duplicate bookkeeping
	DuplicatedBy int64   `json:"duplicated_by,omitempty" yaml:"duplicated_by,omitempty"` // ID of the conformer this one collapsed into (0 when none)
	DuplicateOf  []int64 `json:"duplicate_of,omitempty" yaml:"duplicate_of,omitempty"`   // IDs of the conformers that collapsed into this one

	// Geometries
	InitialGeometries []Geometry `json:"initial_geometries,omitempty" yaml:"initial_geometries,omitempty"` // Starting geometries (at most one after merging)
	OptimizedGeometry *Geometry  `json:"optimized_geometry,omitempty" yaml:"optimized_geometry,omitempty"` // Relaxed geometry, when optimization ran

	// Topologies
	BondTopologies []BondTopology `json:"bond_topologies,omitempty" yaml:"bond_topologies,omitempty"` // Bonding arrangements consistent with the geometry

	// Calculation results
	Properties *Properties `json:"properties,omitempty" yaml:"properties,omitempty"` // Computed properties (absent on duplicate markers)

	// Curation outcome
	Fate          FateCategory `json:"fate,omitempty" yaml:"fate,omitempty"`                     // What ultimately happened to this conformer
	WhichDatabase Availability `json:"which_database,omitempty" yaml:"which_database,omitempty"` // Release the record belongs to
}

// Geometry is a set of atom positions, one per atom, in the same order as
// the atoms of the conformer's bond topologies.
type Geometry struct {
	AtomPositions []Point `json:"atom_positions" yaml:"atom_positions"`
}

// Point is a single atom position. Units follow the source archive; nothing
// in this module converts them.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// BondTopologyIDFromConformerID extracts the bond topology ID encoded in a
// conformer ID.
func BondTopologyIDFromConformerID(conformerID int64) int64 {
	return conformerID / constants.ConformersPerBondTopology
}

// Errors returns the calculation error block, or a zero value when the
// record carries no properties. Use MutableErrors to write.
func (c *Conformer) Errors() CalculationErrors {
	if c.Properties == nil || c.Properties.Errors == nil {
		return CalculationErrors{}
	}
	return *c.Properties.Errors
}

// MutableErrors returns the calculation error block, allocating the
// properties and error structures when absent.
func (c *Conformer) MutableErrors() *CalculationErrors {
	if c.Properties == nil {
		c.Properties = &Properties{}
	}
	if c.Properties.Errors == nil {
		c.Properties.Errors = &CalculationErrors{}
	}
	return c.Properties.Errors
}

// EligibleForTopologyDetection reports whether topology detection should run
// for this conformer. Duplicates are skipped, as are records whose status
// says the calculation never produced a usable geometry.
func (c *Conformer) EligibleForTopologyDetection() bool {
	if c.DuplicatedBy != 0 {
		return false
	}
	status := c.Errors().Status
	return status >= 0 && status < constants.TopologyDetectionStatusLimit
}

// FateCategory records what the curation pipeline ultimately did with a
// conformer.
type FateCategory int

// Fate categories, ordered roughly from "never calculated" to "fully usable".
const (
	FateUndefined                         FateCategory = iota // Not yet determined
	FateDuplicateSameTopology                                 // Collapsed into a conformer of the same bond topology
	FateDuplicateDifferentTopology                            // Collapsed into a conformer of a different bond topology
	FateGeometryOptimizationProblem                           // Geometry optimization failed
	FateDisassociated                                         // Molecule fell apart during optimization
	FateForceConstantFailure                                  // Force constant calculation failed
	FateDiscardedOther                                        // Discarded for another reason
	FateNoCalculationResults                                  // Geometry kept but nothing was calculated
	FateCalculationWithSeriousError                           // Calculation finished with serious errors
	FateCalculationWithMajorError                             // Calculation finished with major errors
	FateCalculationWithModerateError                          // Calculation finished with moderate errors
	FateCalculationWithWarningSerious                         // Calculation finished with serious warnings
	FateCalculationWithWarningVibrational                     // Calculation finished with vibrational warnings
	FateSuccess                                               // Calculation finished cleanly
)

// String returns the snake_case name of the fate category.
func (f FateCategory) String() string {
	switch f {
	case FateUndefined:
		return "undefined"
	case FateDuplicateSameTopology:
		return "duplicate_same_topology"
	case FateDuplicateDifferentTopology:
		return "duplicate_different_topology"
	case FateGeometryOptimizationProblem:
		return "geometry_optimization_problem"
	case FateDisassociated:
		return "disassociated"
	case FateForceConstantFailure:
		return "force_constant_failure"
	case FateDiscardedOther:
		return "discarded_other"
	case FateNoCalculationResults:
		return "no_calculation_results"
	case FateCalculationWithSeriousError:
		return "calculation_with_serious_error"
	case FateCalculationWithMajorError:
		return "calculation_with_major_error"
	case FateCalculationWithModerateError:
		return "calculation_with_moderate_error"
	case FateCalculationWithWarningSerious:
		return "calculation_with_warning_serious"
	case FateCalculationWithWarningVibrational:
		return "calculation_with_warning_vibrational"
	case FateSuccess:
		return "success"
	}
	return "unknown"
}

// Availability says which release tier a property or record belongs to.
type Availability int

// Release tiers, from unassigned to most restricted.
const (
	AvailabilityUnspecified  Availability = iota // No tier assigned
	AvailabilityStandard                         // Released in the standard database
	AvailabilityComplete                         // Released only in the complete database
	AvailabilityInternalOnly                     // Never released
)

// String returns the snake_case name of the availability tier.
func (a Availability) String() string {
	switch a {
	case AvailabilityUnspecified:
		return "unspecified"
	case AvailabilityStandard:
		return "standard"
	case AvailabilityComplete:
		return "complete"
	case AvailabilityInternalOnly:
		return "internal_only"
	}
	return "unknown"
}

// ParseAvailability maps a tier name to its Availability value. Unknown
// names map to AvailabilityUnspecified.
func ParseAvailability(name string) Availability {
	switch name {
	case "standard":
		return AvailabilityStandard
	case "complete":
		return AvailabilityComplete
	case "internal_only":
		return AvailabilityInternalOnly
	}
	return AvailabilityUnspecified
}
