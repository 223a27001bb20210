package dataset

// BondTopologySummary aggregates conformer outcomes for one bond topology.
// The count_* fields cover conformers enumerated from this topology; the
// count_detected_match_* fields cover conformers that started elsewhere but
// matched this topology during topology detection.
type BondTopologySummary struct {
	BondTopology BondTopology `json:"bond_topology" yaml:"bond_topology"`

	// Outcomes of conformers that started from this topology
	CountAttemptedConformers         int64 `json:"count_attempted_conformers,omitempty" yaml:"count_attempted_conformers,omitempty"`
	CountDuplicatesSameTopology      int64 `json:"count_duplicates_same_topology,omitempty" yaml:"count_duplicates_same_topology,omitempty"`
	CountDuplicatesDifferentTopology int64 `json:"count_duplicates_different_topology,omitempty" yaml:"count_duplicates_different_topology,omitempty"`
	CountFailedGeometryOptimization  int64 `json:"count_failed_geometry_optimization,omitempty" yaml:"count_failed_geometry_optimization,omitempty"`
	CountKeptGeometry                int64 `json:"count_kept_geometry,omitempty" yaml:"count_kept_geometry,omitempty"`
	CountMissingCalculation          int64 `json:"count_missing_calculation,omitempty" yaml:"count_missing_calculation,omitempty"`
	CountCalculationWithError        int64 `json:"count_calculation_with_error,omitempty" yaml:"count_calculation_with_error,omitempty"`
	CountCalculationWithWarning      int64 `json:"count_calculation_with_warning,omitempty" yaml:"count_calculation_with_warning,omitempty"`
	CountCalculationSuccess          int64 `json:"count_calculation_success,omitempty" yaml:"count_calculation_success,omitempty"`

	// Topology detection matches from conformers that started elsewhere
	CountDetectedMatchWithError   int64 `json:"count_detected_match_with_error,omitempty" yaml:"count_detected_match_with_error,omitempty"`
	CountDetectedMatchWithWarning int64 `json:"count_detected_match_with_warning,omitempty" yaml:"count_detected_match_with_warning,omitempty"`
	CountDetectedMatchSuccess     int64 `json:"count_detected_match_success,omitempty" yaml:"count_detected_match_success,omitempty"`
}

// Add accumulates the counts of other into s. The embedded topology is left
// untouched.
func (s *BondTopologySummary) Add(other *BondTopologySummary) {
	s.CountAttemptedConformers += other.CountAttemptedConformers
	s.CountDuplicatesSameTopology += other.CountDuplicatesSameTopology
	s.CountDuplicatesDifferentTopology += other.CountDuplicatesDifferentTopology
	s.CountFailedGeometryOptimization += other.CountFailedGeometryOptimization
	s.CountKeptGeometry += other.CountKeptGeometry
	s.CountMissingCalculation += other.CountMissingCalculation
	s.CountCalculationWithError += other.CountCalculationWithError
	s.CountCalculationWithWarning += other.CountCalculationWithWarning
	s.CountCalculationSuccess += other.CountCalculationSuccess
	s.CountDetectedMatchWithError += other.CountDetectedMatchWithError
	s.CountDetectedMatchWithWarning += other.CountDetectedMatchWithWarning
	s.CountDetectedMatchSuccess += other.CountDetectedMatchSuccess
}
