package dataset

import (
	"reflect"
	"strings"
)

// ScalarValue is a single floating point result.
type ScalarValue struct {
	Value float64 `json:"value" yaml:"value"`
}

// MultiScalarValue is an ordered list of floating point results, one per
// mode, excitation, or other repeated quantity.
type MultiScalarValue struct {
	Values []float64 `json:"values,omitempty" yaml:"values,omitempty"`
}

// AtomicValues is one floating point result per atom, in topology atom order.
type AtomicValues struct {
	Values []float64 `json:"values,omitempty" yaml:"values,omitempty"`
}

// Vector3 is a three component vector quantity such as a dipole moment.
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// CalculationStatistic is one row of the per-stage accounting carried over
// from the source archives. Stage1 records carry exactly two rows.
type CalculationStatistic struct {
	Computing string `json:"computing" yaml:"computing"` // What was computed
	Timings   string `json:"timings" yaml:"timings"`     // Wall clock accounting
}

// CalculationErrors captures the status and warning flags attached to a
// calculation. Stage1 records use the legacy error_* codes, stage2 records
// use status plus the warn_* flags.
type CalculationErrors struct {
	Status int `json:"status" yaml:"status"` // Overall calculation status

	// Legacy stage1 codes
	ErrorNstat1      int `json:"error_nstat1,omitempty" yaml:"error_nstat1,omitempty"`           // Geometry optimization outcome
	ErrorNstatC      int `json:"error_nstatc,omitempty" yaml:"error_nstatc,omitempty"`           // Calculation completeness
	ErrorNstatT      int `json:"error_nstatt,omitempty" yaml:"error_nstatt,omitempty"`           // Thermochemistry outcome
	ErrorFrequencies int `json:"error_frequencies,omitempty" yaml:"error_frequencies,omitempty"` // Frequency calculation outcome

	// Warning flags set during stage2 analysis
	WarnT1                    int `json:"warn_t1,omitempty" yaml:"warn_t1,omitempty"`
	WarnT1Excess              int `json:"warn_t1_excess,omitempty" yaml:"warn_t1_excess,omitempty"`
	WarnBseB5B6               int `json:"warn_bse_b5_b6,omitempty" yaml:"warn_bse_b5_b6,omitempty"`
	WarnBseCccsdB5            int `json:"warn_bse_cccsd_b5,omitempty" yaml:"warn_bse_cccsd_b5,omitempty"`
	WarnExcLowestExcitation   int `json:"warn_exc_lowest_excitation,omitempty" yaml:"warn_exc_lowest_excitation,omitempty"`
	WarnExcSmallestOscillator int `json:"warn_exc_smallest_oscillator,omitempty" yaml:"warn_exc_smallest_oscillator,omitempty"`
	WarnExcLargestOscillator  int `json:"warn_exc_largest_oscillator,omitempty" yaml:"warn_exc_largest_oscillator,omitempty"`
	WarnVibLinearity          int `json:"warn_vib_linearity,omitempty" yaml:"warn_vib_linearity,omitempty"`
	WarnVibImaginary          int `json:"warn_vib_imaginary,omitempty" yaml:"warn_vib_imaginary,omitempty"`
}

// Properties holds every computed quantity attached to a conformer. Each
// field carries an avail tag naming its release tier; fields where a stored
// zero almost certainly means a pipeline bug also carry zero:"suspect".
type Properties struct {
	// Status and accounting
	Errors                *CalculationErrors     `json:"errors,omitempty" yaml:"errors,omitempty" avail:"standard"`
	CalculationStatistics []CalculationStatistic `json:"calculation_statistics,omitempty" yaml:"calculation_statistics,omitempty" avail:"internal_only"`

	// Geometry optimization
	InitialGeometryEnergy         *ScalarValue `json:"initial_geometry_energy,omitempty" yaml:"initial_geometry_energy,omitempty" avail:"complete"`
	InitialGeometryGradientNorm   *ScalarValue `json:"initial_geometry_gradient_norm,omitempty" yaml:"initial_geometry_gradient_norm,omitempty" avail:"complete"`
	OptimizedGeometryEnergy       *ScalarValue `json:"optimized_geometry_energy,omitempty" yaml:"optimized_geometry_energy,omitempty" avail:"standard"`
	OptimizedGeometryGradientNorm *ScalarValue `json:"optimized_geometry_gradient_norm,omitempty" yaml:"optimized_geometry_gradient_norm,omitempty" avail:"standard"`

	// Single point energies
	SinglePointEnergyAtomicB5   *ScalarValue `json:"single_point_energy_atomic_b5,omitempty" yaml:"single_point_energy_atomic_b5,omitempty" avail:"standard" zero:"suspect"`
	SinglePointEnergyAtomicB6   *ScalarValue `json:"single_point_energy_atomic_b6,omitempty" yaml:"single_point_energy_atomic_b6,omitempty" avail:"complete" zero:"suspect"`
	SinglePointEnergyEccsd      *ScalarValue `json:"single_point_energy_eccsd,omitempty" yaml:"single_point_energy_eccsd,omitempty" avail:"complete" zero:"suspect"`
	SinglePointEnergyCc2Tzvp    *ScalarValue `json:"single_point_energy_cc2_tzvp,omitempty" yaml:"single_point_energy_cc2_tzvp,omitempty" avail:"complete" zero:"suspect"`
	SinglePointEnergyHf631Gd    *ScalarValue `json:"single_point_energy_hf_6_31gd,omitempty" yaml:"single_point_energy_hf_6_31gd,omitempty" avail:"complete" zero:"suspect"`
	SinglePointEnergyPbe06311Gd *ScalarValue `json:"single_point_energy_pbe0_6_311gd,omitempty" yaml:"single_point_energy_pbe0_6_311gd,omitempty" avail:"complete" zero:"suspect"`

	// Frontier orbitals
	HomoPbe06311Gd *ScalarValue `json:"homo_pbe0_6_311gd,omitempty" yaml:"homo_pbe0_6_311gd,omitempty" avail:"standard" zero:"suspect"`
	LumoPbe06311Gd *ScalarValue `json:"lumo_pbe0_6_311gd,omitempty" yaml:"lumo_pbe0_6_311gd,omitempty" avail:"standard" zero:"suspect"`

	// Thermochemistry
	ZpeUnscaled                           *ScalarValue `json:"zpe_unscaled,omitempty" yaml:"zpe_unscaled,omitempty" avail:"complete"`
	AtomizationEnergyExcludingZpeAtomicB5 *ScalarValue `json:"atomization_energy_excluding_zpe_atomic_b5,omitempty" yaml:"atomization_energy_excluding_zpe_atomic_b5,omitempty" avail:"standard" zero:"suspect"`
	EnthalpyOfFormation0KAtomicB5         *ScalarValue `json:"enthalpy_of_formation_0k_atomic_b5,omitempty" yaml:"enthalpy_of_formation_0k_atomic_b5,omitempty" avail:"standard" zero:"suspect"`
	EnthalpyOfFormation298KAtomicB5       *ScalarValue `json:"enthalpy_of_formation_298k_atomic_b5,omitempty" yaml:"enthalpy_of_formation_298k_atomic_b5,omitempty" avail:"complete" zero:"suspect"`

	// Vibrational analysis
	HarmonicFrequencies *MultiScalarValue `json:"harmonic_frequencies,omitempty" yaml:"harmonic_frequencies,omitempty" avail:"standard"`
	HarmonicIntensities *MultiScalarValue `json:"harmonic_intensities,omitempty" yaml:"harmonic_intensities,omitempty" avail:"complete"`

	// Excited states
	ExcitationEnergiesCc2            *MultiScalarValue `json:"excitation_energies_cc2,omitempty" yaml:"excitation_energies_cc2,omitempty" avail:"complete" zero:"suspect"`
	ExcitationOscillatorStrengthsCc2 *MultiScalarValue `json:"excitation_oscillator_strengths_cc2,omitempty" yaml:"excitation_oscillator_strengths_cc2,omitempty" avail:"complete"`

	// Per atom quantities
	NmrIsotropicShieldingPbe0631Ppgd *AtomicValues `json:"nmr_isotropic_shielding_pbe0_6_31ppgd,omitempty" yaml:"nmr_isotropic_shielding_pbe0_6_31ppgd,omitempty" avail:"complete" zero:"suspect"`
	PartialChargesMullikenHf631Gd    *AtomicValues `json:"partial_charges_mulliken_hf_6_31gd,omitempty" yaml:"partial_charges_mulliken_hf_6_31gd,omitempty" avail:"complete" zero:"suspect"`
	PartialChargesMullikenPbe0AugPc1 *AtomicValues `json:"partial_charges_mulliken_pbe0_aug_pc_1,omitempty" yaml:"partial_charges_mulliken_pbe0_aug_pc_1,omitempty" avail:"complete" zero:"suspect"`

	// Vector quantities
	DipoleMomentPbe0AugPc1 *Vector3 `json:"dipole_moment_pbe0_aug_pc_1,omitempty" yaml:"dipole_moment_pbe0_aug_pc_1,omitempty" avail:"standard"`
}

// PropertyField is a single schema-tagged field of Properties paired with
// its runtime value. It lets release filtering and validation walk the
// property set without enumerating field names by hand.
type PropertyField struct {
	Name           string       // JSON name of the field
	Availability   Availability // Release tier the field belongs to
	ZeroSuspicious bool         // Whether a stored zero signals a pipeline bug

	value reflect.Value
}

// IsSet reports whether the field carries a value.
func (f PropertyField) IsSet() bool {
	switch f.value.Kind() {
	case reflect.Pointer:
		return !f.value.IsNil()
	case reflect.Slice:
		return f.value.Len() > 0
	default:
		return !f.value.IsZero()
	}
}

// Clear resets the field to its unset state.
func (f PropertyField) Clear() {
	f.value.Set(reflect.Zero(f.value.Type()))
}

// zeroCount returns how many exact zeros the field currently stores.
func (f PropertyField) zeroCount() int {
	switch v := f.value.Interface().(type) {
	case *ScalarValue:
		if v != nil && v.Value == 0 {
			return 1
		}
	case *MultiScalarValue:
		if v != nil {
			return countZeros(v.Values)
		}
	case *AtomicValues:
		if v != nil {
			return countZeros(v.Values)
		}
	}
	return 0
}

func countZeros(values []float64) int {
	n := 0
	for _, v := range values {
		if v == 0 {
			n++
		}
	}
	return n
}

// Fields returns the schema-tagged property fields in declaration order.
func (p *Properties) Fields() []PropertyField {
	v := reflect.ValueOf(p).Elem()
	t := v.Type()
	fields := make([]PropertyField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		avail := t.Field(i).Tag.Get("avail")
		if avail == "" {
			continue
		}
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		fields = append(fields, PropertyField{
			Name:           name,
			Availability:   ParseAvailability(avail),
			ZeroSuspicious: t.Field(i).Tag.Get("zero") == "suspect",
			value:          v.Field(i),
		})
	}
	return fields
}

// FindZeroValues lists the properties whose stored value is exactly zero
// where zero is not a plausible result. Repeated fields contribute one entry
// per zero element.
func (c *Conformer) FindZeroValues() []string {
	if c.Properties == nil {
		return nil
	}
	var found []string
	for _, field := range c.Properties.Fields() {
		if !field.ZeroSuspicious {
			continue
		}
		for i := 0; i < field.zeroCount(); i++ {
			found = append(found, field.Name)
		}
	}
	return found
}
