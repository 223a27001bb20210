package dataset

// SmilesComparison is the outcome of checking a topology's stored SMILES
// string against a freshly rendered one.
type SmilesComparison int

// SMILES comparison outcomes. The numbering is shared with the archived
// records and starts at 2.
const (
	SmilesUnspecified SmilesComparison = 0 // Comparison not performed
	SmilesMissing     SmilesComparison = 2 // No SMILES stored on the topology
	SmilesMismatch    SmilesComparison = 3 // Stored SMILES differs from the rendered form
	SmilesMatch       SmilesComparison = 4 // Stored and rendered SMILES agree
)

// String returns the uppercase name of the comparison outcome.
func (s SmilesComparison) String() string {
	switch s {
	case SmilesMissing:
		return "MISSING"
	case SmilesMismatch:
		return "MISMATCH"
	case SmilesMatch:
		return "MATCH"
	}
	return "UNSPECIFIED"
}

// Renderer turns a bond topology into a SMILES string. Implementations wrap
// an external chemistry toolkit; nothing in this module renders SMILES
// itself.
type Renderer interface {
	RenderSmiles(topology *BondTopology, includeHydrogens bool) (string, error)
}

// CompareSmiles renders the topology with and without explicit hydrogens
// and checks the hydrogen-free form against the stored SMILES. It returns
// the comparison outcome along with both rendered strings.
func CompareSmiles(r Renderer, topology *BondTopology) (SmilesComparison, string, string, error) {
	withHydrogens, err := r.RenderSmiles(topology, true)
	if err != nil {
		return SmilesUnspecified, "", "", err
	}
	withoutHydrogens, err := r.RenderSmiles(topology, false)
	if err != nil {
		return SmilesUnspecified, "", "", err
	}
	result := SmilesMatch
	switch {
	case topology.SMILES == "":
		result = SmilesMissing
	case topology.SMILES != withoutHydrogens:
		result = SmilesMismatch
	}
	return result, withHydrogens, withoutHydrogens, nil
}
