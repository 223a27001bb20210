package dataset

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// AtomType identifies the element and charge state of an atom. The
// collection only contains molecules built from C, N, O, F and H, plus two
// charged variants.
type AtomType int

// Atom types.
const (
	AtomUndefined AtomType = iota // Placeholder
	AtomC                         // Carbon
	AtomN                         // Nitrogen
	AtomNPos                      // Nitrogen with a +1 formal charge
	AtomO                         // Oxygen
	AtomONeg                      // Oxygen with a -1 formal charge
	AtomF                         // Fluorine
	AtomH                         // Hydrogen
)

// Char returns the lowercase element letter used in composition and
// stoichiometry strings. Charged variants share their element's letter.
func (a AtomType) Char() string {
	switch a {
	case AtomC:
		return "c"
	case AtomN, AtomNPos:
		return "n"
	case AtomO, AtomONeg:
		return "o"
	case AtomF:
		return "f"
	case AtomH:
		return "h"
	}
	return ""
}

// MaxBonds returns the maximum number of bonds the atom can form.
func (a AtomType) MaxBonds() int {
	switch a {
	case AtomC:
		return 4
	case AtomN:
		return 3
	case AtomNPos:
		return 4
	case AtomO:
		return 2
	case AtomONeg:
		return 1
	case AtomF:
		return 1
	case AtomH:
		return 1
	}
	return 0
}

// AtomicNumber returns the element's atomic number.
func (a AtomType) AtomicNumber() int {
	switch a {
	case AtomC:
		return 6
	case AtomN, AtomNPos:
		return 7
	case AtomO, AtomONeg:
		return 8
	case AtomF:
		return 9
	case AtomH:
		return 1
	}
	return 0
}

// IsHeavy reports whether the atom is anything but hydrogen.
func (a AtomType) IsHeavy() bool {
	return a != AtomH && a != AtomUndefined
}

// BondType is the bond order between two atoms.
type BondType int

// Bond types.
const (
	BondUndefined BondType = iota // Placeholder
	BondSingle                    // Single bond
	BondDouble                    // Double bond
	BondTriple                    // Triple bond
)

// Order returns the integer bond order.
func (b BondType) Order() int {
	return int(b)
}

// Bond connects two atoms by index into the topology's atom list.
type Bond struct {
	AtomA    int      `json:"atom_a" yaml:"atom_a"`
	AtomB    int      `json:"atom_b" yaml:"atom_b"`
	BondType BondType `json:"bond_type" yaml:"bond_type"`
}

// BondTopology is one bonding arrangement for a conformer's atoms. Heavy
// atoms come first in the atom list, hydrogens after them.
type BondTopology struct {
	BondTopologyID     int64      `json:"bond_topology_id" yaml:"bond_topology_id"`
	Atoms              []AtomType `json:"atoms" yaml:"atoms"`
	Bonds              []Bond     `json:"bonds,omitempty" yaml:"bonds,omitempty"`
	SMILES             string     `json:"smiles,omitempty" yaml:"smiles,omitempty"`
	IsStartingTopology bool       `json:"is_starting_topology,omitempty" yaml:"is_starting_topology,omitempty"`
}

// Equal reports whether two topologies are structurally identical: same ID,
// atoms, bonds, SMILES, and starting flag.
func (bt *BondTopology) Equal(other *BondTopology) bool {
	if bt == nil || other == nil {
		return bt == other
	}
	return bt.BondTopologyID == other.BondTopologyID &&
		slices.Equal(bt.Atoms, other.Atoms) &&
		slices.Equal(bt.Bonds, other.Bonds) &&
		bt.SMILES == other.SMILES &&
		bt.IsStartingTopology == other.IsStartingTopology
}

// HeavyAtomCount returns the number of non-hydrogen atoms.
func (bt *BondTopology) HeavyAtomCount() int {
	n := 0
	for _, atom := range bt.Atoms {
		if atom != AtomH {
			n++
		}
	}
	return n
}

// AdjacencyMatrix returns the heavy atom bond order matrix. Bonds involving
// hydrogen are skipped; the matrix is symmetric.
func (bt *BondTopology) AdjacencyMatrix() [][]int {
	side := bt.HeavyAtomCount()
	matrix := make([][]int, side)
	for i := range matrix {
		matrix[i] = make([]int, side)
	}
	for _, bond := range bt.Bonds {
		if bt.Atoms[bond.AtomA] == AtomH || bt.Atoms[bond.AtomB] == AtomH {
			continue
		}
		order := bond.BondType.Order()
		matrix[bond.AtomA][bond.AtomB] = order
		matrix[bond.AtomB][bond.AtomA] = order
	}
	return matrix
}

// BondedHydrogens returns, for each heavy atom, how many hydrogens its
// remaining valence carries once heavy atom bonds are accounted for.
func (bt *BondTopology) BondedHydrogens() []int {
	matrix := bt.AdjacencyMatrix()
	counts := make([]int, len(matrix))
	for i, row := range matrix {
		n := bt.Atoms[i].MaxBonds()
		for _, order := range row {
			n -= order
		}
		counts[i] = n
	}
	return counts
}

// Composition returns the compact composition label for the topology, such
// as "x07_c4o2fh7": the heavy atom count, then per-element counts in
// c, n, o, f, h order. Absent elements are dropped and singleton counts are
// left implicit.
func (bt *BondTopology) Composition() string {
	counts := make(map[string]int, 5)
	for _, atom := range bt.Atoms {
		counts[atom.Char()]++
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "x%02d_", bt.HeavyAtomCount())
	for _, char := range []string{"c", "n", "o", "f", "h"} {
		n := counts[char]
		if n == 0 {
			continue
		}
		sb.WriteString(char)
		if n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}

// stoichiometryComponents fixes the emission order of hydrogen-partitioned
// components.
var stoichiometryComponents = []string{
	"c", "ch", "ch2", "ch3", "ch4",
	"n", "nh", "nh2", "nh3",
	"o", "oh", "oh2",
	"f", "fh",
}

// CanonicalStoichiometryWithHydrogens returns the hydrogen-partitioned
// stoichiometry label, such as "(ch)6" for benzene: each heavy atom becomes
// an element-plus-hydrogen component and equal components are counted.
func (bt *BondTopology) CanonicalStoichiometryWithHydrogens() string {
	counts := make(map[string]int, len(stoichiometryComponents))
	for i, h := range bt.BondedHydrogens() {
		component := bt.Atoms[i].Char()
		if h >= 1 {
			component += "h"
			if h > 1 {
				component += strconv.Itoa(h)
			}
		}
		counts[component]++
	}
	var sb strings.Builder
	for _, component := range stoichiometryComponents {
		n := counts[component]
		if n == 0 {
			continue
		}
		sb.WriteString("(")
		sb.WriteString(component)
		sb.WriteString(")")
		if n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}
