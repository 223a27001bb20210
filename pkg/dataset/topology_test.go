package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openchem/molmap/pkg/dataset"
)

// benzene builds the C6H6 ring with alternating single and double bonds.
// Heavy atoms occupy indexes 0-5, hydrogens 6-11.
func benzene() *dataset.BondTopology {
	bt := &dataset.BondTopology{
		BondTopologyID: 618451,
		SMILES:         "c1ccccc1",
	}
	for i := 0; i < 6; i++ {
		bt.Atoms = append(bt.Atoms, dataset.AtomC)
	}
	for i := 0; i < 6; i++ {
		bt.Atoms = append(bt.Atoms, dataset.AtomH)
	}
	for i := 0; i < 6; i++ {
		bondType := dataset.BondSingle
		if i%2 == 1 {
			bondType = dataset.BondDouble
		}
		bt.Bonds = append(bt.Bonds, dataset.Bond{AtomA: i, AtomB: (i + 1) % 6, BondType: bondType})
		bt.Bonds = append(bt.Bonds, dataset.Bond{AtomA: i, AtomB: i + 6, BondType: dataset.BondSingle})
	}
	return bt
}

// propene builds CH2=CH-CH3 with carbons at indexes 0-2.
func propene() *dataset.BondTopology {
	return &dataset.BondTopology{
		BondTopologyID: 35,
		Atoms: []dataset.AtomType{
			dataset.AtomC, dataset.AtomC, dataset.AtomC,
			dataset.AtomH, dataset.AtomH, dataset.AtomH,
			dataset.AtomH, dataset.AtomH, dataset.AtomH,
		},
		Bonds: []dataset.Bond{
			{AtomA: 0, AtomB: 1, BondType: dataset.BondDouble},
			{AtomA: 1, AtomB: 2, BondType: dataset.BondSingle},
			{AtomA: 0, AtomB: 3, BondType: dataset.BondSingle},
			{AtomA: 0, AtomB: 4, BondType: dataset.BondSingle},
			{AtomA: 1, AtomB: 5, BondType: dataset.BondSingle},
			{AtomA: 2, AtomB: 6, BondType: dataset.BondSingle},
			{AtomA: 2, AtomB: 7, BondType: dataset.BondSingle},
			{AtomA: 2, AtomB: 8, BondType: dataset.BondSingle},
		},
	}
}

// water builds H2O with the oxygen at index 0.
func water() *dataset.BondTopology {
	return &dataset.BondTopology{
		BondTopologyID: 1,
		Atoms:          []dataset.AtomType{dataset.AtomO, dataset.AtomH, dataset.AtomH},
		Bonds: []dataset.Bond{
			{AtomA: 0, AtomB: 1, BondType: dataset.BondSingle},
			{AtomA: 0, AtomB: 2, BondType: dataset.BondSingle},
		},
	}
}

func TestAtomType(t *testing.T) {
	t.Run("chars", func(t *testing.T) {
		assert.Equal(t, "c", dataset.AtomC.Char())
		assert.Equal(t, "n", dataset.AtomN.Char())
		assert.Equal(t, "n", dataset.AtomNPos.Char())
		assert.Equal(t, "o", dataset.AtomO.Char())
		assert.Equal(t, "o", dataset.AtomONeg.Char())
		assert.Equal(t, "f", dataset.AtomF.Char())
		assert.Equal(t, "h", dataset.AtomH.Char())
		assert.Equal(t, "", dataset.AtomUndefined.Char())
	})

	t.Run("max bonds", func(t *testing.T) {
		tests := []struct {
			atom dataset.AtomType
			want int
		}{
			{dataset.AtomC, 4},
			{dataset.AtomN, 3},
			{dataset.AtomNPos, 4},
			{dataset.AtomO, 2},
			{dataset.AtomONeg, 1},
			{dataset.AtomF, 1},
			{dataset.AtomH, 1},
			{dataset.AtomUndefined, 0},
		}
		for _, tc := range tests {
			assert.Equal(t, tc.want, tc.atom.MaxBonds(), "atom %d", tc.atom)
		}
	})

	t.Run("atomic numbers", func(t *testing.T) {
		assert.Equal(t, 6, dataset.AtomC.AtomicNumber())
		assert.Equal(t, 7, dataset.AtomNPos.AtomicNumber())
		assert.Equal(t, 8, dataset.AtomONeg.AtomicNumber())
		assert.Equal(t, 9, dataset.AtomF.AtomicNumber())
		assert.Equal(t, 1, dataset.AtomH.AtomicNumber())
	})

	t.Run("heavy", func(t *testing.T) {
		assert.True(t, dataset.AtomC.IsHeavy())
		assert.True(t, dataset.AtomONeg.IsHeavy())
		assert.False(t, dataset.AtomH.IsHeavy())
		assert.False(t, dataset.AtomUndefined.IsHeavy())
	})
}

func TestBondTypeOrder(t *testing.T) {
	assert.Equal(t, 0, dataset.BondUndefined.Order())
	assert.Equal(t, 1, dataset.BondSingle.Order())
	assert.Equal(t, 2, dataset.BondDouble.Order())
	assert.Equal(t, 3, dataset.BondTriple.Order())
}

func TestBondTopologyEqual(t *testing.T) {
	t.Run("identical", func(t *testing.T) {
		assert.True(t, benzene().Equal(benzene()))
	})

	t.Run("different smiles", func(t *testing.T) {
		a, b := benzene(), benzene()
		b.SMILES = "C1=CC=CC=C1"
		assert.False(t, a.Equal(b))
	})

	t.Run("different starting flag", func(t *testing.T) {
		a, b := benzene(), benzene()
		b.IsStartingTopology = true
		assert.False(t, a.Equal(b))
	})

	t.Run("different bonds", func(t *testing.T) {
		a, b := benzene(), benzene()
		b.Bonds[0].BondType = dataset.BondTriple
		assert.False(t, a.Equal(b))
	})

	t.Run("different id", func(t *testing.T) {
		a, b := benzene(), benzene()
		b.BondTopologyID = 999
		assert.False(t, a.Equal(b))
	})

	t.Run("nil handling", func(t *testing.T) {
		var nilTopology *dataset.BondTopology
		assert.True(t, nilTopology.Equal(nil))
		assert.False(t, benzene().Equal(nil))
		assert.False(t, nilTopology.Equal(benzene()))
	})
}

func TestHeavyAtomCount(t *testing.T) {
	assert.Equal(t, 6, benzene().HeavyAtomCount())
	assert.Equal(t, 3, propene().HeavyAtomCount())
	assert.Equal(t, 1, water().HeavyAtomCount())
}

func TestAdjacencyMatrix(t *testing.T) {
	t.Run("propene", func(t *testing.T) {
		want := [][]int{
			{0, 2, 0},
			{2, 0, 1},
			{0, 1, 0},
		}
		assert.Equal(t, want, propene().AdjacencyMatrix())
	})

	t.Run("hydrogen bonds are skipped", func(t *testing.T) {
		assert.Equal(t, [][]int{{0}}, water().AdjacencyMatrix())
	})

	t.Run("benzene ring orders", func(t *testing.T) {
		matrix := benzene().AdjacencyMatrix()
		assert.Len(t, matrix, 6)
		assert.Equal(t, 1, matrix[0][1])
		assert.Equal(t, 2, matrix[1][2])
		assert.Equal(t, 2, matrix[5][0])
		assert.Equal(t, 0, matrix[0][3])
	})
}

func TestBondedHydrogens(t *testing.T) {
	assert.Equal(t, []int{2, 1, 3}, propene().BondedHydrogens())
	assert.Equal(t, []int{2}, water().BondedHydrogens())
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, benzene().BondedHydrogens())
}

func TestComposition(t *testing.T) {
	tests := []struct {
		name     string
		topology *dataset.BondTopology
		want     string
	}{
		{"benzene", benzene(), "x06_c6h6"},
		{"propene", propene(), "x03_c3h6"},
		{"water", water(), "x01_oh2"},
		{
			"fluoroform",
			&dataset.BondTopology{
				Atoms: []dataset.AtomType{
					dataset.AtomC, dataset.AtomF, dataset.AtomF, dataset.AtomF, dataset.AtomH,
				},
			},
			"x04_cf3h",
		},
		{
			"methane",
			&dataset.BondTopology{
				Atoms: []dataset.AtomType{
					dataset.AtomC, dataset.AtomH, dataset.AtomH, dataset.AtomH, dataset.AtomH,
				},
			},
			"x01_ch4",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.topology.Composition())
		})
	}
}

func TestCanonicalStoichiometryWithHydrogens(t *testing.T) {
	t.Run("benzene collapses to one component", func(t *testing.T) {
		assert.Equal(t, "(ch)6", benzene().CanonicalStoichiometryWithHydrogens())
	})

	t.Run("propene emits components in fixed order", func(t *testing.T) {
		assert.Equal(t, "(ch)(ch2)(ch3)", propene().CanonicalStoichiometryWithHydrogens())
	})

	t.Run("water", func(t *testing.T) {
		assert.Equal(t, "(oh2)", water().CanonicalStoichiometryWithHydrogens())
	})

	t.Run("fluoroform", func(t *testing.T) {
		bt := &dataset.BondTopology{
			Atoms: []dataset.AtomType{
				dataset.AtomC, dataset.AtomF, dataset.AtomF, dataset.AtomF, dataset.AtomH,
			},
			Bonds: []dataset.Bond{
				{AtomA: 0, AtomB: 1, BondType: dataset.BondSingle},
				{AtomA: 0, AtomB: 2, BondType: dataset.BondSingle},
				{AtomA: 0, AtomB: 3, BondType: dataset.BondSingle},
				{AtomA: 0, AtomB: 4, BondType: dataset.BondSingle},
			},
		}
		assert.Equal(t, "(ch)(f)3", bt.CanonicalStoichiometryWithHydrogens())
	})
}
