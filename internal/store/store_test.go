package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openchem/molmap/internal/store"
	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/errors"
)

// Helper to build a finalized record with one topology
func storedConformer(id int64, smiles string) *dataset.Conformer {
	return &dataset.Conformer{
		ConformerID: id,
		BondTopologies: []dataset.BondTopology{{
			BondTopologyID:     id / 1000,
			Atoms:              []dataset.AtomType{dataset.AtomC},
			SMILES:             smiles,
			IsStartingTopology: true,
		}},
		Fate: dataset.FateSuccess,
	}
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Create(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBulkInsertAndLookup(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	records := []*dataset.Conformer{
		storedConformer(618451001, "C"),
		storedConformer(618451002, "C"),
		storedConformer(57001, "N"),
	}
	require.NoError(t, s.BulkInsert(ctx, records, 2))

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	t.Run("by conformer id", func(t *testing.T) {
		c, err := s.Conformer(ctx, 618451002)
		require.NoError(t, err)
		assert.Equal(t, int64(618451002), c.ConformerID)
		assert.Equal(t, dataset.FateSuccess, c.Fate)
	})

	t.Run("by bond topology id", func(t *testing.T) {
		found, err := s.ByBondTopologyID(ctx, 618451)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, int64(618451001), found[0].ConformerID)
		assert.Equal(t, int64(618451002), found[1].ConformerID)
	})

	t.Run("by smiles", func(t *testing.T) {
		found, err := s.BySmiles(ctx, "N")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, int64(57001), found[0].ConformerID)
	})
}

func TestLookupMissing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Conformer(ctx, 999999001)
	assert.True(t, errors.IsNotFound(err))

	_, err = s.BySmiles(ctx, "O")
	assert.True(t, errors.IsNotFound(err))

	found, err := s.ByBondTopologyID(ctx, 999999)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestBulkInsertRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.BulkInsert(ctx, []*dataset.Conformer{storedConformer(57001, "C")}, 0))
	err := s.BulkInsert(ctx, []*dataset.Conformer{storedConformer(57001, "C")}, 0)
	assert.Error(t, err)
}
