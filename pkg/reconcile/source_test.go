package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/errors"
	"github.com/openchem/molmap/pkg/reconcile"
)

func TestClassify(t *testing.T) {
	t.Run("stage1 record", func(t *testing.T) {
		source, err := reconcile.Classify(stage1Conformer(57001))
		require.NoError(t, err)
		assert.Equal(t, reconcile.SourceStage1, source)
	})

	t.Run("stage2 record", func(t *testing.T) {
		source, err := reconcile.Classify(stage2Conformer(57001))
		require.NoError(t, err)
		assert.Equal(t, reconcile.SourceStage2, source)
	})

	t.Run("duplicate marker with duplicated_by", func(t *testing.T) {
		source, err := reconcile.Classify(duplicateConformer(57001, 58001))
		require.NoError(t, err)
		assert.Equal(t, reconcile.SourceDuplicate, source)
	})

	t.Run("duplicate marker with duplicate_of", func(t *testing.T) {
		source, err := reconcile.Classify(duplicateConformer(57001, 0, 56001, 55001))
		require.NoError(t, err)
		assert.Equal(t, reconcile.SourceDuplicate, source)
	})

	t.Run("record with no information", func(t *testing.T) {
		_, err := reconcile.Classify(&dataset.Conformer{ConformerID: 57001})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidRecord(err))
	})

	t.Run("properties with unexpected statistics count", func(t *testing.T) {
		c := stage2Conformer(57001)
		c.Properties.CalculationStatistics = c.Properties.CalculationStatistics[:3]

		source, err := reconcile.Classify(c)
		require.NoError(t, err)
		assert.Equal(t, reconcile.SourceStage2, source)
	})
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "duplicate", reconcile.SourceDuplicate.String())
	assert.Equal(t, "stage1", reconcile.SourceStage1.String())
	assert.Equal(t, "stage2", reconcile.SourceStage2.String())
	assert.Equal(t, "unknown", reconcile.Source(9).String())
}
