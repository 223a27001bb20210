package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/logging"
	"github.com/openchem/molmap/pkg/pipeline"
)

// Helper to build a stage1 record with a clean screening
func stage1Record(id int64) *dataset.Conformer {
	return &dataset.Conformer{
		ConformerID:       id,
		InitialGeometries: []dataset.Geometry{{AtomPositions: []dataset.Point{{X: 1.0}}}},
		OptimizedGeometry: &dataset.Geometry{AtomPositions: []dataset.Point{{X: 1.1}}},
		BondTopologies:    []dataset.BondTopology{topology(id/1000, true)},
		Properties: &dataset.Properties{
			CalculationStatistics: []dataset.CalculationStatistic{
				{Computing: "original", Timings: "461"},
				{Computing: "mirror", Timings: "461"},
			},
			Errors: &dataset.CalculationErrors{
				ErrorNstat1:      1,
				ErrorNstatC:      1,
				ErrorNstatT:      1,
				ErrorFrequencies: 1,
			},
			InitialGeometryEnergy:         &dataset.ScalarValue{Value: -406.51179},
			InitialGeometryGradientNorm:   &dataset.ScalarValue{Value: 0.00012},
			OptimizedGeometryEnergy:       &dataset.ScalarValue{Value: -406.52264},
			OptimizedGeometryGradientNorm: &dataset.ScalarValue{Value: 0.000005},
		},
	}
}

// Helper to build the stage2 counterpart of stage1Record
func stage2Record(id int64) *dataset.Conformer {
	return &dataset.Conformer{
		ConformerID:       id,
		InitialGeometries: []dataset.Geometry{{AtomPositions: []dataset.Point{{X: 2.0}}}},
		OptimizedGeometry: &dataset.Geometry{AtomPositions: []dataset.Point{{X: 1.1}}},
		BondTopologies:    []dataset.BondTopology{topology(id/1000, true)},
		Properties: &dataset.Properties{
			CalculationStatistics: []dataset.CalculationStatistic{
				{Computing: "original", Timings: "461"},
				{Computing: "mirror", Timings: "461"},
				{Computing: "gaussian", Timings: "9023"},
				{Computing: "merged", Timings: "9484"},
			},
			Errors:                        &dataset.CalculationErrors{Status: 0},
			InitialGeometryEnergy:         &dataset.ScalarValue{Value: -406.51179},
			InitialGeometryGradientNorm:   &dataset.ScalarValue{Value: 0.00012},
			OptimizedGeometryEnergy:       &dataset.ScalarValue{Value: -406.52264},
			OptimizedGeometryGradientNorm: &dataset.ScalarValue{Value: 0.000005},
			SinglePointEnergyAtomicB5:     &dataset.ScalarValue{Value: -406.84838},
		},
	}
}

func topology(id int64, starting bool) dataset.BondTopology {
	return dataset.BondTopology{
		BondTopologyID: id,
		Atoms:          []dataset.AtomType{dataset.AtomC, dataset.AtomH, dataset.AtomH, dataset.AtomH, dataset.AtomH},
		Bonds: []dataset.Bond{
			{AtomA: 0, AtomB: 1, BondType: dataset.BondSingle},
			{AtomA: 0, AtomB: 2, BondType: dataset.BondSingle},
			{AtomA: 0, AtomB: 3, BondType: dataset.BondSingle},
			{AtomA: 0, AtomB: 4, BondType: dataset.BondSingle},
		},
		SMILES:             "C",
		IsStartingTopology: starting,
	}
}

func TestRunMergesStagePairs(t *testing.T) {
	logging.DisableLoggingForTest(t)

	p, err := pipeline.New(pipeline.WithWorkers(2))
	require.NoError(t, err)

	result, err := p.Run(context.Background(), []*dataset.Conformer{
		stage1Record(618451001),
		stage2Record(618451001),
		stage1Record(618451002),
	})
	require.NoError(t, err)

	require.Len(t, result.Conformers, 2)
	assert.Equal(t, int64(618451001), result.Conformers[0].ConformerID)
	assert.Equal(t, int64(618451002), result.Conformers[1].ConformerID)

	// The merged pair grades clean, the lone stage1 record never reached
	// the calculation stages.
	assert.Equal(t, dataset.FateSuccess, result.Conformers[0].Fate)
	assert.Equal(t, dataset.FateNoCalculationResults, result.Conformers[1].Fate)
	assert.Equal(t, int64(1), result.FateCounts["success"])
	assert.Equal(t, int64(1), result.FateCounts["no_calculation_results"])
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.Failures)
	assert.NotEmpty(t, result.RunID)
}

func TestRunReportsConflicts(t *testing.T) {
	logging.DisableLoggingForTest(t)

	stage2 := stage2Record(618451001)
	stage2.Properties.InitialGeometryEnergy.Value += 1e-3

	p, err := pipeline.New(pipeline.WithWorkers(1))
	require.NoError(t, err)

	result, err := p.Run(context.Background(), []*dataset.Conformer{
		stage1Record(618451001),
		stage2,
	})
	require.NoError(t, err)

	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, int64(618451001), result.Conflicts[0].ConformerID)
	// The merge still completes; conflicts are audit output.
	require.Len(t, result.Conformers, 1)
	assert.Equal(t, dataset.FateSuccess, result.Conformers[0].Fate)
}

func TestRunIsolatesFailures(t *testing.T) {
	logging.DisableLoggingForTest(t)

	p, err := pipeline.New(pipeline.WithWorkers(4))
	require.NoError(t, err)

	result, err := p.Run(context.Background(), []*dataset.Conformer{
		stage1Record(618451001),
		stage1Record(618451001), // same stage twice cannot merge
		stage2Record(618452001),
	})
	require.NoError(t, err)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, int64(618451001), result.Failures[0].ConformerID)
	require.Len(t, result.Conformers, 1)
	assert.Equal(t, int64(618452001), result.Conformers[0].ConformerID)
}

func TestRunAccumulatesSummaries(t *testing.T) {
	logging.DisableLoggingForTest(t)

	p, err := pipeline.New(pipeline.WithWorkers(3))
	require.NoError(t, err)

	records := []*dataset.Conformer{
		stage1Record(618451001),
		stage2Record(618451001),
		stage1Record(618451002),
		stage2Record(618451002),
	}
	result, err := p.Run(context.Background(), records)
	require.NoError(t, err)

	require.Equal(t, 1, result.Summaries.Len())
	summaries := result.Summaries.Summaries()
	assert.Equal(t, int64(618451), summaries[0].BondTopology.BondTopologyID)
	assert.Equal(t, int64(2), summaries[0].CountAttemptedConformers)
	assert.Equal(t, int64(2), summaries[0].CountCalculationSuccess)
}

func TestRunReportsDuplicateMarkers(t *testing.T) {
	logging.DisableLoggingForTest(t)

	p, err := pipeline.New(pipeline.WithWorkers(1))
	require.NoError(t, err)

	result, err := p.Run(context.Background(), []*dataset.Conformer{
		{ConformerID: 618451001, DuplicatedBy: 618452001},
	})
	require.NoError(t, err)

	require.Len(t, result.Conformers, 1)
	assert.Equal(t, dataset.FateUndefined, result.Conformers[0].Fate)
	require.Len(t, result.Anomalies, 1)
	assert.Equal(t, pipeline.AnomalyUnexpectedDuplicate, result.Anomalies[0].Kind)
}

func TestRunDiscardsConformersWhenAsked(t *testing.T) {
	logging.DisableLoggingForTest(t)

	p, err := pipeline.New(pipeline.WithConformersDiscarded())
	require.NoError(t, err)

	result, err := p.Run(context.Background(), []*dataset.Conformer{
		stage1Record(618451001),
		stage2Record(618451001),
	})
	require.NoError(t, err)

	assert.Empty(t, result.Conformers)
	assert.Equal(t, int64(1), result.FateCounts["success"])
	assert.Equal(t, 1, result.Summaries.Len())
}

func TestNewRejectsBadWorkerCount(t *testing.T) {
	_, err := pipeline.New(pipeline.WithWorkers(0))
	assert.Error(t, err)
}
