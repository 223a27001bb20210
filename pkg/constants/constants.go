// Package constants provides shared constants used throughout the molmap codebase.
// This includes record layout rules, merge tolerances, calculation status codes,
// and pipeline sizing values that should be consistent across the application.
package constants

// Record layout constants define how conformer identifiers encode topology membership
const (
	// ConformersPerBondTopology is the ID block size: a conformer ID is
	// bond topology ID * ConformersPerBondTopology + conformer index
	ConformersPerBondTopology = 1000

	// Stage1StatisticsCount is the number of calculation statistic rows a
	// stage1 record carries; stage2 records carry a different count
	Stage1StatisticsCount = 2
)

// Merge tolerance constants bound the disagreement allowed between stage1 and
// stage2 values of the same quantity before a conflict is reported
const (
	// EnergyTolerance is the absolute tolerance for energy comparisons
	EnergyTolerance = 2e-6

	// GradientNormTolerance is the absolute tolerance for gradient norm comparisons
	GradientNormTolerance = 1e-6

	// Stage2SentinelValue marks a stage2 quantity that was never computed;
	// comparisons against it are skipped
	Stage2SentinelValue = -1.0
)

// Calculation status constants name the well-known values of the status field
const (
	// StatusMarkedDuplicate is assigned to stage1 records that were
	// collapsed into another conformer
	StatusMarkedDuplicate = -1

	// StatusDisassociated is assigned when the molecule fell apart during
	// geometry optimization
	StatusDisassociated = 590

	// StatusOptimizationFailed is assigned when geometry optimization
	// did not converge
	StatusOptimizationFailed = 600

	// StatusStage2AbortedLow is the lower of the two stage2 statuses that
	// mean the calculation was abandoned and the stage1 record kept
	StatusStage2AbortedLow = 700

	// StatusStage2AbortedHigh is the higher of the two stage2 statuses that
	// mean the calculation was abandoned and the stage1 record kept
	StatusStage2AbortedHigh = 800

	// StatusCollapseBase is added to a tenth of an abandoned stage2 status
	// when the merge folds the record back onto its stage1 form
	StatusCollapseBase = 500

	// StatusAbortedCollapsedLow is the folded form of StatusStage2AbortedLow
	StatusAbortedCollapsedLow = StatusCollapseBase + StatusStage2AbortedLow/10

	// StatusAbortedCollapsedHigh is the folded form of StatusStage2AbortedHigh
	StatusAbortedCollapsedHigh = StatusCollapseBase + StatusStage2AbortedHigh/10
)

// Severity threshold constants partition the status field into error levels
const (
	// StatusSeriousThreshold is the smallest status classified as a serious error
	StatusSeriousThreshold = 64

	// StatusMajorThreshold is the smallest status classified as a major error
	StatusMajorThreshold = 8

	// StatusModerateThreshold is the smallest status classified as a moderate error
	StatusModerateThreshold = 4

	// TopologyDetectionStatusLimit is the first status too broken for
	// topology detection to be worth running
	TopologyDetectionStatusLimit = 512
)

// Legacy stage1 code constants name the values of the error_nstat* and
// error_frequencies fields carried by stage1 records
const (
	// Nstat1Complete means geometry optimization finished normally
	Nstat1Complete = 1

	// Nstat1CompleteAlternate is the secondary code for a normally
	// finished geometry optimization
	Nstat1CompleteAlternate = 3

	// Nstat1OptimizationFailed means geometry optimization did not converge
	Nstat1OptimizationFailed = 2

	// Nstat1Disassociated means the molecule fell apart during optimization
	Nstat1Disassociated = 5

	// NstatClean is the all-clear value shared by the remaining legacy code fields
	NstatClean = 1

	// FrequenciesSuspectCode is the legacy frequency code that signals a
	// conflict on every conformer except one known exception
	FrequenciesSuspectCode = 101

	// FrequenciesSuspectException is the sole conformer allowed to carry
	// FrequenciesSuspectCode without raising a conflict
	FrequenciesSuspectException = 795795001
)

// Vibrational analysis constants
const (
	// StrongImaginaryFrequencyCutoff is the harmonic frequency below which
	// an imaginary mode is flagged at the stronger warning level
	StrongImaginaryFrequencyCutoff = -30.0
)

// Pipeline sizing constants
const (
	// DefaultFinalizeWorkers is the default number of concurrent workers
	// used when finalizing conformer groups
	DefaultFinalizeWorkers = 8

	// RecordChannelBuffer is the default buffer size for record channels
	RecordChannelBuffer = 256

	// InsertBatchSize is the number of records written per database transaction
	InsertBatchSize = 10000
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Default values
const (
	// DefaultDatabaseFile is the database filename used when none is specified
	DefaultDatabaseFile = "molmap.sqlite"
)
