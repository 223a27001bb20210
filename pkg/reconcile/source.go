package reconcile

import (
	"github.com/openchem/molmap/pkg/constants"
	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/errors"
)

// Source identifies which extraction pass produced a conformer record.
type Source int

// Known record sources, in merge precedence order. A duplicate marker
// carries only bookkeeping, a stage1 record carries the geometry screening,
// a stage2 record carries the full calculation.
const (
	SourceDuplicate Source = iota
	SourceStage1
	SourceStage2
)

// String returns the string representation of a source.
func (s Source) String() string {
	switch s {
	case SourceDuplicate:
		return "duplicate"
	case SourceStage1:
		return "stage1"
	case SourceStage2:
		return "stage2"
	}
	return "unknown"
}

// Classify determines which extraction pass produced a record.
//
// Records without properties must carry duplicate bookkeeping to be valid.
// Records with properties are distinguished by their calculation statistics:
// stage1 extraction always writes exactly two rows.
func Classify(c *dataset.Conformer) (Source, error) {
	if c.Properties == nil {
		if c.DuplicatedBy == 0 && len(c.DuplicateOf) == 0 {
			return SourceDuplicate, errors.NewInvalidRecordError(c.ConformerID,
				"record has neither properties nor duplicate information")
		}
		return SourceDuplicate, nil
	}
	if len(c.Properties.CalculationStatistics) == constants.Stage1StatisticsCount {
		return SourceStage1, nil
	}
	return SourceStage2, nil
}
