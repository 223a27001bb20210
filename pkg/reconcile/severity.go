package reconcile

import (
	"github.com/openchem/molmap/pkg/constants"
	"github.com/openchem/molmap/pkg/dataset"
)

// Level grades how trustworthy a conformer's calculation results are.
type Level int

// Severity levels, from clean to unusable.
const (
	LevelClean              Level = 0
	LevelWarningVibrational Level = 1
	LevelWarningSerious     Level = 2
	LevelModerateError      Level = 3
	LevelMajorError         Level = 4
	LevelSeriousError       Level = 5
)

// String returns the snake_case name of the severity level.
func (l Level) String() string {
	switch l {
	case LevelClean:
		return "clean"
	case LevelWarningVibrational:
		return "warning_vibrational"
	case LevelWarningSerious:
		return "warning_serious"
	case LevelModerateError:
		return "moderate_error"
	case LevelMajorError:
		return "major_error"
	case LevelSeriousError:
		return "serious_error"
	}
	return "unknown"
}

// ErrorLevel grades the calculation problems recorded on a conformer.
//
// Stage1 records are graded on their legacy codes alone: anything other
// than a clean screening is a serious error. Other records are graded on
// the status value first, then on the warning flags, with warnings about
// derived quantities outranking vibrational warnings.
func ErrorLevel(c *dataset.Conformer, source Source) Level {
	e := c.Errors()
	if source == SourceStage1 {
		if e.ErrorNstat1 != constants.Nstat1Complete && e.ErrorNstat1 != constants.Nstat1CompleteAlternate {
			return LevelSeriousError
		}
		if e.ErrorNstatC != constants.NstatClean ||
			e.ErrorNstatT != constants.NstatClean ||
			e.ErrorFrequencies != constants.NstatClean {
			return LevelSeriousError
		}
		return LevelClean
	}

	switch {
	case e.Status >= constants.StatusSeriousThreshold:
		return LevelSeriousError
	case e.Status >= constants.StatusMajorThreshold:
		return LevelMajorError
	case e.Status >= constants.StatusModerateThreshold:
		return LevelModerateError
	}
	if e.WarnT1 > 1 || e.WarnT1Excess > 1 ||
		e.WarnBseB5B6 > 1 || e.WarnBseCccsdB5 > 1 ||
		e.WarnExcLowestExcitation > 1 ||
		e.WarnExcSmallestOscillator > 0 ||
		e.WarnExcLargestOscillator > 0 {
		return LevelWarningSerious
	}
	if e.WarnVibLinearity > 0 || e.WarnVibImaginary > 1 {
		return LevelWarningVibrational
	}
	return LevelClean
}
