package pipeline

import (
	"github.com/openchem/molmap/pkg/constants"
	"github.com/openchem/molmap/pkg/errors"
)

// Option configures a finalization run.
type Option func(*options) error

// options holds the resolved configuration for a run.
type options struct {
	workers        int
	scanZeroValues bool
	keepConformers bool
}

// defaultOptions returns the configuration used when no options are given.
func defaultOptions() *options {
	return &options{
		workers:        constants.DefaultFinalizeWorkers,
		scanZeroValues: true,
		keepConformers: true,
	}
}

// WithWorkers sets how many record groups are finalized concurrently.
func WithWorkers(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return errors.NewValidationError("workers", n, "must be at least 1")
		}
		o.workers = n
		return nil
	}
}

// WithZeroValueScan controls whether finalized records are scanned for
// suspicious zero-valued quantities. The scan only produces advisory
// anomalies; disabling it saves a reflection walk per record.
func WithZeroValueScan(enabled bool) Option {
	return func(o *options) error {
		o.scanZeroValues = enabled
		return nil
	}
}

// WithConformersDiscarded drops finalized records from the result, keeping
// only statistics, conflicts, and anomalies. Useful when a run exists to
// audit a collection too large to hold in memory alongside its summaries.
func WithConformersDiscarded() Option {
	return func(o *options) error {
		o.keepConformers = false
		return nil
	}
}
