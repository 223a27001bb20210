package molmap

import (
	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/errors"
	"github.com/openchem/molmap/pkg/filter"
	"github.com/openchem/molmap/pkg/pipeline"
)

// Option is a function that configures a Curator instance.
type Option func(*options) error

// options holds the resolved Curator configuration.
type options struct {
	workers        int
	scanZeroValues bool
	allowed        filter.Allowed
}

// defaultOptions returns the configuration used when no options are given.
func defaultOptions() *options {
	return &options{
		scanZeroValues: true,
		allowed:        filter.NewAllowed(dataset.AvailabilityStandard),
	}
}

// pipelineOptions translates the Curator configuration into pipeline options.
func (o *options) pipelineOptions() []pipeline.Option {
	opts := []pipeline.Option{
		pipeline.WithZeroValueScan(o.scanZeroValues),
	}
	if o.workers > 0 {
		opts = append(opts, pipeline.WithWorkers(o.workers))
	}
	return opts
}

// WithWorkers configures how many record groups are finalized concurrently.
func WithWorkers(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return errors.NewValidationError("workers", n, "must be at least 1")
		}
		o.workers = n
		return nil
	}
}

// WithZeroValueScan configures whether finalization scans records for
// suspicious zero-valued quantities.
func WithZeroValueScan(enabled bool) Option {
	return func(o *options) error {
		o.scanZeroValues = enabled
		return nil
	}
}

// WithAllowedTiers configures which release tiers FilterRelease keeps.
func WithAllowedTiers(tiers ...dataset.Availability) Option {
	return func(o *options) error {
		if len(tiers) == 0 {
			return errors.NewValidationError("tiers", tiers, "at least one tier is required")
		}
		o.allowed = filter.NewAllowed(tiers...)
		return nil
	}
}
