package molmap

import (
	"context"

	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/filter"
	"github.com/openchem/molmap/pkg/pipeline"
	"github.com/openchem/molmap/pkg/reconcile"
)

// Curator is the high level entry point for curating conformer collections.
// It wraps the finalization pipeline and the release filters behind one
// configured instance.
//
// Example usage:
//
//	curator, err := molmap.New(molmap.WithWorkers(8))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := curator.Finalize(ctx, records)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	released := curator.StandardRelease(result.Conformers)
type Curator struct {
	options *options
}

// New creates a Curator with the given options.
func New(opts ...Option) (*Curator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return &Curator{options: o}, nil
}

// Finalize merges, normalizes, and fates the given partial records. The
// inputs are consumed; only the records in the result remain valid.
func (c *Curator) Finalize(ctx context.Context, records []*dataset.Conformer) (*pipeline.Result, error) {
	p, err := pipeline.New(c.options.pipelineOptions()...)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx, records)
}

// StandardRelease filters finalized records down to the standard release in
// place and returns the ones that belong there. Records that do not qualify
// are left untouched and omitted.
func (c *Curator) StandardRelease(records []*dataset.Conformer) []*dataset.Conformer {
	var released []*dataset.Conformer
	for _, r := range records {
		source, err := reconcile.Classify(r)
		if err != nil {
			continue
		}
		if filter.ToStandard(r, source) {
			released = append(released, r)
		}
	}
	return released
}

// FilterRelease strips every record down to the Curator's allowed release
// tiers in place.
func (c *Curator) FilterRelease(records []*dataset.Conformer) {
	for _, r := range records {
		filter.ByAvailability(r, c.options.allowed)
	}
}
