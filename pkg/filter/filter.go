// Package filter strips conformer records down to a release tier. Each
// property carries an availability tier; filtering clears the properties a
// release is not allowed to ship.
package filter

import (
	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/reconcile"
)

// Allowed is the set of availability tiers a filtering pass keeps.
type Allowed map[dataset.Availability]bool

// NewAllowed builds an Allowed set from the given tiers.
func NewAllowed(tiers ...dataset.Availability) Allowed {
	allowed := make(Allowed, len(tiers))
	for _, tier := range tiers {
		allowed[tier] = true
	}
	return allowed
}

var standardTiers = NewAllowed(dataset.AvailabilityStandard)

// ByAvailability clears every set property whose tier is not allowed. The
// original conformer index is internal bookkeeping and is cleared unless
// the internal tier is allowed.
func ByAvailability(c *dataset.Conformer, allowed Allowed) {
	if !allowed[dataset.AvailabilityInternalOnly] {
		c.OriginalConformerIndex = nil
	}
	if c.Properties == nil {
		return
	}
	for _, field := range c.Properties.Fields() {
		if field.IsSet() && !allowed[field.Availability] {
			field.Clear()
		}
	}
}

// ShouldIncludeInStandard reports whether a record belongs in the standard
// release. Duplicates never do. A record already assigned to a database
// follows that assignment; otherwise only records whose calculation came
// back clean qualify.
func ShouldIncludeInStandard(c *dataset.Conformer, source reconcile.Source) bool {
	if c.DuplicatedBy > 0 {
		return false
	}
	switch c.WhichDatabase {
	case dataset.AvailabilityComplete:
		return false
	case dataset.AvailabilityStandard:
		return true
	}
	return reconcile.ErrorLevel(c, source) == reconcile.LevelClean
}

// ToStandard filters a record down to the standard release in place,
// reporting whether the record belongs there at all. Records that do not
// qualify are left untouched.
func ToStandard(c *dataset.Conformer, source reconcile.Source) bool {
	if !ShouldIncludeInStandard(c, source) {
		return false
	}
	ByAvailability(c, standardTiers)
	return true
}
