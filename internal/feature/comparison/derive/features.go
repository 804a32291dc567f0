// Package derive turns a snapshot of companies into the comparison tables,
// suggested-feature lists and chart series rendered by dashboards.
//
// Every function in this package is pure: no I/O, no shared state, and the
// inputs are never modified. Calls are safe to run concurrently.
package derive

import (
	"rivalradar_backend/internal/feature/comparison/domain"
	"rivalradar_backend/internal/feature/comparison/domain/entity"
)

// FeatureSet is the result of reconciling the primary company's features with its competitors'.
type FeatureSet struct {
	// All is every distinct feature across the primary company and its competitors,
	// in first-seen order (primary first, then competitors in input order).
	All []string
	// Suggested holds the features offered by at least one competitor but not by
	// the primary company, in first-seen order.
	Suggested []string
}

// orderedSet is a string set that remembers insertion order.
type orderedSet struct {
	order []string
	seen  map[string]struct{}
}

func newOrderedSet(capacity int) *orderedSet {
	return &orderedSet{
		order: make([]string, 0, capacity),
		seen:  make(map[string]struct{}, capacity),
	}
}

func (s *orderedSet) add(names ...string) {
	for _, n := range names {
		if _, ok := s.seen[n]; ok {
			continue
		}
		s.seen[n] = struct{}{}
		s.order = append(s.order, n)
	}
}

// setOf collapses a feature list into a membership set. Matching is exact-string.
func setOf(features []string) map[string]struct{} {
	set := make(map[string]struct{}, len(features))
	for _, f := range features {
		set[f] = struct{}{}
	}
	return set
}

// ReconcileFeatures computes the feature union and the suggested features for
// the given primary company and competitors.
// It returns domain.ErrMissingPrimaryEntity when primary is nil.
func ReconcileFeatures(primary *entity.Company, competitors []entity.Company) (FeatureSet, error) {
	if primary == nil {
		return FeatureSet{}, domain.ErrMissingPrimaryEntity
	}

	all := newOrderedSet(len(primary.Features))
	all.add(primary.Features...)

	own := setOf(primary.Features)
	suggested := newOrderedSet(0)
	for _, c := range competitors {
		all.add(c.Features...)
		for _, f := range c.Features {
			if _, ok := own[f]; !ok {
				suggested.add(f)
			}
		}
	}

	return FeatureSet{All: all.order, Suggested: suggested.order}, nil
}
