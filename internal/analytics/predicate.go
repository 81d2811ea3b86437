// Package analytics implements the filter-and-aggregate pipeline over a collision snapshot.
// Every function here is pure: inputs are never mutated and no state is kept between calls.
package analytics

import (
	"fmt"
	"time"

	"github.com/collisions-monitor/internal/domain"
)

// Predicate selects records.
type Predicate func(domain.Record) bool

// BuildPredicate translates filter criteria into a predicate. The result is the AND of the
// date, county, alcohol and party clauses.
func BuildPredicate(criteria domain.FilterCriteria, reference domain.CountyReference) (Predicate, error) {
	start := truncateDate(criteria.StartDate)
	end := truncateDate(criteria.EndDate)
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s is after end %s",
			domain.ErrInvalidDateRange, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	allCounties := criteria.AllCounties()
	if !allCounties {
		if _, ok := reference.Lookup(criteria.County); !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSelector, criteria.County)
		}
	}

	parties := make([]domain.Party, len(criteria.Parties))
	copy(parties, criteria.Parties)

	county := criteria.County
	alcohol := criteria.AlcoholRequired

	return func(r domain.Record) bool {
		day := truncateDate(r.CollisionDate)
		if day.Before(start) || day.After(end) {
			return false
		}
		if !allCounties && r.CountyCode != county {
			return false
		}
		if alcohol && !r.AlcoholInvolved {
			return false
		}
		return involvesAny(r, parties)
	}, nil
}

// involvesAny is true for an empty party list.
func involvesAny(r domain.Record, parties []domain.Party) bool {
	if len(parties) == 0 {
		return true
	}
	for _, p := range parties {
		if r.Involves(p) {
			return true
		}
	}
	return false
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
