package analytics_test

import (
	"time"

	"github.com/collisions-monitor/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func clock(h, m int) time.Duration {
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
}

func ptrFloat64(v float64) *float64 { return &v }

func ptrString(v string) *string { return &v }

func testReference() domain.CountyReference {
	return domain.NewCountyReference([]domain.County{
		{Code: "19", Name: "Los Angeles", Population: 10014009},
		{Code: "37", Name: "San Diego", Population: 3298634},
		{Code: "38", Name: "San Francisco", Population: 873965},
	})
}

func allCriteria(start, end string) domain.FilterCriteria {
	return domain.FilterCriteria{
		StartDate: date(start),
		EndDate:   date(end),
		County:    domain.AllCounties,
	}
}
