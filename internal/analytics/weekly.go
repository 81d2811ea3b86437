package analytics

import (
	"sort"
	"time"

	"github.com/collisions-monitor/internal/domain"
)

// WeekStats holds the crash totals of one week.
type WeekStats struct {
	WeekEnding time.Time `json:"week_ending"`
	Crashes    int       `json:"crashes"`
	Fatal      int       `json:"fatal"`
}

// Rate returns the share of fatal crashes in the week.
func (w WeekStats) Rate() float64 {
	if w.Crashes == 0 {
		return 0
	}
	return float64(w.Fatal) / float64(w.Crashes)
}

// WeekEnding returns the Monday closing the week that contains day.
// Weeks run Tuesday through Monday.
func WeekEnding(day time.Time) time.Time {
	d := truncateDate(day)
	offset := (int(time.Monday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

// WeeklyStats buckets the subset into Monday-ending weeks, ordered by week.
func WeeklyStats(subset domain.RecordSet) []WeekStats {
	byWeek := make(map[time.Time]*WeekStats)
	for _, r := range subset {
		end := WeekEnding(r.CollisionDate)
		w, ok := byWeek[end]
		if !ok {
			w = &WeekStats{WeekEnding: end}
			byWeek[end] = w
		}
		w.Crashes++
		if r.CollisionSeverity == domain.SeverityFatal {
			w.Fatal++
		}
	}

	weeks := make([]WeekStats, 0, len(byWeek))
	for _, w := range byWeek {
		weeks = append(weeks, *w)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekEnding.Before(weeks[j].WeekEnding)
	})
	return weeks
}

// WeeklyFatalityRate returns the mean weekly fatal-crash rate as a percentage.
// ok is false for an empty subset.
func WeeklyFatalityRate(subset domain.RecordSet) (rate float64, ok bool) {
	weeks := WeeklyStats(subset)
	if len(weeks) == 0 {
		return 0, false
	}
	var sum float64
	for _, w := range weeks {
		sum += w.Rate()
	}
	return sum / float64(len(weeks)) * 100, true
}
