package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/collisions-monitor/internal/domain"
)

const (
	// PopulationScale is the fixed divisor of the per-1000 rates.
	PopulationScale = 1000

	// TopFactorsLimit caps the ranked factor list.
	TopFactorsLimit = 10
)

// Filter returns the records matching the predicate as a new slice.
func Filter(records domain.RecordSet, predicate Predicate) domain.RecordSet {
	subset := make(domain.RecordSet, 0, len(records))
	for _, r := range records {
		if predicate(r) {
			subset = append(subset, r)
		}
	}
	return subset
}

// Aggregate filters records and derives every dashboard metric from the subset.
// The reference is accepted for county-aware consumers; the per-1000 rates use the
// fixed PopulationScale regardless of the selected county.
func Aggregate(records domain.RecordSet, predicate Predicate, reference domain.CountyReference) domain.AggregateResult {
	return Summarize(Filter(records, predicate))
}

// Summarize derives the metrics from an already filtered subset.
func Summarize(subset domain.RecordSet) domain.AggregateResult {
	killed, injured := VictimTotals(subset)
	result := domain.AggregateResult{}

	for _, r := range subset {
		result.PedestrianFatalities += r.PedestrianKilledCount
		result.PedestrianInjuries += r.PedestrianInjuredCount
		result.BicyclistFatalities += r.BicyclistKilledCount
		result.BicyclistInjuries += r.BicyclistInjuredCount
	}

	result.FatalitiesPer1000 = PerThousand(killed)
	result.InjuriesPer1000 = PerThousand(injured)
	result.MapPoints = MapPoints(subset)
	result.Hourly = HourlySeries(subset)
	result.TopFactors = TopFactors(subset, TopFactorsLimit)

	return result
}

// VictimTotals sums killed and injured victims over the subset.
func VictimTotals(subset domain.RecordSet) (killed, injured int64) {
	for _, r := range subset {
		killed += int64(r.KilledVictims)
		injured += int64(r.InjuredVictims)
	}
	return killed, injured
}

// PerThousand divides a victim count by PopulationScale.
func PerThousand(count int64) float64 {
	return Rate(count, PopulationScale, 1)
}

// Rate returns count / base * scale, zero when base is not positive.
func Rate(count, base, scale int64) float64 {
	if base <= 0 {
		return 0
	}
	f, _ := decimal.NewFromInt(count).
		Mul(decimal.NewFromInt(scale)).
		Div(decimal.NewFromInt(base)).
		Float64()
	return f
}

// MapPoints projects the subset onto distinct coordinate pairs. Records missing either
// coordinate are dropped. The output is sorted by latitude then longitude.
func MapPoints(subset domain.RecordSet) []domain.Point {
	seen := make(map[domain.Point]struct{}, len(subset))
	points := make([]domain.Point, 0, len(subset))
	for _, r := range subset {
		p, ok := r.Point()
		if !ok {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Lat != points[j].Lat {
			return points[i].Lat < points[j].Lat
		}
		return points[i].Lon < points[j].Lon
	})
	return points
}

// HourlySeries sums severe injuries and killed victims per hour of day. Hours without
// records are omitted; buckets are ordered by hour.
func HourlySeries(subset domain.RecordSet) []domain.HourlyBucket {
	var buckets [24]*domain.HourlyBucket
	for _, r := range subset {
		h := r.Hour()
		b := buckets[h]
		if b == nil {
			b = &domain.HourlyBucket{Hour: h}
			buckets[h] = b
		}
		b.SevereInjuries += r.SevereInjuryCount
		b.Fatalities += r.KilledVictims
	}

	series := make([]domain.HourlyBucket, 0, 24)
	for _, b := range buckets {
		if b != nil {
			series = append(series, *b)
		}
	}
	return series
}

// TopFactors ranks contributing-factor categories by their share of the whole subset.
// Records without a category are not ranked but still count towards the total, so the
// percentages may sum to less than 100. Ties are broken by ascending label.
func TopFactors(subset domain.RecordSet, limit int) []domain.FactorShare {
	counts := make(map[string]int64)
	for _, r := range subset {
		if r.PrimaryFactor == nil || *r.PrimaryFactor == "" {
			continue
		}
		counts[*r.PrimaryFactor]++
	}

	type ranked struct {
		factor string
		count  int64
	}
	rows := make([]ranked, 0, len(counts))
	for f, c := range counts {
		rows = append(rows, ranked{factor: f, count: c})
	}
	// equal counts mean equal percentages, so ranking on counts is exact
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].factor < rows[j].factor
	})
	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	total := int64(len(subset))
	shares := make([]domain.FactorShare, 0, len(rows))
	for _, row := range rows {
		shares = append(shares, domain.FactorShare{
			Factor:     row.factor,
			Percentage: Rate(row.count, total, 100),
		})
	}
	return shares
}
