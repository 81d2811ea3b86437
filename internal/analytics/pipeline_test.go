package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collisions-monitor/internal/analytics"
	"github.com/collisions-monitor/internal/domain"
)

func TestAggregate_EmptyRecordSet(t *testing.T) {
	criteria := []domain.FilterCriteria{
		allCriteria("2021-01-01", "2021-12-31"),
		{StartDate: date("2021-02-01"), EndDate: date("2021-02-01"), County: "19", AlcoholRequired: true},
		{StartDate: date("2021-02-01"), EndDate: date("2021-03-01"), County: "37", Parties: []domain.Party{domain.PartyTruck}},
	}

	for i, c := range criteria {
		t.Run(fmt.Sprintf("criteria %d", i), func(t *testing.T) {
			pred, err := analytics.BuildPredicate(c, testReference())
			require.NoError(t, err)

			result := analytics.Aggregate(domain.RecordSet{}, pred, testReference())

			assert.Zero(t, result.FatalitiesPer1000)
			assert.Zero(t, result.InjuriesPer1000)
			assert.Zero(t, result.PedestrianFatalities)
			assert.Zero(t, result.PedestrianInjuries)
			assert.Zero(t, result.BicyclistFatalities)
			assert.Zero(t, result.BicyclistInjuries)
			assert.NotNil(t, result.MapPoints)
			assert.Empty(t, result.MapPoints)
			assert.NotNil(t, result.Hourly)
			assert.Empty(t, result.Hourly)
			assert.NotNil(t, result.TopFactors)
			assert.Empty(t, result.TopFactors)
		})
	}
}

func TestAggregate_AlcoholScenario(t *testing.T) {
	day := date("2021-04-12")
	records := domain.RecordSet{
		{CaseID: "a", CollisionDate: day, CollisionTime: clock(8, 0), CountyCode: "19", KilledVictims: 2, AlcoholInvolved: true},
		{CaseID: "b", CollisionDate: day, CollisionTime: clock(9, 0), CountyCode: "19", PedestrianInjuredCount: 1, AlcoholInvolved: true},
		{CaseID: "c", CollisionDate: day, CollisionTime: clock(10, 0), CountyCode: "19", KilledVictims: 5, PedestrianInjuredCount: 4},
	}

	criteria := domain.FilterCriteria{
		StartDate:       date("2021-04-01"),
		EndDate:         date("2021-04-30"),
		County:          "19",
		AlcoholRequired: true,
	}
	pred, err := analytics.BuildPredicate(criteria, testReference())
	require.NoError(t, err)

	result := analytics.Aggregate(records, pred, testReference())

	assert.Equal(t, 0.002, result.FatalitiesPer1000)
	assert.Equal(t, 1, result.PedestrianInjuries)
	assert.Zero(t, result.InjuriesPer1000)
}

func TestAggregate_VictimCounts(t *testing.T) {
	day := date("2021-04-12")
	records := domain.RecordSet{
		{CollisionDate: day, PedestrianKilledCount: 1, PedestrianInjuredCount: 2, BicyclistKilledCount: 3, BicyclistInjuredCount: 4, InjuredVictims: 6},
		{CollisionDate: day, PedestrianKilledCount: 10, PedestrianInjuredCount: 20, BicyclistKilledCount: 30, BicyclistInjuredCount: 40, InjuredVictims: 1500},
	}
	pred, err := analytics.BuildPredicate(allCriteria("2021-01-01", "2021-12-31"), testReference())
	require.NoError(t, err)

	result := analytics.Aggregate(records, pred, testReference())

	assert.Equal(t, 11, result.PedestrianFatalities)
	assert.Equal(t, 22, result.PedestrianInjuries)
	assert.Equal(t, 33, result.BicyclistFatalities)
	assert.Equal(t, 44, result.BicyclistInjuries)
	assert.Equal(t, 1.506, result.InjuriesPer1000)
}

func TestMapPoints_Deduplicates(t *testing.T) {
	subset := domain.RecordSet{
		{CaseID: "1", Latitude: ptrFloat64(34.05), Longitude: ptrFloat64(-118.24)},
		{CaseID: "2", Latitude: ptrFloat64(34.05), Longitude: ptrFloat64(-118.24)},
		{CaseID: "3", Latitude: ptrFloat64(32.71), Longitude: ptrFloat64(-117.16)},
		{CaseID: "4", Latitude: ptrFloat64(32.71)},
		{CaseID: "5", Longitude: ptrFloat64(-117.16)},
		{CaseID: "6"},
	}

	points := analytics.MapPoints(subset)

	assert.ElementsMatch(t, []domain.Point{
		{Lat: 34.05, Lon: -118.24},
		{Lat: 32.71, Lon: -117.16},
	}, points)

	again := analytics.MapPoints(subset)
	assert.ElementsMatch(t, points, again)
}

func TestHourlySeries_SumsPerHour(t *testing.T) {
	subset := domain.RecordSet{
		{CollisionTime: clock(3, 5), SevereInjuryCount: 1},
		{CollisionTime: clock(3, 55), SevereInjuryCount: 2, KilledVictims: 1},
	}

	series := analytics.HourlySeries(subset)

	require.Len(t, series, 1)
	assert.Equal(t, domain.HourlyBucket{Hour: 3, SevereInjuries: 3, Fatalities: 1}, series[0])
}

func TestHourlySeries_OrderedByHour(t *testing.T) {
	subset := domain.RecordSet{
		{CollisionTime: clock(23, 59), KilledVictims: 1},
		{CollisionTime: clock(0, 0), SevereInjuryCount: 2},
		{CollisionTime: clock(12, 30), SevereInjuryCount: 1},
	}

	series := analytics.HourlySeries(subset)

	require.Len(t, series, 3)
	assert.Equal(t, 0, series[0].Hour)
	assert.Equal(t, 12, series[1].Hour)
	assert.Equal(t, 23, series[2].Hour)
}

func TestHourlySeries_OutOfRangeTimes(t *testing.T) {
	subset := domain.RecordSet{
		{CollisionTime: -2 * time.Hour, KilledVictims: 1},
		{CollisionTime: 26 * time.Hour, SevereInjuryCount: 1},
	}

	var series []domain.HourlyBucket
	require.NotPanics(t, func() { series = analytics.HourlySeries(subset) })

	require.Len(t, series, 2)
	assert.Equal(t, domain.HourlyBucket{Hour: 2, SevereInjuries: 1}, series[0])
	assert.Equal(t, domain.HourlyBucket{Hour: 22, Fatalities: 1}, series[1])
}

func TestTopFactors_RankingAndTies(t *testing.T) {
	subset := domain.RecordSet{
		{PrimaryFactor: ptrString("speeding")},
		{PrimaryFactor: ptrString("speeding")},
		{PrimaryFactor: ptrString("dui")},
		{PrimaryFactor: ptrString("improper turning")},
		{PrimaryFactor: nil},
	}

	shares := analytics.TopFactors(subset, analytics.TopFactorsLimit)

	require.Len(t, shares, 3)
	assert.Equal(t, domain.FactorShare{Factor: "speeding", Percentage: 40}, shares[0])
	assert.Equal(t, domain.FactorShare{Factor: "dui", Percentage: 20}, shares[1])
	assert.Equal(t, domain.FactorShare{Factor: "improper turning", Percentage: 20}, shares[2])

	var sum float64
	for _, s := range shares {
		sum += s.Percentage
	}
	assert.InDelta(t, 80.0, sum, 1e-9, "records without a factor stay in the denominator")
}

func TestTopFactors_TruncatesToLimit(t *testing.T) {
	var subset domain.RecordSet
	for i := 0; i < 12; i++ {
		factor := fmt.Sprintf("factor-%02d", i)
		for j := 0; j <= i; j++ {
			subset = append(subset, domain.Record{PrimaryFactor: ptrString(factor)})
		}
	}

	shares := analytics.TopFactors(subset, analytics.TopFactorsLimit)

	require.Len(t, shares, analytics.TopFactorsLimit)
	assert.Equal(t, "factor-11", shares[0].Factor)
	assert.Equal(t, "factor-02", shares[len(shares)-1].Factor)

	var sum float64
	for i, s := range shares {
		sum += s.Percentage
		if i > 0 {
			assert.GreaterOrEqual(t, shares[i-1].Percentage, s.Percentage)
		}
	}
	assert.LessOrEqual(t, sum, 100.0+1e-9)
}

func TestTopFactors_FewerThanLimit(t *testing.T) {
	subset := domain.RecordSet{
		{PrimaryFactor: ptrString("b")},
		{PrimaryFactor: ptrString("a")},
	}

	shares := analytics.TopFactors(subset, analytics.TopFactorsLimit)

	require.Len(t, shares, 2)
	assert.Equal(t, "a", shares[0].Factor)
	assert.Equal(t, "b", shares[1].Factor)
	assert.Equal(t, 50.0, shares[0].Percentage)
}

func TestAggregate_Idempotent(t *testing.T) {
	day := date("2021-07-04")
	records := domain.RecordSet{
		{CollisionDate: day, CollisionTime: clock(1, 0), Latitude: ptrFloat64(1), Longitude: ptrFloat64(2), KilledVictims: 1, PrimaryFactor: ptrString("x")},
		{CollisionDate: day, CollisionTime: clock(2, 0), Latitude: ptrFloat64(1), Longitude: ptrFloat64(2), InjuredVictims: 3, PrimaryFactor: ptrString("y")},
		{CollisionDate: day, CollisionTime: clock(2, 0), Latitude: ptrFloat64(3), Longitude: ptrFloat64(4), SevereInjuryCount: 2},
	}
	pred, err := analytics.BuildPredicate(allCriteria("2021-07-01", "2021-07-31"), testReference())
	require.NoError(t, err)

	first := analytics.Aggregate(records, pred, testReference())
	second := analytics.Aggregate(records, pred, testReference())

	assert.Equal(t, first, second)
}

func TestRate_NonPositiveBase(t *testing.T) {
	assert.Zero(t, analytics.Rate(5, 0, 1000))
	assert.Zero(t, analytics.Rate(5, -1, 1000))
	assert.Equal(t, 0.5, analytics.Rate(5, 10000, 1000))
}
