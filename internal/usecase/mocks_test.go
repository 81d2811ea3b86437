package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/collisions-monitor/internal/domain"
)

// MockRecordRepository is a mock of RecordRepository
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) LoadWindow(ctx context.Context, window domain.DateWindow) (domain.RecordSet, domain.LoadReport, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.LoadReport), args.Error(2)
	}
	return args.Get(0).(domain.RecordSet), args.Get(1).(domain.LoadReport), args.Error(2)
}

func (m *MockRecordRepository) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	args := m.Called(ctx, key, dst)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptrFloat64(v float64) *float64 { return &v }

func ptrString(v string) *string { return &v }

var window2021 = domain.DateWindow{Start: date("2021-01-01"), End: date("2021-12-31")}

func testReference() domain.CountyReference {
	return domain.NewCountyReference([]domain.County{
		{Code: "19", Name: "Los Angeles", Population: 10014009},
		{Code: "37", Name: "San Diego", Population: 3298634},
		{Code: "38", Name: "San Francisco", Population: 873965},
	})
}

func testRecords() domain.RecordSet {
	return domain.RecordSet{
		{
			CaseID:                "LA-1",
			Latitude:              ptrFloat64(34.05),
			Longitude:             ptrFloat64(-118.24),
			CollisionDate:         date("2021-03-01"),
			CollisionTime:         8*time.Hour + 30*time.Minute,
			CountyCode:            "19",
			CollisionSeverity:     domain.SeverityFatal,
			KilledVictims:         1,
			InjuredVictims:        2,
			PedestrianKilledCount: 1,
			PrimaryFactor:         ptrString("dui"),
			AlcoholInvolved:       true,
			PedestrianCollision:   true,
		},
		{
			CaseID:                "SD-1",
			Latitude:              ptrFloat64(32.7),
			Longitude:             ptrFloat64(-117.16),
			CollisionDate:         date("2021-03-02"),
			CollisionTime:         17 * time.Hour,
			CountyCode:            "37",
			CollisionSeverity:     "injury",
			InjuredVictims:        3,
			BicyclistInjuredCount: 1,
			PrimaryFactor:         ptrString("speeding"),
			BicycleCollision:      true,
		},
		{
			CaseID:            "LA-2",
			CollisionDate:     date("2021-06-10"),
			CollisionTime:     23*time.Hour + 15*time.Minute,
			CountyCode:        "19",
			CollisionSeverity: "property damage only",
			InjuredVictims:    1,
		},
	}
}
