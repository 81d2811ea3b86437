package dto

import (
	"time"

	"github.com/collisions-monitor/internal/domain"
)

// CriteriaEcho - нормализованные критерии, по которым построен ответ
type CriteriaEcho struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	County    string   `json:"county"`
	Alcohol   bool     `json:"alcohol"`
	Parties   []string `json:"parties"`
}

// DashboardResponse - полный набор данных для отрисовки дашборда
type DashboardResponse struct {
	Criteria           CriteriaEcho           `json:"criteria"`
	RecordCount        int                    `json:"record_count"`
	Aggregate          domain.AggregateResult `json:"aggregate"`
	WeeklyFatalityRate *float64               `json:"weekly_fatality_rate"`
	Bounds             *domain.BoundingBox    `json:"bounds"`
	Center             *domain.Point          `json:"center"`
	PopulationRates    domain.PopulationRates `json:"population_rates"`

	// Cached is set when the response was served from the cache.
	Cached bool `json:"-"`
}

// CountiesResponse - список округов для селектора
type CountiesResponse struct {
	Counties []domain.County `json:"counties"`
}

// SnapshotResponse описывает загруженный снимок данных
type SnapshotResponse struct {
	WindowStart string    `json:"window_start"`
	WindowEnd   string    `json:"window_end"`
	Records     int       `json:"records"`
	Excluded    int       `json:"excluded"`
	LoadedAt    time.Time `json:"loaded_at"`
}
