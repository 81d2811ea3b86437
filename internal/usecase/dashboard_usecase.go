package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/collisions-monitor/internal/analytics"
	"github.com/collisions-monitor/internal/domain"
	"github.com/collisions-monitor/internal/domain/repository"
	"github.com/collisions-monitor/internal/pkg/errors"
	"github.com/collisions-monitor/internal/pkg/utils"
	"github.com/collisions-monitor/internal/usecase/dto"
)

// DashboardUseCase пересчитывает метрики дашборда на каждое изменение фильтра
type DashboardUseCase struct {
	source    *RecordSource
	reference domain.CountyReference
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewDashboardUseCase создает новый экземпляр DashboardUseCase.
// cacheRepo может быть nil, тогда каждый запрос пересчитывается.
func NewDashboardUseCase(
	source *RecordSource,
	reference domain.CountyReference,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *DashboardUseCase {
	return &DashboardUseCase{
		source:    source,
		reference: reference,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Dashboard applies the request filter to the snapshot and returns every metric.
func (uc *DashboardUseCase) Dashboard(ctx context.Context, req dto.DashboardRequest) (*dto.DashboardResponse, error) {
	criteria, err := uc.criteria(req)
	if err != nil {
		return nil, err
	}

	predicate, err := analytics.BuildPredicate(criteria, uc.reference)
	if err != nil {
		return nil, fmt.Errorf("build predicate: %w", err)
	}

	// 1. Проверяем кеш
	cacheKey := dashboardCacheKey(uc.source.Window(), criteria)
	if uc.cacheRepo != nil {
		var cached dto.DashboardResponse
		found, err := uc.cacheRepo.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			uc.logger.Warn("Failed to get dashboard from cache", zap.String("key", cacheKey), zap.Error(err))
		} else if found {
			uc.logger.Debug("Dashboard served from cache", zap.String("key", cacheKey))
			cached.Cached = true
			return &cached, nil
		}
	}

	// 2. Считаем по снимку
	records, err := uc.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	subset := analytics.Filter(records, predicate)
	result := analytics.Summarize(subset)

	resp := &dto.DashboardResponse{
		Criteria:        echo(criteria),
		RecordCount:     len(subset),
		Aggregate:       result,
		PopulationRates: analytics.ResidentRates(subset, criteria.County, uc.reference),
	}
	if rate, ok := analytics.WeeklyFatalityRate(subset); ok {
		resp.WeeklyFatalityRate = &rate
	}
	if box, ok := utils.Bounds(result.MapPoints); ok {
		center := box.Center()
		resp.Bounds = &box
		resp.Center = &center
	}

	uc.logger.Debug("Dashboard computed",
		zap.String("county", criteria.County),
		zap.Int("subset", len(subset)),
		zap.Int("points", len(result.MapPoints)),
	)

	// 3. Кешируем, ошибка кеша не ломает ответ
	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetJSON(ctx, cacheKey, resp, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache dashboard", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return resp, nil
}

// Counties returns the county selector options ordered by code.
func (uc *DashboardUseCase) Counties(ctx context.Context) (*dto.CountiesResponse, error) {
	return &dto.CountiesResponse{Counties: uc.reference.Counties()}, nil
}

// Snapshot describes the loaded record set.
func (uc *DashboardUseCase) Snapshot(ctx context.Context) (*dto.SnapshotResponse, error) {
	records, err := uc.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := uc.source.Report()
	window := uc.source.Window()
	return &dto.SnapshotResponse{
		WindowStart: window.Start.Format(time.DateOnly),
		WindowEnd:   window.End.Format(time.DateOnly),
		Records:     len(records),
		Excluded:    report.Excluded,
		LoadedAt:    report.LoadedAt,
	}, nil
}

// criteria converts a validated request into filter criteria. Missing dates fall back
// to the snapshot window.
func (uc *DashboardUseCase) criteria(req dto.DashboardRequest) (domain.FilterCriteria, error) {
	window := uc.source.Window()
	criteria := domain.FilterCriteria{
		StartDate:       window.Start,
		EndDate:         window.End,
		County:          normalizeCounty(req.County),
		AlcoholRequired: req.Alcohol,
	}

	if req.StartDate != "" {
		start, err := time.Parse(time.DateOnly, req.StartDate)
		if err != nil {
			return domain.FilterCriteria{}, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"start_date": req.StartDate})
		}
		criteria.StartDate = start
	}
	if req.EndDate != "" {
		end, err := time.Parse(time.DateOnly, req.EndDate)
		if err != nil {
			return domain.FilterCriteria{}, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"end_date": req.EndDate})
		}
		criteria.EndDate = end
	}

	parties, err := parseParties(req.Parties)
	if err != nil {
		return domain.FilterCriteria{}, err
	}
	criteria.Parties = parties

	return criteria, nil
}

func normalizeCounty(county string) string {
	county = strings.TrimSpace(county)
	if county == "" || strings.EqualFold(county, domain.AllCounties) {
		return domain.AllCounties
	}
	if len(county) == 1 && county[0] >= '0' && county[0] <= '9' {
		return "0" + county
	}
	return county
}

// parseParties deduplicates and sorts the selection so equal selections share a cache key.
func parseParties(values []string) ([]domain.Party, error) {
	seen := make(map[domain.Party]struct{}, len(values))
	parties := make([]domain.Party, 0, len(values))
	for _, v := range values {
		p := domain.Party(strings.ToLower(strings.TrimSpace(v)))
		if p == "" {
			continue
		}
		if !p.Valid() {
			return nil, errors.ErrInvalidParty.WithDetails(map[string]interface{}{"party": v})
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		parties = append(parties, p)
	}
	sort.Slice(parties, func(i, j int) bool { return parties[i] < parties[j] })
	return parties, nil
}

func echo(c domain.FilterCriteria) dto.CriteriaEcho {
	parties := make([]string, len(c.Parties))
	for i, p := range c.Parties {
		parties[i] = string(p)
	}
	return dto.CriteriaEcho{
		StartDate: c.StartDate.Format(time.DateOnly),
		EndDate:   c.EndDate.Format(time.DateOnly),
		County:    c.County,
		Alcohol:   c.AlcoholRequired,
		Parties:   parties,
	}
}

// dashboardCacheKey includes the snapshot window since the cache outlives the process.
func dashboardCacheKey(window domain.DateWindow, c domain.FilterCriteria) string {
	e := echo(c)
	return fmt.Sprintf("dashboard:%s_%s:%s:%s:%s:%t:%s",
		window.Start.Format(time.DateOnly), window.End.Format(time.DateOnly),
		e.StartDate, e.EndDate, e.County, e.Alcohol, strings.Join(e.Parties, ","))
}
