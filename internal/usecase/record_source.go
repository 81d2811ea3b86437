package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/collisions-monitor/internal/domain"
	"github.com/collisions-monitor/internal/domain/repository"
)

// RecordSource загружает снимок записей один раз и отдаёт его всем последующим вызовам.
// Неудачная загрузка не запоминается, следующий вызов повторит запрос.
type RecordSource struct {
	repo   repository.RecordRepository
	window domain.DateWindow
	logger *zap.Logger

	mu      sync.Mutex
	loaded  bool
	records domain.RecordSet
	report  domain.LoadReport
}

// NewRecordSource создает источник записей для заданного исторического окна
func NewRecordSource(repo repository.RecordRepository, window domain.DateWindow, logger *zap.Logger) *RecordSource {
	return &RecordSource{
		repo:   repo,
		window: window,
		logger: logger,
	}
}

// Load returns the memoized snapshot, querying the store on the first call only.
func (s *RecordSource) Load(ctx context.Context) (domain.RecordSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.records, nil
	}

	records, report, err := s.repo.LoadWindow(ctx, s.window)
	if err != nil {
		return nil, fmt.Errorf("load collision records: %w", err)
	}

	s.logger.Info("Collision snapshot loaded",
		zap.Int("records", len(records)),
		zap.Int("excluded", report.Excluded),
		zap.Time("window_start", s.window.Start),
		zap.Time("window_end", s.window.End),
	)

	s.records = records
	s.report = report
	s.loaded = true
	return s.records, nil
}

// Report returns the load report, zero before the first successful Load.
func (s *RecordSource) Report() domain.LoadReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

func (s *RecordSource) Window() domain.DateWindow {
	return s.window
}
