package repository

import (
	"context"

	"github.com/collisions-monitor/internal/domain"
)

// RecordRepository читает записи о ДТП из реляционного хранилища
type RecordRepository interface {
	// LoadWindow returns every record with a non-null date and time inside the window.
	// Malformed rows are skipped and counted in the report.
	LoadWindow(ctx context.Context, window domain.DateWindow) (domain.RecordSet, domain.LoadReport, error)

	// Health checks that the store is reachable
	Health(ctx context.Context) error
}
