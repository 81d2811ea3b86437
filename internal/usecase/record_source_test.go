package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/collisions-monitor/internal/domain"
	"github.com/collisions-monitor/internal/usecase"
)

func TestRecordSource_LoadIsMemoized(t *testing.T) {
	repo := &MockRecordRepository{}
	report := domain.LoadReport{Window: window2021, Loaded: 3, Excluded: 2, LoadedAt: time.Now()}
	repo.On("LoadWindow", mock.Anything, window2021).Return(testRecords(), report, nil).Once()

	source := usecase.NewRecordSource(repo, window2021, zap.NewNop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, err := source.Load(ctx)
			assert.NoError(t, err)
			assert.Len(t, records, 3)
		}()
	}
	wg.Wait()

	records, err := source.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 2, source.Report().Excluded)
	assert.Equal(t, window2021, source.Window())

	repo.AssertNumberOfCalls(t, "LoadWindow", 1)
}

func TestRecordSource_FailureIsNotMemoized(t *testing.T) {
	repo := &MockRecordRepository{}
	repo.On("LoadWindow", mock.Anything, window2021).
		Return(nil, domain.LoadReport{}, domain.ErrSourceUnavailable).Once()
	repo.On("LoadWindow", mock.Anything, window2021).
		Return(testRecords(), domain.LoadReport{Loaded: 3}, nil).Once()

	source := usecase.NewRecordSource(repo, window2021, zap.NewNop())

	_, err := source.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourceUnavailable))
	assert.Zero(t, source.Report().Loaded)

	records, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)

	repo.AssertExpectations(t)
}
