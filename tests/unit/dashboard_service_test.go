package unit_test

import (
	"context"
	"errors"
	"testing"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/service/dashboard"
	"compliance-tracker/tests/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("Assembles Counts", func(t *testing.T) {
		regRepo := new(mocks.RegulationRepository)
		updateRepo := new(mocks.UpdateRepository)
		sugRepo := new(mocks.SuggestionRepository)
		svc := dashboard.NewService(regRepo, updateRepo, sugRepo, nil, zap.NewNop())

		regRepo.On("Count", ctx).Return(int64(12), nil).Once()
		regRepo.On("CountByLevel", ctx).Return(map[string]int64{"State": 5, "Local": 7}, nil).Once()
		updateRepo.On("Count", ctx).Return(int64(4), nil).Once()
		updateRepo.On("CountByStatus", ctx).Return(map[string]int64{"Recent": 3, "Proposed": 1}, nil).Once()
		updateRepo.On("ListWithDeadlineWithin", ctx, 30).Return([]domain.Update{{Title: "Due soon"}}, nil).Once()
		sugRepo.On("TopByType", ctx, domain.SuggestionQuery, 10).Return([]domain.SearchSuggestion{
			{Text: "zoning", Type: domain.SuggestionQuery, Frequency: 9},
		}, nil).Once()

		stats, err := svc.Stats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(12), stats.RegulationCount)
		assert.Equal(t, int64(4), stats.UpdateCount)
		assert.Equal(t, 1, stats.PendingDeadlines)
		assert.Len(t, stats.TopSearches, 1)
	})

	t.Run("Top Search Failure Is Non Fatal", func(t *testing.T) {
		regRepo := new(mocks.RegulationRepository)
		updateRepo := new(mocks.UpdateRepository)
		sugRepo := new(mocks.SuggestionRepository)
		svc := dashboard.NewService(regRepo, updateRepo, sugRepo, nil, zap.NewNop())

		regRepo.On("Count", ctx).Return(int64(0), nil).Once()
		regRepo.On("CountByLevel", ctx).Return(map[string]int64{}, nil).Once()
		updateRepo.On("Count", ctx).Return(int64(0), nil).Once()
		updateRepo.On("CountByStatus", ctx).Return(map[string]int64{}, nil).Once()
		updateRepo.On("ListWithDeadlineWithin", ctx, 30).Return([]domain.Update{}, nil).Once()
		sugRepo.On("TopByType", ctx, domain.SuggestionQuery, 10).Return(nil, errors.New("table missing")).Once()

		stats, err := svc.Stats(ctx)

		assert.NoError(t, err)
		assert.Empty(t, stats.TopSearches)
	})
}
