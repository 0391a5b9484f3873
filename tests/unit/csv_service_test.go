package unit_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"compliance-tracker/internal/config"
	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/service/csvio"
	"compliance-tracker/internal/service/update"
	"compliance-tracker/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newCSVService(updateRepo *mocks.UpdateRepository) csvio.Service {
	updateSvc := update.NewService(updateRepo, nil, zap.NewNop())
	return csvio.NewService(updateRepo, updateSvc, nil, &config.Config{MinIOBucket: "exports"}, zap.NewNop())
}

func TestCSVService_ExportUpdates(t *testing.T) {
	ctx := context.Background()
	updateRepo := new(mocks.UpdateRepository)
	svc := newCSVService(updateRepo)

	updateRepo.On("ListAll", ctx).Return([]domain.Update{
		{
			Title:        "Export me",
			Description:  "A row in the export.",
			Jurisdiction: "USA",
			Status:       domain.StatusRecent,
			ChangeType:   domain.StatusRecent,
			Category:     "Taxes",
			ImpactLevel:  domain.ImpactLow,
			Priority:     domain.PriorityLow,
			UpdateDate:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		},
	}, nil).Once()

	filename, data, err := svc.ExportUpdates(ctx)

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "updates-export-"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Title", records[0][0])
	assert.Equal(t, "Export me", records[1][0])
	assert.Equal(t, "2026-08-20", records[1][8])
	assert.Equal(t, "No", records[1][14])
}

func TestCSVService_ImportUpdates(t *testing.T) {
	ctx := context.Background()

	header := "Title,Description,Jurisdiction Affected,Status,Category,Impact Level,Priority,Update Date,Action Required\n"

	t.Run("Mixed Good And Bad Rows", func(t *testing.T) {
		updateRepo := new(mocks.UpdateRepository)
		svc := newCSVService(updateRepo)

		body := header +
			"Good row,Something changed.,Texas,Recent,Taxes,High,1,2026-08-01,Yes\n" +
			"Bad status,Another change.,Texas,Archived,Taxes,High,1,2026-08-01,No\n" +
			"Another good row,A third change.,Austin,Proposed,Zoning,Low,,,No\n"

		updateRepo.On("Create", ctx, mock.Anything).Return(nil).Twice()

		result, err := svc.ImportUpdates(ctx, strings.NewReader(body))

		assert.NoError(t, err)
		assert.Equal(t, 2, result.ImportedCount)
		assert.Equal(t, 1, result.ErrorCount)
		assert.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "line 3")
		updateRepo.AssertExpectations(t)
	})

	t.Run("Missing Update Date Defaults To Today", func(t *testing.T) {
		updateRepo := new(mocks.UpdateRepository)
		svc := newCSVService(updateRepo)

		body := header + "No date row,Dateless change.,USA,Recent,General,Medium,,,No\n"

		updateRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.Update) bool {
			return time.Since(u.UpdateDate) < time.Minute
		})).Return(nil).Once()

		result, err := svc.ImportUpdates(ctx, strings.NewReader(body))

		assert.NoError(t, err)
		assert.Equal(t, 1, result.ImportedCount)
		updateRepo.AssertExpectations(t)
	})

	t.Run("Headerless Reader Fails Fast", func(t *testing.T) {
		updateRepo := new(mocks.UpdateRepository)
		svc := newCSVService(updateRepo)

		result, err := svc.ImportUpdates(ctx, strings.NewReader(""))

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
