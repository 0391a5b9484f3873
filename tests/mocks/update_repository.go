package mocks

import (
	"context"
	"time"

	"compliance-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type UpdateRepository struct {
	mock.Mock
}

func (m *UpdateRepository) Create(ctx context.Context, update *domain.Update) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *UpdateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Update, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Update), args.Error(1)
}

func (m *UpdateRepository) Update(ctx context.Context, update *domain.Update) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *UpdateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UpdateRepository) List(ctx context.Context, filters domain.UpdateFilters, params domain.PaginationParams) ([]domain.Update, int64, error) {
	args := m.Called(ctx, filters, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Update), args.Get(1).(int64), args.Error(2)
}

func (m *UpdateRepository) ListAll(ctx context.Context) ([]domain.Update, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Update), args.Error(1)
}

func (m *UpdateRepository) SearchText(ctx context.Context, query string, limit int) ([]domain.Update, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Update), args.Error(1)
}

func (m *UpdateRepository) ListRecentAndUpcoming(ctx context.Context) ([]domain.Update, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Update), args.Error(1)
}

func (m *UpdateRepository) ListProposed(ctx context.Context) ([]domain.Update, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Update), args.Error(1)
}

func (m *UpdateRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.UpdateStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *UpdateRepository) ListWithDeadlineWithin(ctx context.Context, days int) ([]domain.Update, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Update), args.Error(1)
}

func (m *UpdateRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Update, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Update), args.Error(1)
}

func (m *UpdateRepository) ReplaceRelatedRegulations(ctx context.Context, updateID uuid.UUID, regulationIDs []uuid.UUID) error {
	args := m.Called(ctx, updateID, regulationIDs)
	return args.Error(0)
}

func (m *UpdateRepository) GetRelatedRegulationIDs(ctx context.Context, updateID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, updateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *UpdateRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *UpdateRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
