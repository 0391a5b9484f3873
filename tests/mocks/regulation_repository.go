package mocks

import (
	"context"

	"compliance-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type RegulationRepository struct {
	mock.Mock
}

func (m *RegulationRepository) Create(ctx context.Context, regulation *domain.Regulation) error {
	args := m.Called(ctx, regulation)
	return args.Error(0)
}

func (m *RegulationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Regulation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Regulation), args.Error(1)
}

func (m *RegulationRepository) Update(ctx context.Context, regulation *domain.Regulation) error {
	args := m.Called(ctx, regulation)
	return args.Error(0)
}

func (m *RegulationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RegulationRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Regulation, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Regulation), args.Get(1).(int64), args.Error(2)
}

func (m *RegulationRepository) AdvancedSearch(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Regulation, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Regulation), args.Error(1)
}

func (m *RegulationRepository) SuggestTitles(ctx context.Context, query string, limit int) ([]string, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *RegulationRepository) SuggestLocations(ctx context.Context, query string, limit int) ([]string, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *RegulationRepository) SuggestCategories(ctx context.Context, query string, limit int) ([]string, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *RegulationRepository) KeywordGroups(ctx context.Context, query string, limit int) ([]string, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *RegulationRepository) CountByLevel(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *RegulationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
