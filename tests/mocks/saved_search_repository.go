package mocks

import (
	"context"

	"compliance-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type SavedSearchRepository struct {
	mock.Mock
}

func (m *SavedSearchRepository) Create(ctx context.Context, search *domain.SavedSearch) error {
	args := m.Called(ctx, search)
	return args.Error(0)
}

func (m *SavedSearchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedSearch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedSearch), args.Error(1)
}

func (m *SavedSearchRepository) GetByName(ctx context.Context, name string) (*domain.SavedSearch, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedSearch), args.Error(1)
}

func (m *SavedSearchRepository) ListPublic(ctx context.Context) ([]domain.SavedSearch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedSearch), args.Error(1)
}

func (m *SavedSearchRepository) RecordUse(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
