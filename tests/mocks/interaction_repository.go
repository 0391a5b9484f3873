package mocks

import (
	"context"

	"compliance-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type InteractionRepository struct {
	mock.Mock
}

func (m *InteractionRepository) Get(ctx context.Context, updateID uuid.UUID, sessionKey string) (*domain.UserUpdateInteraction, error) {
	args := m.Called(ctx, updateID, sessionKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserUpdateInteraction), args.Error(1)
}

func (m *InteractionRepository) SetBookmarked(ctx context.Context, updateID uuid.UUID, sessionKey string, bookmarked bool) (*domain.UserUpdateInteraction, error) {
	args := m.Called(ctx, updateID, sessionKey, bookmarked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserUpdateInteraction), args.Error(1)
}

func (m *InteractionRepository) SetRead(ctx context.Context, updateID uuid.UUID, sessionKey string, read bool) (*domain.UserUpdateInteraction, error) {
	args := m.Called(ctx, updateID, sessionKey, read)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserUpdateInteraction), args.Error(1)
}

func (m *InteractionRepository) ListBookmarkedUpdates(ctx context.Context, sessionKey string) ([]domain.Update, error) {
	args := m.Called(ctx, sessionKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Update), args.Error(1)
}
