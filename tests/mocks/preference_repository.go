package mocks

import (
	"context"

	"compliance-tracker/internal/domain"

	"github.com/stretchr/testify/mock"
)

type PreferenceRepository struct {
	mock.Mock
}

func (m *PreferenceRepository) GetBySession(ctx context.Context, sessionKey string) (*domain.NotificationPreference, error) {
	args := m.Called(ctx, sessionKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationPreference), args.Error(1)
}

func (m *PreferenceRepository) Upsert(ctx context.Context, pref *domain.NotificationPreference) error {
	args := m.Called(ctx, pref)
	return args.Error(0)
}

func (m *PreferenceRepository) ListEnabledWithEmail(ctx context.Context) ([]domain.NotificationPreference, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NotificationPreference), args.Error(1)
}
