package mocks

import (
	"context"

	"compliance-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ReminderRepository struct {
	mock.Mock
}

func (m *ReminderRepository) Create(ctx context.Context, reminder *domain.UpdateReminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *ReminderRepository) ListBySession(ctx context.Context, sessionKey string) ([]domain.UpdateReminder, error) {
	args := m.Called(ctx, sessionKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UpdateReminder), args.Error(1)
}

func (m *ReminderRepository) Delete(ctx context.Context, id uuid.UUID, sessionKey string) error {
	args := m.Called(ctx, id, sessionKey)
	return args.Error(0)
}
