package mocks

import (
	"context"

	"compliance-tracker/internal/domain"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendUpdateAlert(ctx context.Context, toEmail string, update *domain.Update) error {
	args := m.Called(ctx, toEmail, update)
	return args.Error(0)
}
