package mocks

import (
	"context"

	"compliance-tracker/internal/domain"

	"github.com/stretchr/testify/mock"
)

type SuggestionRepository struct {
	mock.Mock
}

func (m *SuggestionRepository) Upsert(ctx context.Context, text, suggestionType string) error {
	args := m.Called(ctx, text, suggestionType)
	return args.Error(0)
}

func (m *SuggestionRepository) TopByType(ctx context.Context, suggestionType string, limit int) ([]domain.SearchSuggestion, error) {
	args := m.Called(ctx, suggestionType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SearchSuggestion), args.Error(1)
}
