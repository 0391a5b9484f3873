package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"compliance-tracker/internal/domain"
)

type SuggestionRepository interface {
	Upsert(ctx context.Context, text, suggestionType string) error
	TopByType(ctx context.Context, suggestionType string, limit int) ([]domain.SearchSuggestion, error)
}

type suggestionRepository struct {
	db *sqlx.DB
}

func NewSuggestionRepository(db *sqlx.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

// Upsert bumps the frequency counter for a (text, type) pair, inserting it
// on first sight.
func (r *suggestionRepository) Upsert(ctx context.Context, text, suggestionType string) error {
	query := `
		INSERT INTO search_suggestions (id, text, type, frequency)
		VALUES (gen_random_uuid(), $1, $2, 1)
		ON CONFLICT (text, type)
		DO UPDATE SET frequency = search_suggestions.frequency + 1, updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query, text, suggestionType)
	return err
}

func (r *suggestionRepository) TopByType(ctx context.Context, suggestionType string, limit int) ([]domain.SearchSuggestion, error) {
	query := `
		SELECT * FROM search_suggestions
		WHERE type = $1
		ORDER BY frequency DESC, updated_at DESC
		LIMIT $2`

	var suggestions []domain.SearchSuggestion
	err := r.db.SelectContext(ctx, &suggestions, query, suggestionType, limit)
	return suggestions, err
}
