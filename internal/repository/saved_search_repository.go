package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"compliance-tracker/internal/domain"
)

type SavedSearchRepository interface {
	Create(ctx context.Context, search *domain.SavedSearch) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedSearch, error)
	GetByName(ctx context.Context, name string) (*domain.SavedSearch, error)
	ListPublic(ctx context.Context) ([]domain.SavedSearch, error)
	RecordUse(ctx context.Context, id uuid.UUID) error
}

type savedSearchRepository struct {
	db *sqlx.DB
}

func NewSavedSearchRepository(db *sqlx.DB) SavedSearchRepository {
	return &savedSearchRepository{db: db}
}

func (r *savedSearchRepository) Create(ctx context.Context, search *domain.SavedSearch) error {
	query := `
		INSERT INTO saved_searches (id, name, description, is_public, criteria)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		search.ID, search.Name, search.Description, search.IsPublic, search.Criteria,
	).Scan(&search.CreatedAt)
}

func (r *savedSearchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedSearch, error) {
	var search domain.SavedSearch
	query := `SELECT * FROM saved_searches WHERE id = $1`

	err := r.db.GetContext(ctx, &search, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &search, nil
}

func (r *savedSearchRepository) GetByName(ctx context.Context, name string) (*domain.SavedSearch, error) {
	var search domain.SavedSearch
	query := `SELECT * FROM saved_searches WHERE name = $1`

	err := r.db.GetContext(ctx, &search, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &search, nil
}

func (r *savedSearchRepository) ListPublic(ctx context.Context) ([]domain.SavedSearch, error) {
	query := `
		SELECT * FROM saved_searches
		WHERE is_public = TRUE
		ORDER BY use_count DESC`

	var searches []domain.SavedSearch
	err := r.db.SelectContext(ctx, &searches, query)
	return searches, err
}

func (r *savedSearchRepository) RecordUse(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE saved_searches
		SET use_count = use_count + 1, last_used = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSavedSearchNotFound
	}
	return nil
}
