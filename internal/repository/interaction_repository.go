package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"compliance-tracker/internal/domain"
)

type InteractionRepository interface {
	Get(ctx context.Context, updateID uuid.UUID, sessionKey string) (*domain.UserUpdateInteraction, error)
	SetBookmarked(ctx context.Context, updateID uuid.UUID, sessionKey string, bookmarked bool) (*domain.UserUpdateInteraction, error)
	SetRead(ctx context.Context, updateID uuid.UUID, sessionKey string, read bool) (*domain.UserUpdateInteraction, error)
	ListBookmarkedUpdates(ctx context.Context, sessionKey string) ([]domain.Update, error)
}

type interactionRepository struct {
	db *sqlx.DB
}

func NewInteractionRepository(db *sqlx.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Get(ctx context.Context, updateID uuid.UUID, sessionKey string) (*domain.UserUpdateInteraction, error) {
	var interaction domain.UserUpdateInteraction
	query := `SELECT * FROM user_update_interactions WHERE update_id = $1 AND session_key = $2`

	err := r.db.GetContext(ctx, &interaction, query, updateID, sessionKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}

// SetBookmarked upserts the interaction row; it is created lazily on the
// first bookmark or read toggle for a (update, session) pair.
func (r *interactionRepository) SetBookmarked(ctx context.Context, updateID uuid.UUID, sessionKey string, bookmarked bool) (*domain.UserUpdateInteraction, error) {
	var interaction domain.UserUpdateInteraction
	query := `
		INSERT INTO user_update_interactions (id, update_id, session_key, bookmarked, is_read)
		VALUES ($1, $2, $3, $4, FALSE)
		ON CONFLICT (update_id, session_key)
		DO UPDATE SET bookmarked = $4, updated_at = NOW()
		RETURNING *`

	err := r.db.GetContext(ctx, &interaction, query, uuid.New(), updateID, sessionKey, bookmarked)
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (r *interactionRepository) SetRead(ctx context.Context, updateID uuid.UUID, sessionKey string, read bool) (*domain.UserUpdateInteraction, error) {
	var interaction domain.UserUpdateInteraction
	query := `
		INSERT INTO user_update_interactions (id, update_id, session_key, bookmarked, is_read)
		VALUES ($1, $2, $3, FALSE, $4)
		ON CONFLICT (update_id, session_key)
		DO UPDATE SET is_read = $4, updated_at = NOW()
		RETURNING *`

	err := r.db.GetContext(ctx, &interaction, query, uuid.New(), updateID, sessionKey, read)
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (r *interactionRepository) ListBookmarkedUpdates(ctx context.Context, sessionKey string) ([]domain.Update, error) {
	query := `
		SELECT u.* FROM updates u
		JOIN user_update_interactions i ON i.update_id = u.id
		WHERE i.session_key = $1 AND i.bookmarked = TRUE AND u.deleted_at IS NULL
		ORDER BY u.priority ASC, u.update_date DESC`

	var updates []domain.Update
	err := r.db.SelectContext(ctx, &updates, query, sessionKey)
	return updates, err
}
