package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"compliance-tracker/internal/domain"
)

type PreferenceRepository interface {
	GetBySession(ctx context.Context, sessionKey string) (*domain.NotificationPreference, error)
	Upsert(ctx context.Context, pref *domain.NotificationPreference) error
	ListEnabledWithEmail(ctx context.Context) ([]domain.NotificationPreference, error)
}

type preferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetBySession(ctx context.Context, sessionKey string) (*domain.NotificationPreference, error) {
	var pref domain.NotificationPreference
	query := `SELECT * FROM notification_preferences WHERE session_key = $1`

	err := r.db.GetContext(ctx, &pref, query, sessionKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, pref *domain.NotificationPreference) error {
	query := `
		INSERT INTO notification_preferences
			(id, session_key, enabled, email_address, locations, categories, impact_levels)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_key)
		DO UPDATE SET enabled = $3, email_address = $4, locations = $5,
			categories = $6, impact_levels = $7, updated_at = NOW()
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		pref.ID, pref.SessionKey, pref.Enabled, pref.EmailAddress,
		pq.Array([]string(pref.Locations)), pq.Array([]string(pref.Categories)),
		pq.Array([]string(pref.ImpactLevels)),
	).Scan(&pref.ID, &pref.CreatedAt, &pref.UpdatedAt)
}

func (r *preferenceRepository) ListEnabledWithEmail(ctx context.Context) ([]domain.NotificationPreference, error) {
	query := `
		SELECT * FROM notification_preferences
		WHERE enabled = TRUE AND email_address IS NOT NULL`

	var prefs []domain.NotificationPreference
	err := r.db.SelectContext(ctx, &prefs, query)
	return prefs, err
}
