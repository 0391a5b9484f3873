package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"compliance-tracker/internal/domain"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.UpdateReminder) error
	ListBySession(ctx context.Context, sessionKey string) ([]domain.UpdateReminder, error)
	Delete(ctx context.Context, id uuid.UUID, sessionKey string) error
}

type reminderRepository struct {
	db *sqlx.DB
}

func NewReminderRepository(db *sqlx.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *domain.UpdateReminder) error {
	query := `
		INSERT INTO update_reminders (id, update_id, session_key, remind_at, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		reminder.ID, reminder.UpdateID, reminder.SessionKey,
		reminder.RemindAt, reminder.Message,
	).Scan(&reminder.CreatedAt)
}

func (r *reminderRepository) ListBySession(ctx context.Context, sessionKey string) ([]domain.UpdateReminder, error) {
	query := `
		SELECT * FROM update_reminders
		WHERE session_key = $1
		ORDER BY remind_at ASC`

	var reminders []domain.UpdateReminder
	err := r.db.SelectContext(ctx, &reminders, query, sessionKey)
	return reminders, err
}

func (r *reminderRepository) Delete(ctx context.Context, id uuid.UUID, sessionKey string) error {
	query := `DELETE FROM update_reminders WHERE id = $1 AND session_key = $2`
	result, err := r.db.ExecContext(ctx, query, id, sessionKey)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}
