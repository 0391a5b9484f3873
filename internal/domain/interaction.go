package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserUpdateInteraction tracks a visitor session's bookmark and read state
// for one update. Created lazily on the first interaction.
type UserUpdateInteraction struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UpdateID   uuid.UUID `json:"update_id" db:"update_id"`
	SessionKey string    `json:"-" db:"session_key"`
	Bookmarked bool      `json:"bookmarked" db:"bookmarked"`
	IsRead     bool      `json:"is_read" db:"is_read"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type NotificationPreference struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	SessionKey   string         `json:"-" db:"session_key"`
	Enabled      bool           `json:"enabled" db:"enabled"`
	EmailAddress *string        `json:"email_address,omitempty" db:"email_address"`
	Locations    pq.StringArray `json:"locations" db:"locations"`
	Categories   pq.StringArray `json:"categories" db:"categories"`
	ImpactLevels pq.StringArray `json:"impact_levels" db:"impact_levels"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

type NotificationPreferenceInput struct {
	Enabled      bool     `json:"enabled"`
	EmailAddress *string  `json:"email_address,omitempty" validate:"omitempty,email"`
	Locations    []string `json:"locations,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	ImpactLevels []string `json:"impact_levels,omitempty"`
}

type UpdateReminder struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UpdateID   uuid.UUID `json:"update_id" db:"update_id"`
	SessionKey string    `json:"-" db:"session_key"`
	RemindAt   time.Time `json:"remind_at" db:"remind_at"`
	Message    *string   `json:"message,omitempty" db:"message"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type CreateReminderInput struct {
	RemindAt time.Time `json:"remind_at" validate:"required"`
	Message  *string   `json:"message,omitempty" validate:"omitempty,max=500"`
}
