package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type SavedSearch struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description,omitempty" db:"description"`
	IsPublic    bool            `json:"is_public" db:"is_public"`
	Criteria    json.RawMessage `json:"criteria" db:"criteria"`
	UseCount    int             `json:"use_count" db:"use_count"`
	LastUsed    *time.Time      `json:"last_used,omitempty" db:"last_used"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

type SaveSearchInput struct {
	Name        string         `json:"name" validate:"required,max=100"`
	Description *string        `json:"description,omitempty" validate:"omitempty,max=500"`
	Criteria    SearchCriteria `json:"criteria"`
	IsPublic    bool           `json:"is_public"`
}

const (
	SuggestionQuery    = "query"
	SuggestionTitle    = "title"
	SuggestionLocation = "location"
	SuggestionCategory = "category"
	SuggestionKeyword  = "keyword"
)

// SearchSuggestion is a frequency-ranked autocomplete fragment harvested
// from successful searches. (text, type) is unique.
type SearchSuggestion struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Text      string    `json:"text" db:"text"`
	Type      string    `json:"type" db:"type"`
	Frequency int       `json:"frequency" db:"frequency"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Suggestion is the autocomplete wire shape returned to clients.
type Suggestion struct {
	Text string `json:"text"`
	Type string `json:"type"`
}
