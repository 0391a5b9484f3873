package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Regulation  RegulationRepository
	Update      UpdateRepository
	SavedSearch SavedSearchRepository
	Suggestion  SuggestionRepository
	Interaction InteractionRepository
	Preference  PreferenceRepository
	Reminder    ReminderRepository
	AdminUser   AdminUserRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Regulation:  NewRegulationRepository(db),
		Update:      NewUpdateRepository(db),
		SavedSearch: NewSavedSearchRepository(db),
		Suggestion:  NewSuggestionRepository(db),
		Interaction: NewInteractionRepository(db),
		Preference:  NewPreferenceRepository(db),
		Reminder:    NewReminderRepository(db),
		AdminUser:   NewAdminUserRepository(db),
	}
}
