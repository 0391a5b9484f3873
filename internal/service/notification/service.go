package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/repository"
	"compliance-tracker/internal/service/email"
)

// alertWindow bounds how far back the in-app alert feed looks.
const alertWindow = 30 * 24 * time.Hour

type Service interface {
	GetPreferences(ctx context.Context, sessionKey string) (*domain.NotificationPreference, error)
	SavePreferences(ctx context.Context, sessionKey string, input domain.NotificationPreferenceInput) (*domain.NotificationPreference, error)
	Alerts(ctx context.Context, sessionKey string) ([]domain.Update, error)
	Bookmark(ctx context.Context, sessionKey string, updateID uuid.UUID, bookmarked bool) (*domain.UserUpdateInteraction, error)
	MarkRead(ctx context.Context, sessionKey string, updateID uuid.UUID, read bool) (*domain.UserUpdateInteraction, error)
	Bookmarks(ctx context.Context, sessionKey string) ([]domain.Update, error)
	CreateReminder(ctx context.Context, sessionKey string, updateID uuid.UUID, input domain.CreateReminderInput) (*domain.UpdateReminder, error)
	ListReminders(ctx context.Context, sessionKey string) ([]domain.UpdateReminder, error)
	DeleteReminder(ctx context.Context, sessionKey string, id uuid.UUID) error
	NotifyNewUpdate(ctx context.Context, update *domain.Update) error
}

type service struct {
	preferenceRepo  repository.PreferenceRepository
	interactionRepo repository.InteractionRepository
	reminderRepo    repository.ReminderRepository
	updateRepo      repository.UpdateRepository
	emailSvc        email.Service
	log             *zap.Logger
}

func NewService(
	preferenceRepo repository.PreferenceRepository,
	interactionRepo repository.InteractionRepository,
	reminderRepo repository.ReminderRepository,
	updateRepo repository.UpdateRepository,
	emailSvc email.Service,
	log *zap.Logger,
) Service {
	return &service{
		preferenceRepo:  preferenceRepo,
		interactionRepo: interactionRepo,
		reminderRepo:    reminderRepo,
		updateRepo:      updateRepo,
		emailSvc:        emailSvc,
		log:             log,
	}
}

func (s *service) GetPreferences(ctx context.Context, sessionKey string) (*domain.NotificationPreference, error) {
	pref, err := s.preferenceRepo.GetBySession(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		// A session with no stored row gets the disabled default; nothing
		// is persisted until the visitor opts in.
		return &domain.NotificationPreference{
			SessionKey:   sessionKey,
			Enabled:      false,
			Locations:    []string{},
			Categories:   []string{},
			ImpactLevels: []string{},
		}, nil
	}
	return pref, nil
}

func (s *service) SavePreferences(ctx context.Context, sessionKey string, input domain.NotificationPreferenceInput) (*domain.NotificationPreference, error) {
	pref := &domain.NotificationPreference{
		ID:           uuid.New(),
		SessionKey:   sessionKey,
		Enabled:      input.Enabled,
		EmailAddress: input.EmailAddress,
		Locations:    input.Locations,
		Categories:   input.Categories,
		ImpactLevels: input.ImpactLevels,
	}

	if err := s.preferenceRepo.Upsert(ctx, pref); err != nil {
		return nil, err
	}

	return pref, nil
}

func (s *service) Alerts(ctx context.Context, sessionKey string) ([]domain.Update, error) {
	pref, err := s.GetPreferences(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if !pref.Enabled {
		return []domain.Update{}, nil
	}

	updates, err := s.updateRepo.ListCreatedSince(ctx, time.Now().Add(-alertWindow))
	if err != nil {
		s.log.Error("alert feed query failed", zap.Error(err))
		return []domain.Update{}, nil
	}

	matched := make([]domain.Update, 0, len(updates))
	for _, update := range updates {
		if matchesPreference(pref, &update) {
			matched = append(matched, update)
		}
	}

	return matched, nil
}

// matchesPreference applies the opt-in filter lists; an empty list places
// no constraint on its dimension.
func matchesPreference(pref *domain.NotificationPreference, update *domain.Update) bool {
	if len(pref.Locations) > 0 && !containsString(pref.Locations, update.Jurisdiction) {
		return false
	}
	if len(pref.Categories) > 0 && !containsString(pref.Categories, update.Category) {
		return false
	}
	if len(pref.ImpactLevels) > 0 && !containsString(pref.ImpactLevels, string(update.ImpactLevel)) {
		return false
	}
	return true
}

func (s *service) Bookmark(ctx context.Context, sessionKey string, updateID uuid.UUID, bookmarked bool) (*domain.UserUpdateInteraction, error) {
	if err := s.ensureUpdateExists(ctx, updateID); err != nil {
		return nil, err
	}
	return s.interactionRepo.SetBookmarked(ctx, updateID, sessionKey, bookmarked)
}

func (s *service) MarkRead(ctx context.Context, sessionKey string, updateID uuid.UUID, read bool) (*domain.UserUpdateInteraction, error) {
	if err := s.ensureUpdateExists(ctx, updateID); err != nil {
		return nil, err
	}
	return s.interactionRepo.SetRead(ctx, updateID, sessionKey, read)
}

func (s *service) Bookmarks(ctx context.Context, sessionKey string) ([]domain.Update, error) {
	return s.interactionRepo.ListBookmarkedUpdates(ctx, sessionKey)
}

func (s *service) CreateReminder(ctx context.Context, sessionKey string, updateID uuid.UUID, input domain.CreateReminderInput) (*domain.UpdateReminder, error) {
	if err := s.ensureUpdateExists(ctx, updateID); err != nil {
		return nil, err
	}

	reminder := &domain.UpdateReminder{
		ID:         uuid.New(),
		UpdateID:   updateID,
		SessionKey: sessionKey,
		RemindAt:   input.RemindAt,
		Message:    input.Message,
	}

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, err
	}

	return reminder, nil
}

func (s *service) ListReminders(ctx context.Context, sessionKey string) ([]domain.UpdateReminder, error) {
	return s.reminderRepo.ListBySession(ctx, sessionKey)
}

func (s *service) DeleteReminder(ctx context.Context, sessionKey string, id uuid.UUID) error {
	return s.reminderRepo.Delete(ctx, id, sessionKey)
}

// NotifyNewUpdate fans an email alert out to every opted-in session whose
// filters match the new update. Individual send failures are logged and
// skipped.
func (s *service) NotifyNewUpdate(ctx context.Context, update *domain.Update) error {
	prefs, err := s.preferenceRepo.ListEnabledWithEmail(ctx)
	if err != nil {
		return err
	}

	for _, pref := range prefs {
		if pref.EmailAddress == nil || !matchesPreference(&pref, update) {
			continue
		}
		if err := s.emailSvc.SendUpdateAlert(ctx, *pref.EmailAddress, update); err != nil {
			s.log.Warn("alert email failed",
				zap.String("email", *pref.EmailAddress),
				zap.Error(err))
		}
	}

	return nil
}

func (s *service) ensureUpdateExists(ctx context.Context, updateID uuid.UUID) error {
	update, err := s.updateRepo.GetByID(ctx, updateID)
	if err != nil {
		return err
	}
	if update == nil {
		return domain.ErrUpdateNotFound
	}
	return nil
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
