package unit_test

import (
	"context"
	"errors"
	"testing"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/service/notification"
	"compliance-tracker/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type notifMocks struct {
	prefRepo        *mocks.PreferenceRepository
	interactionRepo *mocks.InteractionRepository
	reminderRepo    *mocks.ReminderRepository
	updateRepo      *mocks.UpdateRepository
	emailSvc        *mocks.EmailService
}

func newNotificationService() (notification.Service, notifMocks) {
	m := notifMocks{
		prefRepo:        new(mocks.PreferenceRepository),
		interactionRepo: new(mocks.InteractionRepository),
		reminderRepo:    new(mocks.ReminderRepository),
		updateRepo:      new(mocks.UpdateRepository),
		emailSvc:        new(mocks.EmailService),
	}
	svc := notification.NewService(m.prefRepo, m.interactionRepo, m.reminderRepo, m.updateRepo, m.emailSvc, zap.NewNop())
	return svc, m
}

func TestNotificationService_GetPreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Row Yields Disabled Default", func(t *testing.T) {
		svc, m := newNotificationService()
		m.prefRepo.On("GetBySession", ctx, "session-1").Return(nil, nil).Once()

		pref, err := svc.GetPreferences(ctx, "session-1")

		assert.NoError(t, err)
		assert.False(t, pref.Enabled)
		assert.Empty(t, pref.Locations)
		m.prefRepo.AssertExpectations(t)
	})
}

func TestNotificationService_Alerts(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled Session Gets No Alerts", func(t *testing.T) {
		svc, m := newNotificationService()
		m.prefRepo.On("GetBySession", ctx, "session-1").Return(nil, nil).Once()

		alerts, err := svc.Alerts(ctx, "session-1")

		assert.NoError(t, err)
		assert.Empty(t, alerts)
		m.updateRepo.AssertNotCalled(t, "ListCreatedSince", mock.Anything, mock.Anything)
	})

	t.Run("Filters By Preference Lists", func(t *testing.T) {
		svc, m := newNotificationService()
		pref := &domain.NotificationPreference{
			SessionKey:   "session-1",
			Enabled:      true,
			Locations:    []string{"Austin"},
			ImpactLevels: []string{"High"},
		}
		updates := []domain.Update{
			{Title: "Austin high", Jurisdiction: "Austin", Category: "Zoning", ImpactLevel: domain.ImpactHigh},
			{Title: "Austin low", Jurisdiction: "Austin", Category: "Zoning", ImpactLevel: domain.ImpactLow},
			{Title: "Dallas high", Jurisdiction: "Dallas", Category: "Zoning", ImpactLevel: domain.ImpactHigh},
		}
		m.prefRepo.On("GetBySession", ctx, "session-1").Return(pref, nil).Once()
		m.updateRepo.On("ListCreatedSince", ctx, mock.Anything).Return(updates, nil).Once()

		alerts, err := svc.Alerts(ctx, "session-1")

		assert.NoError(t, err)
		assert.Len(t, alerts, 1)
		assert.Equal(t, "Austin high", alerts[0].Title)
	})
}

func TestNotificationService_Bookmark(t *testing.T) {
	ctx := context.Background()
	updateID := uuid.New()

	t.Run("Unknown Update", func(t *testing.T) {
		svc, m := newNotificationService()
		m.updateRepo.On("GetByID", ctx, updateID).Return(nil, nil).Once()

		interaction, err := svc.Bookmark(ctx, "session-1", updateID, true)

		assert.ErrorIs(t, err, domain.ErrUpdateNotFound)
		assert.Nil(t, interaction)
		m.interactionRepo.AssertNotCalled(t, "SetBookmarked", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		svc, m := newNotificationService()
		m.updateRepo.On("GetByID", ctx, updateID).Return(&domain.Update{ID: updateID}, nil).Once()
		stored := &domain.UserUpdateInteraction{UpdateID: updateID, SessionKey: "session-1", Bookmarked: true}
		m.interactionRepo.On("SetBookmarked", ctx, updateID, "session-1", true).Return(stored, nil).Once()

		interaction, err := svc.Bookmark(ctx, "session-1", updateID, true)

		assert.NoError(t, err)
		assert.True(t, interaction.Bookmarked)
		m.interactionRepo.AssertExpectations(t)
	})
}

func TestNotificationService_NotifyNewUpdate(t *testing.T) {
	ctx := context.Background()

	update := &domain.Update{
		Title:        "Austin license cap",
		Jurisdiction: "Austin",
		Category:     "Licensing",
		ImpactLevel:  domain.ImpactHigh,
	}

	email1 := "host@example.com"
	email2 := "other@example.com"

	t.Run("Emails Matching Recipients Only", func(t *testing.T) {
		svc, m := newNotificationService()
		prefs := []domain.NotificationPreference{
			{SessionKey: "s1", Enabled: true, EmailAddress: &email1, Locations: []string{"Austin"}},
			{SessionKey: "s2", Enabled: true, EmailAddress: &email2, Locations: []string{"Dallas"}},
		}
		m.prefRepo.On("ListEnabledWithEmail", ctx).Return(prefs, nil).Once()
		m.emailSvc.On("SendUpdateAlert", ctx, email1, update).Return(nil).Once()

		err := svc.NotifyNewUpdate(ctx, update)

		assert.NoError(t, err)
		m.emailSvc.AssertExpectations(t)
		m.emailSvc.AssertNotCalled(t, "SendUpdateAlert", ctx, email2, update)
	})

	t.Run("Send Failure Does Not Abort Fanout", func(t *testing.T) {
		svc, m := newNotificationService()
		prefs := []domain.NotificationPreference{
			{SessionKey: "s1", Enabled: true, EmailAddress: &email1},
			{SessionKey: "s2", Enabled: true, EmailAddress: &email2},
		}
		m.prefRepo.On("ListEnabledWithEmail", ctx).Return(prefs, nil).Once()
		m.emailSvc.On("SendUpdateAlert", ctx, email1, update).Return(errors.New("smtp down")).Once()
		m.emailSvc.On("SendUpdateAlert", ctx, email2, update).Return(nil).Once()

		err := svc.NotifyNewUpdate(ctx, update)

		assert.NoError(t, err)
		m.emailSvc.AssertExpectations(t)
	})
}

func TestNotificationService_Reminders(t *testing.T) {
	ctx := context.Background()
	updateID := uuid.New()

	t.Run("Create Scoped To Session", func(t *testing.T) {
		svc, m := newNotificationService()
		m.updateRepo.On("GetByID", ctx, updateID).Return(&domain.Update{ID: updateID}, nil).Once()
		m.reminderRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.UpdateReminder) bool {
			return r.UpdateID == updateID && r.SessionKey == "session-1"
		})).Return(nil).Once()

		reminder, err := svc.CreateReminder(ctx, "session-1", updateID, domain.CreateReminderInput{})

		assert.NoError(t, err)
		assert.Equal(t, updateID, reminder.UpdateID)
		m.reminderRepo.AssertExpectations(t)
	})

	t.Run("Delete Propagates Not Found", func(t *testing.T) {
		svc, m := newNotificationService()
		reminderID := uuid.New()
		m.reminderRepo.On("Delete", ctx, reminderID, "session-1").Return(domain.ErrReminderNotFound).Once()

		err := svc.DeleteReminder(ctx, "session-1", reminderID)

		assert.ErrorIs(t, err, domain.ErrReminderNotFound)
	})
}
