package handler

import (
	"go.uber.org/zap"

	"compliance-tracker/internal/service"
	"compliance-tracker/internal/validate"
)

type Handlers struct {
	Auth         *AuthHandler
	Regulation   *RegulationHandler
	Update       *UpdateHandler
	Search       *SearchHandler
	Notification *NotificationHandler
	CSV          *CSVHandler
	Dashboard    *DashboardHandler
	Public       *PublicHandler
}

func NewHandlers(services *service.Services, validator *validate.Validator, log *zap.Logger) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Regulation:   NewRegulationHandler(services.Regulation, validator),
		Update:       NewUpdateHandler(services.Update, services.Notification, validator),
		Search:       NewSearchHandler(services.Search, validator),
		Notification: NewNotificationHandler(services.Notification),
		CSV:          NewCSVHandler(services.CSV),
		Dashboard:    NewDashboardHandler(services.Dashboard),
		Public:       NewPublicHandler(log),
	}
}
