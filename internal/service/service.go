package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"compliance-tracker/internal/config"
	"compliance-tracker/internal/repository"
	"compliance-tracker/internal/service/auth"
	"compliance-tracker/internal/service/csvio"
	"compliance-tracker/internal/service/dashboard"
	"compliance-tracker/internal/service/email"
	"compliance-tracker/internal/service/notification"
	"compliance-tracker/internal/service/regulation"
	"compliance-tracker/internal/service/search"
	"compliance-tracker/internal/service/update"
)

type Services struct {
	Auth         auth.Service
	Regulation   regulation.Service
	Update       update.Service
	Search       search.Service
	Notification notification.Service
	Email        email.Service
	CSV          csvio.Service
	Dashboard    dashboard.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config, log *zap.Logger) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.AdminUser, cfg)
	regulationService := regulation.NewService(repos.Regulation, redisClient)
	updateService := update.NewService(repos.Update, redisClient, log)
	searchService := search.NewService(repos.Regulation, repos.SavedSearch, repos.Suggestion, log)
	notificationService := notification.NewService(repos.Preference, repos.Interaction, repos.Reminder, repos.Update, emailService, log)
	updateService.SetNotificationService(notificationService)

	csvService := csvio.NewService(repos.Update, updateService, minioClient, cfg, log)
	dashboardService := dashboard.NewService(repos.Regulation, repos.Update, repos.Suggestion, redisClient, log)

	return &Services{
		Auth:         authService,
		Regulation:   regulationService,
		Update:       updateService,
		Search:       searchService,
		Notification: notificationService,
		Email:        emailService,
		CSV:          csvService,
		Dashboard:    dashboardService,
	}
}
