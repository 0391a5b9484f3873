package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/repository"
)

const (
	cacheKey = "cache:dashboard"
	cacheTTL = 5 * time.Minute

	topSearchLimit     = 10
	deadlineWindowDays = 30
)

type Stats struct {
	RegulationCount    int64                     `json:"regulation_count"`
	RegulationsByLevel map[string]int64          `json:"regulations_by_level"`
	UpdateCount        int64                     `json:"update_count"`
	UpdatesByStatus    map[string]int64          `json:"updates_by_status"`
	PendingDeadlines   int                       `json:"pending_deadlines"`
	TopSearches        []domain.SearchSuggestion `json:"top_searches"`
	GeneratedAt        time.Time                 `json:"generated_at"`
}

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	regulationRepo repository.RegulationRepository
	updateRepo     repository.UpdateRepository
	suggestionRepo repository.SuggestionRepository
	redis          *redis.Client
	log            *zap.Logger
}

func NewService(
	regulationRepo repository.RegulationRepository,
	updateRepo repository.UpdateRepository,
	suggestionRepo repository.SuggestionRepository,
	redisClient *redis.Client,
	log *zap.Logger,
) Service {
	return &service{
		regulationRepo: regulationRepo,
		updateRepo:     updateRepo,
		suggestionRepo: suggestionRepo,
		redis:          redisClient,
		log:            log,
	}
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var stats Stats
			if err := json.Unmarshal(cached, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats := &Stats{GeneratedAt: time.Now()}

	var err error
	if stats.RegulationCount, err = s.regulationRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.RegulationsByLevel, err = s.regulationRepo.CountByLevel(ctx); err != nil {
		return nil, err
	}
	if stats.UpdateCount, err = s.updateRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.UpdatesByStatus, err = s.updateRepo.CountByStatus(ctx); err != nil {
		return nil, err
	}

	deadlines, err := s.updateRepo.ListWithDeadlineWithin(ctx, deadlineWindowDays)
	if err != nil {
		return nil, err
	}
	stats.PendingDeadlines = len(deadlines)

	// Top searches are decorative; a failed query leaves the list empty.
	topSearches, err := s.suggestionRepo.TopByType(ctx, domain.SuggestionQuery, topSearchLimit)
	if err != nil {
		s.log.Warn("top search query failed", zap.Error(err))
		topSearches = []domain.SearchSuggestion{}
	}
	stats.TopSearches = topSearches

	if s.redis != nil {
		if payload, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, cacheKey, payload, cacheTTL).Err()
		}
	}

	return stats, nil
}
