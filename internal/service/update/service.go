package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/repository"
	"compliance-tracker/internal/service/notification"
)

const (
	boardCacheKey     = "cache:updates:board"
	dashboardCacheKey = "cache:dashboard"
	boardCacheTTL     = 5 * time.Minute

	defaultDeadlineWindowDays = 30
)

type Service interface {
	Create(ctx context.Context, input domain.CreateUpdateInput) (*domain.Update, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Update, error)
	Edit(ctx context.Context, id uuid.UUID, input domain.EditUpdateInput) (*domain.Update, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters domain.UpdateFilters, params domain.PaginationParams) (domain.PaginatedResponse[domain.Update], error)
	Search(ctx context.Context, query string, limit int) ([]domain.Update, error)
	Board(ctx context.Context) (*domain.UpdateBoard, error)
	BulkSetStatus(ctx context.Context, ids []uuid.UUID, status domain.UpdateStatus) (domain.BulkStatusResult, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (domain.BulkStatusResult, error)
	DeadlineReminders(ctx context.Context, days int) ([]domain.Update, error)
	SetNotificationService(notifSvc notification.Service)
}

type service struct {
	updateRepo repository.UpdateRepository
	redis      *redis.Client
	log        *zap.Logger
	notifSvc   notification.Service
}

func NewService(updateRepo repository.UpdateRepository, redis *redis.Client, log *zap.Logger) Service {
	return &service{
		updateRepo: updateRepo,
		redis:      redis,
		log:        log,
	}
}

func (s *service) SetNotificationService(notifSvc notification.Service) {
	s.notifSvc = notifSvc
}

func (s *service) Create(ctx context.Context, input domain.CreateUpdateInput) (*domain.Update, error) {
	priority := input.Priority
	if priority < domain.PriorityHigh || priority > domain.PriorityLow {
		priority = domain.PriorityMedium
	}

	updateDate := time.Now()
	if input.UpdateDate != nil {
		updateDate = *input.UpdateDate
	}

	update := &domain.Update{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		Jurisdiction: input.Jurisdiction,
		Status:       input.Status,
		// change_type mirrors status on every write for legacy readers.
		ChangeType:           input.Status,
		Category:             input.Category,
		ImpactLevel:          input.ImpactLevel,
		Priority:             priority,
		UpdateDate:           updateDate,
		EffectiveDate:        input.EffectiveDate,
		DeadlineDate:         input.DeadlineDate,
		ComplianceDeadline:   input.ComplianceDeadline,
		ExpectedDecisionDate: input.ExpectedDecisionDate,
		DecisionStatus:       input.DecisionStatus,
		ActionRequired:       input.ActionRequired,
		ActionDescription:    input.ActionDescription,
		Summary:              input.Summary,
		FullText:             input.FullText,
		ExpertAnalysis:       input.ExpertAnalysis,
		PotentialImpact:      input.PotentialImpact,
		Tags:                 input.Tags,
		SourceURL:            input.SourceURL,
	}

	if err := s.updateRepo.Create(ctx, update); err != nil {
		return nil, err
	}

	if len(input.RelatedRegulationIDs) > 0 {
		if err := s.updateRepo.ReplaceRelatedRegulations(ctx, update.ID, input.RelatedRegulationIDs); err != nil {
			return nil, err
		}
		update.RelatedRegulationIDs = input.RelatedRegulationIDs
	}

	s.invalidateCaches(ctx)

	if s.notifSvc != nil {
		snapshot := *update
		go func() {
			if err := s.notifSvc.NotifyNewUpdate(context.Background(), &snapshot); err != nil {
				s.log.Warn("update alert delivery failed", zap.Error(err))
			}
		}()
	}

	return update, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Update, error) {
	update, err := s.updateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update == nil {
		return nil, domain.ErrUpdateNotFound
	}
	return update, nil
}

func (s *service) Edit(ctx context.Context, id uuid.UUID, input domain.EditUpdateInput) (*domain.Update, error) {
	update, err := s.updateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update == nil {
		return nil, domain.ErrUpdateNotFound
	}

	if input.Title != nil {
		update.Title = *input.Title
	}
	if input.Description != nil {
		update.Description = *input.Description
	}
	if input.Jurisdiction != nil {
		update.Jurisdiction = *input.Jurisdiction
	}
	if input.Status != nil && input.Status.IsValid() {
		update.Status = *input.Status
		update.ChangeType = *input.Status
	}
	if input.Category != nil {
		update.Category = *input.Category
	}
	if input.ImpactLevel != nil && input.ImpactLevel.IsValid() {
		update.ImpactLevel = *input.ImpactLevel
	}
	if input.Priority != nil && *input.Priority >= domain.PriorityHigh && *input.Priority <= domain.PriorityLow {
		update.Priority = *input.Priority
	}
	if input.UpdateDate.Set && input.UpdateDate.Value != nil {
		update.UpdateDate = *input.UpdateDate.Value
	}
	if input.EffectiveDate.Set {
		update.EffectiveDate = input.EffectiveDate.Value
	}
	if input.DeadlineDate.Set {
		update.DeadlineDate = input.DeadlineDate.Value
	}
	if input.ComplianceDeadline.Set {
		update.ComplianceDeadline = input.ComplianceDeadline.Value
	}
	if input.ExpectedDecisionDate.Set {
		update.ExpectedDecisionDate = input.ExpectedDecisionDate.Value
	}
	if input.DecisionStatus.Set {
		update.DecisionStatus = input.DecisionStatus.Value
	}
	if input.ActionRequired != nil {
		update.ActionRequired = *input.ActionRequired
	}
	if input.ActionDescription.Set {
		update.ActionDescription = input.ActionDescription.Value
	}
	if input.Summary.Set {
		update.Summary = input.Summary.Value
	}
	if input.FullText.Set {
		update.FullText = input.FullText.Value
	}
	if input.ExpertAnalysis.Set {
		update.ExpertAnalysis = input.ExpertAnalysis.Value
	}
	if input.PotentialImpact.Set {
		update.PotentialImpact = input.PotentialImpact.Value
	}
	if input.Tags.Set {
		update.Tags = input.Tags.Value
	}
	if input.SourceURL.Set {
		update.SourceURL = input.SourceURL.Value
	}

	if err := s.updateRepo.Update(ctx, update); err != nil {
		return nil, err
	}

	if input.RelatedRegulationIDs != nil {
		if err := s.updateRepo.ReplaceRelatedRegulations(ctx, update.ID, input.RelatedRegulationIDs); err != nil {
			return nil, err
		}
		update.RelatedRegulationIDs = input.RelatedRegulationIDs
	}

	s.invalidateCaches(ctx)

	return update, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.updateRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCaches(ctx)
	return nil
}

// List degrades to an empty page on query failure; the public updates page
// should render rather than 500.
func (s *service) List(ctx context.Context, filters domain.UpdateFilters, params domain.PaginationParams) (domain.PaginatedResponse[domain.Update], error) {
	updates, total, err := s.updateRepo.List(ctx, filters, params)
	if err != nil {
		s.log.Error("update listing failed", zap.Error(err))
		return domain.NewPaginatedResponse([]domain.Update{}, params.Page, params.PageSize, 0), nil
	}

	return domain.NewPaginatedResponse(updates, params.Page, params.PageSize, total), nil
}

func (s *service) Search(ctx context.Context, query string, limit int) ([]domain.Update, error) {
	updates, err := s.updateRepo.SearchText(ctx, query, limit)
	if err != nil {
		s.log.Error("update search failed", zap.Error(err))
		return []domain.Update{}, nil
	}
	return updates, nil
}

func (s *service) Board(ctx context.Context) (*domain.UpdateBoard, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, boardCacheKey).Bytes(); err == nil {
			var board domain.UpdateBoard
			if err := json.Unmarshal(cached, &board); err == nil {
				return &board, nil
			}
		}
	}

	board := &domain.UpdateBoard{
		RecentAndUpcoming: []domain.Update{},
		Proposed:          []domain.Update{},
	}

	recentUpcoming, err := s.updateRepo.ListRecentAndUpcoming(ctx)
	if err != nil {
		s.log.Error("recent/upcoming bucket query failed", zap.Error(err))
		return board, nil
	}
	proposed, err := s.updateRepo.ListProposed(ctx)
	if err != nil {
		s.log.Error("proposed bucket query failed", zap.Error(err))
		return board, nil
	}

	if recentUpcoming != nil {
		board.RecentAndUpcoming = recentUpcoming
	}
	if proposed != nil {
		board.Proposed = proposed
	}

	if s.redis != nil {
		if payload, err := json.Marshal(board); err == nil {
			_ = s.redis.Set(ctx, boardCacheKey, payload, boardCacheTTL).Err()
		}
	}

	return board, nil
}

// BulkSetStatus applies the status (and its change_type mirror) to every
// existing id, counting per-row outcomes instead of aborting on the first
// missing row.
func (s *service) BulkSetStatus(ctx context.Context, ids []uuid.UUID, status domain.UpdateStatus) (domain.BulkStatusResult, error) {
	if !status.IsValid() {
		return domain.BulkStatusResult{}, fmt.Errorf("invalid status %q", status)
	}

	var result domain.BulkStatusResult
	for _, id := range ids {
		err := s.updateRepo.SetStatus(ctx, id, status)
		switch {
		case err == nil:
			result.SuccessCount++
		case errors.Is(err, domain.ErrUpdateNotFound):
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: not found", id))
		default:
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", id, err))
		}
	}

	s.invalidateCaches(ctx)

	return result, nil
}

func (s *service) BulkDelete(ctx context.Context, ids []uuid.UUID) (domain.BulkStatusResult, error) {
	var result domain.BulkStatusResult
	for _, id := range ids {
		err := s.updateRepo.Delete(ctx, id)
		switch {
		case err == nil:
			result.SuccessCount++
		case errors.Is(err, domain.ErrUpdateNotFound):
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: not found", id))
		default:
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", id, err))
		}
	}

	s.invalidateCaches(ctx)

	return result, nil
}

func (s *service) DeadlineReminders(ctx context.Context, days int) ([]domain.Update, error) {
	if days <= 0 {
		days = defaultDeadlineWindowDays
	}
	return s.updateRepo.ListWithDeadlineWithin(ctx, days)
}

func (s *service) invalidateCaches(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, boardCacheKey, dashboardCacheKey).Err()
	}
}
