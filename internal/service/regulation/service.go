package regulation

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/repository"
)

const dashboardCacheKey = "cache:dashboard"

type Service interface {
	Create(ctx context.Context, input domain.CreateRegulationInput) (*domain.Regulation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Regulation, error)
	Edit(ctx context.Context, id uuid.UUID, input domain.EditRegulationInput) (*domain.Regulation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Regulation], error)
}

type service struct {
	regulationRepo repository.RegulationRepository
	redis          *redis.Client
}

func NewService(regulationRepo repository.RegulationRepository, redis *redis.Client) Service {
	return &service{
		regulationRepo: regulationRepo,
		redis:          redis,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateRegulationInput) (*domain.Regulation, error) {
	if !input.JurisdictionLevel.IsValid() || !domain.IsAllowedLocation(input.JurisdictionLevel, input.Location) {
		return nil, domain.ErrLocationNotAllowed
	}

	propertyType := input.PropertyType
	if !propertyType.IsValid() {
		propertyType = domain.PropertyBoth
	}

	regulation := &domain.Regulation{
		ID:                   uuid.New(),
		JurisdictionLevel:    input.JurisdictionLevel,
		JurisdictionName:     input.JurisdictionName,
		Location:             input.Location,
		Title:                input.Title,
		Overview:             input.Overview,
		DetailedRequirements: input.DetailedRequirements,
		ComplianceSteps:      input.ComplianceSteps,
		RequiredForms:        input.RequiredForms,
		Penalties:            input.Penalties,
		RecentChanges:        input.RecentChanges,
		Category:             input.Category,
		ComplianceLevel:      input.ComplianceLevel,
		PropertyType:         propertyType,
		EffectiveDate:        input.EffectiveDate,
		ExpiryDate:           input.ExpiryDate,
		Keywords:             input.Keywords,
	}

	if err := s.regulationRepo.Create(ctx, regulation); err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx)

	return regulation, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Regulation, error) {
	regulation, err := s.regulationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if regulation == nil {
		return nil, domain.ErrRegulationNotFound
	}
	return regulation, nil
}

func (s *service) Edit(ctx context.Context, id uuid.UUID, input domain.EditRegulationInput) (*domain.Regulation, error) {
	regulation, err := s.regulationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if regulation == nil {
		return nil, domain.ErrRegulationNotFound
	}

	if input.JurisdictionLevel != nil {
		regulation.JurisdictionLevel = *input.JurisdictionLevel
	}
	if input.JurisdictionName != nil {
		regulation.JurisdictionName = *input.JurisdictionName
	}
	if input.Location != nil {
		regulation.Location = *input.Location
	}
	if input.Title != nil {
		regulation.Title = *input.Title
	}
	if input.Overview.Set {
		regulation.Overview = input.Overview.Value
	}
	if input.DetailedRequirements.Set {
		regulation.DetailedRequirements = input.DetailedRequirements.Value
	}
	if input.ComplianceSteps.Set {
		regulation.ComplianceSteps = input.ComplianceSteps.Value
	}
	if input.RequiredForms.Set {
		regulation.RequiredForms = input.RequiredForms.Value
	}
	if input.Penalties.Set {
		regulation.Penalties = input.Penalties.Value
	}
	if input.RecentChanges.Set {
		regulation.RecentChanges = input.RecentChanges.Value
	}
	if input.Category != nil {
		regulation.Category = *input.Category
	}
	if input.ComplianceLevel != nil {
		regulation.ComplianceLevel = *input.ComplianceLevel
	}
	if input.PropertyType != nil && input.PropertyType.IsValid() {
		regulation.PropertyType = *input.PropertyType
	}
	if input.EffectiveDate.Set {
		regulation.EffectiveDate = input.EffectiveDate.Value
	}
	if input.ExpiryDate.Set {
		regulation.ExpiryDate = input.ExpiryDate.Value
	}
	if input.Keywords.Set {
		regulation.Keywords = input.Keywords.Value
	}

	// The level/location pairing is re-checked after applying edits so a
	// level change cannot orphan an incompatible location.
	if !regulation.JurisdictionLevel.IsValid() || !domain.IsAllowedLocation(regulation.JurisdictionLevel, regulation.Location) {
		return nil, domain.ErrLocationNotAllowed
	}

	if err := s.regulationRepo.Update(ctx, regulation); err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx)

	return regulation, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.regulationRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCaches(ctx)
	return nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Regulation], error) {
	regulations, total, err := s.regulationRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Regulation]{}, err
	}

	return domain.NewPaginatedResponse(regulations, params.Page, params.PageSize, total), nil
}

func (s *service) invalidateCaches(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, dashboardCacheKey).Err()
	}
}
