package search

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/repository"
)

const (
	maxSuggestions        = 10
	titleSuggestionLimit  = 5
	fieldSuggestionLimit  = 5
	keywordGroupLimit     = 3
	suggestionSampleSize  = 5
	minSuggestionQueryLen = 2
)

// ErrEmptyCriteria rejects saving a search that would match everything.
var ErrEmptyCriteria = errors.New("saved search criteria cannot be empty")

type Service interface {
	AdvancedSearch(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Regulation, error)
	GetSuggestions(ctx context.Context, query string) ([]domain.Suggestion, error)
	SaveSearch(ctx context.Context, input domain.SaveSearchInput) (*domain.SavedSearch, error)
	ListSavedSearches(ctx context.Context) ([]domain.SavedSearch, error)
	UseSavedSearch(ctx context.Context, id uuid.UUID) (*domain.SearchCriteria, error)
}

type service struct {
	regulationRepo  repository.RegulationRepository
	savedSearchRepo repository.SavedSearchRepository
	suggestionRepo  repository.SuggestionRepository
	log             *zap.Logger
}

func NewService(
	regulationRepo repository.RegulationRepository,
	savedSearchRepo repository.SavedSearchRepository,
	suggestionRepo repository.SuggestionRepository,
	log *zap.Logger,
) Service {
	return &service{
		regulationRepo:  regulationRepo,
		savedSearchRepo: savedSearchRepo,
		suggestionRepo:  suggestionRepo,
		log:             log,
	}
}

// AdvancedSearch runs the composed criteria against the regulation store.
// A query failure degrades to an empty result set so the page still
// renders; it never propagates to the caller.
func (s *service) AdvancedSearch(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Regulation, error) {
	regulations, err := s.regulationRepo.AdvancedSearch(ctx, criteria)
	if err != nil {
		s.log.Error("advanced search failed", zap.Error(err))
		return []domain.Regulation{}, nil
	}

	if criteria.Query != "" {
		s.recordSuggestions(ctx, criteria.Query, regulations)
	}

	return regulations, nil
}

// recordSuggestions bumps autocomplete frequency counters for the query
// text and for the location/category of the first few results. Failures
// are logged and swallowed: suggestion bookkeeping must never fail or roll
// back the search that triggered it.
func (s *service) recordSuggestions(ctx context.Context, query string, results []domain.Regulation) {
	if err := s.suggestionRepo.Upsert(ctx, query, domain.SuggestionQuery); err != nil {
		s.log.Warn("failed to record query suggestion", zap.Error(err))
	}

	sample := results
	if len(sample) > suggestionSampleSize {
		sample = sample[:suggestionSampleSize]
	}
	for _, regulation := range sample {
		if err := s.suggestionRepo.Upsert(ctx, regulation.Location, domain.SuggestionLocation); err != nil {
			s.log.Warn("failed to record location suggestion", zap.Error(err))
		}
		if err := s.suggestionRepo.Upsert(ctx, regulation.Category, domain.SuggestionCategory); err != nil {
			s.log.Warn("failed to record category suggestion", zap.Error(err))
		}
	}
}

// GetSuggestions assembles autocomplete entries from titles, locations,
// categories and keywords, in that order, deduplicated by (text, type) and
// capped at ten.
func (s *service) GetSuggestions(ctx context.Context, query string) ([]domain.Suggestion, error) {
	query = strings.TrimSpace(query)
	if len(query) < minSuggestionQueryLen {
		return []domain.Suggestion{}, nil
	}

	suggestions := make([]domain.Suggestion, 0, maxSuggestions)
	seen := make(map[domain.Suggestion]bool)

	add := func(text, suggestionType string) {
		if len(suggestions) >= maxSuggestions {
			return
		}
		entry := domain.Suggestion{Text: text, Type: suggestionType}
		if seen[entry] {
			return
		}
		seen[entry] = true
		suggestions = append(suggestions, entry)
	}

	titles, err := s.regulationRepo.SuggestTitles(ctx, query, titleSuggestionLimit)
	if err != nil {
		s.log.Error("title suggestions failed", zap.Error(err))
	}
	for _, title := range titles {
		add(title, domain.SuggestionTitle)
	}

	locations, err := s.regulationRepo.SuggestLocations(ctx, query, fieldSuggestionLimit)
	if err != nil {
		s.log.Error("location suggestions failed", zap.Error(err))
	}
	for _, location := range locations {
		add(location, domain.SuggestionLocation)
	}

	categories, err := s.regulationRepo.SuggestCategories(ctx, query, fieldSuggestionLimit)
	if err != nil {
		s.log.Error("category suggestions failed", zap.Error(err))
	}
	for _, category := range categories {
		add(category, domain.SuggestionCategory)
	}

	groups, err := s.regulationRepo.KeywordGroups(ctx, query, keywordGroupLimit)
	if err != nil {
		s.log.Error("keyword suggestions failed", zap.Error(err))
	}
	lowered := strings.ToLower(query)
	for _, group := range groups {
		for _, keyword := range strings.Split(group, ",") {
			keyword = strings.TrimSpace(keyword)
			if keyword == "" || !strings.Contains(strings.ToLower(keyword), lowered) {
				continue
			}
			add(keyword, domain.SuggestionKeyword)
		}
	}

	return suggestions, nil
}

func (s *service) SaveSearch(ctx context.Context, input domain.SaveSearchInput) (*domain.SavedSearch, error) {
	if input.Criteria.IsEmpty() {
		return nil, ErrEmptyCriteria
	}

	existing, err := s.savedSearchRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSavedSearchExists
	}

	criteria, err := json.Marshal(input.Criteria)
	if err != nil {
		return nil, err
	}

	search := &domain.SavedSearch{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		IsPublic:    input.IsPublic,
		Criteria:    criteria,
	}

	if err := s.savedSearchRepo.Create(ctx, search); err != nil {
		return nil, err
	}

	return search, nil
}

func (s *service) ListSavedSearches(ctx context.Context) ([]domain.SavedSearch, error) {
	return s.savedSearchRepo.ListPublic(ctx)
}

func (s *service) UseSavedSearch(ctx context.Context, id uuid.UUID) (*domain.SearchCriteria, error) {
	search, err := s.savedSearchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if search == nil {
		return nil, domain.ErrSavedSearchNotFound
	}

	if err := s.savedSearchRepo.RecordUse(ctx, id); err != nil {
		return nil, err
	}

	var criteria domain.SearchCriteria
	if err := json.Unmarshal(search.Criteria, &criteria); err != nil {
		return nil, err
	}

	return &criteria, nil
}
