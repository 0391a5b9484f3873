package unit_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/service/search"
	"compliance-tracker/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newSearchService(regRepo *mocks.RegulationRepository, savedRepo *mocks.SavedSearchRepository, sugRepo *mocks.SuggestionRepository) search.Service {
	return search.NewService(regRepo, savedRepo, sugRepo, zap.NewNop())
}

func TestSearchService_AdvancedSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Records Suggestions On Query", func(t *testing.T) {
		regRepo := new(mocks.RegulationRepository)
		savedRepo := new(mocks.SavedSearchRepository)
		sugRepo := new(mocks.SuggestionRepository)
		svc := newSearchService(regRepo, savedRepo, sugRepo)

		results := []domain.Regulation{
			{ID: uuid.New(), Title: "Austin STR Zoning Requirements", Location: "Austin", Category: "Zoning"},
		}
		criteria := domain.SearchCriteria{Query: "zoning"}

		regRepo.On("AdvancedSearch", ctx, criteria).Return(results, nil).Once()
		sugRepo.On("Upsert", ctx, "zoning", domain.SuggestionQuery).Return(nil).Once()
		sugRepo.On("Upsert", ctx, "Austin", domain.SuggestionLocation).Return(nil).Once()
		sugRepo.On("Upsert", ctx, "Zoning", domain.SuggestionCategory).Return(nil).Once()

		found, err := svc.AdvancedSearch(ctx, criteria)

		assert.NoError(t, err)
		assert.Len(t, found, 1)
		regRepo.AssertExpectations(t)
		sugRepo.AssertExpectations(t)
	})

	t.Run("Query Failure Degrades To Empty", func(t *testing.T) {
		regRepo := new(mocks.RegulationRepository)
		svc := newSearchService(regRepo, new(mocks.SavedSearchRepository), new(mocks.SuggestionRepository))

		criteria := domain.SearchCriteria{Query: "licensing"}
		regRepo.On("AdvancedSearch", ctx, criteria).Return(nil, errors.New("db down")).Once()

		found, err := svc.AdvancedSearch(ctx, criteria)

		assert.NoError(t, err)
		assert.Empty(t, found)
		regRepo.AssertExpectations(t)
	})

	t.Run("Suggestion Failure Does Not Fail Search", func(t *testing.T) {
		regRepo := new(mocks.RegulationRepository)
		sugRepo := new(mocks.SuggestionRepository)
		svc := newSearchService(regRepo, new(mocks.SavedSearchRepository), sugRepo)

		criteria := domain.SearchCriteria{Query: "tax"}
		regRepo.On("AdvancedSearch", ctx, criteria).Return([]domain.Regulation{}, nil).Once()
		sugRepo.On("Upsert", ctx, "tax", domain.SuggestionQuery).Return(errors.New("write failed")).Once()

		found, err := svc.AdvancedSearch(ctx, criteria)

		assert.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("No Suggestions Without Query", func(t *testing.T) {
		regRepo := new(mocks.RegulationRepository)
		sugRepo := new(mocks.SuggestionRepository)
		svc := newSearchService(regRepo, new(mocks.SavedSearchRepository), sugRepo)

		criteria := domain.SearchCriteria{Categories: []string{"Safety"}}
		regRepo.On("AdvancedSearch", ctx, criteria).Return([]domain.Regulation{}, nil).Once()

		_, err := svc.AdvancedSearch(ctx, criteria)

		assert.NoError(t, err)
		sugRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSearchService_GetSuggestions(t *testing.T) {
	ctx := context.Background()

	t.Run("Short Query Returns Empty", func(t *testing.T) {
		regRepo := new(mocks.RegulationRepository)
		svc := newSearchService(regRepo, new(mocks.SavedSearchRepository), new(mocks.SuggestionRepository))

		suggestions, err := svc.GetSuggestions(ctx, "a")

		assert.NoError(t, err)
		assert.Empty(t, suggestions)
		regRepo.AssertNotCalled(t, "SuggestTitles", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Deduplicates And Caps At Ten", func(t *testing.T) {
		regRepo := new(mocks.RegulationRepository)
		svc := newSearchService(regRepo, new(mocks.SavedSearchRepository), new(mocks.SuggestionRepository))

		regRepo.On("SuggestTitles", ctx, "tax", 5).Return([]string{
			"Federal STR Tax Reporting", "Federal STR Tax Reporting", "State Tax Permit",
			"Tax Filing Deadlines", "Tax Exemption Rules",
		}, nil).Once()
		regRepo.On("SuggestLocations", ctx, "tax", 5).Return([]string{
			"Texas", "Austin", "Dallas", "Houston", "Denver",
		}, nil).Once()
		regRepo.On("SuggestCategories", ctx, "tax", 5).Return([]string{"Taxes", "Registration"}, nil).Once()
		regRepo.On("KeywordGroups", ctx, "tax", 3).Return([]string{"tax, IRS, income"}, nil).Once()

		suggestions, err := svc.GetSuggestions(ctx, "tax")

		assert.NoError(t, err)
		assert.Len(t, suggestions, 10)
		assert.Equal(t, domain.Suggestion{Text: "Federal STR Tax Reporting", Type: domain.SuggestionTitle}, suggestions[0])

		seen := make(map[domain.Suggestion]bool)
		for _, s := range suggestions {
			assert.False(t, seen[s], "duplicate suggestion %v", s)
			seen[s] = true
		}
	})

	t.Run("Keywords Filtered By Query Substring", func(t *testing.T) {
		regRepo := new(mocks.RegulationRepository)
		svc := newSearchService(regRepo, new(mocks.SavedSearchRepository), new(mocks.SuggestionRepository))

		regRepo.On("SuggestTitles", ctx, "zoning", 5).Return([]string{}, nil).Once()
		regRepo.On("SuggestLocations", ctx, "zoning", 5).Return([]string{}, nil).Once()
		regRepo.On("SuggestCategories", ctx, "zoning", 5).Return([]string{}, nil).Once()
		regRepo.On("KeywordGroups", ctx, "zoning", 3).Return([]string{"zoning, license, type 2"}, nil).Once()

		suggestions, err := svc.GetSuggestions(ctx, "zoning")

		assert.NoError(t, err)
		assert.Equal(t, []domain.Suggestion{{Text: "zoning", Type: domain.SuggestionKeyword}}, suggestions)
	})
}

func TestSearchService_SaveSearch(t *testing.T) {
	ctx := context.Background()

	input := domain.SaveSearchInput{
		Name:     "Austin zoning",
		IsPublic: true,
		Criteria: domain.SearchCriteria{Query: "zoning", Locations: []string{"Austin"}},
	}

	t.Run("Success", func(t *testing.T) {
		savedRepo := new(mocks.SavedSearchRepository)
		svc := newSearchService(new(mocks.RegulationRepository), savedRepo, new(mocks.SuggestionRepository))

		savedRepo.On("GetByName", ctx, "Austin zoning").Return(nil, nil).Once()
		savedRepo.On("Create", ctx, mock.MatchedBy(func(s *domain.SavedSearch) bool {
			var criteria domain.SearchCriteria
			if err := json.Unmarshal(s.Criteria, &criteria); err != nil {
				return false
			}
			return s.Name == "Austin zoning" && s.IsPublic && criteria.Query == "zoning"
		})).Return(nil).Once()

		saved, err := svc.SaveSearch(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, saved)
		savedRepo.AssertExpectations(t)
	})

	t.Run("Empty Criteria Rejected", func(t *testing.T) {
		savedRepo := new(mocks.SavedSearchRepository)
		svc := newSearchService(new(mocks.RegulationRepository), savedRepo, new(mocks.SuggestionRepository))

		saved, err := svc.SaveSearch(ctx, domain.SaveSearchInput{Name: "match everything"})

		assert.ErrorIs(t, err, search.ErrEmptyCriteria)
		assert.Nil(t, saved)
		savedRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		savedRepo := new(mocks.SavedSearchRepository)
		svc := newSearchService(new(mocks.RegulationRepository), savedRepo, new(mocks.SuggestionRepository))

		savedRepo.On("GetByName", ctx, "Austin zoning").Return(&domain.SavedSearch{Name: "Austin zoning"}, nil).Once()

		saved, err := svc.SaveSearch(ctx, input)

		assert.ErrorIs(t, err, domain.ErrSavedSearchExists)
		assert.Nil(t, saved)
		savedRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSearchService_UseSavedSearch(t *testing.T) {
	ctx := context.Background()
	searchID := uuid.New()

	t.Run("Records Use And Returns Criteria", func(t *testing.T) {
		savedRepo := new(mocks.SavedSearchRepository)
		svc := newSearchService(new(mocks.RegulationRepository), savedRepo, new(mocks.SuggestionRepository))

		stored := &domain.SavedSearch{
			ID:       searchID,
			Name:     "Texas mandatory",
			Criteria: json.RawMessage(`{"query":"registration","compliance_levels":["Mandatory"]}`),
		}
		savedRepo.On("GetByID", ctx, searchID).Return(stored, nil).Once()
		savedRepo.On("RecordUse", ctx, searchID).Return(nil).Once()

		criteria, err := svc.UseSavedSearch(ctx, searchID)

		assert.NoError(t, err)
		assert.Equal(t, "registration", criteria.Query)
		assert.Equal(t, []string{"Mandatory"}, criteria.ComplianceLevels)
		savedRepo.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		savedRepo := new(mocks.SavedSearchRepository)
		svc := newSearchService(new(mocks.RegulationRepository), savedRepo, new(mocks.SuggestionRepository))

		savedRepo.On("GetByID", ctx, searchID).Return(nil, nil).Once()

		criteria, err := svc.UseSavedSearch(ctx, searchID)

		assert.ErrorIs(t, err, domain.ErrSavedSearchNotFound)
		assert.Nil(t, criteria)
		savedRepo.AssertNotCalled(t, "RecordUse", mock.Anything, mock.Anything)
	})
}
