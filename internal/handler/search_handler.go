package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/middleware"
	"compliance-tracker/internal/service/search"
	"compliance-tracker/internal/validate"
)

type SearchHandler struct {
	searchService search.Service
	validator     *validate.Validator
}

func NewSearchHandler(searchService search.Service, validator *validate.Validator) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		validator:     validator,
	}
}

// regulationQueryFromCtx collects the raw multi-value search parameters.
// Repeated keys and comma-separated values are both accepted.
func regulationQueryFromCtx(c *fiber.Ctx) validate.RegulationQuery {
	return validate.RegulationQuery{
		Query:            c.Query("query"),
		Categories:       queryValues(c, "categories"),
		ComplianceLevels: queryValues(c, "compliance_levels"),
		Jurisdictions:    queryValues(c, "jurisdictions"),
		PropertyTypes:    queryValues(c, "property_types"),
		Locations:        queryValues(c, "locations"),
		DateFrom:         c.Query("date_from"),
		DateTo:           c.Query("date_to"),
		DateRangeDays:    c.Query("date_range_days"),
		Limit:            c.Query("limit"),
	}
}

func (h *SearchHandler) AdvancedSearch(c *fiber.Ctx) error {
	criteria, err := h.validator.RegulationFilters(regulationQueryFromCtx(c))
	if err != nil {
		return err
	}

	regulations, err := h.searchService.AdvancedSearch(c.Context(), criteria)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"results": regulations,
		"count":   len(regulations),
	})
}

func (h *SearchHandler) Suggestions(c *fiber.Ctx) error {
	query, err := h.validator.SearchQuery(c.Query("q"))
	if err != nil {
		return err
	}

	suggestions, err := h.searchService.GetSuggestions(c.Context(), query)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"suggestions": suggestions})
}

func (h *SearchHandler) SaveSearch(c *fiber.Ctx) error {
	var input domain.SaveSearchInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Name == "" {
		return middleware.BadRequest("Search name is required")
	}

	saved, err := h.searchService.SaveSearch(c.Context(), input)
	if err != nil {
		if errors.Is(err, search.ErrEmptyCriteria) {
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *SearchHandler) ListSavedSearches(c *fiber.Ctx) error {
	searches, err := h.searchService.ListSavedSearches(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"saved_searches": searches})
}

// UseSavedSearch replays a stored criteria set and bumps its usage counter.
func (h *SearchHandler) UseSavedSearch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("searchId"))
	if err != nil {
		return middleware.BadRequest("Invalid search ID")
	}

	criteria, err := h.searchService.UseSavedSearch(c.Context(), id)
	if err != nil {
		return err
	}

	regulations, err := h.searchService.AdvancedSearch(c.Context(), *criteria)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"criteria": criteria,
		"results":  regulations,
		"count":    len(regulations),
	})
}

// queryValues merges repeated query keys with comma-separated entries.
func queryValues(c *fiber.Ctx, key string) []string {
	var values []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, part := range splitCommaList(string(raw)) {
			values = append(values, part)
		}
	}
	return values
}
