package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"compliance-tracker/internal/domain"
)

func TestBuildSearchQuery(t *testing.T) {
	t.Run("Empty Criteria", func(t *testing.T) {
		query, args := buildSearchQuery(domain.SearchCriteria{})

		assert.Equal(t, "SELECT * FROM regulations WHERE deleted_at IS NULL ORDER BY last_updated DESC", query)
		assert.Empty(t, args)
	})

	t.Run("Text Terms Are ANDed, Fields ORed", func(t *testing.T) {
		query, args := buildSearchQuery(domain.SearchCriteria{Query: "austin permit"})

		assert.Contains(t, query, "(title ILIKE $1 OR detailed_requirements ILIKE $1 OR keywords ILIKE $1 OR location ILIKE $1)")
		assert.Contains(t, query, "(title ILIKE $2 OR detailed_requirements ILIKE $2 OR keywords ILIKE $2 OR location ILIKE $2)")
		assert.Equal(t, []any{"%austin%", "%permit%"}, args)
	})

	t.Run("Enum Filters Use ANY", func(t *testing.T) {
		query, args := buildSearchQuery(domain.SearchCriteria{
			Categories:       []string{"Zoning", "Taxes"},
			ComplianceLevels: []string{"Mandatory"},
			Jurisdictions:    []string{"Local"},
		})

		assert.Contains(t, query, "category = ANY($1)")
		assert.Contains(t, query, "compliance_level = ANY($2)")
		assert.Contains(t, query, "jurisdiction_level = ANY($3)")
		assert.Len(t, args, 3)
	})

	t.Run("Both Disables Property Filter", func(t *testing.T) {
		query, args := buildSearchQuery(domain.SearchCriteria{
			PropertyTypes: []string{"Residential", "Both"},
		})

		assert.NotContains(t, query, "property_type")
		assert.Empty(t, args)
	})

	t.Run("Single Property Type Also Matches Both", func(t *testing.T) {
		query, args := buildSearchQuery(domain.SearchCriteria{
			PropertyTypes: []string{"Residential"},
		})

		assert.Contains(t, query, "(property_type = $1 OR property_type = $2)")
		assert.Equal(t, []any{"Residential", "Both"}, args)
	})

	t.Run("Locations Are ORed ILIKE", func(t *testing.T) {
		query, args := buildSearchQuery(domain.SearchCriteria{
			Locations: []string{"Austin", "Dallas"},
		})

		assert.Contains(t, query, "(location ILIKE $1 OR location ILIKE $2)")
		assert.Equal(t, []any{"%Austin%", "%Dallas%"}, args)
	})

	t.Run("Date Range Takes Precedence Over Rolling Window", func(t *testing.T) {
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
		query, args := buildSearchQuery(domain.SearchCriteria{
			DateFrom:      &from,
			DateTo:        &to,
			DateRangeDays: 90,
		})

		assert.Contains(t, query, "last_updated >= $1")
		assert.Contains(t, query, "last_updated <= $2")
		assert.NotContains(t, query, "INTERVAL")
		assert.Equal(t, []any{from, to}, args)
	})

	t.Run("Rolling Window Alone", func(t *testing.T) {
		query, args := buildSearchQuery(domain.SearchCriteria{DateRangeDays: 30})

		assert.Contains(t, query, "last_updated >= NOW() - $1 * INTERVAL '1 day'")
		assert.Equal(t, []any{30}, args)
	})

	t.Run("Limit Appended Last", func(t *testing.T) {
		query, args := buildSearchQuery(domain.SearchCriteria{Query: "tax", Limit: 25})

		assert.Contains(t, query, "ORDER BY last_updated DESC LIMIT $2")
		assert.Equal(t, []any{"%tax%", 25}, args)
	})
}
