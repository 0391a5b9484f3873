package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"compliance-tracker/internal/domain"
)

func TestBuildUpdateFilterSQL(t *testing.T) {
	t.Run("No Filters", func(t *testing.T) {
		where, args := buildUpdateFilterSQL(domain.UpdateFilters{})

		assert.Equal(t, "deleted_at IS NULL", where)
		assert.Empty(t, args)
	})

	t.Run("All Filters Combined", func(t *testing.T) {
		status := "Recent"
		category := "Taxes"
		jurisdiction := "Texas"
		impact := "High"
		priority := 1
		decision := "Approved"
		changeType := "Recent"
		actionRequired := true
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

		where, args := buildUpdateFilterSQL(domain.UpdateFilters{
			Status:         &status,
			Category:       &category,
			Jurisdiction:   &jurisdiction,
			ImpactLevel:    &impact,
			Priority:       &priority,
			DecisionStatus: &decision,
			ChangeType:     &changeType,
			ActionRequired: &actionRequired,
			DateFrom:       &from,
			DateTo:         &to,
		})

		assert.Contains(t, where, "status = $1")
		assert.Contains(t, where, "category = $2")
		assert.Contains(t, where, "jurisdiction ILIKE $3")
		assert.Contains(t, where, "impact_level = $4")
		assert.Contains(t, where, "priority = $5")
		assert.Contains(t, where, "decision_status = $6")
		assert.Contains(t, where, "change_type = $7")
		assert.Contains(t, where, "action_required = $8")
		assert.Contains(t, where, "update_date >= $9")
		assert.Contains(t, where, "update_date <= $10")
		assert.Len(t, args, 10)
		assert.Equal(t, "%Texas%", args[2])
	})

	t.Run("Sparse Filters Keep Placeholders Dense", func(t *testing.T) {
		impact := "Low"
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

		where, args := buildUpdateFilterSQL(domain.UpdateFilters{
			ImpactLevel: &impact,
			DateFrom:    &from,
		})

		assert.Equal(t, "deleted_at IS NULL AND impact_level = $1 AND update_date >= $2", where)
		assert.Equal(t, []any{"Low", from}, args)
	})
}
