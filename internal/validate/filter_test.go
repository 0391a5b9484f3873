package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"compliance-tracker/internal/domain"
)

func TestSearchQuery(t *testing.T) {
	v := NewValidator(zap.NewNop())

	t.Run("Passes Clean Input", func(t *testing.T) {
		got, err := v.SearchQuery("austin zoning permit")
		assert.NoError(t, err)
		assert.Equal(t, "austin zoning permit", got)
	})

	t.Run("Rejects SQL Injection", func(t *testing.T) {
		for _, input := range []string{
			"'; DROP TABLE updates; --",
			"1 UNION SELECT password_hash FROM admin_users",
			"zoning; delete from regulations",
			`title" OR "1"="1`,
		} {
			_, err := v.SearchQuery(input)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr, "input %q should be rejected", input)
		}
	})

	t.Run("Rejects Overlong Query", func(t *testing.T) {
		long := make([]byte, maxQueryLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := v.SearchQuery(string(long))
		assert.Error(t, err)
	})

	t.Run("Strips Script Tags And Markup", func(t *testing.T) {
		got, err := v.SearchQuery("<script>alert(1)</script>zoning")
		assert.NoError(t, err)
		assert.Equal(t, "zoning", got)

		got, err = v.SearchQuery("<b>permit</b>")
		assert.NoError(t, err)
		assert.Equal(t, "bpermit/b", got)
	})

	t.Run("Allows Words Containing Keywords", func(t *testing.T) {
		// "updates" contains "update" but is not the bare keyword.
		got, err := v.SearchQuery("regulation updates")
		assert.NoError(t, err)
		assert.Equal(t, "regulation updates", got)
	})
}

func TestEnumValidators(t *testing.T) {
	v := NewValidator(zap.NewNop())

	t.Run("Valid Values Pass Through", func(t *testing.T) {
		assert.Equal(t, "Recent", *v.Status("Recent"))
		assert.Equal(t, "Zoning", *v.Category("Zoning"))
		assert.Equal(t, "High", *v.ImpactLevel("High"))
		assert.Equal(t, "Under Review", *v.DecisionStatus("Under Review"))
		assert.Equal(t, "State", *v.JurisdictionLevel("State"))
	})

	t.Run("Invalid Values Dropped Silently", func(t *testing.T) {
		assert.Nil(t, v.Status("Archived"))
		assert.Nil(t, v.Category("Parking"))
		assert.Nil(t, v.ImpactLevel("Severe"))
		assert.Nil(t, v.Status(""))
	})
}

func TestPriority(t *testing.T) {
	v := NewValidator(zap.NewNop())

	assert.Equal(t, 1, *v.Priority("1"))
	assert.Equal(t, 3, *v.Priority("3"))
	assert.Nil(t, v.Priority("0"))
	assert.Nil(t, v.Priority("4"))
	assert.Nil(t, v.Priority("high"))
	assert.Nil(t, v.Priority(""))
}

func TestDate(t *testing.T) {
	v := NewValidator(zap.NewNop())

	expected := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, *v.Date("2026-03-15"))
	assert.Equal(t, expected, *v.Date("2026/03/15"))
	assert.Equal(t, expected, *v.Date("03/15/2026"))

	assert.Nil(t, v.Date("15th of March"))
	assert.Nil(t, v.Date(""))
}

func TestBoolean(t *testing.T) {
	v := NewValidator(zap.NewNop())

	cases := []struct {
		input any
		want  *bool
	}{
		{true, boolPtr(true)},
		{false, boolPtr(false)},
		{"true", boolPtr(true)},
		{"Yes", boolPtr(true)},
		{"1", boolPtr(true)},
		{"on", boolPtr(true)},
		{"false", boolPtr(false)},
		{"No", boolPtr(false)},
		{"0", boolPtr(false)},
		{"off", boolPtr(false)},
		{"maybe", nil},
		{42, nil},
	}

	for _, tc := range cases {
		got := v.Boolean(tc.input)
		if tc.want == nil {
			assert.Nil(t, got, "input %v", tc.input)
		} else {
			assert.Equal(t, *tc.want, *got, "input %v", tc.input)
		}
	}
}

func TestLocation(t *testing.T) {
	v := NewValidator(zap.NewNop())

	assert.Equal(t, "Austin", v.Location("Austin"))
	assert.Equal(t, "Austin", v.Location(`<Austin>"'`))

	long := make([]byte, 150)
	for i := range long {
		long[i] = 'x'
	}
	assert.Len(t, v.Location(string(long)), 100)
}

func TestRegulationFilters(t *testing.T) {
	v := NewValidator(zap.NewNop())

	t.Run("Invalid Enums Dropped Not Rejected", func(t *testing.T) {
		criteria, err := v.RegulationFilters(RegulationQuery{
			Query:         "permit",
			Categories:    []string{"Zoning", "Parking"},
			PropertyTypes: []string{"Residential", "Industrial"},
			Jurisdictions: []string{"County"},
			DateRangeDays: "30",
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"Zoning"}, criteria.Categories)
		assert.Equal(t, []string{"Residential"}, criteria.PropertyTypes)
		assert.Empty(t, criteria.Jurisdictions)
		assert.Equal(t, 30, criteria.DateRangeDays)
	})

	t.Run("Malicious Query Is A Hard Error", func(t *testing.T) {
		_, err := v.RegulationFilters(RegulationQuery{Query: "'; DROP TABLE regulations; --"})
		assert.Error(t, err)
	})

	t.Run("Bad Date Range Dropped", func(t *testing.T) {
		criteria, err := v.RegulationFilters(RegulationQuery{DateRangeDays: "soon"})
		assert.NoError(t, err)
		assert.Zero(t, criteria.DateRangeDays)
	})
}

func TestUpdateFilters(t *testing.T) {
	v := NewValidator(zap.NewNop())

	filters := v.UpdateFilters(UpdateQuery{
		Status:         "Proposed",
		Category:       "Licensing",
		Jurisdiction:   "Austin",
		ImpactLevel:    "Extreme",
		Priority:       "2",
		ActionRequired: "yes",
		DateFrom:       "2026-01-01",
	})

	assert.Equal(t, "Proposed", *filters.Status)
	assert.Equal(t, "Licensing", *filters.Category)
	assert.Equal(t, "Austin", *filters.Jurisdiction)
	assert.Nil(t, filters.ImpactLevel)
	assert.Equal(t, 2, *filters.Priority)
	assert.True(t, *filters.ActionRequired)
	assert.NotNil(t, filters.DateFrom)
	assert.Nil(t, filters.DateTo)

	empty := v.UpdateFilters(UpdateQuery{})
	assert.Equal(t, domain.UpdateFilters{}, empty)
}

func boolPtr(b bool) *bool {
	return &b
}
