package csvio

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"compliance-tracker/internal/domain"
)

func TestRecordFromUpdate(t *testing.T) {
	deadline := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	tags := "tax,reporting"
	relatedID := uuid.New()

	u := &domain.Update{
		Title:          "1099-K Threshold Change",
		Description:    "Lower reporting threshold.",
		Jurisdiction:   "USA",
		Status:         domain.StatusRecent,
		ChangeType:     domain.StatusRecent,
		Category:       "Taxes",
		ImpactLevel:    domain.ImpactHigh,
		Priority:       domain.PriorityHigh,
		UpdateDate:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DeadlineDate:   &deadline,
		ActionRequired: true,
		Tags:           &tags,
		RelatedRegulationIDs: []uuid.UUID{relatedID},
	}

	record := recordFromUpdate(u)

	assert.Len(t, record, len(exportHeader))
	assert.Equal(t, "1099-K Threshold Change", record[0])
	assert.Equal(t, "Recent", record[3])
	assert.Equal(t, "Recent", record[4])
	assert.Equal(t, "1", record[7])
	assert.Equal(t, "2026-08-01", record[8])
	assert.Equal(t, "2026-09-01", record[10])
	assert.Equal(t, "", record[13])
	assert.Equal(t, "Yes", record[14])
	assert.Equal(t, "tax,reporting", record[17])
	assert.Equal(t, relatedID.String(), record[19])
}

func TestInputFromRecord(t *testing.T) {
	index := columnIndex(exportHeader)

	full := func() []string {
		return []string{
			"Texas Permit Change",
			"Permit fees rise next quarter.",
			"Texas",
			"Upcoming",
			"Upcoming",
			"Licensing",
			"Medium",
			"2",
			"2026-07-15",
			"2026-10-01",
			"", "", "", "",
			"Yes",
			"File before the deadline.",
			"", "", "", "",
		}
	}

	t.Run("Full Row", func(t *testing.T) {
		input, err := inputFromRecord(index, full())

		assert.NoError(t, err)
		assert.Equal(t, "Texas Permit Change", input.Title)
		assert.Equal(t, domain.StatusUpcoming, input.Status)
		assert.Equal(t, domain.ImpactMedium, input.ImpactLevel)
		assert.Equal(t, 2, input.Priority)
		assert.Equal(t, "2026-07-15", input.UpdateDate.Format("2006-01-02"))
		assert.Equal(t, "2026-10-01", input.EffectiveDate.Format("2006-01-02"))
		assert.True(t, input.ActionRequired)
		assert.Equal(t, "File before the deadline.", *input.ActionDescription)
	})

	t.Run("Missing Update Date Left Nil For Defaulting", func(t *testing.T) {
		record := full()
		record[8] = ""

		input, err := inputFromRecord(index, record)

		assert.NoError(t, err)
		assert.Nil(t, input.UpdateDate)
	})

	t.Run("Subset Of Columns", func(t *testing.T) {
		subsetHeader := []string{"Title", "Description", "Jurisdiction Affected", "Status", "Category", "Impact Level"}
		subsetIndex := columnIndex(subsetHeader)

		input, err := inputFromRecord(subsetIndex, []string{
			"Short row", "Minimal description.", "Austin", "Proposed", "Zoning", "Low",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusProposed, input.Status)
		assert.Zero(t, input.Priority)
		assert.False(t, input.ActionRequired)
	})

	t.Run("Required Field Errors", func(t *testing.T) {
		cases := map[int]string{
			0: "Title",
			1: "Description",
			2: "Jurisdiction Affected",
			5: "Category",
		}
		for col, name := range cases {
			record := full()
			record[col] = ""
			_, err := inputFromRecord(index, record)
			assert.Error(t, err, "blank %s should fail", name)
		}
	})

	t.Run("Invalid Enum And Date Errors", func(t *testing.T) {
		record := full()
		record[3] = "Archived"
		_, err := inputFromRecord(index, record)
		assert.ErrorContains(t, err, "invalid status")

		record = full()
		record[6] = "Severe"
		_, err = inputFromRecord(index, record)
		assert.ErrorContains(t, err, "invalid impact level")

		record = full()
		record[8] = "07/15/2026"
		_, err = inputFromRecord(index, record)
		assert.ErrorContains(t, err, "Update Date")

		record = full()
		record[7] = "5"
		_, err = inputFromRecord(index, record)
		assert.ErrorContains(t, err, "priority")
	})

	t.Run("Boolean Variants", func(t *testing.T) {
		for raw, want := range map[string]bool{
			"Yes": true, "yes": true, "TRUE": true, "1": true,
			"No": false, "": false, "false": false, "0": false,
		} {
			record := full()
			record[14] = raw
			input, err := inputFromRecord(index, record)
			assert.NoError(t, err, "value %q", raw)
			assert.Equal(t, want, input.ActionRequired, "value %q", raw)
		}

		record := full()
		record[14] = "maybe"
		_, err := inputFromRecord(index, record)
		assert.ErrorContains(t, err, "Action Required")
	})

	t.Run("Related Regulation IDs", func(t *testing.T) {
		id1 := uuid.New()
		id2 := uuid.New()

		record := full()
		record[19] = id1.String() + ", " + id2.String()
		input, err := inputFromRecord(index, record)
		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{id1, id2}, input.RelatedRegulationIDs)

		record[19] = "not-a-uuid"
		_, err = inputFromRecord(index, record)
		assert.ErrorContains(t, err, "Related Regulation IDs")
	})
}
