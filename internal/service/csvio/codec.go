package csvio

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"compliance-tracker/internal/domain"
)

const csvDateLayout = "2006-01-02"

// exportHeader fixes the column order for both export and the import
// template. Import matches columns by header name, so files with a subset
// of these columns still load.
var exportHeader = []string{
	"Title",
	"Description",
	"Jurisdiction Affected",
	"Status",
	"Change Type",
	"Category",
	"Impact Level",
	"Priority",
	"Update Date",
	"Effective Date",
	"Deadline Date",
	"Compliance Deadline",
	"Expected Decision Date",
	"Decision Status",
	"Action Required",
	"Action Description",
	"Summary",
	"Tags",
	"Source URL",
	"Related Regulation IDs",
}

func recordFromUpdate(u *domain.Update) []string {
	return []string{
		u.Title,
		u.Description,
		u.Jurisdiction,
		string(u.Status),
		string(u.ChangeType),
		u.Category,
		string(u.ImpactLevel),
		strconv.Itoa(u.Priority),
		u.UpdateDate.Format(csvDateLayout),
		formatDate(u.EffectiveDate),
		formatDate(u.DeadlineDate),
		formatDate(u.ComplianceDeadline),
		formatDate(u.ExpectedDecisionDate),
		deref(u.DecisionStatus),
		formatBool(u.ActionRequired),
		deref(u.ActionDescription),
		deref(u.Summary),
		deref(u.Tags),
		deref(u.SourceURL),
		joinIDs(u.RelatedRegulationIDs),
	}
}

// columnIndex maps normalized header names to positions so imports are
// insensitive to column order and extra columns.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

type rowReader struct {
	index  map[string]int
	record []string
}

func (r rowReader) get(column string) string {
	i, ok := r.index[strings.ToLower(column)]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

// inputFromRecord builds a create payload from one CSV row. Title,
// Description, Jurisdiction Affected, Status, Category and Impact Level are
// required; everything else is optional. Update Date defaults to today when
// the column is absent or blank.
func inputFromRecord(index map[string]int, record []string) (domain.CreateUpdateInput, error) {
	row := rowReader{index: index, record: record}
	var input domain.CreateUpdateInput

	input.Title = row.get("Title")
	if input.Title == "" {
		return input, fmt.Errorf("missing required column Title")
	}
	input.Description = row.get("Description")
	if input.Description == "" {
		return input, fmt.Errorf("missing required column Description")
	}
	input.Jurisdiction = row.get("Jurisdiction Affected")
	if input.Jurisdiction == "" {
		return input, fmt.Errorf("missing required column Jurisdiction Affected")
	}

	input.Status = domain.UpdateStatus(row.get("Status"))
	if !input.Status.IsValid() {
		return input, fmt.Errorf("invalid status %q", row.get("Status"))
	}

	input.Category = row.get("Category")
	if input.Category == "" {
		return input, fmt.Errorf("missing required column Category")
	}

	input.ImpactLevel = domain.ImpactLevel(row.get("Impact Level"))
	if !input.ImpactLevel.IsValid() {
		return input, fmt.Errorf("invalid impact level %q", row.get("Impact Level"))
	}

	if raw := row.get("Priority"); raw != "" {
		priority, err := strconv.Atoi(raw)
		if err != nil || priority < domain.PriorityHigh || priority > domain.PriorityLow {
			return input, fmt.Errorf("invalid priority %q", raw)
		}
		input.Priority = priority
	}

	var err error
	if input.UpdateDate, err = parseDate(row.get("Update Date")); err != nil {
		return input, fmt.Errorf("invalid Update Date: %w", err)
	}
	if input.EffectiveDate, err = parseDate(row.get("Effective Date")); err != nil {
		return input, fmt.Errorf("invalid Effective Date: %w", err)
	}
	if input.DeadlineDate, err = parseDate(row.get("Deadline Date")); err != nil {
		return input, fmt.Errorf("invalid Deadline Date: %w", err)
	}
	if input.ComplianceDeadline, err = parseDate(row.get("Compliance Deadline")); err != nil {
		return input, fmt.Errorf("invalid Compliance Deadline: %w", err)
	}
	if input.ExpectedDecisionDate, err = parseDate(row.get("Expected Decision Date")); err != nil {
		return input, fmt.Errorf("invalid Expected Decision Date: %w", err)
	}

	input.DecisionStatus = optional(row.get("Decision Status"))

	actionRequired, err := parseBool(row.get("Action Required"))
	if err != nil {
		return input, fmt.Errorf("invalid Action Required: %w", err)
	}
	input.ActionRequired = actionRequired

	input.ActionDescription = optional(row.get("Action Description"))
	input.Summary = optional(row.get("Summary"))
	input.Tags = optional(row.get("Tags"))
	input.SourceURL = optional(row.get("Source URL"))

	if input.RelatedRegulationIDs, err = parseIDs(row.get("Related Regulation IDs")); err != nil {
		return input, fmt.Errorf("invalid Related Regulation IDs: %w", err)
	}

	return input, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(csvDateLayout)
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(csvDateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not in YYYY-MM-DD form", raw)
	}
	return &t, nil
}

func formatBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "", "no", "false", "0":
		return false, nil
	case "yes", "true", "1":
		return true, nil
	}
	return false, fmt.Errorf("%q is not Yes or No", raw)
}

func joinIDs(ids []uuid.UUID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}

func parseIDs(raw string) ([]uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a UUID", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
