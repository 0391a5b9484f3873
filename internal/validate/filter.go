package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"compliance-tracker/internal/domain"
)

const maxQueryLength = 500

// sqlPattern matches input that must never reach the query layer: SQL
// keywords, statement separators, quoting and comment sequences.
var sqlPattern = regexp.MustCompile(`(?i)\b(select|insert|update|delete|drop|create|alter|exec|union)\b|;|'|"|\\|--|/\*.*?\*/`)

var scriptTagPattern = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)

var markupReplacer = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "")

// dateFormats are tried in order; the first successful parse wins.
var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
}

// ValidationError signals input that must be rejected outright (length and
// SQL-pattern violations). Everything else in this package degrades by
// dropping the offending value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validator turns attacker-controlled query parameters into typed filter
// sets. Invalid enum values are dropped with a warning, not rejected:
// public listings should render with the remaining filters.
type Validator struct {
	log *zap.Logger
}

func NewValidator(log *zap.Logger) *Validator {
	return &Validator{log: log}
}

func (v *Validator) SearchQuery(raw string) (string, error) {
	if len(raw) > maxQueryLength {
		return "", &ValidationError{Field: "query", Reason: "exceeds maximum length"}
	}
	if sqlPattern.MatchString(raw) {
		return "", &ValidationError{Field: "query", Reason: "contains disallowed characters"}
	}

	sanitized := scriptTagPattern.ReplaceAllString(raw, "")
	sanitized = markupReplacer.Replace(sanitized)
	return strings.TrimSpace(sanitized), nil
}

func (v *Validator) JurisdictionLevel(value string) *string {
	return v.oneOf("jurisdiction_level", value, []string{
		string(domain.JurisdictionNational),
		string(domain.JurisdictionState),
		string(domain.JurisdictionLocal),
	})
}

func (v *Validator) Status(value string) *string {
	return v.oneOf("status", value, []string{
		string(domain.StatusRecent),
		string(domain.StatusUpcoming),
		string(domain.StatusProposed),
	})
}

func (v *Validator) Category(value string) *string {
	return v.oneOf("category", value, domain.Categories)
}

func (v *Validator) ComplianceLevel(value string) *string {
	return v.oneOf("compliance_level", value, domain.ComplianceLevels)
}

func (v *Validator) ImpactLevel(value string) *string {
	return v.oneOf("impact_level", value, []string{
		string(domain.ImpactHigh),
		string(domain.ImpactMedium),
		string(domain.ImpactLow),
	})
}

func (v *Validator) DecisionStatus(value string) *string {
	return v.oneOf("decision_status", value, domain.DecisionStatuses)
}

func (v *Validator) Priority(value string) *int {
	if value == "" {
		return nil
	}
	priority, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || priority < domain.PriorityHigh || priority > domain.PriorityLow {
		v.log.Warn("dropping invalid filter value",
			zap.String("field", "priority"),
			zap.String("value", value))
		return nil
	}
	return &priority
}

func (v *Validator) Date(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, value); err == nil {
			return &parsed
		}
	}
	v.log.Warn("dropping unparseable date filter", zap.String("value", value))
	return nil
}

func (v *Validator) Boolean(value any) *bool {
	switch b := value.(type) {
	case bool:
		return &b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes", "on":
			t := true
			return &t
		case "false", "0", "no", "off":
			f := false
			return &f
		}
	}
	return nil
}

func (v *Validator) Location(value string) string {
	if len(value) > 100 {
		value = value[:100]
	}
	return strings.TrimSpace(markupReplacer.Replace(value))
}

// ArrayParam keeps only members of allowed, dropping the rest with a log
// line. Order of the surviving values is preserved.
func (v *Validator) ArrayParam(field string, values, allowed []string) []string {
	var clean []string
	for _, value := range values {
		if contains(allowed, value) {
			clean = append(clean, value)
		} else {
			v.log.Warn("dropping invalid filter value",
				zap.String("field", field),
				zap.String("value", value))
		}
	}
	return clean
}

// RegulationQuery carries raw regulation-search parameters exactly as they
// arrived on the query string.
type RegulationQuery struct {
	Query            string
	Categories       []string
	ComplianceLevels []string
	Jurisdictions    []string
	PropertyTypes    []string
	Locations        []string
	DateFrom         string
	DateTo           string
	DateRangeDays    string
	Limit            string
}

func (v *Validator) RegulationFilters(raw RegulationQuery) (domain.SearchCriteria, error) {
	query, err := v.SearchQuery(raw.Query)
	if err != nil {
		return domain.SearchCriteria{}, err
	}

	criteria := domain.SearchCriteria{
		Query:            query,
		Categories:       v.ArrayParam("categories", raw.Categories, domain.Categories),
		ComplianceLevels: v.ArrayParam("compliance_levels", raw.ComplianceLevels, domain.ComplianceLevels),
		Jurisdictions: v.ArrayParam("jurisdictions", raw.Jurisdictions, []string{
			string(domain.JurisdictionNational),
			string(domain.JurisdictionState),
			string(domain.JurisdictionLocal),
		}),
		PropertyTypes: v.ArrayParam("property_types", raw.PropertyTypes, []string{
			string(domain.PropertyResidential),
			string(domain.PropertyCommercial),
			string(domain.PropertyBoth),
		}),
	}

	for _, location := range raw.Locations {
		if clean := v.Location(location); clean != "" {
			criteria.Locations = append(criteria.Locations, clean)
		}
	}

	criteria.DateFrom = v.Date(raw.DateFrom)
	criteria.DateTo = v.Date(raw.DateTo)

	if raw.DateRangeDays != "" {
		if days, err := strconv.Atoi(raw.DateRangeDays); err == nil && days > 0 {
			criteria.DateRangeDays = days
		} else {
			v.log.Warn("dropping invalid date_range_days", zap.String("value", raw.DateRangeDays))
		}
	}

	if raw.Limit != "" {
		if limit, err := strconv.Atoi(raw.Limit); err == nil && limit > 0 {
			criteria.Limit = limit
		}
	}

	return criteria, nil
}

// UpdateQuery carries raw update-listing parameters.
type UpdateQuery struct {
	Status         string
	Category       string
	Jurisdiction   string
	ImpactLevel    string
	Priority       string
	DecisionStatus string
	ChangeType     string
	ActionRequired string
	DateFrom       string
	DateTo         string
}

func (v *Validator) UpdateFilters(raw UpdateQuery) domain.UpdateFilters {
	filters := domain.UpdateFilters{
		Status:         v.Status(raw.Status),
		Category:       v.Category(raw.Category),
		ImpactLevel:    v.ImpactLevel(raw.ImpactLevel),
		Priority:       v.Priority(raw.Priority),
		DecisionStatus: v.DecisionStatus(raw.DecisionStatus),
		ChangeType:     v.Status(raw.ChangeType),
		DateFrom:       v.Date(raw.DateFrom),
		DateTo:         v.Date(raw.DateTo),
	}

	if jurisdiction := v.Location(raw.Jurisdiction); jurisdiction != "" {
		filters.Jurisdiction = &jurisdiction
	}
	if raw.ActionRequired != "" {
		filters.ActionRequired = v.Boolean(raw.ActionRequired)
	}

	return filters
}

func (v *Validator) oneOf(field, value string, allowed []string) *string {
	if value == "" {
		return nil
	}
	if contains(allowed, value) {
		return &value
	}
	v.log.Warn("dropping invalid filter value",
		zap.String("field", field),
		zap.String("value", value))
	return nil
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
