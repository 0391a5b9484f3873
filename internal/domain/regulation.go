package domain

import (
	"time"

	"github.com/google/uuid"
)

type JurisdictionLevel string

const (
	JurisdictionNational JurisdictionLevel = "National"
	JurisdictionState    JurisdictionLevel = "State"
	JurisdictionLocal    JurisdictionLevel = "Local"
)

func (l JurisdictionLevel) IsValid() bool {
	switch l {
	case JurisdictionNational, JurisdictionState, JurisdictionLocal:
		return true
	}
	return false
}

type PropertyType string

const (
	PropertyResidential PropertyType = "Residential"
	PropertyCommercial  PropertyType = "Commercial"
	PropertyBoth        PropertyType = "Both"
)

func (p PropertyType) IsValid() bool {
	switch p {
	case PropertyResidential, PropertyCommercial, PropertyBoth:
		return true
	}
	return false
}

var Categories = []string{
	"Zoning",
	"Licensing",
	"Taxes",
	"Safety",
	"Insurance",
	"Registration",
	"General",
}

var ComplianceLevels = []string{
	"Mandatory",
	"Recommended",
	"Optional",
}

// locationsByLevel constrains which location values are valid for a
// jurisdiction level: a National regulation cannot claim "Austin".
var locationsByLevel = map[JurisdictionLevel][]string{
	JurisdictionNational: {"USA"},
	JurisdictionState: {
		"Texas", "California", "Florida", "New York",
		"Colorado", "Arizona", "Tennessee", "Louisiana",
	},
	JurisdictionLocal: {
		"Austin", "Dallas", "Houston", "San Antonio",
		"Denver", "Phoenix", "Miami", "Nashville",
		"New Orleans", "San Diego", "Los Angeles", "New York City",
	},
}

func LocationsForLevel(level JurisdictionLevel) []string {
	return locationsByLevel[level]
}

func IsAllowedLocation(level JurisdictionLevel, location string) bool {
	for _, allowed := range locationsByLevel[level] {
		if allowed == location {
			return true
		}
	}
	return false
}

type Regulation struct {
	ID                   uuid.UUID         `json:"id" db:"id"`
	JurisdictionLevel    JurisdictionLevel `json:"jurisdiction_level" db:"jurisdiction_level"`
	JurisdictionName     string            `json:"jurisdiction_name" db:"jurisdiction_name"`
	Location             string            `json:"location" db:"location"`
	Title                string            `json:"title" db:"title"`
	Overview             *string           `json:"overview,omitempty" db:"overview"`
	DetailedRequirements *string           `json:"detailed_requirements,omitempty" db:"detailed_requirements"`
	ComplianceSteps      *string           `json:"compliance_steps,omitempty" db:"compliance_steps"`
	RequiredForms        *string           `json:"required_forms,omitempty" db:"required_forms"`
	Penalties            *string           `json:"penalties,omitempty" db:"penalties"`
	RecentChanges        *string           `json:"recent_changes,omitempty" db:"recent_changes"`
	Category             string            `json:"category" db:"category"`
	ComplianceLevel      string            `json:"compliance_level" db:"compliance_level"`
	PropertyType         PropertyType      `json:"property_type" db:"property_type"`
	EffectiveDate        *time.Time        `json:"effective_date,omitempty" db:"effective_date"`
	ExpiryDate           *time.Time        `json:"expiry_date,omitempty" db:"expiry_date"`
	Keywords             *string           `json:"keywords,omitempty" db:"keywords"`
	LastUpdated          time.Time         `json:"last_updated" db:"last_updated"`
	CreatedAt            time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at" db:"updated_at"`
	DeletedAt            *time.Time        `json:"-" db:"deleted_at"`
}

type CreateRegulationInput struct {
	JurisdictionLevel    JurisdictionLevel `json:"jurisdiction_level" validate:"required"`
	JurisdictionName     string            `json:"jurisdiction_name" validate:"required,max=200"`
	Location             string            `json:"location" validate:"required,max=100"`
	Title                string            `json:"title" validate:"required,max=300"`
	Overview             *string           `json:"overview,omitempty"`
	DetailedRequirements *string           `json:"detailed_requirements,omitempty"`
	ComplianceSteps      *string           `json:"compliance_steps,omitempty"`
	RequiredForms        *string           `json:"required_forms,omitempty"`
	Penalties            *string           `json:"penalties,omitempty"`
	RecentChanges        *string           `json:"recent_changes,omitempty"`
	Category             string            `json:"category" validate:"required"`
	ComplianceLevel      string            `json:"compliance_level" validate:"required"`
	PropertyType         PropertyType      `json:"property_type" validate:"required"`
	EffectiveDate        *time.Time        `json:"effective_date,omitempty"`
	ExpiryDate           *time.Time        `json:"expiry_date,omitempty"`
	Keywords             *string           `json:"keywords,omitempty"`
}

// EditRegulationInput enumerates every editable field explicitly. Form data
// is never applied to a Regulation by reflection.
type EditRegulationInput struct {
	JurisdictionLevel    *JurisdictionLevel `json:"jurisdiction_level,omitempty"`
	JurisdictionName     *string            `json:"jurisdiction_name,omitempty" validate:"omitempty,max=200"`
	Location             *string            `json:"location,omitempty" validate:"omitempty,max=100"`
	Title                *string            `json:"title,omitempty" validate:"omitempty,max=300"`
	Overview             NullableString     `json:"overview"`
	DetailedRequirements NullableString     `json:"detailed_requirements"`
	ComplianceSteps      NullableString     `json:"compliance_steps"`
	RequiredForms        NullableString     `json:"required_forms"`
	Penalties            NullableString     `json:"penalties"`
	RecentChanges        NullableString     `json:"recent_changes"`
	Category             *string            `json:"category,omitempty"`
	ComplianceLevel      *string            `json:"compliance_level,omitempty"`
	PropertyType         *PropertyType      `json:"property_type,omitempty"`
	EffectiveDate        NullableTime       `json:"effective_date"`
	ExpiryDate           NullableTime       `json:"expiry_date"`
	Keywords             NullableString     `json:"keywords"`
}

// SearchCriteria is the validated filter set consumed by the regulation
// search. It also serializes into the saved_searches criteria blob.
type SearchCriteria struct {
	Query            string     `json:"query,omitempty"`
	Categories       []string   `json:"categories,omitempty"`
	ComplianceLevels []string   `json:"compliance_levels,omitempty"`
	Jurisdictions    []string   `json:"jurisdictions,omitempty"`
	PropertyTypes    []string   `json:"property_types,omitempty"`
	Locations        []string   `json:"locations,omitempty"`
	DateFrom         *time.Time `json:"date_from,omitempty"`
	DateTo           *time.Time `json:"date_to,omitempty"`
	DateRangeDays    int        `json:"date_range_days,omitempty"`
	Limit            int        `json:"limit,omitempty"`
}

func (c SearchCriteria) IsEmpty() bool {
	return c.Query == "" &&
		len(c.Categories) == 0 &&
		len(c.ComplianceLevels) == 0 &&
		len(c.Jurisdictions) == 0 &&
		len(c.PropertyTypes) == 0 &&
		len(c.Locations) == 0 &&
		c.DateFrom == nil && c.DateTo == nil &&
		c.DateRangeDays == 0
}
