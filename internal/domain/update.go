package domain

import (
	"time"

	"github.com/google/uuid"
)

type UpdateStatus string

const (
	StatusRecent   UpdateStatus = "Recent"
	StatusUpcoming UpdateStatus = "Upcoming"
	StatusProposed UpdateStatus = "Proposed"
)

func (s UpdateStatus) IsValid() bool {
	switch s {
	case StatusRecent, StatusUpcoming, StatusProposed:
		return true
	}
	return false
}

type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "High"
	ImpactMedium ImpactLevel = "Medium"
	ImpactLow    ImpactLevel = "Low"
)

func (i ImpactLevel) IsValid() bool {
	switch i {
	case ImpactHigh, ImpactMedium, ImpactLow:
		return true
	}
	return false
}

var DecisionStatuses = []string{
	"Pending",
	"Under Review",
	"Approved",
	"Rejected",
	"Deferred",
}

const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// Update is a dated regulatory-change notice. Status is mirrored into
// ChangeType on every write; older consumers still read change_type.
type Update struct {
	ID                   uuid.UUID    `json:"id" db:"id"`
	Title                string       `json:"title" db:"title"`
	Description          string       `json:"description" db:"description"`
	Jurisdiction         string       `json:"jurisdiction_affected" db:"jurisdiction"`
	Status               UpdateStatus `json:"status" db:"status"`
	ChangeType           UpdateStatus `json:"change_type" db:"change_type"`
	Category             string       `json:"category" db:"category"`
	ImpactLevel          ImpactLevel  `json:"impact_level" db:"impact_level"`
	Priority             int          `json:"priority" db:"priority"`
	UpdateDate           time.Time    `json:"update_date" db:"update_date"`
	EffectiveDate        *time.Time   `json:"effective_date,omitempty" db:"effective_date"`
	DeadlineDate         *time.Time   `json:"deadline_date,omitempty" db:"deadline_date"`
	ComplianceDeadline   *time.Time   `json:"compliance_deadline,omitempty" db:"compliance_deadline"`
	ExpectedDecisionDate *time.Time   `json:"expected_decision_date,omitempty" db:"expected_decision_date"`
	DecisionStatus       *string      `json:"decision_status,omitempty" db:"decision_status"`
	ActionRequired       bool         `json:"action_required" db:"action_required"`
	ActionDescription    *string      `json:"action_description,omitempty" db:"action_description"`
	Summary              *string      `json:"summary,omitempty" db:"summary"`
	FullText             *string      `json:"full_text,omitempty" db:"full_text"`
	ExpertAnalysis       *string      `json:"expert_analysis,omitempty" db:"expert_analysis"`
	PotentialImpact      *string      `json:"potential_impact,omitempty" db:"potential_impact"`
	Tags                 *string      `json:"tags,omitempty" db:"tags"`
	SourceURL            *string      `json:"source_url,omitempty" db:"source_url"`
	RelatedRegulationIDs []uuid.UUID  `json:"related_regulation_ids" db:"-"`
	CreatedAt            time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at" db:"updated_at"`
	DeletedAt            *time.Time   `json:"-" db:"deleted_at"`
}

type CreateUpdateInput struct {
	Title                string       `json:"title" validate:"required,max=300"`
	Description          string       `json:"description" validate:"required"`
	Jurisdiction         string       `json:"jurisdiction_affected" validate:"required,max=200"`
	Status               UpdateStatus `json:"status" validate:"required"`
	Category             string       `json:"category" validate:"required"`
	ImpactLevel          ImpactLevel  `json:"impact_level" validate:"required"`
	Priority             int          `json:"priority" validate:"omitempty,min=1,max=3"`
	UpdateDate           *time.Time   `json:"update_date,omitempty"`
	EffectiveDate        *time.Time   `json:"effective_date,omitempty"`
	DeadlineDate         *time.Time   `json:"deadline_date,omitempty"`
	ComplianceDeadline   *time.Time   `json:"compliance_deadline,omitempty"`
	ExpectedDecisionDate *time.Time   `json:"expected_decision_date,omitempty"`
	DecisionStatus       *string      `json:"decision_status,omitempty"`
	ActionRequired       bool         `json:"action_required"`
	ActionDescription    *string      `json:"action_description,omitempty"`
	Summary              *string      `json:"summary,omitempty"`
	FullText             *string      `json:"full_text,omitempty"`
	ExpertAnalysis       *string      `json:"expert_analysis,omitempty"`
	PotentialImpact      *string      `json:"potential_impact,omitempty"`
	Tags                 *string      `json:"tags,omitempty"`
	SourceURL            *string      `json:"source_url,omitempty"`
	RelatedRegulationIDs []uuid.UUID  `json:"related_regulation_ids,omitempty"`
}

type EditUpdateInput struct {
	Title                *string       `json:"title,omitempty" validate:"omitempty,max=300"`
	Description          *string       `json:"description,omitempty"`
	Jurisdiction         *string       `json:"jurisdiction_affected,omitempty" validate:"omitempty,max=200"`
	Status               *UpdateStatus `json:"status,omitempty"`
	Category             *string       `json:"category,omitempty"`
	ImpactLevel          *ImpactLevel  `json:"impact_level,omitempty"`
	Priority             *int          `json:"priority,omitempty" validate:"omitempty,min=1,max=3"`
	UpdateDate           NullableTime  `json:"update_date"`
	EffectiveDate        NullableTime  `json:"effective_date"`
	DeadlineDate         NullableTime  `json:"deadline_date"`
	ComplianceDeadline   NullableTime  `json:"compliance_deadline"`
	ExpectedDecisionDate NullableTime  `json:"expected_decision_date"`
	DecisionStatus       NullableString `json:"decision_status"`
	ActionRequired       *bool          `json:"action_required,omitempty"`
	ActionDescription    NullableString `json:"action_description"`
	Summary              NullableString `json:"summary"`
	FullText             NullableString `json:"full_text"`
	ExpertAnalysis       NullableString `json:"expert_analysis"`
	PotentialImpact      NullableString `json:"potential_impact"`
	Tags                 NullableString `json:"tags"`
	SourceURL            NullableString `json:"source_url"`
	RelatedRegulationIDs []uuid.UUID    `json:"related_regulation_ids,omitempty"`
}

// UpdateFilters is the validated filter set for update listings. Nil fields
// were either absent from the request or dropped by validation.
type UpdateFilters struct {
	Status         *string    `json:"status,omitempty"`
	Category       *string    `json:"category,omitempty"`
	Jurisdiction   *string    `json:"jurisdiction,omitempty"`
	ImpactLevel    *string    `json:"impact_level,omitempty"`
	Priority       *int       `json:"priority,omitempty"`
	DecisionStatus *string    `json:"decision_status,omitempty"`
	ChangeType     *string    `json:"change_type,omitempty"`
	ActionRequired *bool      `json:"action_required,omitempty"`
	DateFrom       *time.Time `json:"date_from,omitempty"`
	DateTo         *time.Time `json:"date_to,omitempty"`
}

// UpdateBoard is the public updates page payload: recent and upcoming
// changes in one bucket, proposed changes in another.
type UpdateBoard struct {
	RecentAndUpcoming []Update `json:"recent_and_upcoming"`
	Proposed          []Update `json:"proposed"`
}

// BulkStatusResult reports per-row outcomes of a bulk mutation. A missing id
// is counted and reported, it never aborts the batch.
type BulkStatusResult struct {
	SuccessCount int      `json:"success_count"`
	ErrorCount   int      `json:"error_count"`
	Errors       []string `json:"errors,omitempty"`
}
