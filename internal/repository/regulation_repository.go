package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"compliance-tracker/internal/domain"
)

type RegulationRepository interface {
	Create(ctx context.Context, regulation *domain.Regulation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Regulation, error)
	Update(ctx context.Context, regulation *domain.Regulation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params domain.PaginationParams) ([]domain.Regulation, int64, error)
	AdvancedSearch(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Regulation, error)
	SuggestTitles(ctx context.Context, query string, limit int) ([]string, error)
	SuggestLocations(ctx context.Context, query string, limit int) ([]string, error)
	SuggestCategories(ctx context.Context, query string, limit int) ([]string, error)
	KeywordGroups(ctx context.Context, query string, limit int) ([]string, error)
	CountByLevel(ctx context.Context) (map[string]int64, error)
	Count(ctx context.Context) (int64, error)
}

type regulationRepository struct {
	db *sqlx.DB
}

func NewRegulationRepository(db *sqlx.DB) RegulationRepository {
	return &regulationRepository{db: db}
}

func (r *regulationRepository) Create(ctx context.Context, regulation *domain.Regulation) error {
	query := `
		INSERT INTO regulations (id, jurisdiction_level, jurisdiction_name, location, title,
			overview, detailed_requirements, compliance_steps, required_forms, penalties,
			recent_changes, category, compliance_level, property_type, effective_date,
			expiry_date, keywords, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW())
		RETURNING last_updated, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		regulation.ID, regulation.JurisdictionLevel, regulation.JurisdictionName,
		regulation.Location, regulation.Title, regulation.Overview,
		regulation.DetailedRequirements, regulation.ComplianceSteps, regulation.RequiredForms,
		regulation.Penalties, regulation.RecentChanges, regulation.Category,
		regulation.ComplianceLevel, regulation.PropertyType, regulation.EffectiveDate,
		regulation.ExpiryDate, regulation.Keywords,
	).Scan(&regulation.LastUpdated, &regulation.CreatedAt, &regulation.UpdatedAt)
}

func (r *regulationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Regulation, error) {
	var regulation domain.Regulation
	query := `SELECT * FROM regulations WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &regulation, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &regulation, nil
}

func (r *regulationRepository) Update(ctx context.Context, regulation *domain.Regulation) error {
	query := `
		UPDATE regulations
		SET jurisdiction_level = $2, jurisdiction_name = $3, location = $4, title = $5,
			overview = $6, detailed_requirements = $7, compliance_steps = $8,
			required_forms = $9, penalties = $10, recent_changes = $11, category = $12,
			compliance_level = $13, property_type = $14, effective_date = $15,
			expiry_date = $16, keywords = $17, last_updated = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING last_updated, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		regulation.ID, regulation.JurisdictionLevel, regulation.JurisdictionName,
		regulation.Location, regulation.Title, regulation.Overview,
		regulation.DetailedRequirements, regulation.ComplianceSteps, regulation.RequiredForms,
		regulation.Penalties, regulation.RecentChanges, regulation.Category,
		regulation.ComplianceLevel, regulation.PropertyType, regulation.EffectiveDate,
		regulation.ExpiryDate, regulation.Keywords,
	).Scan(&regulation.LastUpdated, &regulation.UpdatedAt)
}

func (r *regulationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE regulations SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRegulationNotFound
	}
	return nil
}

func (r *regulationRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Regulation, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM regulations WHERE deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM regulations
		WHERE deleted_at IS NULL
		ORDER BY last_updated DESC
		LIMIT $1 OFFSET $2`

	var regulations []domain.Regulation
	err := r.db.SelectContext(ctx, &regulations, query, params.PageSize, params.Offset())
	return regulations, total, err
}

func (r *regulationRepository) AdvancedSearch(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Regulation, error) {
	query, args := buildSearchQuery(criteria)

	var regulations []domain.Regulation
	err := r.db.SelectContext(ctx, &regulations, query, args...)
	return regulations, err
}

// buildSearchQuery composes the advanced-search SQL. Each whitespace term of
// the text query becomes an OR group over title, requirements, keywords and
// location; all term groups are AND-combined with the remaining filters.
func buildSearchQuery(criteria domain.SearchCriteria) (string, []any) {
	conditions := []string{"deleted_at IS NULL"}
	var args []any

	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, term := range strings.Fields(criteria.Query) {
		placeholder := arg("%" + term + "%")
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE %[1]s OR detailed_requirements ILIKE %[1]s OR keywords ILIKE %[1]s OR location ILIKE %[1]s)",
			placeholder))
	}

	if len(criteria.Categories) > 0 {
		conditions = append(conditions, fmt.Sprintf("category = ANY(%s)", arg(pq.Array(criteria.Categories))))
	}
	if len(criteria.ComplianceLevels) > 0 {
		conditions = append(conditions, fmt.Sprintf("compliance_level = ANY(%s)", arg(pq.Array(criteria.ComplianceLevels))))
	}
	if len(criteria.Jurisdictions) > 0 {
		conditions = append(conditions, fmt.Sprintf("jurisdiction_level = ANY(%s)", arg(pq.Array(criteria.Jurisdictions))))
	}

	// "Both" acts as a wildcard: requesting it disables the property-type
	// filter, and any single concrete type also matches rows marked Both.
	if len(criteria.PropertyTypes) > 0 && !containsString(criteria.PropertyTypes, string(domain.PropertyBoth)) {
		if len(criteria.PropertyTypes) == 1 {
			conditions = append(conditions, fmt.Sprintf(
				"(property_type = %s OR property_type = %s)",
				arg(criteria.PropertyTypes[0]), arg(string(domain.PropertyBoth))))
		} else {
			conditions = append(conditions, fmt.Sprintf("property_type = ANY(%s)", arg(pq.Array(criteria.PropertyTypes))))
		}
	}

	if len(criteria.Locations) > 0 {
		var locationConds []string
		for _, location := range criteria.Locations {
			locationConds = append(locationConds, fmt.Sprintf("location ILIKE %s", arg("%"+location+"%")))
		}
		conditions = append(conditions, "("+strings.Join(locationConds, " OR ")+")")
	}

	switch {
	case criteria.DateFrom != nil && criteria.DateTo != nil:
		conditions = append(conditions, fmt.Sprintf("last_updated >= %s", arg(*criteria.DateFrom)))
		conditions = append(conditions, fmt.Sprintf("last_updated <= %s", arg(*criteria.DateTo)))
	case criteria.DateFrom != nil:
		conditions = append(conditions, fmt.Sprintf("last_updated >= %s", arg(*criteria.DateFrom)))
	case criteria.DateTo != nil:
		conditions = append(conditions, fmt.Sprintf("last_updated <= %s", arg(*criteria.DateTo)))
	case criteria.DateRangeDays > 0:
		conditions = append(conditions, fmt.Sprintf("last_updated >= NOW() - %s * INTERVAL '1 day'", arg(criteria.DateRangeDays)))
	}

	query := "SELECT * FROM regulations WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY last_updated DESC"
	if criteria.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %s", arg(criteria.Limit))
	}

	return query, args
}

func (r *regulationRepository) SuggestTitles(ctx context.Context, query string, limit int) ([]string, error) {
	sqlQuery := `
		SELECT DISTINCT title FROM regulations
		WHERE deleted_at IS NULL AND title ILIKE '%' || $1 || '%'
		ORDER BY title
		LIMIT $2`

	var titles []string
	err := r.db.SelectContext(ctx, &titles, sqlQuery, query, limit)
	return titles, err
}

func (r *regulationRepository) SuggestLocations(ctx context.Context, query string, limit int) ([]string, error) {
	sqlQuery := `
		SELECT DISTINCT location FROM regulations
		WHERE deleted_at IS NULL AND location ILIKE '%' || $1 || '%'
		ORDER BY location
		LIMIT $2`

	var locations []string
	err := r.db.SelectContext(ctx, &locations, sqlQuery, query, limit)
	return locations, err
}

func (r *regulationRepository) SuggestCategories(ctx context.Context, query string, limit int) ([]string, error) {
	sqlQuery := `
		SELECT DISTINCT category FROM regulations
		WHERE deleted_at IS NULL AND category ILIKE '%' || $1 || '%'
		ORDER BY category
		LIMIT $2`

	var categories []string
	err := r.db.SelectContext(ctx, &categories, sqlQuery, query, limit)
	return categories, err
}

// KeywordGroups returns raw comma-joined keyword strings containing the
// query; the caller splits them into individual keywords.
func (r *regulationRepository) KeywordGroups(ctx context.Context, query string, limit int) ([]string, error) {
	sqlQuery := `
		SELECT DISTINCT keywords FROM regulations
		WHERE deleted_at IS NULL AND keywords IS NOT NULL AND keywords ILIKE '%' || $1 || '%'
		LIMIT $2`

	var groups []string
	err := r.db.SelectContext(ctx, &groups, sqlQuery, query, limit)
	return groups, err
}

func (r *regulationRepository) CountByLevel(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT jurisdiction_level, COUNT(*) AS count
		FROM regulations
		WHERE deleted_at IS NULL
		GROUP BY jurisdiction_level`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var level string
		var count int64
		if err := rows.Scan(&level, &count); err != nil {
			return nil, err
		}
		counts[level] = count
	}
	return counts, rows.Err()
}

func (r *regulationRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM regulations WHERE deleted_at IS NULL`)
	return total, err
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
