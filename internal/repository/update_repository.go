package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"compliance-tracker/internal/domain"
)

type UpdateRepository interface {
	Create(ctx context.Context, update *domain.Update) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Update, error)
	Update(ctx context.Context, update *domain.Update) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters domain.UpdateFilters, params domain.PaginationParams) ([]domain.Update, int64, error)
	ListAll(ctx context.Context) ([]domain.Update, error)
	SearchText(ctx context.Context, query string, limit int) ([]domain.Update, error)
	ListRecentAndUpcoming(ctx context.Context) ([]domain.Update, error)
	ListProposed(ctx context.Context) ([]domain.Update, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.UpdateStatus) error
	ListWithDeadlineWithin(ctx context.Context, days int) ([]domain.Update, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Update, error)
	ReplaceRelatedRegulations(ctx context.Context, updateID uuid.UUID, regulationIDs []uuid.UUID) error
	GetRelatedRegulationIDs(ctx context.Context, updateID uuid.UUID) ([]uuid.UUID, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	Count(ctx context.Context) (int64, error)
}

type updateRepository struct {
	db *sqlx.DB
}

func NewUpdateRepository(db *sqlx.DB) UpdateRepository {
	return &updateRepository{db: db}
}

func (r *updateRepository) Create(ctx context.Context, update *domain.Update) error {
	query := `
		INSERT INTO updates (id, title, description, jurisdiction, status, change_type,
			category, impact_level, priority, update_date, effective_date, deadline_date,
			compliance_deadline, expected_decision_date, decision_status, action_required,
			action_description, summary, full_text, expert_analysis, potential_impact,
			tags, source_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		update.ID, update.Title, update.Description, update.Jurisdiction,
		update.Status, update.ChangeType, update.Category, update.ImpactLevel,
		update.Priority, update.UpdateDate, update.EffectiveDate, update.DeadlineDate,
		update.ComplianceDeadline, update.ExpectedDecisionDate, update.DecisionStatus,
		update.ActionRequired, update.ActionDescription, update.Summary, update.FullText,
		update.ExpertAnalysis, update.PotentialImpact, update.Tags, update.SourceURL,
	).Scan(&update.CreatedAt, &update.UpdatedAt)
}

func (r *updateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Update, error) {
	var update domain.Update
	query := `SELECT * FROM updates WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &update, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	related, err := r.GetRelatedRegulationIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	update.RelatedRegulationIDs = related

	return &update, nil
}

func (r *updateRepository) Update(ctx context.Context, update *domain.Update) error {
	query := `
		UPDATE updates
		SET title = $2, description = $3, jurisdiction = $4, status = $5, change_type = $6,
			category = $7, impact_level = $8, priority = $9, update_date = $10,
			effective_date = $11, deadline_date = $12, compliance_deadline = $13,
			expected_decision_date = $14, decision_status = $15, action_required = $16,
			action_description = $17, summary = $18, full_text = $19, expert_analysis = $20,
			potential_impact = $21, tags = $22, source_url = $23, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		update.ID, update.Title, update.Description, update.Jurisdiction,
		update.Status, update.ChangeType, update.Category, update.ImpactLevel,
		update.Priority, update.UpdateDate, update.EffectiveDate, update.DeadlineDate,
		update.ComplianceDeadline, update.ExpectedDecisionDate, update.DecisionStatus,
		update.ActionRequired, update.ActionDescription, update.Summary, update.FullText,
		update.ExpertAnalysis, update.PotentialImpact, update.Tags, update.SourceURL,
	).Scan(&update.UpdatedAt)
}

func (r *updateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE updates SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUpdateNotFound
	}
	return nil
}

func (r *updateRepository) List(ctx context.Context, filters domain.UpdateFilters, params domain.PaginationParams) ([]domain.Update, int64, error) {
	params.Validate()

	where, args := buildUpdateFilterSQL(filters)

	var total int64
	countQuery := "SELECT COUNT(*) FROM updates WHERE " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT * FROM updates WHERE %s ORDER BY priority ASC, update_date DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, params.PageSize, params.Offset())

	var updates []domain.Update
	err := r.db.SelectContext(ctx, &updates, query, args...)
	return updates, total, err
}

// buildUpdateFilterSQL composes the WHERE clause for update listings.
func buildUpdateFilterSQL(filters domain.UpdateFilters) (string, []any) {
	conditions := []string{"deleted_at IS NULL"}
	var args []any

	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = %s", arg(*filters.Status)))
	}
	if filters.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = %s", arg(*filters.Category)))
	}
	if filters.Jurisdiction != nil {
		conditions = append(conditions, fmt.Sprintf("jurisdiction ILIKE %s", arg("%"+*filters.Jurisdiction+"%")))
	}
	if filters.ImpactLevel != nil {
		conditions = append(conditions, fmt.Sprintf("impact_level = %s", arg(*filters.ImpactLevel)))
	}
	if filters.Priority != nil {
		conditions = append(conditions, fmt.Sprintf("priority = %s", arg(*filters.Priority)))
	}
	if filters.DecisionStatus != nil {
		conditions = append(conditions, fmt.Sprintf("decision_status = %s", arg(*filters.DecisionStatus)))
	}
	if filters.ChangeType != nil {
		conditions = append(conditions, fmt.Sprintf("change_type = %s", arg(*filters.ChangeType)))
	}
	if filters.ActionRequired != nil {
		conditions = append(conditions, fmt.Sprintf("action_required = %s", arg(*filters.ActionRequired)))
	}
	if filters.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("update_date >= %s", arg(*filters.DateFrom)))
	}
	if filters.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("update_date <= %s", arg(*filters.DateTo)))
	}

	return strings.Join(conditions, " AND "), args
}

func (r *updateRepository) ListAll(ctx context.Context) ([]domain.Update, error) {
	query := `
		SELECT * FROM updates
		WHERE deleted_at IS NULL
		ORDER BY update_date DESC`

	var updates []domain.Update
	err := r.db.SelectContext(ctx, &updates, query)
	return updates, err
}

func (r *updateRepository) SearchText(ctx context.Context, query string, limit int) ([]domain.Update, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	sqlQuery := `
		SELECT * FROM updates
		WHERE deleted_at IS NULL
			AND (title ILIKE '%' || $1 || '%'
				OR description ILIKE '%' || $1 || '%'
				OR jurisdiction ILIKE '%' || $1 || '%')
		ORDER BY priority ASC, update_date DESC
		LIMIT $2`

	var updates []domain.Update
	err := r.db.SelectContext(ctx, &updates, sqlQuery, query, limit)
	return updates, err
}

func (r *updateRepository) ListRecentAndUpcoming(ctx context.Context) ([]domain.Update, error) {
	query := `
		SELECT * FROM updates
		WHERE deleted_at IS NULL AND status IN ($1, $2)
		ORDER BY priority ASC, update_date DESC`

	var updates []domain.Update
	err := r.db.SelectContext(ctx, &updates, query, domain.StatusRecent, domain.StatusUpcoming)
	return updates, err
}

func (r *updateRepository) ListProposed(ctx context.Context) ([]domain.Update, error) {
	query := `
		SELECT * FROM updates
		WHERE deleted_at IS NULL AND status = $1
		ORDER BY priority ASC, update_date DESC`

	var updates []domain.Update
	err := r.db.SelectContext(ctx, &updates, query, domain.StatusProposed)
	return updates, err
}

// SetStatus writes status and its legacy change_type mirror together.
func (r *updateRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.UpdateStatus) error {
	query := `
		UPDATE updates
		SET status = $2, change_type = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUpdateNotFound
	}
	return nil
}

func (r *updateRepository) ListWithDeadlineWithin(ctx context.Context, days int) ([]domain.Update, error) {
	query := `
		SELECT * FROM updates
		WHERE deleted_at IS NULL
			AND deadline_date IS NOT NULL
			AND deadline_date >= NOW()
			AND deadline_date <= NOW() + $1 * INTERVAL '1 day'
		ORDER BY deadline_date ASC`

	var updates []domain.Update
	err := r.db.SelectContext(ctx, &updates, query, days)
	return updates, err
}

func (r *updateRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Update, error) {
	query := `
		SELECT * FROM updates
		WHERE deleted_at IS NULL AND created_at >= $1
		ORDER BY priority ASC, update_date DESC`

	var updates []domain.Update
	err := r.db.SelectContext(ctx, &updates, query, since)
	return updates, err
}

func (r *updateRepository) ReplaceRelatedRegulations(ctx context.Context, updateID uuid.UUID, regulationIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM update_regulations WHERE update_id = $1`, updateID); err != nil {
		return err
	}

	for _, regulationID := range regulationIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO update_regulations (update_id, regulation_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			updateID, regulationID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *updateRepository) GetRelatedRegulationIDs(ctx context.Context, updateID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT regulation_id FROM update_regulations WHERE update_id = $1 ORDER BY regulation_id`

	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, query, updateID)
	return ids, err
}

func (r *updateRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM updates
		WHERE deleted_at IS NULL
		GROUP BY status`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *updateRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM updates WHERE deleted_at IS NULL`)
	return total, err
}
