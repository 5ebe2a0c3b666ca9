package sqlite

import (
	"context"
	"fmt"

	"github.com/projectops/assistant/internal/domain/update"
)

// UpdateRepository implements repository.UpdateRepository for SQLite
type UpdateRepository struct {
	db *DB
}

// NewUpdateRepository creates a new UpdateRepository
func NewUpdateRepository(db *DB) *UpdateRepository {
	return &UpdateRepository{db: db}
}

// Create inserts a client update and assigns its generated id.
func (r *UpdateRepository) Create(ctx context.Context, upd *update.ClientUpdate) error {
	query := `
		INSERT INTO client_updates (tenant_id, project_id, update_date, summary, sent_by, mode, client_feedback, next_step)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		upd.TenantID,
		upd.ProjectID,
		upd.UpdateDate,
		upd.Summary,
		upd.SentBy,
		upd.Mode,
		upd.ClientFeedback,
		upd.NextStep,
	)
	if err != nil {
		return fmt.Errorf("failed to create client update: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get client update id: %w", err)
	}
	upd.ID = id

	return nil
}

// ListByProject returns one project's client updates, newest update
// date first, with the project name joined in. An empty tenantID is
// unscoped.
func (r *UpdateRepository) ListByProject(ctx context.Context, projectID int64, tenantID string) ([]update.ClientUpdate, error) {
	query := `
		SELECT cu.id, cu.tenant_id, cu.project_id, p.project_name, cu.update_date, cu.summary, cu.sent_by, cu.mode, cu.client_feedback, cu.next_step, cu.created_at
		FROM client_updates cu
		JOIN projects p ON cu.project_id = p.id
		WHERE cu.project_id = ?
	`
	args := []any{projectID}
	if tenantID != "" {
		query += " AND cu.tenant_id = ?"
		args = append(args, tenantID)
	}
	query += " ORDER BY cu.update_date DESC, cu.id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list client updates: %w", err)
	}
	defer rows.Close()

	var updates []update.ClientUpdate
	for rows.Next() {
		var upd update.ClientUpdate
		err := rows.Scan(
			&upd.ID,
			&upd.TenantID,
			&upd.ProjectID,
			&upd.ProjectName,
			&upd.UpdateDate,
			&upd.Summary,
			&upd.SentBy,
			&upd.Mode,
			&upd.ClientFeedback,
			&upd.NextStep,
			&upd.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client update: %w", err)
		}
		updates = append(updates, upd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client update rows: %w", err)
	}

	return updates, nil
}
