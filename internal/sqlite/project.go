package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/projectops/assistant/internal/domain/project"
	"github.com/projectops/assistant/internal/domain/update"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project and assigns its generated id.
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	query := `
		INSERT INTO projects (tenant_id, project_name, client_name, software, vendor, start_date, deadline, status, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		proj.TenantID,
		proj.Name,
		proj.ClientName,
		proj.Software,
		proj.Vendor,
		proj.StartDate,
		proj.Deadline,
		proj.Status,
		proj.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get project id: %w", err)
	}
	proj.ID = id

	return nil
}

// Search matches the query as a substring of name, client, or
// description. SQLite LIKE is case-insensitive for ASCII, which is the
// containment contract the chat layer relies on. Results are newest
// first by id and span all tenants.
func (r *ProjectRepository) Search(ctx context.Context, query string) ([]project.Project, error) {
	stmt := `
		SELECT id, tenant_id, project_name, client_name, software, vendor, start_date, deadline, status, description, created_at
		FROM projects
		WHERE project_name LIKE ? OR client_name LIKE ? OR description LIKE ?
		ORDER BY id DESC
	`

	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx, stmt, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

// List returns projects newest first. An empty tenantID lists every
// tenant's projects.
func (r *ProjectRepository) List(ctx context.Context, tenantID string) ([]project.Project, error) {
	stmt := `
		SELECT id, tenant_id, project_name, client_name, software, vendor, start_date, deadline, status, description, created_at
		FROM projects
	`
	args := []any{}
	if tenantID != "" {
		stmt += " WHERE tenant_id = ?"
		args = append(args, tenantID)
	}
	stmt += " ORDER BY id DESC"

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

// GetSummary aggregates meeting and issue counts plus the five newest
// client updates for one project.
func (r *ProjectRepository) GetSummary(ctx context.Context, projectID int64) (project.Summary, error) {
	var summary project.Summary

	countQuery := `
		SELECT
			(SELECT COUNT(*) FROM meetings WHERE project_id = ?),
			(SELECT COUNT(*) FROM issues WHERE project_id = ?),
			(SELECT COUNT(*) FROM issues WHERE project_id = ? AND status = 'Pending')
	`
	err := r.db.QueryRowContext(ctx, countQuery, projectID, projectID, projectID).Scan(
		&summary.MeetingCount,
		&summary.IssueCount,
		&summary.PendingIssueCount,
	)
	if err != nil {
		return project.Summary{}, fmt.Errorf("failed to get project counts: %w", err)
	}

	updatesQuery := `
		SELECT id, tenant_id, project_id, update_date, summary, sent_by, mode, client_feedback, next_step, created_at
		FROM client_updates
		WHERE project_id = ?
		ORDER BY update_date DESC, id DESC
		LIMIT 5
	`
	rows, err := r.db.QueryContext(ctx, updatesQuery, projectID)
	if err != nil {
		return project.Summary{}, fmt.Errorf("failed to get recent updates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var upd update.ClientUpdate
		err := rows.Scan(
			&upd.ID,
			&upd.TenantID,
			&upd.ProjectID,
			&upd.UpdateDate,
			&upd.Summary,
			&upd.SentBy,
			&upd.Mode,
			&upd.ClientFeedback,
			&upd.NextStep,
			&upd.CreatedAt,
		)
		if err != nil {
			return project.Summary{}, fmt.Errorf("failed to scan recent update: %w", err)
		}
		summary.RecentUpdates = append(summary.RecentUpdates, upd)
	}
	if err := rows.Err(); err != nil {
		return project.Summary{}, fmt.Errorf("error iterating recent updates: %w", err)
	}

	return summary, nil
}

func scanProjects(rows *sql.Rows) ([]project.Project, error) {
	var projects []project.Project
	for rows.Next() {
		var proj project.Project
		err := rows.Scan(
			&proj.ID,
			&proj.TenantID,
			&proj.Name,
			&proj.ClientName,
			&proj.Software,
			&proj.Vendor,
			&proj.StartDate,
			&proj.Deadline,
			&proj.Status,
			&proj.Description,
			&proj.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, proj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}
