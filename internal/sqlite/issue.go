package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/projectops/assistant/internal/domain/issue"
)

// IssueRepository implements repository.IssueRepository for SQLite
type IssueRepository struct {
	db *DB
}

// NewIssueRepository creates a new IssueRepository
func NewIssueRepository(db *DB) *IssueRepository {
	return &IssueRepository{db: db}
}

// Create inserts an issue and assigns its generated id.
func (r *IssueRepository) Create(ctx context.Context, iss *issue.Issue) error {
	query := `
		INSERT INTO issues (tenant_id, project_id, date_reported, description, status, assigned_to, resolution_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		iss.TenantID,
		iss.ProjectID,
		iss.DateReported,
		iss.Description,
		iss.Status,
		iss.AssignedTo,
		nullableTime(iss.ResolutionDate),
	)
	if err != nil {
		return fmt.Errorf("failed to create issue: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get issue id: %w", err)
	}
	iss.ID = id

	return nil
}

// ListAll returns issues across all projects, newest report first,
// with the project name joined in. An empty tenantID is unscoped.
func (r *IssueRepository) ListAll(ctx context.Context, tenantID string) ([]issue.Issue, error) {
	query := `
		SELECT i.id, i.tenant_id, i.project_id, p.project_name, i.date_reported, i.description, i.status, i.assigned_to, i.resolution_date, i.created_at
		FROM issues i
		JOIN projects p ON i.project_id = p.id
	`
	args := []any{}
	if tenantID != "" {
		query += " WHERE i.tenant_id = ?"
		args = append(args, tenantID)
	}
	query += " ORDER BY i.date_reported DESC, i.id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	defer rows.Close()

	return scanIssues(rows, true)
}

// ListByProject returns one project's issues, newest first.
func (r *IssueRepository) ListByProject(ctx context.Context, projectID int64) ([]issue.Issue, error) {
	query := `
		SELECT id, tenant_id, project_id, date_reported, description, status, assigned_to, resolution_date, created_at
		FROM issues
		WHERE project_id = ?
		ORDER BY date_reported DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project issues: %w", err)
	}
	defer rows.Close()

	return scanIssues(rows, false)
}

func scanIssues(rows *sql.Rows, withProjectName bool) ([]issue.Issue, error) {
	var issues []issue.Issue
	for rows.Next() {
		var iss issue.Issue
		var resolved sql.NullTime

		dest := []any{&iss.ID, &iss.TenantID, &iss.ProjectID}
		if withProjectName {
			dest = append(dest, &iss.ProjectName)
		}
		dest = append(dest, &iss.DateReported, &iss.Description, &iss.Status, &iss.AssignedTo, &resolved, &iss.CreatedAt)

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}
		if resolved.Valid {
			t := resolved.Time
			iss.ResolutionDate = &t
		}
		issues = append(issues, iss)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating issue rows: %w", err)
	}
	return issues, nil
}
