package repository

import (
	"context"

	"github.com/projectops/assistant/internal/domain/issue"
	"github.com/projectops/assistant/internal/domain/meeting"
	"github.com/projectops/assistant/internal/domain/project"
	"github.com/projectops/assistant/internal/domain/update"
)

// Read operations take an optional tenantID; the empty string means
// "unscoped" and returns rows across all tenants. Every list result
// has a stable documented ordering so that first-row tie-breaks in the
// chat layer are deterministic.

// ProjectRepository manages project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, proj *project.Project) error
	// Search matches query as a case-insensitive substring of the
	// project name, client name, or description. Results are ordered
	// newest first (descending id) and are NOT tenant-scoped; callers
	// apply tenant filtering so they can tell "no match" apart from
	// "no match for this tenant".
	Search(ctx context.Context, query string) ([]project.Project, error)
	// List returns projects ordered newest first (descending id).
	List(ctx context.Context, tenantID string) ([]project.Project, error)
	// GetSummary aggregates meeting/issue counts and the five most
	// recent client updates (newest first) for one project.
	GetSummary(ctx context.Context, projectID int64) (project.Summary, error)
}

// MeetingRepository manages meeting persistence.
type MeetingRepository interface {
	Create(ctx context.Context, m *meeting.Meeting) error
	// ListAll returns meetings across projects, newest meeting date
	// first, with the project name joined in.
	ListAll(ctx context.Context, tenantID string) ([]meeting.Meeting, error)
	// ListByProject returns a project's meetings, newest first.
	ListByProject(ctx context.Context, projectID int64) ([]meeting.Meeting, error)
}

// IssueRepository manages issue persistence.
type IssueRepository interface {
	Create(ctx context.Context, iss *issue.Issue) error
	// ListAll returns issues across projects, newest report date first,
	// with the project name joined in.
	ListAll(ctx context.Context, tenantID string) ([]issue.Issue, error)
	// ListByProject returns a project's issues, newest first.
	ListByProject(ctx context.Context, projectID int64) ([]issue.Issue, error)
}

// UpdateRepository manages client update persistence.
type UpdateRepository interface {
	Create(ctx context.Context, upd *update.ClientUpdate) error
	// ListByProject returns a project's client updates, newest update
	// date first, optionally restricted to one tenant.
	ListByProject(ctx context.Context, projectID int64, tenantID string) ([]update.ClientUpdate, error)
}
