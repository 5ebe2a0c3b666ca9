package issue

import "time"

// Status is the workflow state of an issue.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
	StatusNew        Status = "New"
)

// Issue is a reported problem on a project. ResolutionDate is nil
// while the issue is unresolved.
type Issue struct {
	ID             int64      `json:"id"`
	TenantID       string     `json:"tenant_id,omitempty"`
	ProjectID      int64      `json:"project_id"`
	ProjectName    string     `json:"project_name,omitempty"`
	DateReported   time.Time  `json:"date_reported"`
	Description    string     `json:"description"`
	Status         Status     `json:"status"`
	AssignedTo     string     `json:"assigned_to"`
	ResolutionDate *time.Time `json:"resolution_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
