package project

import (
	"time"

	"github.com/projectops/assistant/internal/domain/update"
)

// Status is the delivery state of a project.
type Status string

const (
	StatusInProgress Status = "In Progress"
	StatusOnHold     Status = "On Hold"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// Project is an engagement tracked for a client. TenantID is empty for
// rows created before accounts were introduced; those are visible to
// unscoped queries only.
type Project struct {
	ID          int64     `json:"id"`
	TenantID    string    `json:"tenant_id,omitempty"`
	Name        string    `json:"project_name"`
	ClientName  string    `json:"client_name"`
	Software    string    `json:"software"`
	Vendor      string    `json:"vendor"`
	StartDate   time.Time `json:"start_date"`
	Deadline    time.Time `json:"deadline"`
	Status      Status    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary aggregates a project's child records for status reporting.
// RecentUpdates holds at most the five newest client updates, newest
// first.
type Summary struct {
	MeetingCount      int                   `json:"meeting_count"`
	IssueCount        int                   `json:"issue_count"`
	PendingIssueCount int                   `json:"pending_issue_count"`
	RecentUpdates     []update.ClientUpdate `json:"recent_updates,omitempty"`
}
