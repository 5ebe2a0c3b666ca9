package meeting

import "time"

// Meeting is a recorded project meeting. ProjectName is populated by
// list operations that join against the projects table.
type Meeting struct {
	ID           int64      `json:"id"`
	TenantID     string     `json:"tenant_id,omitempty"`
	ProjectID    int64      `json:"project_id"`
	ProjectName  string     `json:"project_name,omitempty"`
	MeetingDate  time.Time  `json:"meeting_date"`
	Attendees    string     `json:"attendees"`
	Agenda       string     `json:"agenda"`
	Minutes      string     `json:"mom"`
	NextSteps    string     `json:"next_steps"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
