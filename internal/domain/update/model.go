package update

import "time"

// Mode is the communication channel a client update arrived through.
type Mode string

const (
	ModeEmail     Mode = "Email"
	ModeCall      Mode = "Call"
	ModeMeeting   Mode = "Meeting"
	ModeVideoCall Mode = "Video Call"
	ModeOther     Mode = "Other"
)

// ClientUpdate records a single client communication for a project.
type ClientUpdate struct {
	ID             int64     `json:"id"`
	TenantID       string    `json:"tenant_id,omitempty"`
	ProjectID      int64     `json:"project_id"`
	ProjectName    string    `json:"project_name,omitempty"`
	UpdateDate     time.Time `json:"update_date"`
	Summary        string    `json:"summary"`
	SentBy         string    `json:"sent_by"`
	Mode           Mode      `json:"mode"`
	ClientFeedback string    `json:"client_feedback"`
	NextStep       string    `json:"next_step"`
	CreatedAt      time.Time `json:"created_at"`
}
