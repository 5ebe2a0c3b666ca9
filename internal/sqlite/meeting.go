package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/projectops/assistant/internal/domain/meeting"
)

// MeetingRepository implements repository.MeetingRepository for SQLite
type MeetingRepository struct {
	db *DB
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// Create inserts a meeting and assigns its generated id.
func (r *MeetingRepository) Create(ctx context.Context, m *meeting.Meeting) error {
	query := `
		INSERT INTO meetings (tenant_id, project_id, meeting_date, attendees, agenda, mom, next_steps, follow_up_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		m.TenantID,
		m.ProjectID,
		m.MeetingDate,
		m.Attendees,
		m.Agenda,
		m.Minutes,
		m.NextSteps,
		nullableTime(m.FollowUpDate),
	)
	if err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get meeting id: %w", err)
	}
	m.ID = id

	return nil
}

// ListAll returns meetings across all projects, newest meeting first,
// with the project name joined in. An empty tenantID is unscoped.
func (r *MeetingRepository) ListAll(ctx context.Context, tenantID string) ([]meeting.Meeting, error) {
	query := `
		SELECT m.id, m.tenant_id, m.project_id, p.project_name, m.meeting_date, m.attendees, m.agenda, m.mom, m.next_steps, m.follow_up_date, m.created_at
		FROM meetings m
		JOIN projects p ON m.project_id = p.id
	`
	args := []any{}
	if tenantID != "" {
		query += " WHERE m.tenant_id = ?"
		args = append(args, tenantID)
	}
	query += " ORDER BY m.meeting_date DESC, m.id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	return scanMeetings(rows, true)
}

// ListByProject returns one project's meetings, newest first.
func (r *MeetingRepository) ListByProject(ctx context.Context, projectID int64) ([]meeting.Meeting, error) {
	query := `
		SELECT id, tenant_id, project_id, meeting_date, attendees, agenda, mom, next_steps, follow_up_date, created_at
		FROM meetings
		WHERE project_id = ?
		ORDER BY meeting_date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project meetings: %w", err)
	}
	defer rows.Close()

	return scanMeetings(rows, false)
}

func scanMeetings(rows *sql.Rows, withProjectName bool) ([]meeting.Meeting, error) {
	var meetings []meeting.Meeting
	for rows.Next() {
		var m meeting.Meeting
		var followUp sql.NullTime

		dest := []any{&m.ID, &m.TenantID, &m.ProjectID}
		if withProjectName {
			dest = append(dest, &m.ProjectName)
		}
		dest = append(dest, &m.MeetingDate, &m.Attendees, &m.Agenda, &m.Minutes, &m.NextSteps, &followUp, &m.CreatedAt)

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		if followUp.Valid {
			t := followUp.Time
			m.FollowUpDate = &t
		}
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meeting rows: %w", err)
	}
	return meetings, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
