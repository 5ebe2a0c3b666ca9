package chat

import (
	"context"
	"fmt"
	"strings"
)

// answerMeetings handles meeting queries. The three sub-cases are
// mutually exclusive and checked in priority order: calendar-month
// listing, recent-meetings listing, then per-project listing.
func (b *Bot) answerMeetings(ctx context.Context, normalized, subject, tenantID string) (string, error) {
	switch {
	case strings.Contains(normalized, "this month"):
		return b.meetingsThisMonth(ctx, tenantID)
	case strings.Contains(normalized, "last") && strings.Contains(normalized, "meeting"):
		return b.recentMeetings(ctx, tenantID)
	case subject != "":
		return b.meetingsForProject(ctx, subject, tenantID)
	default:
		return "❓ Please specify which project's meetings you'd like to see, or ask for 'meetings this month' or 'last meetings'.", nil
	}
}

// meetingsThisMonth lists meetings whose date falls in the current
// calendar month, by year-month string equality.
func (b *Bot) meetingsThisMonth(ctx context.Context, tenantID string) (string, error) {
	meetings, err := b.meetings.ListAll(ctx, tenantID)
	if err != nil {
		return "", fmt.Errorf("listing meetings: %w", err)
	}
	if len(meetings) == 0 {
		return "📅 No meetings found in the system.", nil
	}

	currentMonth := b.now().Format("2006-01")
	var sb strings.Builder
	count := 0
	for _, m := range meetings {
		if m.MeetingDate.Format("2006-01") != currentMonth {
			continue
		}
		fmt.Fprintf(&sb, "• **%s** - %s\n", m.ProjectName, formatDate(m.MeetingDate))
		fmt.Fprintf(&sb, "  Agenda: %s\n", m.Agenda)
		fmt.Fprintf(&sb, "  Attendees: %s\n\n", m.Attendees)
		count++
	}
	if count == 0 {
		return fmt.Sprintf("📅 No meetings scheduled for %s.", currentMonth), nil
	}

	return fmt.Sprintf("📅 **Meetings this month (%s):**\n\n%s", currentMonth, sb.String()), nil
}

// recentMeetings lists the five most recent meetings with their
// minutes truncated to the tight budget.
func (b *Bot) recentMeetings(ctx context.Context, tenantID string) (string, error) {
	meetings, err := b.meetings.ListAll(ctx, tenantID)
	if err != nil {
		return "", fmt.Errorf("listing meetings: %w", err)
	}
	if len(meetings) == 0 {
		return "📅 No meetings found in the system.", nil
	}

	if len(meetings) > 5 {
		meetings = meetings[:5]
	}

	var sb strings.Builder
	sb.WriteString("📅 **Recent Meetings:**\n\n")
	for _, m := range meetings {
		fmt.Fprintf(&sb, "• **%s** - %s\n", m.ProjectName, formatDate(m.MeetingDate))
		fmt.Fprintf(&sb, "  Agenda: %s\n", m.Agenda)
		fmt.Fprintf(&sb, "  MoM: %s\n\n", truncate(m.Minutes, recentMinutesLimit))
	}
	return sb.String(), nil
}

// meetingsForProject resolves the subject and lists every meeting for
// that project, most recent first.
func (b *Bot) meetingsForProject(ctx context.Context, subject, tenantID string) (string, error) {
	match, outcome, err := b.resolveProject(ctx, subject, tenantID)
	switch {
	case err != nil:
		return "", err
	case outcome == resolveNoMatch:
		return notFoundMessage(subject), nil
	case outcome == resolveNoTenantMatch:
		return notFoundForTenantMessage(subject), nil
	}

	proj := match.first
	meetings, err := b.meetings.ListByProject(ctx, proj.ID)
	if err != nil {
		return "", fmt.Errorf("listing project meetings: %w", err)
	}
	if len(meetings) == 0 {
		return fmt.Sprintf("📅 No meetings found for %s.", proj.Name), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 **Meetings for %s:**\n\n", proj.Name)
	for _, m := range meetings {
		fmt.Fprintf(&sb, "• **%s**\n", formatDate(m.MeetingDate))
		fmt.Fprintf(&sb, "  Agenda: %s\n", m.Agenda)
		fmt.Fprintf(&sb, "  Attendees: %s\n", m.Attendees)
		fmt.Fprintf(&sb, "  MoM: %s\n", truncate(m.Minutes, projectMinutesLimit))
		fmt.Fprintf(&sb, "  Next Steps: %s\n\n", m.NextSteps)
	}
	return sb.String(), nil
}
