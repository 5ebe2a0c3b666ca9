package chat

import (
	"context"
	"fmt"
	"strings"
)

// answerStatus composes the project status report: header, core
// fields, child-record counts, and the latest client update if one
// exists.
func (b *Bot) answerStatus(ctx context.Context, subject, tenantID string) (string, error) {
	if subject == "" {
		return "❓ Please specify which project you'd like to check the status for.", nil
	}

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
	summary, err := b.projects.GetSummary(ctx, proj.ID)
	if err != nil {
		return "", fmt.Errorf("getting project summary: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 **Project Status: %s**\n\n", proj.Name)
	fmt.Fprintf(&sb, "**Client:** %s\n", proj.ClientName)
	fmt.Fprintf(&sb, "**Status:** %s\n", proj.Status)
	fmt.Fprintf(&sb, "**Software:** %s\n", proj.Software)
	fmt.Fprintf(&sb, "**Vendor:** %s\n", proj.Vendor)
	fmt.Fprintf(&sb, "**Start Date:** %s\n", formatDate(proj.StartDate))
	fmt.Fprintf(&sb, "**Deadline:** %s\n\n", formatDate(proj.Deadline))
	sb.WriteString("**Summary:**\n")
	fmt.Fprintf(&sb, "• Total Meetings: %d\n", summary.MeetingCount)
	fmt.Fprintf(&sb, "• Total Issues: %d\n", summary.IssueCount)
	fmt.Fprintf(&sb, "• Pending Issues: %d\n", summary.PendingIssueCount)

	if len(summary.RecentUpdates) > 0 {
		latest := summary.RecentUpdates[0]
		sb.WriteString("\n**Latest Update:**\n")
		fmt.Fprintf(&sb, "• %s (on %s)", latest.Summary, formatDate(latest.UpdateDate))
	}

	return sb.String(), nil
}
