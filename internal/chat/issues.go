package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/projectops/assistant/internal/domain/issue"
)

// answerIssues handles issue queries: a global pending-issues listing,
// or every issue for a resolved project.
func (b *Bot) answerIssues(ctx context.Context, normalized, subject, tenantID string) (string, error) {
	switch {
	case strings.Contains(normalized, "unresolved") || strings.Contains(normalized, "pending"):
		return b.pendingIssues(ctx, tenantID)
	case subject != "":
		return b.issuesForProject(ctx, subject, tenantID)
	default:
		return "❓ Please specify which project's issues you'd like to see, or ask for 'unresolved issues'.", nil
	}
}

func (b *Bot) pendingIssues(ctx context.Context, tenantID string) (string, error) {
	issues, err := b.issues.ListAll(ctx, tenantID)
	if err != nil {
		return "", fmt.Errorf("listing issues: %w", err)
	}
	if len(issues) == 0 {
		return "📋 No issues found in the system.", nil
	}

	var sb strings.Builder
	count := 0
	for _, iss := range issues {
		if iss.Status != issue.StatusPending {
			continue
		}
		fmt.Fprintf(&sb, "• **%s** - %s\n", iss.ProjectName, formatDate(iss.DateReported))
		fmt.Fprintf(&sb, "  Issue: %s\n", iss.Description)
		fmt.Fprintf(&sb, "  Assigned to: %s\n\n", iss.AssignedTo)
		count++
	}
	if count == 0 {
		return "✅ No pending issues found.", nil
	}

	return "🚨 **Pending Issues:**\n\n" + sb.String(), nil
}

func (b *Bot) issuesForProject(ctx context.Context, subject, tenantID string) (string, error) {
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
	issues, err := b.issues.ListByProject(ctx, proj.ID)
	if err != nil {
		return "", fmt.Errorf("listing project issues: %w", err)
	}
	if len(issues) == 0 {
		return fmt.Sprintf("📋 No issues found for %s.", proj.Name), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🚨 **Issues for %s:**\n\n", proj.Name)
	for _, iss := range issues {
		marker := "✅"
		if iss.Status == issue.StatusPending {
			marker = "🟡"
		}
		fmt.Fprintf(&sb, "%s **%s** - %s\n", marker, iss.Status, formatDate(iss.DateReported))
		fmt.Fprintf(&sb, "  Issue: %s\n", iss.Description)
		fmt.Fprintf(&sb, "  Assigned to: %s\n", iss.AssignedTo)
		if iss.ResolutionDate != nil {
			fmt.Fprintf(&sb, "  Resolved: %s\n", formatDate(*iss.ResolutionDate))
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
