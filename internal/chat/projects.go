package chat

import (
	"context"
	"fmt"
	"strings"
)

// answerProjects handles general project lookups: matching projects
// when a subject was extracted, otherwise every project in scope.
func (b *Bot) answerProjects(ctx context.Context, subject, tenantID string) (string, error) {
	if subject == "" {
		return b.allProjects(ctx, tenantID)
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

	var sb strings.Builder
	sb.WriteString("📋 **Found Projects:**\n\n")
	for _, proj := range match.all {
		fmt.Fprintf(&sb, "• **%s**\n", proj.Name)
		fmt.Fprintf(&sb, "  Client: %s\n", proj.ClientName)
		fmt.Fprintf(&sb, "  Status: %s\n", proj.Status)
		fmt.Fprintf(&sb, "  Software: %s\n\n", proj.Software)
	}
	return sb.String(), nil
}

func (b *Bot) allProjects(ctx context.Context, tenantID string) (string, error) {
	projects, err := b.projects.List(ctx, tenantID)
	if err != nil {
		return "", fmt.Errorf("listing projects: %w", err)
	}
	if len(projects) == 0 {
		return "📋 No projects found in the system.", nil
	}

	var sb strings.Builder
	sb.WriteString("📋 **All Projects:**\n\n")
	for _, proj := range projects {
		fmt.Fprintf(&sb, "• **%s** (%s) - %s\n", proj.Name, proj.ClientName, proj.Status)
	}
	return sb.String(), nil
}
