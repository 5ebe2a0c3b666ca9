package chat

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/projectops/assistant/internal/domain/update"
)

// answerUpdates handles client update queries: the single latest
// update (for one project or across all of them), or a project's full
// update history.
func (b *Bot) answerUpdates(ctx context.Context, normalized, subject, tenantID string) (string, error) {
	wantLatest := strings.Contains(normalized, "last") && strings.Contains(normalized, "update")

	switch {
	case wantLatest && subject != "":
		return b.latestUpdateForProject(ctx, subject, tenantID)
	case wantLatest:
		return b.latestUpdateGlobal(ctx, tenantID)
	case subject != "":
		return b.updatesForProject(ctx, subject, tenantID)
	default:
		return "❓ Please specify which project's updates you'd like to see, or ask for 'last update for [project name]'.", nil
	}
}

func (b *Bot) latestUpdateForProject(ctx context.Context, subject, tenantID string) (string, error) {
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
	updates, err := b.updates.ListByProject(ctx, proj.ID, tenantID)
	if err != nil {
		return "", fmt.Errorf("listing client updates: %w", err)
	}
	if len(updates) == 0 {
		return fmt.Sprintf("📧 No updates found for %s.", proj.Name), nil
	}

	latest := updates[0]
	var sb strings.Builder
	fmt.Fprintf(&sb, "📧 **Latest Update for %s:**\n\n", proj.Name)
	writeUpdateDetail(&sb, latest)
	return sb.String(), nil
}

// latestUpdateGlobal scans every project's updates, flattens them, and
// returns the single newest one with its project name.
func (b *Bot) latestUpdateGlobal(ctx context.Context, tenantID string) (string, error) {
	projects, err := b.projects.List(ctx, tenantID)
	if err != nil {
		return "", fmt.Errorf("listing projects: %w", err)
	}

	var all []update.ClientUpdate
	for _, proj := range projects {
		updates, err := b.updates.ListByProject(ctx, proj.ID, tenantID)
		if err != nil {
			return "", fmt.Errorf("listing client updates: %w", err)
		}
		all = append(all, updates...)
	}
	if len(all) == 0 {
		return "📧 No client updates found in the system.", nil
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].UpdateDate.After(all[j].UpdateDate)
	})

	latest := all[0]
	var sb strings.Builder
	fmt.Fprintf(&sb, "📧 **Latest Update (%s):**\n\n", latest.ProjectName)
	writeUpdateDetail(&sb, latest)
	return sb.String(), nil
}

func (b *Bot) updatesForProject(ctx context.Context, subject, tenantID string) (string, error) {
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
	updates, err := b.updates.ListByProject(ctx, proj.ID, tenantID)
	if err != nil {
		return "", fmt.Errorf("listing client updates: %w", err)
	}
	if len(updates) == 0 {
		return fmt.Sprintf("📧 No updates found for %s.", proj.Name), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📧 **Client Updates for %s:**\n\n", proj.Name)
	for _, upd := range updates {
		fmt.Fprintf(&sb, "• **%s**\n", formatDate(upd.UpdateDate))
		fmt.Fprintf(&sb, "  Summary: %s\n", upd.Summary)
		fmt.Fprintf(&sb, "  Sent by: %s\n", upd.SentBy)
		fmt.Fprintf(&sb, "  Mode: %s\n", upd.Mode)
		fmt.Fprintf(&sb, "  Client Feedback: %s\n", upd.ClientFeedback)
		fmt.Fprintf(&sb, "  Next Step: %s\n\n", upd.NextStep)
	}
	return sb.String(), nil
}

func writeUpdateDetail(sb *strings.Builder, upd update.ClientUpdate) {
	fmt.Fprintf(sb, "**Date:** %s\n", formatDate(upd.UpdateDate))
	fmt.Fprintf(sb, "**Summary:** %s\n", upd.Summary)
	fmt.Fprintf(sb, "**Sent by:** %s\n", upd.SentBy)
	fmt.Fprintf(sb, "**Mode:** %s\n", upd.Mode)
	fmt.Fprintf(sb, "**Client Feedback:** %s\n", upd.ClientFeedback)
	fmt.Fprintf(sb, "**Next Step:** %s\n", upd.NextStep)
}
