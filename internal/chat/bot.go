// Package chat implements the query intent router and response
// composer: free text in, classified intent, extracted subject,
// tenant-scoped retrieval, deterministic formatted answer out.
//
// The pipeline is stateless per call. Conversation history, if any,
// belongs to the caller.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/projectops/assistant/internal/domain/project"
	"github.com/projectops/assistant/internal/repository"
)

// projectMatch is the result of a successful resolution: the winning
// first row plus every row that survived the tenant filter, in the
// adapter's ordering.
type projectMatch struct {
	first project.Project
	all   []project.Project
}

// Bot answers free-text questions about projects, meetings, issues,
// and client updates. It only reads from the repositories; repository
// faults propagate to the caller unretried.
type Bot struct {
	projects repository.ProjectRepository
	meetings repository.MeetingRepository
	issues   repository.IssueRepository
	updates  repository.UpdateRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewBot creates a new Bot.
func NewBot(
	projects repository.ProjectRepository,
	meetings repository.MeetingRepository,
	issues repository.IssueRepository,
	updates repository.UpdateRepository,
	logger *slog.Logger,
) *Bot {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bot{
		projects: projects,
		meetings: meetings,
		issues:   issues,
		updates:  updates,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the time source used for calendar-month queries.
func (b *Bot) WithClock(now func() time.Time) *Bot {
	b.now = now
	return b
}

// Answer processes one question. tenantID scopes retrieval to rows
// owned by that tenant; the empty string queries globally. Every
// branch returns non-empty text.
func (b *Bot) Answer(ctx context.Context, query, tenantID string) (string, error) {
	trimmed := strings.TrimSpace(query)
	normalized := strings.ToLower(trimmed)
	subject := ExtractSubject(trimmed)
	intent := ClassifyIntent(normalized)

	b.logger.Debug("answering query", "intent", intent, "subject", subject, "tenant_id", tenantID)

	switch intent {
	case IntentStatus:
		return b.answerStatus(ctx, subject, tenantID)
	case IntentMeeting:
		return b.answerMeetings(ctx, normalized, subject, tenantID)
	case IntentIssue:
		return b.answerIssues(ctx, normalized, subject, tenantID)
	case IntentUpdate:
		return b.answerUpdates(ctx, normalized, subject, tenantID)
	case IntentProject:
		return b.answerProjects(ctx, subject, tenantID)
	case IntentHelp:
		return HelpMessage(), nil
	default:
		return fallbackMessage(trimmed), nil
	}
}

// resolveOutcome distinguishes the ways a subject can fail to resolve.
type resolveOutcome int

const (
	resolveFound resolveOutcome = iota
	resolveNoMatch
	resolveNoTenantMatch
)

// resolveProject turns a subject string into a concrete project:
// unscoped substring search, then tenant filter, then first row in the
// adapter's ordering. The distinction between "nothing matched" and
// "matches exist but none are yours" is preserved so callers never
// leak cross-tenant data silently.
func (b *Bot) resolveProject(ctx context.Context, subject, tenantID string) (*projectMatch, resolveOutcome, error) {
	found, err := b.projects.Search(ctx, subject)
	if err != nil {
		return nil, resolveNoMatch, fmt.Errorf("searching projects: %w", err)
	}
	if len(found) == 0 {
		return nil, resolveNoMatch, nil
	}

	if tenantID != "" {
		owned := found[:0:0]
		for _, proj := range found {
			if proj.TenantID == tenantID {
				owned = append(owned, proj)
			}
		}
		if len(owned) == 0 {
			return nil, resolveNoTenantMatch, nil
		}
		found = owned
	}

	return &projectMatch{found[0], found}, resolveFound, nil
}

func notFoundMessage(subject string) string {
	return fmt.Sprintf("❌ No project found matching '%s'. Please check the project name.", subject)
}

func notFoundForTenantMessage(subject string) string {
	return fmt.Sprintf("❌ No project matching '%s' found for your account.", subject)
}

func fallbackMessage(query string) string {
	return fmt.Sprintf("🤖 I didn't understand your query: '%s'\n\nTry asking about:\n• Project status\n• Meetings\n• Issues\n• Client updates\n\nType 'help' for available commands!", query)
}
