package chat

import "strings"

// Intent is the coarse category of a user question.
type Intent string

const (
	IntentStatus   Intent = "status"
	IntentMeeting  Intent = "meeting"
	IntentIssue    Intent = "issue"
	IntentUpdate   Intent = "update"
	IntentProject  Intent = "project"
	IntentHelp     Intent = "help"
	IntentFallback Intent = "fallback"
)

// intentRule maps a keyword set to an intent. Matching is plain
// substring containment, not whole-word matching.
type intentRule struct {
	intent   Intent
	keywords []string
}

// intentRules is evaluated top to bottom, first match wins. The order
// is a contract: "status meeting notes" is STATUS, and a query
// containing "client" classifies as UPDATE before the PROJECT rule is
// ever reached, because "client" appears in both keyword sets.
var intentRules = []intentRule{
	{IntentStatus, []string{"status", "progress", "how is"}},
	{IntentMeeting, []string{"meeting", "mom", "minutes"}},
	{IntentIssue, []string{"issue", "problem", "bug", "unresolved"}},
	{IntentUpdate, []string{"update", "communication", "client"}},
	{IntentProject, []string{"project", "client"}},
	{IntentHelp, []string{"help"}},
}

// ClassifyIntent maps query text to an intent. The text is lowercased
// and trimmed before the keyword rules are applied.
func ClassifyIntent(text string) Intent {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return rule.intent
			}
		}
	}
	return IntentFallback
}
