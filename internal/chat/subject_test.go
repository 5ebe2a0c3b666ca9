package chat_test

import (
	"testing"

	"github.com/projectops/assistant/internal/chat"
	"github.com/stretchr/testify/require"
)

func TestExtractSubject(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"for pattern keeps casing", "status for Epicor", "Epicor"},
		{"of pattern", "What's the status of Epicor for LTA?", "Epicor"},
		{"with pattern", "meetings with FNU", "FNU"},
		{"project suffix", "alpha project", "alpha"},
		{"status suffix", "beta status", "beta"},
		{"for at end of sentence", "show issues for Phoenix", "Phoenix"},
		{"no pattern", "good morning", ""},
		{"empty", "", ""},
		{"surrounding whitespace", "  updates for Gamma  ", "Gamma"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, chat.ExtractSubject(tt.query))
		})
	}
}

// The first matching pattern wins even when a later one would capture
// something cleaner. "for" appearing mid-sentence short-circuits the
// "project" suffix pattern.
func TestExtractSubject_FirstPatternWins(t *testing.T) {
	got := chat.ExtractSubject("meetings for Phoenix project")
	require.Equal(t, "Phoenix", got)
}
