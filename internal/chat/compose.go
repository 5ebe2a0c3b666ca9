package chat

import "time"

// Truncation budgets for minutes-of-meeting text. The recent-meetings
// listing gets the tighter budget because it shows five entries.
const (
	recentMinutesLimit  = 100
	projectMinutesLimit = 150
)

const dateLayout = "2006-01-02"

// truncate caps s at limit runes and appends an ellipsis marker only
// when something was actually cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
