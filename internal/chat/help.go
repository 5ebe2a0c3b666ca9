package chat

// HelpMessage returns the static usage guide covering every accepted
// phrasing. It takes no data dependency; the MCP layer also serves it
// as a readable resource.
func HelpMessage() string {
	return `🤖 **ProjectOps Assistant - Available Commands:**

**Project Status:**
• "What's the status of [project name]?"
• "How is [project name] progressing?"

**Meetings:**
• "List all meetings this month"
• "Show meetings for [project name]"
• "Show last meetings"

**Issues:**
• "What issues are unresolved?"
• "Show issues for [project name]"
• "Pending issues"

**Client Updates:**
• "What was the last client update for [project name]?"
• "Latest update for [project name]"

**General:**
• "Show all projects"
• "Projects for [client name]"

**Examples:**
• "What's the status of Epicor for LTA?"
• "List all meetings this month"
• "What issues are unresolved for HFC?"
• "What was the last client update for TFL?"

Type 'help' anytime to see this message again!`
}
