package coverage

import (
	"fmt"
	"strings"

	"zyglio-be/pkg/store"
)

// HistoryWindow bounds how many transcript entries are sent to the
// collaborator, to bound prompt cost.
const HistoryWindow = 6

const maxEntryChars = 200

// FormatRecentHistory renders the last `window` transcript entries as a
// readable block for prompts. Long entries are truncated.
func FormatRecentHistory(history []store.ConversationEntry, window int) string {
	start := len(history) - window
	if start < 0 {
		start = 0
	}

	var sb strings.Builder
	for _, entry := range history[start:] {
		role := "Expert"
		if entry.Role == store.RoleAI {
			role = "Interviewer"
		}

		content := entry.Content
		if len(content) > maxEntryChars {
			content = content[:maxEntryChars] + "..."
		}

		sb.WriteString(fmt.Sprintf("%s: %s\n", role, content))
	}
	return sb.String()
}
