package bot

import (
	"fmt"
	"strings"

	"teamfinder/internal/discord"
	"teamfinder/internal/roster"
)

const (
	replyNoMatch      = "❌ No matching defense set found. Logged the query."
	replyNoMisses     = "✅ No unmatched teams logged yet."
	replyMissesHeader = "📋 **Unmatched Defense Sets:**\n"
	replyCleared      = "🗑️ All unmatched defense entries have been cleared."
	replyUnknown      = "❌ Unknown command."

	codeFence = "```"
	elided    = "…\n"
)

// matchReply renders a found set.
func matchReply(set roster.TeamSet) string {
	return fmt.Sprintf("**Attack Units:** %s\n**Notes:**\n%s", set.AttackLine(), set.Notes)
}

// missesReply renders the miss log listing. When it would exceed the
// message limit, the oldest lines are elided.
func missesReply(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return replyNoMisses
	}

	budget := discord.MaxMessageLength - len(replyMissesHeader) - 2*len(codeFence)
	if len(content) > budget {
		content = tailLines(content, budget-len(elided))
		content = elided + content
	}

	return replyMissesHeader + codeFence + content + codeFence
}

// tailLines returns the longest suffix of whole lines of s no longer than
// max bytes.
func tailLines(s string, max int) string {
	if len(s) <= max {
		return s
	}

	cut := s[len(s)-max:]
	if i := strings.IndexByte(cut, '\n'); i >= 0 {
		return cut[i+1:]
	}

	return ""
}

func clearFailedReply(err error) string {
	return fmt.Sprintf("❌ Failed to clear the file: %v", err)
}

func listFailedReply(err error) string {
	return fmt.Sprintf("❌ Failed to read the unmatched log: %v", err)
}
