package commands

import (
	"fmt"
	"strings"

	"tldw/internal/topics"
)

var topicEmojis = []string{"🤖", "💬", "🎯", "📚", "⚡", "🔧", "💡", "🎮"}

// formatBundle renders a conversation bundle as response text.
func formatBundle(bundle *topics.Bundle, fromCache bool) string {
	var b strings.Builder

	b.WriteString("📊 Conversation Summary")
	if fromCache {
		b.WriteString(" (from cache)")
	}
	b.WriteString("\n\n")

	stats := bundle.Stats
	total := bundle.Metadata.TotalMessagesAnalyzed
	if total == 0 {
		total = stats.TotalMessages
	}
	fmt.Fprintf(&b, "📈 Overview: %d messages from %d users", total, stats.UniqueUsers)
	switch {
	case stats.TimeRangeHours >= 1:
		fmt.Fprintf(&b, " (over %.1f hours)", stats.TimeRangeHours)
	case stats.TimeRangeHours > 0:
		fmt.Fprintf(&b, " (over %d minutes)", int(stats.TimeRangeHours*60))
	}
	b.WriteString("\n\n")

	for i, ts := range bundle.Topics {
		emoji := topicEmojis[i%len(topicEmojis)]
		fmt.Fprintf(&b, "%s %s (%d messages)\n%s\n\n",
			emoji, ts.Topic.Name, ts.MessageCount, ts.Summary)
	}

	if len(stats.MostActiveUsers) > 0 {
		b.WriteString("👥 Most Active: ")
		var mentions []string
		for _, ua := range stats.MostActiveUsers {
			mentions = append(mentions, fmt.Sprintf("%s (%d)", ua.Name, ua.Count))
		}
		b.WriteString(strings.Join(mentions, ", "))
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}
