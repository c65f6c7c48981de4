// Package messages models chat messages and the filtering and statistics
// applied to them before conversation analysis.
package messages

import (
	"sort"
	"strings"
	"time"
	"unicode"
)

// Author identifies who wrote a message.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Bot  bool   `json:"bot"`
}

// Message is a platform-neutral chat message.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	ChannelID string    `json:"channel_id"`
}

// UserActivity describes one user's share of a conversation.
type UserActivity struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Chars int    `json:"chars"`
}

// ConversationStats aggregates basic numbers about an analyzed conversation.
type ConversationStats struct {
	TotalMessages   int            `json:"total_messages"`
	TotalCharacters int            `json:"total_characters"`
	UniqueUsers     int            `json:"unique_users"`
	TimeRangeHours  float64        `json:"time_range_hours"`
	MostActiveUsers []UserActivity `json:"most_active_users"`
	AvgMessageLen   float64        `json:"avg_message_length"`
}

// commandPrefixes marks messages that are bot commands rather than
// conversation.
var commandPrefixes = []string{"/", "!", ".", "-"}

// RelevantForAnalysis reports whether a message carries conversational
// content worth analyzing. Bot chatter, commands, bare links and emoji-only
// messages are excluded.
func RelevantForAnalysis(m Message, isURLOnly func(string) bool) bool {
	if m.Author.Bot {
		return false
	}
	content := strings.TrimSpace(m.Content)
	if len(content) < 5 {
		return false
	}
	for _, prefix := range commandPrefixes {
		if strings.HasPrefix(content, prefix) {
			return false
		}
	}
	if isURLOnly != nil && len(content) < 100 && isURLOnly(content) {
		return false
	}
	if emojiOnly(content) {
		return false
	}
	return true
}

// FilterByRelevance keeps messages substantial enough for topic analysis:
// a minimum content length and at least 30% alphanumeric characters.
func FilterByRelevance(msgs []Message, minLength int) []Message {
	var relevant []Message
	for _, m := range msgs {
		content := strings.TrimSpace(m.Content)
		if len(content) < minLength {
			continue
		}
		if alnumRatio(content) < 0.3 {
			continue
		}
		relevant = append(relevant, m)
	}
	return relevant
}

// Stats computes conversation statistics over a message set.
func Stats(msgs []Message) ConversationStats {
	if len(msgs) == 0 {
		return ConversationStats{}
	}

	byUser := make(map[string]*UserActivity)
	totalChars := 0
	minTime, maxTime := msgs[0].CreatedAt, msgs[0].CreatedAt
	for _, m := range msgs {
		ua, ok := byUser[m.Author.ID]
		if !ok {
			ua = &UserActivity{Name: m.Author.Name}
			byUser[m.Author.ID] = ua
		}
		ua.Count++
		ua.Chars += len(m.Content)
		totalChars += len(m.Content)

		if m.CreatedAt.Before(minTime) {
			minTime = m.CreatedAt
		}
		if m.CreatedAt.After(maxTime) {
			maxTime = m.CreatedAt
		}
	}

	active := make([]UserActivity, 0, len(byUser))
	for _, ua := range byUser {
		active = append(active, *ua)
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Count > active[j].Count })
	if len(active) > 3 {
		active = active[:3]
	}

	return ConversationStats{
		TotalMessages:   len(msgs),
		TotalCharacters: totalChars,
		UniqueUsers:     len(byUser),
		TimeRangeHours:  maxTime.Sub(minTime).Hours(),
		MostActiveUsers: active,
		AvgMessageLen:   float64(totalChars) / float64(len(msgs)),
	}
}

func alnumRatio(s string) float64 {
	if s == "" {
		return 0
	}
	count := 0
	total := 0
	for _, r := range s {
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			count++
		}
	}
	return float64(count) / float64(total)
}

func emojiOnly(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if !isEmojiRune(r) {
			return false
		}
	}
	return true
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // pictographs, emoticons, transport, supplemental
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols and dingbats
		return true
	case r == 0xFE0F || r == 0x200D: // variation selector, zero-width joiner
		return true
	}
	return false
}
