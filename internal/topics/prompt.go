package topics

import (
	"fmt"
	"regexp"
	"strings"

	"tldw/internal/messages"
)

var (
	mentionPattern    = regexp.MustCompile(`<@!?\d+>`)
	channelRefPattern = regexp.MustCompile(`<#\d+>`)
	customEmojiRe     = regexp.MustCompile(`<:.+?:\d+>`)
)

// FormatTranscript renders messages as a timestamped transcript suitable
// for prompting, with platform markup replaced by neutral placeholders.
func FormatTranscript(msgs []messages.Message) string {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		content := mentionPattern.ReplaceAllString(m.Content, "@user")
		content = channelRefPattern.ReplaceAllString(content, "#channel")
		content = customEmojiRe.ReplaceAllString(content, ":emoji:")
		lines = append(lines, fmt.Sprintf("[%s] %s: %s",
			m.CreatedAt.Format("15:04"), m.Author.Name, content))
	}
	return strings.Join(lines, "\n")
}

func identifyPrompt(transcript string, maxTopics int) string {
	return fmt.Sprintf(`Analyze the following chat conversation and identify the main topics discussed.

IMPORTANT INSTRUCTIONS:
1. Identify between 1-%d main topics
2. Each topic must have at least 3 related messages
3. Provide topic names that are concise (2-4 words)
4. Return ONLY a valid JSON array, no other text
5. Include message counts and key participants for each topic

FORMAT: Return only this JSON structure:
[
    {
        "name": "Topic Name",
        "description": "Brief description of what was discussed",
        "message_count": number_of_related_messages,
        "key_users": ["user1", "user2"],
        "keywords": ["keyword1", "keyword2", "keyword3"]
    }
]

CONVERSATION:
%s

RESPOND WITH JSON ONLY:`, maxTopics, transcript)
}

func summarizePrompt(topic Topic, transcript string) string {
	return fmt.Sprintf(`Summarize the following messages about "%s" from a chat conversation.

INSTRUCTIONS:
1. Create a concise summary (2-4 sentences)
2. Focus on key points, decisions, or conclusions
3. Mention specific details or examples if relevant
4. Use a conversational tone
5. Do not repeat the topic name unnecessarily

TOPIC: %s
DESCRIPTION: %s

MESSAGES:
%s

SUMMARY:`, topic.Name, topic.Name, topic.Description, transcript)
}
