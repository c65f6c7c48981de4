package topics

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	codeFencePattern = regexp.MustCompile("(?m)^```(?:json)?\n|```$")
	jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)
)

// ParseTopicsResponse extracts topics from a model response that should be
// a JSON array but frequently is not quite one. Markdown fences are
// stripped, the first array-shaped region is located, and anything that
// still fails to decode yields an empty slice rather than an error.
func ParseTopicsResponse(response string) []Topic {
	cleaned := strings.TrimSpace(response)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = codeFencePattern.ReplaceAllString(cleaned, "")
	}
	if match := jsonArrayPattern.FindString(cleaned); match != "" {
		cleaned = match
	}

	var raw []Topic
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil
	}

	topics := make([]Topic, 0, len(raw))
	for _, t := range raw {
		if strings.TrimSpace(t.Name) == "" {
			continue
		}
		// Ids in the response are meaningless; they get recomputed during
		// validation against the real message set.
		t.RelatedMessageIDs = nil
		topics = append(topics, t)
	}
	return topics
}
