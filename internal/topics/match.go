package topics

import (
	"strings"

	"tldw/internal/messages"
)

// MatchStrategy decides whether a message belongs to a topic based on how
// many of the topic's keywords it contains. Two strategies exist because
// topic validation and summary regrouping tolerate different noise levels.
type MatchStrategy int

const (
	// MatchStrict requires at least two keyword hits, or a single hit when
	// the topic only has one or two keywords to begin with. Used when
	// validating model-proposed topics.
	MatchStrict MatchStrategy = iota

	// MatchLenient accepts any single keyword hit. Used when regrouping
	// messages for summary generation, where missing context hurts more
	// than the occasional stray message.
	MatchLenient
)

// FindRelated returns the messages belonging to topic. If the topic
// carries precomputed related-message ids those win; otherwise membership
// is decided by keyword matching under the strategy.
func (s MatchStrategy) FindRelated(topic Topic, msgs []messages.Message) []messages.Message {
	if len(topic.RelatedMessageIDs) > 0 {
		ids := make(map[string]struct{}, len(topic.RelatedMessageIDs))
		for _, id := range topic.RelatedMessageIDs {
			ids[id] = struct{}{}
		}
		var related []messages.Message
		for _, m := range msgs {
			if _, ok := ids[m.ID]; ok {
				related = append(related, m)
			}
		}
		return related
	}

	keywords := topicKeywords(topic)
	if len(keywords) == 0 {
		return nil
	}

	var related []messages.Message
	for _, m := range msgs {
		content := strings.ToLower(m.Content)
		hits := 0
		for _, kw := range keywords {
			if strings.Contains(content, kw) {
				hits++
			}
		}
		if s.accepts(hits, len(keywords)) {
			related = append(related, m)
		}
	}
	return related
}

func (s MatchStrategy) accepts(hits, keywordCount int) bool {
	switch s {
	case MatchLenient:
		return hits >= 1
	default:
		return hits >= 2 || (hits == 1 && keywordCount <= 2)
	}
}

// topicKeywords merges declared keywords with the topic name's words,
// lowercased, dropping tokens too short to be meaningful.
func topicKeywords(topic Topic) []string {
	var keywords []string
	for _, kw := range topic.Keywords {
		if len(kw) > 2 {
			keywords = append(keywords, strings.ToLower(kw))
		}
	}
	for _, word := range strings.Fields(strings.ToLower(topic.Name)) {
		if len(word) > 2 {
			keywords = append(keywords, word)
		}
	}
	return keywords
}
