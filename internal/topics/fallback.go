package topics

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"tldw/internal/messages"
)

// minKeywordFrequency is how often a word must occur before the fallback
// treats it as a topic.
const minKeywordFrequency = 3

var wordPattern = regexp.MustCompile(`\b\w{4,}\b`)

var stopwords = map[string]struct{}{
	"that": {}, "this": {}, "with": {}, "have": {},
	"they": {}, "were": {}, "been": {}, "from": {},
	"what": {}, "when": {}, "will": {}, "your": {},
	"just": {}, "like": {}, "about": {},
}

// FallbackTopics derives topics from raw keyword frequency when the model
// cannot be reached or returns garbage. Only words of four or more
// characters occurring at least minKeywordFrequency times qualify.
func FallbackTopics(msgs []messages.Message, maxTopics int) []Topic {
	freq := make(map[string]int)
	for _, m := range msgs {
		for _, word := range wordPattern.FindAllString(strings.ToLower(m.Content), -1) {
			if _, skip := stopwords[word]; skip {
				continue
			}
			freq[word]++
		}
	}

	type wordCount struct {
		word  string
		count int
	}
	ranked := make([]wordCount, 0, len(freq))
	for w, c := range freq {
		ranked = append(ranked, wordCount{w, c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count == ranked[j].count {
			return ranked[i].word < ranked[j].word
		}
		return ranked[i].count > ranked[j].count
	})

	var topics []Topic
	for _, wc := range ranked {
		if len(topics) >= maxTopics {
			break
		}
		if wc.count < minKeywordFrequency {
			continue
		}
		topics = append(topics, Topic{
			Name:         capitalize(wc.word),
			Description:  fmt.Sprintf("Discussion about %s", wc.word),
			MessageCount: wc.count,
			Keywords:     []string{wc.word},
		})
	}
	return topics
}

// FallbackSummary builds a plain-text summary from the messages themselves
// when the model cannot summarize a topic.
func FallbackSummary(topic Topic, related []messages.Message) string {
	if len(related) == 0 {
		return "No detailed discussion found."
	}

	seen := make(map[string]struct{})
	var participants []string
	longest := related[0]
	for _, m := range related {
		if _, ok := seen[m.Author.Name]; !ok {
			seen[m.Author.Name] = struct{}{}
			participants = append(participants, m.Author.Name)
		}
		if len(m.Content) > len(longest.Content) {
			longest = m
		}
	}

	summary := fmt.Sprintf("This topic was discussed by %s across %d messages.",
		strings.Join(participants, ", "), len(related))

	if len(longest.Content) > 50 {
		snippet := longest.Content
		if len(snippet) > 100 {
			snippet = snippet[:100] + "..."
		}
		summary += fmt.Sprintf(" Key point: %q", snippet)
	}
	return summary
}

func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
