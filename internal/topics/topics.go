// Package topics identifies discussion topics in a conversation and
// summarizes each one.
package topics

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tldw/internal/llm"
	"tldw/internal/messages"
)

// minTopicMessages is the floor below which a topic is considered noise.
const minTopicMessages = 3

// Topic is one identified discussion theme.
type Topic struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	MessageCount      int      `json:"message_count"`
	KeyUsers          []string `json:"key_users"`
	Keywords          []string `json:"keywords"`
	RelatedMessageIDs []string `json:"related_message_ids,omitempty"`
}

// TopicSummary pairs a topic with its generated summary.
type TopicSummary struct {
	Topic        Topic  `json:"topic"`
	Summary      string `json:"summary"`
	MessageCount int    `json:"message_count"`
}

// Metadata records how a bundle was produced.
type Metadata struct {
	RunID                 string    `json:"run_id"`
	TotalMessagesAnalyzed int       `json:"total_messages_analyzed"`
	TotalMessagesFetched  int       `json:"total_messages_fetched"`
	TimeFilter            string    `json:"time_filter,omitempty"`
	GeneratedAt           time.Time `json:"generated_at"`
}

// Bundle is the aggregated multi-topic conversation summary that gets
// cached per channel and fingerprint.
type Bundle struct {
	Topics   []TopicSummary             `json:"topics"`
	Stats    messages.ConversationStats `json:"stats"`
	Metadata Metadata                   `json:"metadata"`
}

// Analyzer drives topic identification and per-topic summarization.
type Analyzer struct {
	gen    llm.Generator
	logger zerolog.Logger
}

func NewAnalyzer(gen llm.Generator, logger zerolog.Logger) *Analyzer {
	return &Analyzer{gen: gen, logger: logger}
}

// Identify extracts up to maxTopics topics from a conversation. A failing
// or unparseable model response falls back to keyword-frequency analysis;
// the returned slice may be empty but the call itself does not fail.
func (a *Analyzer) Identify(ctx context.Context, msgs []messages.Message, maxTopics int) []Topic {
	if len(msgs) == 0 {
		return nil
	}

	transcript := FormatTranscript(msgs)
	if len(strings.TrimSpace(transcript)) < 50 {
		return nil
	}

	raw, err := a.gen.Generate(ctx, identifyPrompt(transcript, maxTopics))
	if err != nil {
		a.logger.Warn().Err(err).Msg("topic identification failed, using keyword fallback")
		return FallbackTopics(msgs, maxTopics)
	}

	parsed := ParseTopicsResponse(raw)
	if len(parsed) == 0 {
		a.logger.Warn().Str("response", truncate(raw, 200)).
			Msg("unparseable topics response, using keyword fallback")
		return FallbackTopics(msgs, maxTopics)
	}

	return validateTopics(parsed, msgs)
}

// SummarizeTopic generates a short summary of the messages belonging to a
// topic. Model failures degrade to a plain fallback summary instead of an
// error.
func (a *Analyzer) SummarizeTopic(ctx context.Context, topic Topic, related []messages.Message) string {
	if len(related) == 0 {
		return "No messages found for this topic."
	}

	summary, err := a.gen.Generate(ctx, summarizePrompt(topic, FormatTranscript(related)))
	if err != nil || strings.TrimSpace(summary) == "" {
		if err != nil {
			a.logger.Warn().Err(err).Str("topic", topic.Name).Msg("topic summarization failed")
		}
		return FallbackSummary(topic, related)
	}
	return strings.TrimSpace(summary)
}

// validateTopics drops topics the model hallucinated: each surviving topic
// must map to at least minTopicMessages actual messages. Surviving topics
// get their counts, related ids and participants recomputed from the real
// messages rather than trusting the model's numbers.
func validateTopics(topics []Topic, msgs []messages.Message) []Topic {
	var validated []Topic
	for _, t := range topics {
		if t.MessageCount < minTopicMessages {
			continue
		}
		related := MatchStrict.FindRelated(t, msgs)
		if len(related) < minTopicMessages {
			continue
		}

		t.MessageCount = len(related)
		t.RelatedMessageIDs = make([]string, len(related))
		seen := make(map[string]struct{})
		var participants []string
		for i, m := range related {
			t.RelatedMessageIDs[i] = m.ID
			if _, ok := seen[m.Author.Name]; !ok {
				seen[m.Author.Name] = struct{}{}
				participants = append(participants, m.Author.Name)
			}
		}
		if len(participants) > 3 {
			participants = participants[:3]
		}
		t.KeyUsers = participants

		validated = append(validated, t)
	}
	return validated
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
