package commands

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"tldw/internal/messages"
	"tldw/internal/topics"
	"tldw/internal/urls"
)

const (
	minAnalysisCount     = 10
	maxAnalysisCount     = 200
	defaultAnalysisCount = 100
	maxTopicsPerAnalysis = 5

	// minRelevantMessages is how many messages must survive relevance
	// filtering before topic analysis is worth running.
	minRelevantMessages = 5

	// minTopicMessages is the per-topic floor for inclusion in the bundle.
	minTopicMessages = 3
)

var timeFilterPattern = regexp.MustCompile(`^(\d+)([hm])$`)

// errBadTimeFilter marks a malformed time filter argument.
var errBadTimeFilter = errors.New("invalid time filter")

// SummaryCommand analyzes recent conversation and responds with per-topic
// summaries. It is the only rate-limited command: analysis burns an LLM
// call per topic, so per-user and per-channel cooldowns apply.
type SummaryCommand struct {
	deps *Deps
}

func NewSummary(deps *Deps) *SummaryCommand {
	return &SummaryCommand{deps: deps}
}

func (c *SummaryCommand) Name() string { return "summary" }

func (c *SummaryCommand) Description() string {
	return "Generate a topic-based summary of recent conversation"
}

func (c *SummaryCommand) UserLimit() time.Duration {
	return c.deps.Config.UserRateLimit
}

func (c *SummaryCommand) ChannelLimit() time.Duration {
	return c.deps.Config.ChannelRateLimit
}

func (c *SummaryCommand) Execute(ctx context.Context, cc Context, args []string) error {
	count, filterArg, err := parseSummaryArgs(args)
	if err != nil {
		return cc.Send("Invalid time filter. Use a format like '1h', '30m' or '2h' (hours or minutes).")
	}

	// Silently clamp rather than reject.
	if count < minAnalysisCount {
		count = minAnalysisCount
	} else if count > maxAnalysisCount {
		count = maxAnalysisCount
	}

	var window time.Duration
	if filterArg != "" {
		window, err = ParseTimeFilter(filterArg)
		if err != nil {
			return cc.Send("Invalid time filter. Use a format like '1h', '30m' or '2h' (hours or minutes).")
		}
	}

	scope := ""
	if filterArg != "" {
		scope = fmt.Sprintf(" from the past %s", filterArg)
	}
	if err := cc.Send(fmt.Sprintf("Analyzing last %d messages%s...", count, scope)); err != nil {
		return err
	}

	fetched, err := c.fetchForAnalysis(ctx, cc, count, window)
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			return cc.Send("No messages found to analyze. Make sure the bot can read message history in this channel.")
		}
		return err
	}
	if len(fetched) < minAnalysisCount {
		return cc.Send(fmt.Sprintf(
			"Only found %d messages. Need at least %d messages for meaningful analysis.",
			len(fetched), minAnalysisCount))
	}

	relevant := messages.FilterByRelevance(fetched, 10)
	if len(relevant) < minRelevantMessages {
		return cc.Send("Not enough substantial messages found for topic analysis.")
	}

	channelID := cc.ChannelID()
	fingerprint := messages.Fingerprint(relevant)

	var cached topics.Bundle
	if c.deps.Cache.GetBundle(ctx, channelID, fingerprint, &cached) {
		return respond(cc, formatBundle(&cached, true))
	}

	if err := cc.Send(fmt.Sprintf("Analyzing %d relevant messages for topics...", len(relevant))); err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.deps.Config.RequestTimeout)
	defer cancel()

	identified := c.deps.Analyzer.Identify(callCtx, relevant, maxTopicsPerAnalysis)
	if len(identified) == 0 {
		return cc.Send("Could not identify clear topics in the conversation. The discussion might be too fragmented.")
	}

	if err := cc.Send(fmt.Sprintf("Found %d topics. Generating summaries...", len(identified))); err != nil {
		return err
	}

	var summaries []topics.TopicSummary
	for _, topic := range identified {
		related := topics.MatchLenient.FindRelated(topic, relevant)
		if len(related) < minTopicMessages {
			continue
		}
		summaries = append(summaries, topics.TopicSummary{
			Topic:        topic,
			Summary:      c.deps.Analyzer.SummarizeTopic(callCtx, topic, related),
			MessageCount: len(related),
		})
	}
	if len(summaries) == 0 {
		return cc.Send("Could not generate meaningful summaries for the identified topics.")
	}

	bundle := topics.Bundle{
		Topics: summaries,
		Stats:  messages.Stats(relevant),
		Metadata: topics.Metadata{
			RunID:                 uuid.NewString(),
			TotalMessagesAnalyzed: len(relevant),
			TotalMessagesFetched:  len(fetched),
			TimeFilter:            filterArg,
			GeneratedAt:           time.Now().UTC(),
		},
	}

	c.deps.Cache.PutBundle(ctx, channelID, fingerprint, &bundle)
	c.deps.Cache.CleanupOldSummaries(ctx, channelID, c.deps.Config.BundleKeepCount)

	return respond(cc, formatBundle(&bundle, false))
}

// fetchForAnalysis pulls recent history and keeps only messages inside the
// time window that carry analyzable content.
func (c *SummaryCommand) fetchForAnalysis(ctx context.Context, cc Context, count int, window time.Duration) ([]messages.Message, error) {
	history, err := cc.History(ctx, count)
	if err != nil {
		return nil, err
	}

	var cutoff time.Time
	if window > 0 {
		cutoff = time.Now().Add(-window)
	}

	var kept []messages.Message
	for _, m := range history {
		if !cutoff.IsZero() && m.CreatedAt.Before(cutoff) {
			continue
		}
		if !messages.RelevantForAnalysis(m, urls.ContainsURL) {
			continue
		}
		kept = append(kept, m)
	}
	return kept, nil
}

// parseSummaryArgs reads an optional message count and time filter in
// either order. A non-numeric argument that does not parse as a time filter
// later becomes a validation error, never a silent fallback.
func parseSummaryArgs(args []string) (count int, filter string, err error) {
	count = defaultAnalysisCount
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		if n, convErr := strconv.Atoi(arg); convErr == nil {
			count = n
			continue
		}
		if filter != "" {
			return 0, "", errBadTimeFilter
		}
		filter = arg
	}
	return count, filter, nil
}

// ParseTimeFilter parses a relative window like "2h" or "30m".
func ParseTimeFilter(s string) (time.Duration, error) {
	match := timeFilterPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if match == nil {
		return 0, errBadTimeFilter
	}
	value, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, errBadTimeFilter
	}
	switch match[2] {
	case "h":
		return time.Duration(value) * time.Hour, nil
	default:
		return time.Duration(value) * time.Minute, nil
	}
}
