package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tldw/internal/urls"
)

// urlFlow is the shared pipeline behind the tldw and tldr commands:
// resolve a URL (from the argument or recent history), validate and
// classify it, then serve from cache or extract, summarize and cache.
type urlFlow struct {
	deps *Deps

	// accepts reports whether this command handles the content kind;
	// redirect names the command to use otherwise.
	accepts  func(urls.Kind) bool
	redirect string
	hint     string // what kind of URL to ask the user for
}

func (f *urlFlow) run(ctx context.Context, cc Context, url string) error {
	if url == "" {
		found, err := f.findURLInHistory(ctx, cc)
		if err != nil {
			if errors.Is(err, ErrPermissionDenied) {
				return cc.Send("I cannot read message history in this channel, so I cannot search for a URL. Please provide one directly.")
			}
			return err
		}
		if found == "" {
			return cc.Send(fmt.Sprintf(
				"No URL found in the last %d messages. Please provide a %s URL.",
				f.deps.Config.MessageHistoryLimit, f.hint))
		}
		if err := cc.Send("Found URL: " + found); err != nil {
			return err
		}
		url = found
	}

	kind, err := urls.Classify(url)
	if err != nil {
		return cc.Send("Invalid URL: " + url)
	}
	if !f.accepts(kind) {
		return cc.Send(fmt.Sprintf("The URL %s is a %s. Use /%s instead.",
			url, kind.Label(), f.redirect))
	}

	if cached, ok := f.deps.Cache.GetSummary(ctx, url); ok {
		return respond(cc, fmt.Sprintf("Summary of %s:\n%s", kind.Label(), cached))
	}

	callCtx, cancel := context.WithTimeout(ctx, f.deps.Config.RequestTimeout)
	defer cancel()

	text, err := f.deps.Extractor.Extract(callCtx, url, kind)
	if err != nil {
		return fmt.Errorf("extract content: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return cc.Send(fmt.Sprintf("Could not extract content from the %s.", kind.Label()))
	}

	summary, err := f.deps.Summarizer.Summarize(callCtx, text, kind)
	if err != nil {
		return err
	}
	if summary == "" {
		return cc.Send(fmt.Sprintf("Could not generate a summary for the %s.", kind.Label()))
	}

	f.deps.Cache.PutSummary(ctx, url, summary)
	return respond(cc, fmt.Sprintf("Summary of %s:\n%s", kind.Label(), summary))
}

// findURLInHistory scans recent messages for the most recent URL, skipping
// bot messages.
func (f *urlFlow) findURLInHistory(ctx context.Context, cc Context) (string, error) {
	if err := cc.Send("No URL provided. Searching for a URL in previous messages..."); err != nil {
		return "", err
	}

	history, err := cc.History(ctx, f.deps.Config.MessageHistoryLimit)
	if err != nil {
		return "", err
	}

	for _, m := range history {
		if m.Author.Bot || strings.TrimSpace(m.Content) == "" {
			continue
		}
		if found := urls.ExtractFromText(m.Content); len(found) > 0 {
			return found[0], nil
		}
	}
	return "", nil
}
