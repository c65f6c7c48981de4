// Package summarizer turns extracted content into user-facing summaries.
package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"tldw/internal/llm"
	"tldw/internal/urls"
)

const transcriptPrompt = `Please provide a concise summary of the following transcript from a YouTube video.
Focus on the main points and key takeaways. Format the summary as bullet points, and omit
sponsorship messages and channel self-promotion.

TRANSCRIPT:
%s
`

const pagePrompt = `Please provide a concise summary of the following %s content.
Focus on the main points and key takeaways. Format the summary as bullet points, and omit
navigation text, ads and boilerplate.

CONTENT:
%s
`

// Summarizer generates summaries of extracted content.
type Summarizer struct {
	gen    llm.Generator
	logger zerolog.Logger
}

func New(gen llm.Generator, logger zerolog.Logger) *Summarizer {
	return &Summarizer{gen: gen, logger: logger}
}

// Summarize produces a summary of text extracted from a URL of the given
// kind. An empty return with nil error means the model produced nothing
// usable; callers surface that as "could not generate" without retrying.
func (s *Summarizer) Summarize(ctx context.Context, text string, kind urls.Kind) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	var prompt string
	if kind == urls.KindYouTube {
		prompt = fmt.Sprintf(transcriptPrompt, text)
	} else {
		prompt = fmt.Sprintf(pagePrompt, kind.Label(), text)
	}

	summary, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return summary, nil
}
