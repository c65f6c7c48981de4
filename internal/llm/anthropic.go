package llm

import (
	"os"

	"github.com/tmc/langchaingo/llms/anthropic"
)

func newAnthropic(model string) (Generator, error) {
	opts := []anthropic.Option{}
	if model != "" {
		opts = append(opts, anthropic.WithModel(model))
	}
	if token := os.Getenv("ANTHROPIC_API_KEY"); token != "" {
		opts = append(opts, anthropic.WithToken(token))
	}

	client, err := anthropic.New(opts...)
	if err != nil {
		return nil, err
	}
	return &generator{client: client, model: model}, nil
}
