package llm

import (
	"os"

	"github.com/tmc/langchaingo/llms/openai"
)

func newOpenAI(model, baseURL string) (Generator, error) {
	opts := []openai.Option{}
	if model != "" {
		opts = append(opts, openai.WithModel(model))
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	if token := os.Getenv("OPENAI_API_KEY"); token != "" {
		opts = append(opts, openai.WithToken(token))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}
	return &generator{client: client, model: model}, nil
}
