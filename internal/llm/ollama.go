package llm

import (
	"github.com/tmc/langchaingo/llms/ollama"
)

func newOllama(model, baseURL string) (Generator, error) {
	var opts []ollama.Option
	if model != "" {
		opts = append(opts, ollama.WithModel(model))
	}
	if baseURL != "" {
		opts = append(opts, ollama.WithServerURL(baseURL))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, err
	}
	return &generator{client: client, model: model}, nil
}
