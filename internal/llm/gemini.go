package llm

import (
	"context"
	"os"

	"github.com/tmc/langchaingo/llms/googleai"
)

func newGemini(model, baseURL string) (Generator, error) {
	effectiveModel := model
	if effectiveModel == "" {
		effectiveModel = googleai.DefaultOptions().DefaultModel
	}

	opts := []googleai.Option{
		googleai.WithDefaultModel(effectiveModel),
	}
	if baseURL != "" {
		opts = append(opts, googleai.WithRest())
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		opts = append(opts, googleai.WithAPIKey(key))
	}

	client, err := googleai.New(context.Background(), opts...)
	if err != nil {
		return nil, err
	}
	return &generator{client: client, model: effectiveModel}, nil
}
