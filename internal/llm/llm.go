// Package llm provides one-shot text generation behind a provider-neutral
// interface, backed by langchaingo.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// Provider selects the generation backend.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderOllama    Provider = "ollama"
)

// Generator produces text for a prompt. Implementations must honor ctx
// cancellation; every call site passes a deadline.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

// NewGenerator builds a Generator for the given provider. An empty model
// keeps the provider's default.
func NewGenerator(provider Provider, model, baseURL string) (Generator, error) {
	switch provider {
	case ProviderGemini:
		return newGemini(model, baseURL)
	case ProviderOpenAI:
		return newOpenAI(model, baseURL)
	case ProviderAnthropic:
		return newAnthropic(model)
	case ProviderOllama:
		return newOllama(model, baseURL)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// generator adapts any langchaingo model to the Generator interface.
type generator struct {
	client llms.Model
	model  string
}

func (g *generator) Model() string { return g.model }

func (g *generator) Generate(ctx context.Context, prompt string) (string, error) {
	var opts []llms.CallOption
	if g.model != "" {
		opts = append(opts, llms.WithModel(g.model))
	}
	text, err := llms.GenerateFromSinglePrompt(ctx, g.client, prompt, opts...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
