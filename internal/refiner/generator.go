package refiner

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var (
	// ErrNotConfigured is returned by the no-op generator. It routes callers
	// to the degraded path and is never surfaced outside this package.
	ErrNotConfigured = errors.New("generative provider not configured")
	// ErrEmptyResponse is returned when the provider replies without any text.
	ErrEmptyResponse = errors.New("empty response from provider")
)

// Generator abstracts the generative-text provider behind a single call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Generator backed by the Gemini API. The client is
// constructed once here and reused for every request.
func NewGemini(ctx context.Context, apiKey, model string) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &geminiGenerator{client: client, model: model}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func (g *geminiGenerator) Configured() bool {
	return true
}

type noopGenerator struct{}

// NewNoop creates the generator variant used when no API key is present.
// Every call reports ErrNotConfigured.
func NewNoop() Generator {
	return noopGenerator{}
}

func (noopGenerator) Generate(_ context.Context, _ string) (string, error) {
	return "", ErrNotConfigured
}

func (noopGenerator) Configured() bool {
	return false
}
