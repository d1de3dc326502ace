package llmclient

import (
	"context"
	"errors"
	"strings"

	genai "google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiClient is a thin wrapper around the official genai client.
// It only focuses on the API call itself; logging and timeouts are
// applied via middleware.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

// NewGeminiClient builds a Gemini-backed TextGenerator. A missing API key
// is a configuration error, not something handled per call.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("llmclient: GEMINI_API_KEY is not set")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultGeminiModel
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }

// GenerateText issues a single GenerateContent call and returns the first
// candidate's text. The reply is treated as opaque; parsing happens
// downstream.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// ListModels returns the names of the models the credential can reach.
// Diagnostic use only.
func (g *GeminiClient) ListModels(ctx context.Context) ([]string, error) {
	var names []string
	for m, err := range g.cli.Models.All(ctx) {
		if err != nil {
			return nil, err
		}
		names = append(names, m.Name)
	}
	return names, nil
}
