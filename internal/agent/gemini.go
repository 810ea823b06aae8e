package agent

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash"

// Generator produces response text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient generates text with Google's Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// NewGeminiClient creates a Gemini-backed Generator.
func NewGeminiClient(ctx context.Context, apiKey, model string, log *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required (set agent.api_key or GEMINI_API_KEY)")
	}
	if model == "" {
		model = DefaultModel
	}
	if log == nil {
		log = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiClient{client: client, model: model, log: log}, nil
}

// Generate sends prompt as a single user turn and returns the reply text.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	g.log.Debug("gemini request", zap.String("model", g.model), zap.Int("prompt_bytes", len(prompt)))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}

	g.log.Debug("gemini response", zap.Int("reply_bytes", len(text)))
	return text, nil
}
