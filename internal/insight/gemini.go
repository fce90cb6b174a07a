package insight

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"coverage-report/internal/domain"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTimeout bounds the narrative call; past it the report ships
// metrics-only.
const DefaultTimeout = 60 * time.Second

// GeminiNarrator implements Narrator against the Gemini API.
type GeminiNarrator struct {
	apiKey  string
	model   string
	timeout time.Duration
}

// NewGeminiNarrator creates a narrator. Empty model or non-positive
// timeout fall back to the defaults.
func NewGeminiNarrator(apiKey, model string, timeout time.Duration) *GeminiNarrator {
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &GeminiNarrator{apiKey: apiKey, model: model, timeout: timeout}
}

// Compile-time interface check.
var _ Narrator = (*GeminiNarrator)(nil)

// Narrate sends the report summary to Gemini and returns the trend text.
func (g *GeminiNarrator) Narrate(ctx context.Context, r *domain.CoverageReport) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	llmCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0)),
	}

	resp, err := client.Models.GenerateContent(
		llmCtx,
		g.model,
		[]*genai.Content{
			genai.NewContentFromText(BuildPrompt(r), genai.RoleUser),
		},
		config,
	)
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response from gemini")
	}

	text := stripFences(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}
