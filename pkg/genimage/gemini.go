// Package genimage wraps the external image-generation provider behind a
// small interface so handlers never talk to the SDK directly.
package genimage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrUnexpectedResponse is returned when the provider answers with a shape we
// cannot turn into an image (e.g. text instead of image bytes).
var ErrUnexpectedResponse = errors.New("provider returned an unexpected response shape")

// ErrNoImage is returned when the provider produced no candidates at all.
var ErrNoImage = errors.New("no image generated")

// ImageGenerator produces images and descriptions from natural-language prompts.
type ImageGenerator interface {
	// GenerateImage returns the raw image bytes for the prompt.
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
	// Describe returns a textual description for the prompt.
	Describe(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	apiKey string
	model  string
}

// NewGemini builds a Gemini-backed ImageGenerator. The model name defaults to
// gemini-2.0-flash when empty.
func NewGemini(apiKey, model string) ImageGenerator {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &geminiGenerator{apiKey: apiKey, model: model}
}

func (g *geminiGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.SetTemperature(1)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrNoImage
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			return blob.Data, nil
		}
	}

	return nil, ErrUnexpectedResponse
}

func (g *geminiGenerator) Describe(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrUnexpectedResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	if sb.Len() == 0 {
		return "", ErrUnexpectedResponse
	}

	return sb.String(), nil
}
