package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(apiKey string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: "gemini-2.5-flash",
	}, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 2048,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		// Fall back to whatever the candidates carry
		if len(resp.Candidates) > 0 {
			var textParts []string
			for _, candidate := range resp.Candidates {
				if candidate.Content != nil {
					textParts = append(textParts, fmt.Sprintf("%v", candidate.Content))
				}
			}

			if len(textParts) > 0 {
				return strings.Join(textParts, "\n"), nil
			}
		}

		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
