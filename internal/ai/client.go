package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/anaskhan28/calorie-guy/internal/models"
)

// systemPrompt pins the persona and, critically, the reply format the
// nutrient extractor parses.
const systemPrompt = "You are CalorieGuy, an AI assistant specializing in Indian cuisine. " +
	"Provide brief, sarcastic responses with accurate nutritional information for Indian foods. " +
	"Always include calories, protein, fat, carbs, and fiber in your response. " +
	"Use this format: 'Calories: X, Protein: Xg, Fat: Xg, Carbs: Xg, Fiber: Xg'. " +
	"Also provide a brief description of the food."

// Client wraps the Gemini API behind the dispatcher's gateway interface.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Generate sends one prompt, with an optional inline image, and returns the
// model's text reply.
func (c *Client) Generate(ctx context.Context, name, message string, image *models.Media) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(fmt.Sprintf("%s asked: %s", name, message)),
	}
	if image != nil {
		parts = append(parts, genai.NewPartFromBytes(image.Data, image.MimeType))
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
		TopK:              genai.Ptr[float32](1),
		TopP:              genai.Ptr[float32](1),
		MaxOutputTokens:   2048,
	}

	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("generateContent: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text, nil
		}
	}
	return "", fmt.Errorf("no text in model response")
}
