package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"resume-insights/internal/llm"
	"resume-insights/internal/shared/telemetry"
)

const defaultModel = "gemini-2.5-flash"

type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements llm.Client on the Gemini API.
type Client struct {
	models    models
	modelName string
}

// NewClient creates a Gemini client for the Gemini API backend.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Client{models: client.Models, modelName: model}, nil
}

// CompleteJSON asks Gemini for a single application/json response.
func (c *Client) CompleteJSON(ctx context.Context, in llm.Request) (string, error) {
	if c == nil || c.models == nil {
		return "", errors.New("gemini client is not initialized")
	}
	temp := in.Temperature
	cfg := &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
	if in.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(in.MaxTokens)
	}
	if strings.TrimSpace(in.System) != "" {
		cfg.SystemInstruction = genai.NewContentFromText(in.System, genai.RoleUser)
	}

	resp, err := c.models.GenerateContent(ctx, c.modelName, []*genai.Content{
		genai.NewContentFromText(in.Prompt, genai.RoleUser),
	}, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil {
		return "", errors.New("gemini returned no response")
	}
	if resp.UsageMetadata != nil {
		telemetry.Info("llm.usage", map[string]any{
			"provider":      "gemini",
			"model":         c.modelName,
			"prompt_tokens": resp.UsageMetadata.PromptTokenCount,
			"total_tokens":  resp.UsageMetadata.TotalTokenCount,
		})
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini response empty content")
	}
	return text, nil
}

var _ llm.Client = (*Client)(nil)
