package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-insights/internal/llm"
	"resume-insights/internal/shared/telemetry"
)

const defaultBaseURL = "https://api.openai.com/v1"

// maxResponseBytes bounds how much of a completion body is read.
const maxResponseBytes = 4 << 20

// Client talks to the Chat Completions endpoint in JSON mode.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithBaseURL points the client at a compatible endpoint, e.g. a proxy.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithTimeout caps each HTTP round trip. Callers still pass per-call
// deadlines through ctx.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func NewClient(apiKey, model string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("LLM_MODEL is required for OpenAI")
	}
	c := &Client{
		apiKey:  apiKey,
		model:   strings.TrimSpace(model),
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Type    string
	Message string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("openai http status %d: %s (%s)", e.Status, e.Message, e.Type)
	}
	return fmt.Sprintf("openai http status %d: %s", e.Status, e.Message)
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model          string            `json:"model"`
	Messages       []message         `json:"messages"`
	Temperature    *float32          `json:"temperature,omitempty"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	ResponseFormat map[string]string `json:"response_format"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CompleteJSON returns the trimmed content of the first choice.
func (c *Client) CompleteJSON(ctx context.Context, in llm.Request) (string, error) {
	payload, err := json.Marshal(c.newRequest(in))
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("openai read body: %w", err)
	}
	parsed, err := decodeResponse(resp.StatusCode, body)
	if err != nil {
		return "", err
	}
	if u := parsed.Usage; u != nil {
		telemetry.Info("llm.usage", map[string]any{
			"provider":          "openai",
			"model":             c.model,
			"request_id":        telemetry.RequestIDFrom(ctx),
			"prompt_tokens":     u.PromptTokens,
			"completion_tokens": u.CompletionTokens,
			"total_tokens":      u.TotalTokens,
		})
	}
	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: openai response empty content", llm.ErrInvalidOutput)
	}
	return content, nil
}

func (c *Client) newRequest(in llm.Request) completionRequest {
	req := completionRequest{
		Model:          c.model,
		MaxTokens:      in.MaxTokens,
		ResponseFormat: map[string]string{"type": "json_object"},
	}
	if system := strings.TrimSpace(in.System); system != "" {
		req.Messages = append(req.Messages, message{Role: "system", Content: in.System})
	}
	req.Messages = append(req.Messages, message{Role: "user", Content: in.Prompt})
	// gpt-5 models reject any temperature other than the default.
	if !isGPT5(c.model) {
		temp := in.Temperature
		req.Temperature = &temp
	}
	return req
}

func decodeResponse(status int, body []byte) (completionResponse, error) {
	var parsed completionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if status >= http.StatusBadRequest {
			return parsed, &APIError{Status: status, Message: strings.TrimSpace(string(body))}
		}
		return parsed, fmt.Errorf("openai response parse: %w", err)
	}
	if parsed.Error != nil {
		return parsed, &APIError{Status: status, Type: parsed.Error.Type, Message: parsed.Error.Message}
	}
	if status >= http.StatusBadRequest {
		return parsed, &APIError{Status: status, Message: strings.TrimSpace(string(body))}
	}
	if len(parsed.Choices) == 0 {
		return parsed, fmt.Errorf("%w: openai response missing choices", llm.ErrInvalidOutput)
	}
	return parsed, nil
}

func isGPT5(model string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(model)), "gpt-5")
}

var _ llm.Client = (*Client)(nil)
