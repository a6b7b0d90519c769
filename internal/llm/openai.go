package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIConfig carries the settings for the chat completions client.
type OpenAIConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
	BaseURL   string // overridable for tests and compatible gateways
}

// OpenAIClient wraps the chat completions API with vision message support.
type OpenAIClient struct {
	cfg    OpenAIConfig
	client *http.Client
}

// NewOpenAIClient constructs a client from the given configuration, applying
// defaults for model, timeout and endpoint.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenAIBaseURL
	}
	return &OpenAIClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Complete sends the messages to OpenAI and returns the first choice content.
// Messages carrying an image data URL become multi-part vision content.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	wire := make([]map[string]any, 0, len(messages))
	for _, msg := range messages {
		if msg.ImageDataURL == "" {
			wire = append(wire, map[string]any{
				"role":    msg.Role,
				"content": msg.Content,
			})
			continue
		}
		wire = append(wire, map[string]any{
			"role": msg.Role,
			"content": []map[string]any{
				{"type": "text", "text": msg.Content},
				{"type": "image_url", "image_url": map[string]string{"url": msg.ImageDataURL}},
			},
		})
	}

	model := c.cfg.Model
	if override := modelFromContext(ctx); override != "" {
		model = override
	}

	payload := map[string]any{
		"model":       model,
		"temperature": temperature,
		"messages":    wire,
	}
	if c.cfg.MaxTokens > 0 {
		payload["max_tokens"] = c.cfg.MaxTokens
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal openai payload: %w", err)
	}

	endpoint := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &UpstreamError{Provider: "openai", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var failure struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return "", &UpstreamError{Provider: "openai", StatusCode: resp.StatusCode, Message: failure.Error.Message}
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", &UpstreamError{Provider: "openai", Message: "no choices returned"}
	}
	return completion.Choices[0].Message.Content, nil
}
