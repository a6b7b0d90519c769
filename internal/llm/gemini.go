package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiConfig carries the settings for the Generative Language API client.
// Either an API key or an oauth2 token source must be supplied.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Timeout     time.Duration
	BaseURL     string
	TokenSource oauth2.TokenSource // service-account auth, used instead of the API key when set
}

// GeminiClient wraps the Google Generative Language API.
type GeminiClient struct {
	cfg    GeminiConfig
	client *http.Client
}

// NewGeminiClient constructs a Gemini client for the desired model.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	cfg.Model = normalizeModel(cfg.Model)
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}
	return &GeminiClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Complete sends conversational content to Gemini and returns the first
// candidate text. System messages fold into systemInstruction; an image data
// URL becomes an inline_data part.
func (c *GeminiClient) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	var systemPrompts []string
	var contents []map[string]any

	for _, msg := range messages {
		role := strings.ToLower(strings.TrimSpace(msg.Role))
		switch role {
		case "system":
			systemPrompts = append(systemPrompts, msg.Content)
			continue
		case "assistant":
			role = "model"
		default:
			role = "user"
		}

		parts := []map[string]any{{"text": msg.Content}}
		if msg.ImageDataURL != "" {
			mimeType, data, err := splitDataURL(msg.ImageDataURL)
			if err != nil {
				return "", err
			}
			parts = append(parts, map[string]any{
				"inline_data": map[string]string{
					"mime_type": mimeType,
					"data":      data,
				},
			})
		}
		contents = append(contents, map[string]any{
			"role":  role,
			"parts": parts,
		})
	}

	if len(contents) == 0 {
		return "", fmt.Errorf("gemini: missing user or assistant messages")
	}

	payload := map[string]any{
		"contents": contents,
		"generationConfig": map[string]any{
			"temperature": temperature,
		},
	}
	if len(systemPrompts) > 0 {
		payload["systemInstruction"] = map[string]any{
			"parts": []map[string]string{
				{"text": strings.Join(systemPrompts, "\n\n")},
			},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal gemini payload: %w", err)
	}

	model := c.cfg.Model
	if override := modelFromContext(ctx); override != "" {
		model = override
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimSuffix(c.cfg.BaseURL, "/"), url.PathEscape(model))
	if c.cfg.TokenSource == nil {
		if strings.TrimSpace(c.cfg.APIKey) == "" {
			return "", fmt.Errorf("gemini: missing API key or service account credentials")
		}
		endpoint = fmt.Sprintf("%s?key=%s", endpoint, url.QueryEscape(c.cfg.APIKey))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.cfg.TokenSource != nil {
		token, err := c.cfg.TokenSource.Token()
		if err != nil {
			return "", &UpstreamError{Provider: "gemini", Message: "fetch oauth token: " + err.Error()}
		}
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &UpstreamError{Provider: "gemini", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var failure struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return "", &UpstreamError{Provider: "gemini", StatusCode: resp.StatusCode, Message: failure.Error.Message}
	}

	var completion struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}

	if len(completion.Candidates) == 0 || len(completion.Candidates[0].Content.Parts) == 0 {
		return "", &UpstreamError{Provider: "gemini", Message: "no candidates returned"}
	}

	var parts []string
	for _, part := range completion.Candidates[0].Content.Parts {
		if trimmed := strings.TrimSpace(part.Text); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return "", &UpstreamError{Provider: "gemini", Message: "candidate missing text"}
	}
	return strings.Join(parts, "\n\n"), nil
}
