package llm

import (
	"context"
	"fmt"
	"strings"
)

// Message is a single chat turn. A user message may carry an image data URL
// for vision-capable models.
type Message struct {
	Role         string
	Content      string
	ImageDataURL string
}

// Client defines the behaviour required by the agent package: one model
// invocation in, the raw text reply out.
type Client interface {
	Complete(ctx context.Context, messages []Message, temperature float64) (string, error)
}

// UpstreamError reports a failed model invocation: network trouble, auth
// rejection, rate limiting or any non-2xx response.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// splitDataURL takes apart a data:<mime>;base64,<payload> URL. The model
// clients re-pack the parts into their provider-specific image formats.
func splitDataURL(dataURL string) (mimeType, b64 string, err error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", "", fmt.Errorf("llm: image is not a data URL")
	}
	mimeType, b64, ok = strings.Cut(rest, ";base64,")
	if !ok {
		return "", "", fmt.Errorf("llm: image data URL is not base64 encoded")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return mimeType, b64, nil
}
