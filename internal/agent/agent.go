package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"productPhotoAi/internal/extract"
	"productPhotoAi/internal/llm"
	"productPhotoAi/internal/prompts"
	"productPhotoAi/internal/storage"
)

// Agent drives the product photo shoot planning workflow: detect the product
// from an image, suggest shoot concepts, then expand a chosen concept into
// detailed shot plans. Each step is one model invocation whose reply goes
// through tolerant JSON extraction and schema validation.
type Agent struct {
	client      llm.Client
	temperature float64
}

// New constructs an agent on top of the given model client.
func New(client llm.Client, temperature float64) *Agent {
	if temperature <= 0 {
		temperature = 0.4
	}
	return &Agent{client: client, temperature: temperature}
}

// DetectProduct identifies the main product in the image referenced by the
// data URL.
func (a *Agent) DetectProduct(ctx context.Context, imageDataURL string) (storage.Product, error) {
	if strings.TrimSpace(imageDataURL) == "" {
		return storage.Product{}, fmt.Errorf("agent: image data URL is required")
	}

	system, user := prompts.DetectProduct()
	reply, err := a.client.Complete(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user, ImageDataURL: imageDataURL},
	}, a.temperature)
	if err != nil {
		return storage.Product{}, err
	}

	var product storage.Product
	if err := decodeReply(reply, &product); err != nil {
		return storage.Product{}, err
	}
	if err := validateProduct(&product); err != nil {
		return storage.Product{}, err
	}
	return product, nil
}

// SuggestIdeas generates five distinct shoot concepts for the product. When
// styleKey names a style template its guidance shapes every concept;
// platformKey adds publishing constraints for the target channel.
func (a *Agent) SuggestIdeas(ctx context.Context, product storage.Product, styleKey, platformKey string) ([]storage.Idea, error) {
	system, user := prompts.SuggestIdeas(product, styleKey, platformKey)
	reply, err := a.client.Complete(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}, a.temperature)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Ideas []storage.Idea `json:"ideas"`
	}
	if err := decodeReply(reply, &payload); err != nil {
		return nil, err
	}
	if err := validateIdeas(payload.Ideas); err != nil {
		return nil, err
	}
	return payload.Ideas, nil
}

// BuildShotPlan expands the selected idea into count detailed shot plans.
func (a *Agent) BuildShotPlan(ctx context.Context, product string, idea storage.Idea, count int) ([]storage.Shot, error) {
	if count < 1 || count > 12 {
		return nil, &SchemaError{Field: "count", Reason: "must be between 1 and 12"}
	}

	system, user, err := prompts.BuildShotPlan(product, idea, count)
	if err != nil {
		return nil, fmt.Errorf("agent: %w", err)
	}

	reply, err := a.client.Complete(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}, a.temperature)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Shots []storage.Shot `json:"shots"`
	}
	if err := decodeReply(reply, &payload); err != nil {
		return nil, err
	}
	if err := validateShots(payload.Shots); err != nil {
		return nil, err
	}
	return payload.Shots, nil
}

// decodeReply runs tolerant extraction on the raw reply, then re-marshals the
// generic mapping into the typed destination. Parsing into a generic value
// first keeps malformed shapes from surfacing as ad hoc field panics.
func decodeReply(reply string, dst any) error {
	obj, err := extract.Object(reply)
	if err != nil {
		return err
	}

	buf, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("agent: re-encode extracted object: %w", err)
	}
	if err := json.Unmarshal(buf, dst); err != nil {
		return &SchemaError{Field: "response", Reason: err.Error()}
	}
	return nil
}
