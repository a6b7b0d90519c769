package agent_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"productPhotoAi/internal/agent"
	"productPhotoAi/internal/extract"
	"productPhotoAi/internal/llm"
	"productPhotoAi/internal/storage"
)

type fakeClient struct {
	reply    string
	err      error
	messages []llm.Message
}

func (f *fakeClient) Complete(_ context.Context, messages []llm.Message, _ float64) (string, error) {
	f.messages = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestDetectProduct(t *testing.T) {
	client := &fakeClient{reply: "Here is my analysis:\n```json\n" +
		`{"product": "ceramic mug", "category": "kitchenware", "attributes": ["matte", "white"], "confidence": 92}` +
		"\n```"}
	a := agent.New(client, 0.4)

	product, err := a.DetectProduct(context.Background(), "data:image/jpeg;base64,Zm9v")
	require.NoError(t, err)
	require.Equal(t, "ceramic mug", product.Name)
	require.Equal(t, "kitchenware", product.Category)
	require.Equal(t, []string{"matte", "white"}, product.Attributes)
	require.Equal(t, 92, product.Confidence)

	require.Len(t, client.messages, 2)
	require.Equal(t, "system", client.messages[0].Role)
	require.Equal(t, "data:image/jpeg;base64,Zm9v", client.messages[1].ImageDataURL)
}

func TestDetectProductRequiresImage(t *testing.T) {
	a := agent.New(&fakeClient{}, 0)

	_, err := a.DetectProduct(context.Background(), "   ")
	require.Error(t, err)
}

func TestDetectProductMissingName(t *testing.T) {
	client := &fakeClient{reply: `{"category": "kitchenware", "confidence": 50}`}
	a := agent.New(client, 0)

	_, err := a.DetectProduct(context.Background(), "data:image/jpeg;base64,Zm9v")
	var schemaErr *agent.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "product", schemaErr.Field)
}

func TestDetectProductCapsAttributes(t *testing.T) {
	client := &fakeClient{reply: `{"product": "lamp", "category": "home decor",
		"attributes": ["a", "b", "c", "d", "e", "f", "g", "h"], "confidence": 70}`}
	a := agent.New(client, 0)

	product, err := a.DetectProduct(context.Background(), "data:image/jpeg;base64,Zm9v")
	require.NoError(t, err)
	require.Len(t, product.Attributes, 6)
}

func TestDetectProductUnparseableReply(t *testing.T) {
	client := &fakeClient{reply: "I cannot identify a product in this image."}
	a := agent.New(client, 0)

	_, err := a.DetectProduct(context.Background(), "data:image/jpeg;base64,Zm9v")
	var extractErr *extract.Error
	require.ErrorAs(t, err, &extractErr)
	require.Contains(t, extractErr.Raw, "cannot identify")
}

func TestDetectProductUpstreamError(t *testing.T) {
	client := &fakeClient{err: &llm.UpstreamError{Provider: "openai", StatusCode: 429, Message: "rate limited"}}
	a := agent.New(client, 0)

	_, err := a.DetectProduct(context.Background(), "data:image/jpeg;base64,Zm9v")
	var upstream *llm.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, 429, upstream.StatusCode)
}

func TestSuggestIdeas(t *testing.T) {
	client := &fakeClient{reply: `{"ideas": [
		{"id": "I1", "title": "Morning light", "summary": "s", "why_it_works": "w", "shot_keywords": ["soft"]},
		{"id": "I2", "title": "Studio gradient", "summary": "s", "why_it_works": "w", "shot_keywords": ["bold"]}
	]}`}
	a := agent.New(client, 0)

	ideas, err := a.SuggestIdeas(context.Background(), storage.Product{Name: "mug", Category: "kitchenware"}, "minimal", "instagram")
	require.NoError(t, err)
	require.Len(t, ideas, 2)
	require.Equal(t, "I1", ideas[0].ID)
	require.Equal(t, "Studio gradient", ideas[1].Title)
}

func TestSuggestIdeasFillsMissingIDs(t *testing.T) {
	client := &fakeClient{reply: `{"ideas": [{"title": "Morning light", "summary": "s"}]}`}
	a := agent.New(client, 0)

	ideas, err := a.SuggestIdeas(context.Background(), storage.Product{Name: "mug", Category: "kitchenware"}, "", "")
	require.NoError(t, err)
	require.Equal(t, "I1", ideas[0].ID)
}

func TestSuggestIdeasEmpty(t *testing.T) {
	client := &fakeClient{reply: `{"ideas": []}`}
	a := agent.New(client, 0)

	_, err := a.SuggestIdeas(context.Background(), storage.Product{Name: "mug", Category: "kitchenware"}, "", "")
	var schemaErr *agent.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "ideas", schemaErr.Field)
}

func TestBuildShotPlan(t *testing.T) {
	client := &fakeClient{reply: "```json\n" + `{"shots": [
		{"index": 1, "title": "Hero shot",
		 "camera": {"angle": "45 degrees", "lens": "85mm", "aperture": "f/2.8"},
		 "lighting": "softbox left", "background": "seamless white",
		 "props": "linen cloth", "composition": "rule of thirds",
		 "instructions": "place product off-center",
		 "gen_prompt": "a ceramic mug on seamless white"},
		{"title": "Detail close-up",
		 "camera": {"angle": "top-down", "lens": "100mm macro", "aperture": "f/5.6"},
		 "lighting": "ring light", "background": "oak board",
		 "props": "none", "composition": "centered",
		 "instructions": "fill frame with texture"}
	]}` + "\n```"}
	a := agent.New(client, 0)

	idea := storage.Idea{ID: "I1", Title: "Morning light"}
	shots, err := a.BuildShotPlan(context.Background(), "ceramic mug", idea, 2)
	require.NoError(t, err)
	require.Len(t, shots, 2)
	require.Equal(t, 1, shots[0].Index)
	require.Equal(t, 2, shots[1].Index, "missing index should be filled from position")
	require.Equal(t, "85mm", shots[0].Camera.Lens)
	require.Equal(t, "a ceramic mug on seamless white", shots[0].GenPrompt)
}

func TestBuildShotPlanCountBounds(t *testing.T) {
	a := agent.New(&fakeClient{}, 0)
	idea := storage.Idea{ID: "I1", Title: "Morning light"}

	_, err := a.BuildShotPlan(context.Background(), "mug", idea, 0)
	var schemaErr *agent.SchemaError
	require.ErrorAs(t, err, &schemaErr)

	_, err = a.BuildShotPlan(context.Background(), "mug", idea, 13)
	require.ErrorAs(t, err, &schemaErr)
}

func TestBuildShotPlanMissingTitle(t *testing.T) {
	client := &fakeClient{reply: `{"shots": [{"index": 1, "lighting": "softbox"}]}`}
	a := agent.New(client, 0)

	_, err := a.BuildShotPlan(context.Background(), "mug", storage.Idea{ID: "I1", Title: "t"}, 1)
	var schemaErr *agent.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "shots[0].title", schemaErr.Field)
}

func TestBuildShotPlanTruncatedReply(t *testing.T) {
	client := &fakeClient{reply: `{"shots": [{"index": 1,`}
	a := agent.New(client, 0)

	_, err := a.BuildShotPlan(context.Background(), "mug", storage.Idea{ID: "I1", Title: "t"}, 1)
	var extractErr *extract.Error
	require.True(t, errors.As(err, &extractErr))
}
