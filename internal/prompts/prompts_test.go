package prompts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"productPhotoAi/internal/prompts"
	"productPhotoAi/internal/storage"
)

func TestDetectProductSchemaKeys(t *testing.T) {
	system, user := prompts.DetectProduct()

	require.Contains(t, system, "Return ONLY valid JSON")
	for _, key := range []string{`"product"`, `"category"`, `"attributes"`, `"confidence"`} {
		require.Contains(t, user, key)
	}
	require.Contains(t, user, "at most 6 attributes")
}

func TestSuggestIdeasIncludesProductAndGuidance(t *testing.T) {
	product := storage.Product{
		Name:       "espresso machine",
		Category:   "tech / kitchen",
		Attributes: []string{"stainless steel", "compact", "matte black", "analog dial", "portafilter", "steam wand", "extra"},
	}

	_, user := prompts.SuggestIdeas(product, "", "")

	require.Contains(t, user, "Product: espresso machine")
	require.Contains(t, user, "Category: tech / kitchen")
	// attributes capped at six
	require.Contains(t, user, "steam wand")
	require.NotContains(t, user, "extra")
	// category guidance resolved by substring match
	require.Contains(t, user, "design details, features, scale, interfaces")
}

func TestSuggestIdeasInjectsStyleTemplate(t *testing.T) {
	product := storage.Product{Name: "candle", Category: "home decor"}

	_, plain := prompts.SuggestIdeas(product, "", "")
	require.NotContains(t, plain, "Dark & Moody")

	_, styled := prompts.SuggestIdeas(product, "dark_moody", "")
	require.Contains(t, styled, "Dark & Moody")
	require.Contains(t, styled, "low-key lighting")
}

func TestSuggestIdeasInjectsPlatform(t *testing.T) {
	product := storage.Product{Name: "candle", Category: "home decor"}

	_, plain := prompts.SuggestIdeas(product, "", "")
	require.NotContains(t, plain, "Aspect ratio")

	_, targeted := prompts.SuggestIdeas(product, "", "pinterest")
	require.Contains(t, targeted, "The shots target Pinterest")
	require.Contains(t, targeted, "2:3 (vertical)")
}

func TestBuildShotPlanEmbedsIdeaJSON(t *testing.T) {
	idea := storage.Idea{
		ID:           "I3",
		Title:        "Morning ritual",
		Summary:      "Golden hour kitchen scene",
		WhyItWorks:   "Relatable daily moment",
		ShotKeywords: []string{"warm", "steam"},
	}

	system, user, err := prompts.BuildShotPlan("espresso machine", idea, 4)
	require.NoError(t, err)
	require.Contains(t, system, "art director")
	require.Contains(t, user, `"id":"I3"`)
	require.Contains(t, user, `"why_it_works":"Relatable daily moment"`)
	require.Contains(t, user, "Requested count: 4")
	for _, key := range []string{`"camera"`, `"angle"`, `"lens"`, `"aperture"`, `"gen_prompt"`} {
		require.Contains(t, user, key)
	}
}
