package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"productPhotoAi/internal/storage"
	"productPhotoAi/internal/styles"
)

const detectSystemPrompt = "You are a precise product identifier for e-commerce photo shoots. " +
	"Identify the main product only; ignore people or background clutter. " +
	"Return ONLY valid JSON, no additional text."

const detectUserPrompt = `Detect the main product in the photo and return JSON only.
Schema:
{
  "product": "short product name",
  "category": "category (e.g. shoes, headphones, bag)",
  "attributes": ["attribute1", "attribute2", ...],
  "confidence": 85
}
Give at most 6 attributes and focus them on the product's visual and physical traits.`

const ideasSystemPrompt = "You are a creative product photography director. " +
	"Generate commercially viable, distinct shoot concepts. " +
	"Return ONLY valid JSON, no additional text."

const planSystemPrompt = "You are a senior photo art director with expertise in commercial product photography. " +
	"Create detailed, actionable shot plans that are distinct and professionally viable. " +
	"Return ONLY valid JSON, no additional text."

// DetectProduct returns the system and user prompts for the vision step.
func DetectProduct() (string, string) {
	return detectSystemPrompt, detectUserPrompt
}

// SuggestIdeas returns the prompts for the idea generation step. Guidance
// blocks for the detected product's category, the requested style template and
// the target publishing platform are appended when available.
func SuggestIdeas(product storage.Product, styleKey, platformKey string) (string, string) {
	var b strings.Builder
	b.WriteString(`Suggest 5 different shoot ideas for the product. Each idea must be unique and commercially valuable.
Return JSON only. Schema:
{
  "ideas": [
    {
      "id": "I1",
      "title": "short title",
      "summary": "brief description of the concept",
      "why_it_works": "commercial justification",
      "shot_keywords": ["keyword1", "keyword2", "keyword3"]
    }
  ]
}

`)
	fmt.Fprintf(&b, "Product: %s\n", product.Name)
	fmt.Fprintf(&b, "Category: %s\n", product.Category)

	attrs := product.Attributes
	if len(attrs) > 6 {
		attrs = attrs[:6]
	}
	fmt.Fprintf(&b, "Attributes: %s\n", strings.Join(attrs, ", "))

	if guide := styles.ForCategory(product.Category); guide.Focus != "" {
		fmt.Fprintf(&b, "\nCategory guidance:\n- Focus on: %s\n", guide.Focus)
		if len(guide.MustShow) > 0 {
			fmt.Fprintf(&b, "- Must show: %s\n", strings.Join(guide.MustShow, "; "))
		}
		if guide.Avoid != "" {
			fmt.Fprintf(&b, "- Avoid: %s\n", guide.Avoid)
		}
	}

	if strings.TrimSpace(styleKey) != "" {
		style := styles.Get(styleKey)
		fmt.Fprintf(&b, "\nAll ideas must follow the \"%s\" style:\n", style.Name)
		fmt.Fprintf(&b, "- Tone: %s\n", style.Tone)
		fmt.Fprintf(&b, "- Lighting: %s\n", style.Lighting)
		fmt.Fprintf(&b, "- Background: %s\n", style.Background)
		fmt.Fprintf(&b, "- Props: %s\n", style.Props)
		fmt.Fprintf(&b, "- Composition: %s\n", style.Composition)
		fmt.Fprintf(&b, "- Keywords: %s\n", strings.Join(style.Keywords, ", "))
	}

	if strings.TrimSpace(platformKey) != "" {
		platform := styles.GetPlatform(platformKey)
		fmt.Fprintf(&b, "\nThe shots target %s:\n", platform.Name)
		fmt.Fprintf(&b, "- Aspect ratio: %s\n", platform.AspectRatio)
		fmt.Fprintf(&b, "- Style focus: %s\n", platform.StyleFocus)
		fmt.Fprintf(&b, "- Tips: %s\n", platform.Tips)
	}

	return ideasSystemPrompt, b.String()
}

// BuildShotPlan returns the prompts for the shot planning step.
func BuildShotPlan(product string, idea storage.Idea, count int) (string, string, error) {
	ideaJSON, err := json.Marshal(idea)
	if err != nil {
		return "", "", fmt.Errorf("marshal selected idea: %w", err)
	}

	user := fmt.Sprintf(`Produce detailed shot plans for the selected idea. Each plan must be distinct and professional.
Return JSON only. Schema:
{
  "shots": [
    {
      "index": 1,
      "title": "short title",
      "camera": {
        "angle": "angle (e.g. 45 degrees, top-down, eye-level)",
        "lens": "lens (e.g. 50mm, 85mm)",
        "aperture": "aperture (e.g. f/2.8, f/8)"
      },
      "lighting": "detailed description of the lighting setup",
      "background": "background/environment detail",
      "props": "props and accessories, or none",
      "composition": "composition rules",
      "instructions": "step by step shooting instructions",
      "gen_prompt": "optional: image generation prompt"
    }
  ]
}

Product: %s
Selected idea: %s
Requested count: %d

Every shot plan must contain a unique variation (different angle, lighting or composition).`,
		product, ideaJSON, count)

	return planSystemPrompt, user, nil
}
