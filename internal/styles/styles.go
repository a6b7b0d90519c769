package styles

import "strings"

// Style describes the visual direction for a shoot concept.
type Style struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Tone        string   `json:"tone"`
	Lighting    string   `json:"lighting"`
	Background  string   `json:"background"`
	Props       string   `json:"props"`
	Composition string   `json:"composition"`
	Keywords    []string `json:"keywords"`
	Description string   `json:"description"`
}

// Platform describes output constraints for a publishing channel.
type Platform struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	AspectRatio string `json:"aspect_ratio"`
	StyleFocus  string `json:"style_focus"`
	Tips        string `json:"tips"`
}

// CategoryGuideline captures what a product category's shots must emphasise.
type CategoryGuideline struct {
	Focus          string   `json:"focus"`
	CommonSettings []string `json:"common_settings"`
	MustShow       []string `json:"must_show"`
	Avoid          string   `json:"avoid"`
}

var styleOrder = []string{
	"minimal", "luxury", "lifestyle", "vintage", "bold", "industrial",
	"decorative", "white_background", "flatlay", "editorial", "studio_clean",
	"dark_moody", "colorful_pop", "natural_light", "outdoor", "macro_detail",
	"contextual", "monochrome", "seasonal", "geometric", "texture_focus",
	"transparent",
}

var styleTemplates = map[string]Style{
	"minimal": {
		Key:         "minimal",
		Name:        "Minimal & Modern",
		Tone:        "clean, simple, focused on product details",
		Lighting:    "soft diffused light, no harsh shadows, even illumination",
		Background:  "solid colors (white, gray, pastel) or simple textures",
		Props:       "minimal or none, only if essential",
		Composition: "centered, negative space, rule of thirds",
		Keywords:    []string{"minimalist", "clean", "simple", "focused", "modern", "sleek"},
		Description: "On a plain surface with a minimal backdrop, putting the product's details front and center",
	},
	"luxury": {
		Key:         "luxury",
		Name:        "Luxury & Premium",
		Tone:        "elegant, sophisticated, high-end, premium quality",
		Lighting:    "dramatic lighting, high contrast, golden hour, rim lighting",
		Background:  "marble, velvet, silk, premium materials, dark moody backgrounds",
		Props:       "gold/silver accents, premium accessories, elegant items",
		Composition: "dramatic angles, depth, layered composition",
		Keywords:    []string{"luxurious", "elegant", "premium", "high-end", "sophisticated", "exclusive"},
		Description: "On marble or velvet with gold accents and dramatic lighting",
	},
	"lifestyle": {
		Key:         "lifestyle",
		Name:        "Lifestyle & Natural",
		Tone:        "natural, relatable, authentic, everyday use",
		Lighting:    "natural light, warm tones, golden hour, soft shadows",
		Background:  "real-life settings (home, cafe, outdoor, office)",
		Props:       "everyday items, hands in action, people using product",
		Composition: "candid shots, natural poses, environmental context",
		Keywords:    []string{"lifestyle", "natural", "relatable", "authentic", "everyday", "real-life"},
		Description: "In a real-life setting, in natural light, captured mid-use or in an everyday scene",
	},
	"vintage": {
		Key:         "vintage",
		Name:        "Vintage & Retro",
		Tone:        "nostalgic, timeless, classic, retro aesthetics",
		Lighting:    "warm tones, slightly muted colors, film-like quality",
		Background:  "aged textures, old wood, vintage paper, rustic materials",
		Props:       "vintage items, retro accessories, old cameras, books",
		Composition: "centered, symmetrical, classic framing",
		Keywords:    []string{"vintage", "retro", "nostalgic", "classic", "timeless", "heritage"},
		Description: "On an old wooden table with vintage accessories in a retro atmosphere",
	},
	"bold": {
		Key:         "bold",
		Name:        "Bold & Vibrant",
		Tone:        "energetic, eye-catching, bold, vibrant",
		Lighting:    "bright, saturated colors, high key lighting",
		Background:  "bright solid colors, geometric patterns, contrasting backgrounds",
		Props:       "colorful items, bold accessories, contrasting elements",
		Composition: "dynamic angles, asymmetric, creative framing",
		Keywords:    []string{"bold", "vibrant", "colorful", "energetic", "dynamic", "eye-catching"},
		Description: "Against a brightly colored backdrop with bold, lively composition",
	},
	"industrial": {
		Key:         "industrial",
		Name:        "Industrial & Urban",
		Tone:        "raw, edgy, urban, modern industrial",
		Lighting:    "hard light, dramatic shadows, warehouse lighting",
		Background:  "concrete, metal, brick walls, industrial settings",
		Props:       "metal objects, tools, urban elements",
		Composition: "strong lines, geometric shapes, architectural elements",
		Keywords:    []string{"industrial", "urban", "raw", "edgy", "modern", "gritty"},
		Description: "In front of concrete or brick with hard light and an industrial mood",
	},
	"decorative": {
		Key:         "decorative",
		Name:        "Decorative & Artistic",
		Tone:        "artistic, aesthetic, visually pleasing, product as art piece",
		Lighting:    "soft natural light, artistic shadows, creative use of light and shadow",
		Background:  "aesthetic compositions, flowers, fabrics, artistic arrangements",
		Props:       "decorative elements (flowers, ribbons, fabrics, books, candles), aesthetic items",
		Composition: "flatlay, overhead shots, artistic arrangements, symmetrical or asymmetrical balance",
		Keywords:    []string{"decorative", "artistic", "aesthetic", "flatlay", "composed", "beautiful"},
		Description: "Arranged among flowers and aesthetic objects, presented like a piece of art",
	},
	"white_background": {
		Key:         "white_background",
		Name:        "White Background",
		Tone:        "professional, clean, e-commerce standard",
		Lighting:    "bright, even lighting, no shadows",
		Background:  "pure white background (#FFFFFF), seamless backdrop",
		Props:       "none, product only",
		Composition: "centered, product fills frame, multiple angles",
		Keywords:    []string{"white background", "clean", "professional", "ecommerce", "catalog"},
		Description: "On a pure white seamless backdrop, studio quality, nothing but the product",
	},
	"flatlay": {
		Key:         "flatlay",
		Name:        "Flat Lay",
		Tone:        "organized, aesthetic, overhead perspective",
		Lighting:    "even overhead lighting, soft shadows",
		Background:  "flat surface (wood, marble, fabric, paper)",
		Props:       "complementary items arranged aesthetically",
		Composition: "overhead 90-degree angle, symmetrical or asymmetrical arrangement",
		Keywords:    []string{"flatlay", "overhead", "arrangement", "organized", "top-down"},
		Description: "Laid out on a flat surface and shot straight from above",
	},
	"editorial": {
		Key:         "editorial",
		Name:        "Editorial",
		Tone:        "storytelling, aspirational, magazine-quality, brand essence",
		Lighting:    "creative lighting, dramatic or soft depending on story",
		Background:  "conceptual settings, themed environments",
		Props:       "storytelling elements, thematic accessories",
		Composition: "creative angles, narrative-driven, artistic framing",
		Keywords:    []string{"editorial", "magazine", "storytelling", "aspirational", "brand"},
		Description: "Magazine-style scenes that tell a story and carry the brand's spirit",
	},
	"studio_clean": {
		Key:         "studio_clean",
		Name:        "Clean Studio",
		Tone:        "professional, polished, high-quality",
		Lighting:    "controlled studio lighting, softboxes, no harsh shadows",
		Background:  "neutral colors (white, gray, beige), simple backdrop",
		Props:       "minimal, professional setup",
		Composition: "clean lines, professional framing, technical precision",
		Keywords:    []string{"studio", "professional", "clean", "controlled", "polished"},
		Description: "Shot in a professional studio under controlled lighting",
	},
	"dark_moody": {
		Key:         "dark_moody",
		Name:        "Dark & Moody",
		Tone:        "mysterious, dramatic, premium, atmospheric",
		Lighting:    "low-key lighting, dramatic shadows, chiaroscuro",
		Background:  "dark backgrounds (black, charcoal, deep tones)",
		Props:       "dark elegant items, moody accessories",
		Composition: "dramatic angles, strong contrast, depth",
		Keywords:    []string{"dark", "moody", "dramatic", "mysterious", "low-key"},
		Description: "Against a dark backdrop with dramatic shadows and an atmospheric mood",
	},
	"colorful_pop": {
		Key:         "colorful_pop",
		Name:        "Colorful & Pop",
		Tone:        "vibrant, energetic, playful, eye-catching",
		Lighting:    "bright, saturated, high-key lighting",
		Background:  "bold solid colors, neon, pastels, colorful gradients",
		Props:       "colorful accessories, playful elements",
		Composition: "dynamic, fun, unconventional angles",
		Keywords:    []string{"colorful", "vibrant", "pop", "playful", "bright"},
		Description: "Bright colorful backdrops with playful, attention-grabbing composition",
	},
	"natural_light": {
		Key:         "natural_light",
		Name:        "Natural Light",
		Tone:        "authentic, soft, organic, genuine",
		Lighting:    "window light, golden hour, soft natural shadows",
		Background:  "natural settings, home environments, simple backdrops",
		Props:       "natural materials, organic elements",
		Composition: "soft, natural, candid feel",
		Keywords:    []string{"natural light", "authentic", "soft", "organic", "window light"},
		Description: "In natural light with soft shadows and an authentic atmosphere",
	},
	"outdoor": {
		Key:         "outdoor",
		Name:        "Outdoor",
		Tone:        "fresh, natural, adventurous, real-world context",
		Lighting:    "natural daylight, golden hour, outdoor conditions",
		Background:  "nature, urban streets, outdoor environments",
		Props:       "environmental elements, natural surroundings",
		Composition: "environmental context, real-world settings",
		Keywords:    []string{"outdoor", "nature", "fresh", "environmental", "natural"},
		Description: "Outdoors, in nature or on city streets",
	},
	"macro_detail": {
		Key:         "macro_detail",
		Name:        "Macro Detail",
		Tone:        "detailed, technical, quality-focused, intricate",
		Lighting:    "focused lighting to highlight texture and detail",
		Background:  "blurred or neutral to emphasize detail",
		Props:       "none, focus on product detail",
		Composition: "extreme close-up, shallow depth of field, texture focus",
		Keywords:    []string{"macro", "detail", "close-up", "texture", "intricate"},
		Description: "Extreme close-ups that highlight the product's details and texture",
	},
	"contextual": {
		Key:         "contextual",
		Name:        "Contextual",
		Tone:        "practical, relatable, usage-focused, real-life",
		Lighting:    "natural or ambient lighting appropriate to context",
		Background:  "relevant environment where product is used",
		Props:       "contextual items showing product in use",
		Composition: "product in natural use scenario, environmental storytelling",
		Keywords:    []string{"contextual", "in-use", "practical", "environment", "scenario"},
		Description: "In the real environment where the product gets used, shown in a usage scenario",
	},
	"monochrome": {
		Key:         "monochrome",
		Name:        "Monochrome",
		Tone:        "timeless, classic, elegant, artistic",
		Lighting:    "emphasis on contrast, tonal range, shadows and highlights",
		Background:  "any background, rendered in black and white",
		Props:       "chosen for shape and contrast rather than color",
		Composition: "focus on form, texture, contrast, and composition",
		Keywords:    []string{"monochrome", "black and white", "timeless", "contrast", "tonal"},
		Description: "Black and white, focused on form and contrast for a timeless look",
	},
	"seasonal": {
		Key:         "seasonal",
		Name:        "Seasonal",
		Tone:        "timely, festive, seasonal relevance, trend-aligned",
		Lighting:    "appropriate to season (warm for autumn, bright for summer)",
		Background:  "seasonal elements (fall leaves, snow, flowers, beach)",
		Props:       "season-specific items and decorations",
		Composition: "themed around current season or upcoming holiday",
		Keywords:    []string{"seasonal", "holiday", "festive", "timely", "themed"},
		Description: "Styled with decorations and themes that match the season",
	},
	"geometric": {
		Key:         "geometric",
		Name:        "Geometric & Architectural",
		Tone:        "structured, modern, architectural, precise",
		Lighting:    "clean lighting, emphasis on lines and shapes",
		Background:  "geometric patterns, architectural elements, clean lines",
		Props:       "geometric shapes, architectural pieces",
		Composition: "strong lines, symmetry, geometric patterns, architectural framing",
		Keywords:    []string{"geometric", "architectural", "structured", "lines", "modern"},
		Description: "Structured compositions built from geometric shapes and architectural elements",
	},
	"texture_focus": {
		Key:         "texture_focus",
		Name:        "Texture Focus",
		Tone:        "tactile, sensory, material-focused, quality emphasis",
		Lighting:    "raking light to emphasize texture, side lighting",
		Background:  "complementary textures or neutral to highlight product texture",
		Props:       "textural elements that complement product material",
		Composition: "close-up or angled to showcase material and texture",
		Keywords:    []string{"texture", "material", "tactile", "fabric", "surface"},
		Description: "Tactile detail shots that bring out the product's material and texture",
	},
	"transparent": {
		Key:         "transparent",
		Name:        "Transparent & Reflective",
		Tone:        "technical, clean, premium, glass-like",
		Lighting:    "controlled lighting to manage reflections, backlight for transparency",
		Background:  "clean backgrounds that don't interfere with reflections",
		Props:       "reflective surfaces, glass elements",
		Composition: "careful angle management for reflections, showcase transparency",
		Keywords:    []string{"transparent", "glass", "reflective", "crystal", "clear"},
		Description: "Shot with lighting techniques made for transparent and reflective products",
	},
}

var platformOrder = []string{"instagram", "ecommerce", "pinterest", "catalog"}

var platformTemplates = map[string]Platform{
	"instagram": {
		Key:         "instagram",
		Name:        "Instagram",
		AspectRatio: "1:1 (square) or 9:16 (reels/stories)",
		StyleFocus:  "eye-catching, bold colors, clean composition, trendy aesthetics",
		Tips:        "Leave space for text overlay, use trending color palettes, ensure mobile-friendly",
	},
	"ecommerce": {
		Key:         "ecommerce",
		Name:        "E-commerce",
		AspectRatio: "4:5 or 1:1",
		StyleFocus:  "white/light background, multiple angles, detail shots, clear product view",
		Tips:        "Show product clearly from all angles, include size reference, consistent lighting",
	},
	"pinterest": {
		Key:         "pinterest",
		Name:        "Pinterest",
		AspectRatio: "2:3 (vertical)",
		StyleFocus:  "inspirational, mood board style, lifestyle context, vertical composition",
		Tips:        "Use text overlays with key info, create desire, show usage scenarios",
	},
	"catalog": {
		Key:         "catalog",
		Name:        "Catalog",
		AspectRatio: "1:1",
		StyleFocus:  "professional, consistent lighting, clean background, standard angles",
		Tips:        "Multiple products same style, consistent color palette, uniform composition",
	},
}

var categoryGuidelines = map[string]CategoryGuideline{
	"fashion": {
		Focus:          "texture, fit, movement, drape",
		CommonSettings: []string{"studio white background", "outdoor lifestyle", "editorial dark mood"},
		MustShow:       []string{"fabric detail and texture", "how it fits on body", "styling options"},
		Avoid:          "overly busy backgrounds that distract from clothing",
	},
	"food": {
		Focus:          "texture, freshness, appetite appeal, ingredients",
		CommonSettings: []string{"rustic wood table", "bright modern kitchen", "outdoor picnic"},
		MustShow:       []string{"steam or freshness indicators", "key ingredients", "portion size"},
		Avoid:          "cold/unappetizing lighting, artificial-looking food",
	},
	"tech": {
		Focus:          "design details, features, scale, interfaces",
		CommonSettings: []string{"minimal clean background", "desk setup", "hands-on usage demo"},
		MustShow:       []string{"ports and buttons", "size comparison object", "screen/display quality"},
		Avoid:          "cluttered backgrounds, poor lighting on screens",
	},
	"home_decor": {
		Focus:          "ambiance, texture, how it fits in space",
		CommonSettings: []string{"styled room setting", "close-up material details", "lifestyle context"},
		MustShow:       []string{"how it looks in a room", "material and texture closeup", "available colors"},
		Avoid:          "poor room styling, mismatched decor",
	},
	"accessories": {
		Focus:          "details, craftsmanship, how to use/wear",
		CommonSettings: []string{"flatlay composition", "on model/mannequin", "lifestyle in use"},
		MustShow:       []string{"craftsmanship details", "size scale", "usage demonstration"},
		Avoid:          "unclear product details, poor focus",
	},
	"beauty": {
		Focus:          "texture, color accuracy, application, results",
		CommonSettings: []string{"clean white background", "lifestyle application", "before/after"},
		MustShow:       []string{"true color/texture", "application method", "results on skin"},
		Avoid:          "color inaccuracy, poor skin tone representation",
	},
}

// Get returns the style template for key, falling back to minimal.
func Get(key string) Style {
	if s, ok := styleTemplates[strings.ToLower(strings.TrimSpace(key))]; ok {
		return s
	}
	return styleTemplates["minimal"]
}

// Known reports whether key names a style template.
func Known(key string) bool {
	_, ok := styleTemplates[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// GetPlatform returns the platform template for key, falling back to ecommerce.
func GetPlatform(key string) Platform {
	if p, ok := platformTemplates[strings.ToLower(strings.TrimSpace(key))]; ok {
		return p
	}
	return platformTemplates["ecommerce"]
}

// KnownPlatform reports whether key names a platform template.
func KnownPlatform(key string) bool {
	_, ok := platformTemplates[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// AllPlatforms returns every platform template in a stable order.
func AllPlatforms() []Platform {
	out := make([]Platform, 0, len(platformOrder))
	for _, key := range platformOrder {
		out = append(out, platformTemplates[key])
	}
	return out
}

// ForCategory matches a free-form product category against the guideline set.
// Matching is by substring so "running shoes / fashion" still hits fashion.
func ForCategory(category string) CategoryGuideline {
	lower := strings.ToLower(category)
	for key, guideline := range categoryGuidelines {
		if strings.Contains(lower, key) {
			return guideline
		}
	}
	return CategoryGuideline{
		Focus:          "product details, quality, usability",
		CommonSettings: []string{"clean background", "lifestyle context", "detail shots"},
		MustShow:       []string{"product details", "scale/size", "key features"},
		Avoid:          "poor lighting, cluttered backgrounds",
	}
}

// All lists every style template in a stable order for UI selection.
func All() []Style {
	out := make([]Style, 0, len(styleOrder))
	for _, key := range styleOrder {
		out = append(out, styleTemplates[key])
	}
	return out
}
