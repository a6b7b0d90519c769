package styles_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"productPhotoAi/internal/styles"
)

func TestGetFallsBackToMinimal(t *testing.T) {
	require.Equal(t, "luxury", styles.Get("luxury").Key)
	require.Equal(t, "luxury", styles.Get("  LUXURY ").Key)
	require.Equal(t, "minimal", styles.Get("does-not-exist").Key)
	require.Equal(t, "minimal", styles.Get("").Key)
}

func TestKnown(t *testing.T) {
	require.True(t, styles.Known("flatlay"))
	require.False(t, styles.Known("holographic"))
}

func TestGetPlatformFallsBackToEcommerce(t *testing.T) {
	require.Equal(t, "pinterest", styles.GetPlatform("pinterest").Key)
	require.Equal(t, "ecommerce", styles.GetPlatform("myspace").Key)
}

func TestKnownPlatform(t *testing.T) {
	require.True(t, styles.KnownPlatform("catalog"))
	require.False(t, styles.KnownPlatform("myspace"))
}

func TestAllPlatforms(t *testing.T) {
	all := styles.AllPlatforms()
	require.Len(t, all, 4)
	require.Equal(t, "instagram", all[0].Key)
	for _, p := range all {
		require.NotEmpty(t, p.AspectRatio, "platform %s", p.Key)
	}
}

func TestForCategoryMatchesSubstrings(t *testing.T) {
	require.Equal(t, "texture, fit, movement, drape", styles.ForCategory("Fashion / sneakers").Focus)
	require.Equal(t, "design details, features, scale, interfaces", styles.ForCategory("consumer tech gadget").Focus)

	fallback := styles.ForCategory("garden furniture")
	require.Equal(t, "product details, quality, usability", fallback.Focus)
	require.NotEmpty(t, fallback.MustShow)
}

func TestAllIsStableAndComplete(t *testing.T) {
	all := styles.All()
	require.Len(t, all, 22)
	require.Equal(t, "minimal", all[0].Key)
	require.Equal(t, "transparent", all[len(all)-1].Key)

	for _, s := range all {
		require.NotEmpty(t, s.Name, "style %s", s.Key)
		require.NotEmpty(t, s.Lighting, "style %s", s.Key)
		require.NotEmpty(t, s.Keywords, "style %s", s.Key)
	}
}
