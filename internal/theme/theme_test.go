package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColorScheme_Known(t *testing.T) {
	cs := ResolveColorScheme("rose-pink")
	assert.Equal(t, "rose-pink", cs.ID)
	assert.NotEmpty(t, cs.Primary)
}

func TestResolveColorScheme_UnknownFallsBackToDefault(t *testing.T) {
	cs := ResolveColorScheme("neon-lime")
	assert.Equal(t, "purple-blue", cs.ID)
	assert.Equal(t, "#8B5CF6", cs.Primary)

	assert.Equal(t, ResolveColorScheme(""), cs)
}

func TestResolveFontPairing_Known(t *testing.T) {
	fp := ResolveFontPairing("playfair-lato")
	assert.Equal(t, "Playfair Display", fp.Heading)
	assert.Equal(t, "Lato", fp.Body)
}

func TestResolveFontPairing_UnknownFallsBackToDefault(t *testing.T) {
	fp := ResolveFontPairing("comic-sans")
	assert.Equal(t, "inter-inter", fp.ID)
}

func TestResolve_CombinesBothTables(t *testing.T) {
	th := Resolve("blue-teal", "merriweather-opensans")
	assert.Equal(t, "blue-teal", th.Colors.ID)
	assert.Equal(t, "merriweather-opensans", th.Fonts.ID)
}

func TestColorSchemes_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, cs := range ColorSchemes {
		assert.False(t, seen[cs.ID], cs.ID)
		seen[cs.ID] = true
	}
	assert.Len(t, ColorSchemes, 6)
	assert.Len(t, FontPairings, 5)
}
