package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlefevre/cv-builder/internal/theme"
)

func TestPlainText_ExtractsSectionStructure(t *testing.T) {
	content := sampleContent()
	for _, tmpl := range Templates() {
		html, err := tmpl.Render(content, theme.Resolve("", ""))
		require.NoError(t, err)

		text, err := PlainText(html)
		require.NoError(t, err, tmpl.ID())

		assert.Contains(t, text, "Marie Lefèvre", tmpl.ID())
		assert.Contains(t, text, "Acme", tmpl.ID())
		// Headings survive upper-cased; raw markup does not.
		assert.NotContains(t, text, "<", tmpl.ID())
	}
}

func TestPlainText_UppercasesHeadings(t *testing.T) {
	html, err := ForID("minimalist").Render(sampleContent(), theme.Resolve("", ""))
	require.NoError(t, err)

	text, err := PlainText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "EXPERIENCE")
	assert.Contains(t, text, "SKILLS")
}

func TestPlainText_SkipsEmptyBlocks(t *testing.T) {
	text, err := PlainText(`<div id="cv-preview"><h2>  </h2><p>One</p><p></p></div>`)
	require.NoError(t, err)
	assert.Equal(t, "One\n", text)
}

func TestPlainText_MissingContainer(t *testing.T) {
	_, err := PlainText("<html><body><p>loose</p></body></html>")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "cv-preview"))
}
