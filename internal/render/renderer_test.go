package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlefevre/cv-builder/internal/cv"
	"github.com/mlefevre/cv-builder/internal/theme"
)

func sampleContent() cv.Content {
	content := cv.NewContent()
	content.PersonalInfo = cv.PersonalInfo{
		FirstName: "Marie",
		LastName:  "Lefèvre",
		Title:     "Software Engineer",
		Email:     "marie@example.com",
		City:      "Lyon",
		Country:   "France",
	}
	content.Summary = "Engineer focused on backend systems."
	content.Experiences = []cv.Experience{{
		ID:         "exp-1",
		Position:   "Engineer",
		Company:    "Acme",
		StartDate:  "2019-04",
		Current:    true,
		Highlights: []string{"Shipped the billing rewrite"},
	}}
	content.Skills = []cv.Skill{{ID: "sk-1", Name: "Go", Level: cv.SkillExpert}}
	content.Languages = []cv.Language{{ID: "lg-1", Name: "French", Level: "Native"}}
	content.Interests = []string{"Climbing"}
	return content
}

func renderDoc(t *testing.T, tmpl Template, content cv.Content) *goquery.Document {
	t.Helper()
	html, err := tmpl.Render(content, theme.Resolve("", ""))
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestTemplates_ListsFiveVariants(t *testing.T) {
	var ids []string
	for _, tmpl := range Templates() {
		ids = append(ids, tmpl.ID())
		assert.NotEmpty(t, tmpl.Name())
	}
	assert.Equal(t, []string{"modern", "creative", "minimalist", "executive", "academic"}, ids)
}

func TestForID_UnknownFallsBackToModern(t *testing.T) {
	assert.Equal(t, "modern", ForID("brutalist").ID())
	assert.Equal(t, "modern", ForID("").ID())
	assert.Equal(t, "academic", ForID("academic").ID())
}

func TestRender_AllVariantsHavePreviewContainer(t *testing.T) {
	content := sampleContent()
	for _, tmpl := range Templates() {
		doc := renderDoc(t, tmpl, content)
		assert.Equal(t, 1, doc.Find("#cv-preview").Length(), tmpl.ID())
	}
}

func TestRender_AllVariantsShowIdentityAndEntries(t *testing.T) {
	content := sampleContent()
	for _, tmpl := range Templates() {
		doc := renderDoc(t, tmpl, content)
		text := doc.Find("#cv-preview").Text()

		assert.Contains(t, text, "Marie Lefèvre", tmpl.ID())
		assert.Contains(t, text, "Acme", tmpl.ID())
		assert.Contains(t, text, "Engineer", tmpl.ID())
		assert.Contains(t, text, "Go", tmpl.ID())
		assert.Contains(t, text, "Present", tmpl.ID())
	}
}

func TestRender_EmptySectionsAreOmitted(t *testing.T) {
	content := sampleContent()
	content.Education = nil
	content.Projects = nil

	for _, tmpl := range Templates() {
		doc := renderDoc(t, tmpl, content)
		headings := doc.Find("h2").Map(func(_ int, s *goquery.Selection) string {
			return strings.ToLower(strings.TrimSpace(s.Text()))
		})
		joined := strings.Join(headings, "|")

		assert.NotContains(t, joined, "education", tmpl.ID())
		assert.NotContains(t, joined, "projects", tmpl.ID())
	}
}

func TestRender_SectionOrderIsInclusionList(t *testing.T) {
	content := sampleContent()
	// Skills has content but is not listed, so it must not render.
	content.SectionOrder = []cv.Section{
		cv.SectionPersonalInfo,
		cv.SectionSummary,
		cv.SectionExperiences,
	}

	for _, tmpl := range Templates() {
		doc := renderDoc(t, tmpl, content)
		text := strings.ToLower(doc.Find("#cv-preview").Text())
		assert.NotContains(t, text, "skills", tmpl.ID())
		assert.Contains(t, text, "acme", tmpl.ID())
	}
}

func TestRender_UnknownThemeKeysMatchDefaultOutput(t *testing.T) {
	content := sampleContent()
	for _, tmpl := range Templates() {
		withDefaults, err := tmpl.Render(content, theme.Resolve("purple-blue", "inter-inter"))
		require.NoError(t, err)
		withUnknown, err := tmpl.Render(content, theme.Resolve("neon-lime", "comic-sans"))
		require.NoError(t, err)
		assert.Equal(t, withDefaults, withUnknown, tmpl.ID())
	}
}

func TestRender_AppliesThemeColors(t *testing.T) {
	content := sampleContent()
	for _, tmpl := range Templates() {
		html, err := tmpl.Render(content, theme.Resolve("green-emerald", "inter-inter"))
		require.NoError(t, err)
		assert.Contains(t, html, "#10B981", tmpl.ID())
	}
}

func TestRender_EscapesUserContent(t *testing.T) {
	content := sampleContent()
	content.Summary = `<script>alert("x")</script>`

	for _, tmpl := range Templates() {
		html, err := tmpl.Render(content, theme.Resolve("", ""))
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>alert", tmpl.ID())
	}
}

func TestRenderDocument_ResolvesTemplateAndTheme(t *testing.T) {
	doc := cv.Document{
		TemplateID:  "does-not-exist",
		ColorScheme: "does-not-exist",
		FontFamily:  "does-not-exist",
		Data:        sampleContent(),
	}

	html, err := Render(doc)
	require.NoError(t, err)
	assert.Contains(t, html, "#cv-preview")
	// Unknown presentation keys degrade to the modern template and the
	// default palette.
	assert.Contains(t, html, "#8B5CF6")
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "2019 - 2021", dateRange("2019", "2021", false))
	assert.Equal(t, "2019 - Present", dateRange("2019", "2021", true))
	assert.Equal(t, "2019", dateRange("2019", "", false))
	assert.Equal(t, "2021", dateRange("", "2021", false))
	assert.Equal(t, "", dateRange("", "", false))
	assert.Equal(t, "Present", dateRange("", "", true))
}

func TestSkillPercent(t *testing.T) {
	assert.Equal(t, 25, skillPercent(cv.SkillBeginner))
	assert.Equal(t, 50, skillPercent(cv.SkillIntermediate))
	assert.Equal(t, 75, skillPercent(cv.SkillAdvanced))
	assert.Equal(t, 100, skillPercent(cv.SkillExpert))
	assert.Equal(t, 50, skillPercent(cv.SkillLevel("odd")))
}

func TestLanguageLabel(t *testing.T) {
	assert.Equal(t, "C1 - Advanced", languageLabel("C1"))
	assert.Equal(t, "Native", languageLabel("Native"))
	assert.Equal(t, "unknown", languageLabel("unknown"))
}

func TestFontStack(t *testing.T) {
	assert.Equal(t, "Inter, sans-serif", string(fontStack("Inter")))
	assert.Equal(t, "'Playfair Display', sans-serif", string(fontStack("Playfair Display")))
}

func TestFullNameAndLocality(t *testing.T) {
	pi := cv.PersonalInfo{FirstName: " Marie ", LastName: "Lefèvre", City: "Lyon"}
	assert.Equal(t, "Marie Lefèvre", fullName(pi))
	assert.Equal(t, "Lyon", locality(pi))

	pi.Country = "France"
	assert.Equal(t, "Lyon, France", locality(pi))
}
