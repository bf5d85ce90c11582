// Package render projects CV content into visual HTML layouts. Each template
// variant is a pure function of (content, theme); all variants consume the
// identical content shape and differ only in layout.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/mlefevre/cv-builder/internal/cv"
	"github.com/mlefevre/cv-builder/internal/theme"
)

// Template renders CV content with a resolved theme into a standalone HTML
// page. The rendered page contains a single #cv-preview container sized to a
// fixed A4 width; height grows with content.
type Template interface {
	ID() string
	Name() string
	Render(content cv.Content, th theme.Theme) (string, error)
}

// PreviewContainerID is the DOM id of the rendered CV container. The export
// pipeline locates the page content through this id.
const PreviewContainerID = "cv-preview"

// DefaultTemplateID is the variant used when a document's templateId does
// not resolve.
const DefaultTemplateID = "modern"

// Templates lists every variant in display order.
func Templates() []Template {
	return []Template{
		modernTemplate,
		creativeTemplate,
		minimalistTemplate,
		executiveTemplate,
		academicTemplate,
	}
}

// ForID returns the variant for id, falling back to the default variant for
// unknown ids. It never fails.
func ForID(id string) Template {
	for _, t := range Templates() {
		if t.ID() == id {
			return t
		}
	}
	return modernTemplate
}

// Render resolves the template and theme keys of a document and renders its
// content. Unresolvable keys degrade to defaults.
func Render(doc cv.Document) (string, error) {
	t := ForID(doc.TemplateID)
	th := theme.Resolve(doc.ColorScheme, doc.FontFamily)
	return t.Render(doc.Data, th)
}

// page is the data every variant template executes against.
type page struct {
	Content  cv.Content
	Theme    theme.Theme
	Sections []string
}

// newPage builds the template input, resolving the visible section order.
// SectionOrder is both an ordering and an inclusion list: a token absent
// from it does not render, and a listed section with no content is omitted
// entirely rather than shown as an empty block.
func newPage(content cv.Content, th theme.Theme) page {
	var sections []string
	for _, s := range cv.FilterSectionOrder(content.SectionOrder) {
		if sectionHasContent(content, s) {
			sections = append(sections, string(s))
		}
	}
	return page{Content: content, Theme: th, Sections: sections}
}

// Has reports whether the section token is part of the visible order.
func (p page) Has(section string) bool {
	for _, s := range p.Sections {
		if s == section {
			return true
		}
	}
	return false
}

func sectionHasContent(c cv.Content, s cv.Section) bool {
	switch s {
	case cv.SectionPersonalInfo:
		return true
	case cv.SectionSummary:
		return strings.TrimSpace(c.Summary) != ""
	case cv.SectionExperiences:
		return len(c.Experiences) > 0
	case cv.SectionEducation:
		return len(c.Education) > 0
	case cv.SectionSkills:
		return len(c.Skills) > 0
	case cv.SectionLanguages:
		return len(c.Languages) > 0
	case cv.SectionProjects:
		return len(c.Projects) > 0
	case cv.SectionInterests:
		return len(c.Interests) > 0
	case cv.SectionCustomSections:
		return len(c.CustomSections) > 0
	}
	return false
}

// htmlTemplate is a template variant backed by an html/template definition.
type htmlTemplate struct {
	id   string
	name string
	tmpl *template.Template
}

func (t *htmlTemplate) ID() string   { return t.id }
func (t *htmlTemplate) Name() string { return t.name }

func (t *htmlTemplate) Render(content cv.Content, th theme.Theme) (string, error) {
	content.Normalize()
	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, newPage(content, th)); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", t.id, err)
	}
	return sb.String(), nil
}

// mustParse builds a variant from its template text. Variant definitions are
// compile-time constants, so a parse failure is a programming error.
func mustParse(id, name, text string) *htmlTemplate {
	tmpl := template.Must(template.New(id).Funcs(templateFuncs()).Parse(text))
	return &htmlTemplate{id: id, name: name, tmpl: tmpl}
}
