// Package cv defines the CV document model and the editing session store.
package cv

import (
	"time"

	"github.com/google/uuid"
)

// Section identifies one named part of the CV content. Dispatch on sections
// is always an exhaustive switch over these constants, never a string lookup
// into the content struct.
type Section string

const (
	SectionPersonalInfo   Section = "personalInfo"
	SectionSummary        Section = "summary"
	SectionExperiences    Section = "experiences"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionLanguages      Section = "languages"
	SectionProjects       Section = "projects"
	SectionInterests      Section = "interests"
	SectionCustomSections Section = "customSections"
)

// KnownSections lists every recognized section token.
var KnownSections = []Section{
	SectionPersonalInfo,
	SectionSummary,
	SectionExperiences,
	SectionEducation,
	SectionSkills,
	SectionLanguages,
	SectionProjects,
	SectionInterests,
	SectionCustomSections,
}

// DefaultSectionOrder is the order new documents render their sections in.
var DefaultSectionOrder = []Section{
	SectionPersonalInfo,
	SectionSummary,
	SectionExperiences,
	SectionEducation,
	SectionSkills,
	SectionLanguages,
	SectionProjects,
	SectionInterests,
}

// IsKnown reports whether s is a recognized section token.
func (s Section) IsKnown() bool {
	for _, known := range KnownSections {
		if s == known {
			return true
		}
	}
	return false
}

// PersonalInfo is the singleton identity block of a CV.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Photo     string `json:"photo,omitempty"` // data URL
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

// SkillLevel is a coarse proficiency scale for skills.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// LanguageLevel is a CEFR proficiency level, plus "Native".
type LanguageLevel string

// Experience is one employment entry.
type Experience struct {
	ID          string   `json:"id"`
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// Education is one degree or training entry.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
	GPA         string `json:"gpa,omitempty"`
}

// Skill is one named competency with a proficiency level.
type Skill struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level"`
	Category string     `json:"category,omitempty"`
}

// Language is one spoken language with a CEFR level.
type Language struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Level LanguageLevel `json:"level"`
}

// Project is one personal or professional project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	URL          string   `json:"url,omitempty"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// CustomItem is one sub-entry inside a custom section.
type CustomItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CustomSection is a free-form user-defined section.
type CustomSection struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Content string       `json:"content"`
	Items   []CustomItem `json:"items,omitempty"`
}

// Content is the substantive résumé data of a document.
type Content struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Experiences    []Experience    `json:"experiences"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Languages      []Language      `json:"languages"`
	Projects       []Project       `json:"projects"`
	Interests      []string        `json:"interests"`
	CustomSections []CustomSection `json:"customSections"`
	SectionOrder   []Section       `json:"sectionOrder"`
}

// Document is the full persisted CV record, content plus presentation
// metadata. ID and OwnerID are zero until the persistence layer assigns them.
type Document struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	TemplateID  string    `json:"templateId"`
	ColorScheme string    `json:"colorScheme"`
	FontFamily  string    `json:"fontFamily"`
	ShareID     string    `json:"shareId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Data        Content   `json:"data"`
}

// DefaultTitle is the title given to freshly created documents.
const DefaultTitle = "Untitled CV"

// Presentation defaults for new documents.
const (
	DefaultTemplateID  = "modern"
	DefaultColorScheme = "purple-blue"
	DefaultFontFamily  = "inter-inter"
)

// NewContent returns an empty content block with the default section order.
func NewContent() Content {
	return Content{
		Experiences:    []Experience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Languages:      []Language{},
		Projects:       []Project{},
		Interests:      []string{},
		CustomSections: []CustomSection{},
		SectionOrder:   append([]Section(nil), DefaultSectionOrder...),
	}
}

// NewDocument returns an unsaved document with empty content and default
// presentation options. The persistence layer assigns ID and OwnerID.
func NewDocument(now time.Time) Document {
	return Document{
		Title:       DefaultTitle,
		TemplateID:  DefaultTemplateID,
		ColorScheme: DefaultColorScheme,
		FontFamily:  DefaultFontFamily,
		CreatedAt:   now,
		UpdatedAt:   now,
		Data:        NewContent(),
	}
}

// FilterSectionOrder drops unknown tokens and duplicates from order. The
// document model tolerates unknown tokens on input and filters them rather
// than rejecting the document.
func FilterSectionOrder(order []Section) []Section {
	filtered := make([]Section, 0, len(order))
	seen := make(map[Section]bool, len(order))
	for _, s := range order {
		if !s.IsKnown() || seen[s] {
			continue
		}
		seen[s] = true
		filtered = append(filtered, s)
	}
	return filtered
}

// Normalize replaces nil slices with empty ones, top-level and nested, and
// filters the section order. Deserialized documents pass through here so
// that round-tripping and rendering never see nil sequences: a nil nested
// slice would marshal as null and no longer satisfy the content schema.
func (c *Content) Normalize() {
	if c.Experiences == nil {
		c.Experiences = []Experience{}
	}
	for i := range c.Experiences {
		if c.Experiences[i].Highlights == nil {
			c.Experiences[i].Highlights = []string{}
		}
	}
	if c.Education == nil {
		c.Education = []Education{}
	}
	if c.Skills == nil {
		c.Skills = []Skill{}
	}
	if c.Languages == nil {
		c.Languages = []Language{}
	}
	if c.Projects == nil {
		c.Projects = []Project{}
	}
	for i := range c.Projects {
		if c.Projects[i].Technologies == nil {
			c.Projects[i].Technologies = []string{}
		}
	}
	if c.Interests == nil {
		c.Interests = []string{}
	}
	if c.CustomSections == nil {
		c.CustomSections = []CustomSection{}
	}
	if len(c.SectionOrder) == 0 {
		c.SectionOrder = append([]Section(nil), DefaultSectionOrder...)
	} else {
		c.SectionOrder = FilterSectionOrder(c.SectionOrder)
	}
}
