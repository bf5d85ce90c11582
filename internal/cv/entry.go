package cv

// Entry is one item of a repeatable section. The concrete type decides which
// section the entry belongs to, so adding an entry to the wrong sequence is
// unrepresentable.
type Entry interface {
	EntryID() string
	Section() Section
}

func (e Experience) EntryID() string     { return e.ID }
func (e Experience) Section() Section    { return SectionExperiences }
func (e Education) EntryID() string      { return e.ID }
func (e Education) Section() Section     { return SectionEducation }
func (s Skill) EntryID() string          { return s.ID }
func (s Skill) Section() Section         { return SectionSkills }
func (l Language) EntryID() string       { return l.ID }
func (l Language) Section() Section      { return SectionLanguages }
func (p Project) EntryID() string        { return p.ID }
func (p Project) Section() Section       { return SectionProjects }
func (c CustomSection) EntryID() string  { return c.ID }
func (c CustomSection) Section() Section { return SectionCustomSections }

// EntryPatch is a partial update for one entry. Nil fields are left
// untouched; the patch type selects the target section.
type EntryPatch interface {
	Section() Section
}

// ExperiencePatch updates selected fields of an experience entry.
type ExperiencePatch struct {
	Position    *string   `json:"position,omitempty"`
	Company     *string   `json:"company,omitempty"`
	Location    *string   `json:"location,omitempty"`
	StartDate   *string   `json:"startDate,omitempty"`
	EndDate     *string   `json:"endDate,omitempty"`
	Current     *bool     `json:"current,omitempty"`
	Description *string   `json:"description,omitempty"`
	Highlights  *[]string `json:"highlights,omitempty"`
}

func (ExperiencePatch) Section() Section { return SectionExperiences }

func (p ExperiencePatch) apply(e *Experience) {
	setString(&e.Position, p.Position)
	setString(&e.Company, p.Company)
	setString(&e.Location, p.Location)
	setString(&e.StartDate, p.StartDate)
	setString(&e.EndDate, p.EndDate)
	if p.Current != nil {
		e.Current = *p.Current
	}
	setString(&e.Description, p.Description)
	if p.Highlights != nil {
		e.Highlights = append([]string(nil), *p.Highlights...)
	}
}

// EducationPatch updates selected fields of an education entry.
type EducationPatch struct {
	Degree      *string `json:"degree,omitempty"`
	Institution *string `json:"institution,omitempty"`
	Location    *string `json:"location,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     *bool   `json:"current,omitempty"`
	Description *string `json:"description,omitempty"`
	GPA         *string `json:"gpa,omitempty"`
}

func (EducationPatch) Section() Section { return SectionEducation }

func (p EducationPatch) apply(e *Education) {
	setString(&e.Degree, p.Degree)
	setString(&e.Institution, p.Institution)
	setString(&e.Location, p.Location)
	setString(&e.StartDate, p.StartDate)
	setString(&e.EndDate, p.EndDate)
	if p.Current != nil {
		e.Current = *p.Current
	}
	setString(&e.Description, p.Description)
	setString(&e.GPA, p.GPA)
}

// SkillPatch updates selected fields of a skill entry.
type SkillPatch struct {
	Name     *string     `json:"name,omitempty"`
	Level    *SkillLevel `json:"level,omitempty"`
	Category *string     `json:"category,omitempty"`
}

func (SkillPatch) Section() Section { return SectionSkills }

func (p SkillPatch) apply(s *Skill) {
	setString(&s.Name, p.Name)
	if p.Level != nil {
		s.Level = *p.Level
	}
	setString(&s.Category, p.Category)
}

// LanguagePatch updates selected fields of a language entry.
type LanguagePatch struct {
	Name  *string        `json:"name,omitempty"`
	Level *LanguageLevel `json:"level,omitempty"`
}

func (LanguagePatch) Section() Section { return SectionLanguages }

func (p LanguagePatch) apply(l *Language) {
	setString(&l.Name, p.Name)
	if p.Level != nil {
		l.Level = *p.Level
	}
}

// ProjectPatch updates selected fields of a project entry.
type ProjectPatch struct {
	Name         *string   `json:"name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	URL          *string   `json:"url,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	StartDate    *string   `json:"startDate,omitempty"`
	EndDate      *string   `json:"endDate,omitempty"`
}

func (ProjectPatch) Section() Section { return SectionProjects }

func (p ProjectPatch) apply(pr *Project) {
	setString(&pr.Name, p.Name)
	setString(&pr.Description, p.Description)
	setString(&pr.URL, p.URL)
	if p.Technologies != nil {
		pr.Technologies = append([]string(nil), *p.Technologies...)
	}
	setString(&pr.StartDate, p.StartDate)
	setString(&pr.EndDate, p.EndDate)
}

// CustomSectionPatch updates selected fields of a custom section entry.
type CustomSectionPatch struct {
	Title   *string       `json:"title,omitempty"`
	Content *string       `json:"content,omitempty"`
	Items   *[]CustomItem `json:"items,omitempty"`
}

func (CustomSectionPatch) Section() Section { return SectionCustomSections }

func (p CustomSectionPatch) apply(c *CustomSection) {
	setString(&c.Title, p.Title)
	setString(&c.Content, p.Content)
	if p.Items != nil {
		c.Items = append([]CustomItem(nil), *p.Items...)
	}
}

// PersonalInfoPatch is a partial update for the personal info block.
type PersonalInfoPatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Title     *string `json:"title,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	Country   *string `json:"country,omitempty"`
	Photo     *string `json:"photo,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	Website   *string `json:"website,omitempty"`
	GitHub    *string `json:"github,omitempty"`
}

func (p PersonalInfoPatch) apply(pi *PersonalInfo) {
	setString(&pi.FirstName, p.FirstName)
	setString(&pi.LastName, p.LastName)
	setString(&pi.Title, p.Title)
	setString(&pi.Email, p.Email)
	setString(&pi.Phone, p.Phone)
	setString(&pi.Address, p.Address)
	setString(&pi.City, p.City)
	setString(&pi.Country, p.Country)
	setString(&pi.Photo, p.Photo)
	setString(&pi.LinkedIn, p.LinkedIn)
	setString(&pi.Website, p.Website)
	setString(&pi.GitHub, p.GitHub)
}

// MetadataPatch is a partial update for the document's top-level fields.
// Content is never touched through metadata updates.
type MetadataPatch struct {
	Title       *string `json:"title,omitempty"`
	TemplateID  *string `json:"templateId,omitempty"`
	ColorScheme *string `json:"colorScheme,omitempty"`
	FontFamily  *string `json:"fontFamily,omitempty"`
	ShareID     *string `json:"shareId,omitempty"`
}

func (p MetadataPatch) apply(d *Document) {
	setString(&d.Title, p.Title)
	setString(&d.TemplateID, p.TemplateID)
	setString(&d.ColorScheme, p.ColorScheme)
	setString(&d.FontFamily, p.FontFamily)
	if p.ShareID != nil {
		d.ShareID = *p.ShareID
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
