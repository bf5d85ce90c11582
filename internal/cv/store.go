package cv

import (
	"errors"
	"time"
)

// ErrNoDocument is returned when a mutating command runs before SetDocument
// has loaded a document into the store.
var ErrNoDocument = errors.New("store has no document loaded")

// IDGenerator produces unique entry IDs. Injectable so tests can make entry
// creation deterministic.
type IDGenerator func() string

// Clock supplies the current time for UpdatedAt bumps.
type Clock func() time.Time

// Observer is notified with a copy of the document after every state change.
// Side effects such as mirroring to durable storage live here, never inside
// the reducers.
type Observer func(Document)

// Store owns the single in-session document and applies mutation commands to
// it. Every command replaces the document wholesale with a new state computed
// from the previous one; partial application is not observable.
type Store struct {
	doc       *Document
	now       Clock
	newID     IDGenerator
	observers []Observer
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the store's time source.
func WithClock(c Clock) Option {
	return func(s *Store) { s.now = c }
}

// WithIDGenerator overrides the store's entry ID source.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.newID = g }
}

// NewStore creates an empty store. A document must be loaded with SetDocument
// before mutation commands are accepted.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers an observer for state changes. Observers run
// synchronously in registration order after each command.
func (s *Store) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Document returns a copy of the current document.
func (s *Store) Document() (Document, error) {
	if s.doc == nil {
		return Document{}, ErrNoDocument
	}
	return cloneDocument(*s.doc), nil
}

// NewEntryID returns a fresh unique entry identifier.
func (s *Store) NewEntryID() string {
	if s.newID != nil {
		return s.newID()
	}
	return newEntryID()
}

// SetDocument replaces the store state wholesale, normalizing the content.
// Used after loading from the persistence layer or the draft mirror.
func (s *Store) SetDocument(doc Document) {
	doc = cloneDocument(doc)
	doc.Data.Normalize()
	s.doc = &doc
	s.notify()
}

// UpdatePersonalInfo merges the patch into the personal info block.
func (s *Store) UpdatePersonalInfo(patch PersonalInfoPatch) error {
	return s.mutate(func(d *Document) {
		patch.apply(&d.Data.PersonalInfo)
	})
}

// UpdateSummary replaces the summary text.
func (s *Store) UpdateSummary(summary string) error {
	return s.mutate(func(d *Document) {
		d.Data.Summary = summary
	})
}

// AddEntry appends the entry to the sequence its type belongs to. The caller
// supplies the entry ID, normally from NewEntryID.
func (s *Store) AddEntry(entry Entry) error {
	return s.mutate(func(d *Document) {
		switch e := entry.(type) {
		case Experience:
			d.Data.Experiences = append(d.Data.Experiences, e)
		case Education:
			d.Data.Education = append(d.Data.Education, e)
		case Skill:
			d.Data.Skills = append(d.Data.Skills, e)
		case Language:
			d.Data.Languages = append(d.Data.Languages, e)
		case Project:
			d.Data.Projects = append(d.Data.Projects, e)
		case CustomSection:
			d.Data.CustomSections = append(d.Data.CustomSections, e)
		}
	})
}

// UpdateEntry merges the patch into the entry with the given ID in the
// patch's section. A missing ID is a no-op; UpdatedAt still advances.
func (s *Store) UpdateEntry(id string, patch EntryPatch) error {
	return s.mutate(func(d *Document) {
		switch p := patch.(type) {
		case ExperiencePatch:
			for i := range d.Data.Experiences {
				if d.Data.Experiences[i].ID == id {
					p.apply(&d.Data.Experiences[i])
					return
				}
			}
		case EducationPatch:
			for i := range d.Data.Education {
				if d.Data.Education[i].ID == id {
					p.apply(&d.Data.Education[i])
					return
				}
			}
		case SkillPatch:
			for i := range d.Data.Skills {
				if d.Data.Skills[i].ID == id {
					p.apply(&d.Data.Skills[i])
					return
				}
			}
		case LanguagePatch:
			for i := range d.Data.Languages {
				if d.Data.Languages[i].ID == id {
					p.apply(&d.Data.Languages[i])
					return
				}
			}
		case ProjectPatch:
			for i := range d.Data.Projects {
				if d.Data.Projects[i].ID == id {
					p.apply(&d.Data.Projects[i])
					return
				}
			}
		case CustomSectionPatch:
			for i := range d.Data.CustomSections {
				if d.Data.CustomSections[i].ID == id {
					p.apply(&d.Data.CustomSections[i])
					return
				}
			}
		}
	})
}

// RemoveEntry deletes the entry with the given ID from the named section.
// A missing ID is a no-op; UpdatedAt still advances.
func (s *Store) RemoveEntry(section Section, id string) error {
	return s.mutate(func(d *Document) {
		switch section {
		case SectionExperiences:
			d.Data.Experiences = removeByID(d.Data.Experiences, id)
		case SectionEducation:
			d.Data.Education = removeByID(d.Data.Education, id)
		case SectionSkills:
			d.Data.Skills = removeByID(d.Data.Skills, id)
		case SectionLanguages:
			d.Data.Languages = removeByID(d.Data.Languages, id)
		case SectionProjects:
			d.Data.Projects = removeByID(d.Data.Projects, id)
		case SectionCustomSections:
			d.Data.CustomSections = removeByID(d.Data.CustomSections, id)
		}
	})
}

// ReorderSections replaces the section order. Unknown tokens are filtered.
func (s *Store) ReorderSections(order []Section) error {
	return s.mutate(func(d *Document) {
		d.Data.SectionOrder = FilterSectionOrder(order)
	})
}

// UpdateMetadata merges the patch into the document's top-level fields.
func (s *Store) UpdateMetadata(patch MetadataPatch) error {
	return s.mutate(func(d *Document) {
		patch.apply(d)
	})
}

// mutate runs fn against a copy of the current state, bumps UpdatedAt and
// publishes the new state.
func (s *Store) mutate(fn func(*Document)) error {
	if s.doc == nil {
		return ErrNoDocument
	}
	next := cloneDocument(*s.doc)
	fn(&next)
	if now := s.now(); now.After(next.UpdatedAt) {
		next.UpdatedAt = now
	}
	s.doc = &next
	s.notify()
	return nil
}

func (s *Store) notify() {
	snapshot := cloneDocument(*s.doc)
	for _, o := range s.observers {
		o(snapshot)
	}
}

func removeByID[E Entry](entries []E, id string) []E {
	out := entries[:0:0]
	for _, e := range entries {
		if e.EntryID() != id {
			out = append(out, e)
		}
	}
	if out == nil {
		out = []E{}
	}
	return out
}

// cloneDocument deep-copies a document so reducer output never aliases the
// previous state.
func cloneDocument(d Document) Document {
	c := d
	c.Data = cloneContent(d.Data)
	return c
}

func cloneContent(in Content) Content {
	out := in
	out.Experiences = cloneSlice(in.Experiences)
	for i := range out.Experiences {
		out.Experiences[i].Highlights = cloneSlice(in.Experiences[i].Highlights)
	}
	out.Education = cloneSlice(in.Education)
	out.Skills = cloneSlice(in.Skills)
	out.Languages = cloneSlice(in.Languages)
	out.Projects = cloneSlice(in.Projects)
	for i := range out.Projects {
		out.Projects[i].Technologies = cloneSlice(in.Projects[i].Technologies)
	}
	out.Interests = cloneSlice(in.Interests)
	out.CustomSections = cloneSlice(in.CustomSections)
	for i := range out.CustomSections {
		out.CustomSections[i].Items = cloneSlice(in.CustomSections[i].Items)
	}
	out.SectionOrder = cloneSlice(in.SectionOrder)
	return out
}

// cloneSlice copies a slice, preserving the nil/empty distinction so that
// serialization round-trips exactly.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
