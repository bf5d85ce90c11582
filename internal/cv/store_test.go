package cv

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	current := now

	seq := 0
	store := NewStore(
		WithClock(func() time.Time { return current }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
	store.SetDocument(NewDocument(now))
	return store, &current
}

func TestStore_CommandsBeforeLoadFail(t *testing.T) {
	store := NewStore()

	_, err := store.Document()
	assert.ErrorIs(t, err, ErrNoDocument)

	assert.ErrorIs(t, store.UpdateSummary("x"), ErrNoDocument)
	assert.ErrorIs(t, store.AddEntry(Experience{ID: "e"}), ErrNoDocument)
	assert.ErrorIs(t, store.RemoveEntry(SectionSkills, "s"), ErrNoDocument)
	assert.ErrorIs(t, store.ReorderSections(nil), ErrNoDocument)
}

func TestStore_UpdatePersonalInfo_MergesPatch(t *testing.T) {
	store, _ := testStore(t)

	first := "Marie"
	require.NoError(t, store.UpdatePersonalInfo(PersonalInfoPatch{FirstName: &first}))

	email := "marie@example.com"
	require.NoError(t, store.UpdatePersonalInfo(PersonalInfoPatch{Email: &email}))

	doc, err := store.Document()
	require.NoError(t, err)
	assert.Equal(t, "Marie", doc.Data.PersonalInfo.FirstName)
	assert.Equal(t, "marie@example.com", doc.Data.PersonalInfo.Email)
}

func TestStore_AddUpdateRemoveEntry(t *testing.T) {
	store, _ := testStore(t)

	id := store.NewEntryID()
	require.NoError(t, store.AddEntry(Experience{
		ID:       id,
		Position: "Engineer",
		Company:  "Acme",
	}))

	doc, err := store.Document()
	require.NoError(t, err)
	require.Len(t, doc.Data.Experiences, 1)
	assert.Equal(t, "id-1", doc.Data.Experiences[0].ID)

	position := "Senior Engineer"
	current := true
	require.NoError(t, store.UpdateEntry(id, ExperiencePatch{
		Position: &position,
		Current:  &current,
	}))

	doc, err = store.Document()
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", doc.Data.Experiences[0].Position)
	assert.Equal(t, "Acme", doc.Data.Experiences[0].Company)
	assert.True(t, doc.Data.Experiences[0].Current)

	require.NoError(t, store.RemoveEntry(SectionExperiences, id))

	doc, err = store.Document()
	require.NoError(t, err)
	assert.Empty(t, doc.Data.Experiences)
}

func TestStore_UpdateEntry_MissingIDIsNoOp(t *testing.T) {
	store, _ := testStore(t)

	require.NoError(t, store.AddEntry(Skill{ID: "sk-1", Name: "Go", Level: SkillAdvanced}))

	name := "Rust"
	require.NoError(t, store.UpdateEntry("sk-missing", SkillPatch{Name: &name}))

	doc, err := store.Document()
	require.NoError(t, err)
	require.Len(t, doc.Data.Skills, 1)
	assert.Equal(t, "Go", doc.Data.Skills[0].Name)
}

func TestStore_RemoveEntry_MissingIDIsNoOp(t *testing.T) {
	store, _ := testStore(t)

	require.NoError(t, store.AddEntry(Language{ID: "lang-1", Name: "French", Level: "Native"}))
	require.NoError(t, store.RemoveEntry(SectionLanguages, "lang-2"))

	doc, err := store.Document()
	require.NoError(t, err)
	assert.Len(t, doc.Data.Languages, 1)
}

func TestStore_AddEntry_EachSection(t *testing.T) {
	store, _ := testStore(t)

	require.NoError(t, store.AddEntry(Experience{ID: "e1"}))
	require.NoError(t, store.AddEntry(Education{ID: "ed1"}))
	require.NoError(t, store.AddEntry(Skill{ID: "s1"}))
	require.NoError(t, store.AddEntry(Language{ID: "l1"}))
	require.NoError(t, store.AddEntry(Project{ID: "p1"}))
	require.NoError(t, store.AddEntry(CustomSection{ID: "c1", Title: "Awards"}))

	doc, err := store.Document()
	require.NoError(t, err)
	assert.Len(t, doc.Data.Experiences, 1)
	assert.Len(t, doc.Data.Education, 1)
	assert.Len(t, doc.Data.Skills, 1)
	assert.Len(t, doc.Data.Languages, 1)
	assert.Len(t, doc.Data.Projects, 1)
	assert.Len(t, doc.Data.CustomSections, 1)
}

func TestStore_ReorderSections_FiltersUnknown(t *testing.T) {
	store, _ := testStore(t)

	require.NoError(t, store.ReorderSections([]Section{
		SectionSkills,
		Section("sidebar"),
		SectionPersonalInfo,
	}))

	doc, err := store.Document()
	require.NoError(t, err)
	assert.Equal(t, []Section{SectionSkills, SectionPersonalInfo}, doc.Data.SectionOrder)
}

func TestStore_UpdateMetadata(t *testing.T) {
	store, _ := testStore(t)

	title := "Design CV"
	template := "creative"
	require.NoError(t, store.UpdateMetadata(MetadataPatch{
		Title:      &title,
		TemplateID: &template,
	}))

	doc, err := store.Document()
	require.NoError(t, err)
	assert.Equal(t, "Design CV", doc.Title)
	assert.Equal(t, "creative", doc.TemplateID)
	// Untouched fields keep their values.
	assert.Equal(t, DefaultColorScheme, doc.ColorScheme)
}

func TestStore_UpdatedAtAdvancesMonotonically(t *testing.T) {
	store, current := testStore(t)

	*current = current.Add(time.Minute)
	require.NoError(t, store.UpdateSummary("one"))

	doc, err := store.Document()
	require.NoError(t, err)
	afterFirst := doc.UpdatedAt
	assert.Equal(t, *current, afterFirst)

	// A clock running backwards must not rewind UpdatedAt.
	*current = current.Add(-time.Hour)
	require.NoError(t, store.UpdateSummary("two"))

	doc, err = store.Document()
	require.NoError(t, err)
	assert.Equal(t, afterFirst, doc.UpdatedAt)
	assert.Equal(t, "two", doc.Data.Summary)
}

func TestStore_DocumentReturnsCopy(t *testing.T) {
	store, _ := testStore(t)
	require.NoError(t, store.AddEntry(Skill{ID: "s1", Name: "Go"}))

	doc, err := store.Document()
	require.NoError(t, err)
	doc.Data.Skills[0].Name = "mutated"
	doc.Title = "mutated"

	fresh, err := store.Document()
	require.NoError(t, err)
	assert.Equal(t, "Go", fresh.Data.Skills[0].Name)
	assert.Equal(t, DefaultTitle, fresh.Title)
}

func TestStore_ObserversSeeEveryState(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore(WithClock(func() time.Time { return now }))

	var summaries []string
	store.Subscribe(func(d Document) {
		summaries = append(summaries, d.Data.Summary)
	})

	store.SetDocument(NewDocument(now))
	require.NoError(t, store.UpdateSummary("draft"))
	require.NoError(t, store.UpdateSummary("final"))

	assert.Equal(t, []string{"", "draft", "final"}, summaries)
}

func TestStore_ObserverSnapshotIsIsolated(t *testing.T) {
	store, _ := testStore(t)

	var seen Document
	store.Subscribe(func(d Document) { seen = d })

	require.NoError(t, store.AddEntry(Skill{ID: "s1", Name: "Go"}))
	seen.Data.Skills[0].Name = "mutated"

	doc, err := store.Document()
	require.NoError(t, err)
	assert.Equal(t, "Go", doc.Data.Skills[0].Name)
}

func TestStore_SetDocumentNormalizesContent(t *testing.T) {
	store := NewStore()
	store.SetDocument(Document{
		Title: "Imported",
		Data: Content{
			SectionOrder: []Section{SectionSkills, Section("sidebar")},
		},
	})

	doc, err := store.Document()
	require.NoError(t, err)
	assert.NotNil(t, doc.Data.Experiences)
	assert.Equal(t, []Section{SectionSkills}, doc.Data.SectionOrder)
}
