package cv

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/content.schema.json
var contentSchema []byte

// ValidationError reports schema violations in a serialized content blob.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("content validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateContentJSON checks a serialized content blob against the content
// schema. Structural problems (wrong types, missing entry IDs, unknown skill
// levels) are reported; unknown section-order tokens are not an error here,
// they are filtered by Normalize.
func ValidateContentJSON(raw []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(contentSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("failed to validate content: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}

// ParseContent deserializes and normalizes a content blob, validating it
// against the schema first.
func ParseContent(raw []byte) (Content, error) {
	if err := ValidateContentJSON(raw); err != nil {
		return Content{}, err
	}
	var c Content
	if err := json.Unmarshal(raw, &c); err != nil {
		return Content{}, fmt.Errorf("failed to parse content: %w", err)
	}
	c.Normalize()
	return c, nil
}

// DuplicateEntryIDs returns the IDs that appear more than once within any
// single section sequence. Uniqueness is scoped per section.
func DuplicateEntryIDs(c Content) []string {
	var dups []string
	check := func(ids []string) {
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				dups = append(dups, id)
			}
			seen[id] = true
		}
	}
	check(collectIDs(c.Experiences))
	check(collectIDs(c.Education))
	check(collectIDs(c.Skills))
	check(collectIDs(c.Languages))
	check(collectIDs(c.Projects))
	check(collectIDs(c.CustomSections))
	return dups
}

func collectIDs[E Entry](entries []E) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.EntryID())
	}
	return ids
}
