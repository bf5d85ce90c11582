package cv

import "github.com/google/uuid"

// newEntryID returns a random unique identifier for a section entry. IDs are
// never reused after deletion because each one is freshly generated.
func newEntryID() string {
	return uuid.NewString()
}
