package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewShareID_ShapeAndAlphabet(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newShareID()
		assert.Len(t, id, shareIDLength)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(shareIDAlphabet, r), "unexpected rune %q", r)
		}
		seen[id] = true
	}
	// 64^10 ids; a hundred draws colliding would mean a broken generator.
	assert.Len(t, seen, 100)
}
