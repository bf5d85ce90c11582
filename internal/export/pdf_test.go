package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mlefevre/cv-builder/internal/cv"
)

func TestOptions_Normalized(t *testing.T) {
	opts := Options{}.normalized()
	assert.Equal(t, 2.0, opts.Scale)
	assert.Equal(t, 60*time.Second, opts.Timeout)

	opts = Options{Scale: 1.5, Timeout: -time.Second}.normalized()
	assert.Equal(t, 2.0, opts.Scale)
	assert.Equal(t, 60*time.Second, opts.Timeout)

	opts = Options{Scale: 3, Timeout: 10 * time.Second}.normalized()
	assert.Equal(t, 3.0, opts.Scale)
	assert.Equal(t, 10*time.Second, opts.Timeout)
}

func TestFileName_FromPersonalInfo(t *testing.T) {
	name := FileName(cv.PersonalInfo{FirstName: "Marie", LastName: "Lefèvre"})
	assert.Equal(t, "CV_Marie_Lefèvre.pdf", name)
}

func TestFileName_SanitizesSeparators(t *testing.T) {
	name := FileName(cv.PersonalInfo{FirstName: "Jean Pierre", LastName: "d'Arc/Orléans"})
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "'")
}

func TestFileName_EmptyIdentityFallsBack(t *testing.T) {
	assert.Equal(t, "cv.pdf", FileName(cv.PersonalInfo{}))
	assert.Equal(t, "cv.pdf", FileName(cv.PersonalInfo{FirstName: "  "}))
}
