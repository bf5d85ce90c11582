package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mlefevre/cv-builder/internal/cv"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, HTTPStatus(&ErrEmailAlreadyExists{Email: "a@b.c"}))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrInvalidCredentials{}))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrPasswordMismatch{}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrUserNotFound{UserID: uuid.New()}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrCVNotFound{}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrShareNotFound{ShareID: "abc"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&cv.ValidationError{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ErrEmailAlreadyExists{Email: "a@b.c"}).Error(), "a@b.c")
	assert.Equal(t, "invalid email or password", (&ErrInvalidCredentials{}).Error())
	// The envelope message never names an id; ownership failures must be
	// indistinguishable from missing records.
	assert.Equal(t, "CV not found", (&ErrCVNotFound{}).Error())
	assert.Contains(t, (&ErrShareNotFound{ShareID: "abc123"}).Error(), "abc123")
}
