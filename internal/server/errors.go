// Package server provides the HTTP REST API for the CV builder.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/mlefevre/cv-builder/internal/cv"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrCVNotFound indicates the CV does not exist or is not owned by the caller.
// Ownership failures deliberately look identical to missing records, so the
// message never names an id.
type ErrCVNotFound struct{}

func (e *ErrCVNotFound) Error() string {
	return "CV not found"
}

// ErrShareNotFound indicates no CV is published under the given share id.
type ErrShareNotFound struct {
	ShareID string
}

func (e *ErrShareNotFound) Error() string {
	return fmt.Sprintf("shared CV not found: %s", e.ShareID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrCVNotFound, *ErrShareNotFound:
		return http.StatusNotFound
	case *cv.ValidationError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
