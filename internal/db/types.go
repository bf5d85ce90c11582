package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CV is one stored CV record. Data holds the serialized content blob; the
// server layer deserializes it into the document model.
type CV struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	TemplateID  string    `json:"templateId"`
	ColorScheme string    `json:"colorScheme"`
	FontFamily  string    `json:"fontFamily"`
	ShareID     *string   `json:"shareId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Data        []byte    `json:"-"`
}

// SharedCV is a CV read through its public share id, with the owner's
// display name for the public page header.
type SharedCV struct {
	CV
	OwnerName string `json:"ownerName"`
}

// CVInput holds the caller-settable fields of a CV record.
type CVInput struct {
	Title       string
	TemplateID  string
	ColorScheme string
	FontFamily  string
	Data        []byte
}
