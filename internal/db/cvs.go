package db

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const cvColumns = `id, user_id, title, template_id, color_scheme, font_family, share_id, created_at, updated_at, data`

func scanCV(row pgx.Row) (*CV, error) {
	var c CV
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.TemplateID, &c.ColorScheme, &c.FontFamily,
		&c.ShareID, &c.CreatedAt, &c.UpdatedAt, &c.Data)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCV stores a new CV for the owner and returns the stored record with
// its assigned id.
func (db *DB) CreateCV(ctx context.Context, ownerID uuid.UUID, input CVInput) (*CV, error) {
	cv, err := scanCV(db.pool.QueryRow(ctx,
		`INSERT INTO cvs (user_id, title, template_id, color_scheme, font_family, data)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+cvColumns,
		ownerID, input.Title, input.TemplateID, input.ColorScheme, input.FontFamily, input.Data,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create cv: %w", err)
	}
	return cv, nil
}

// ListCVs returns the owner's CVs, most recently updated first.
func (db *DB) ListCVs(ctx context.Context, ownerID uuid.UUID) ([]CV, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+cvColumns+` FROM cvs WHERE user_id = $1 ORDER BY updated_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cvs: %w", err)
	}
	defer rows.Close()

	cvs := []CV{}
	for rows.Next() {
		cv, err := scanCV(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cv: %w", err)
		}
		cvs = append(cvs, *cv)
	}
	return cvs, nil
}

// GetCV retrieves one CV scoped to its owner, or nil when the id does not
// exist or belongs to someone else.
func (db *DB) GetCV(ctx context.Context, id, ownerID uuid.UUID) (*CV, error) {
	cv, err := scanCV(db.pool.QueryRow(ctx,
		`SELECT `+cvColumns+` FROM cvs WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cv: %w", err)
	}
	return cv, nil
}

// UpdateCV replaces the caller-settable fields of an owned CV. Returns nil
// when the id does not exist or is not owned by ownerID.
func (db *DB) UpdateCV(ctx context.Context, id, ownerID uuid.UUID, input CVInput) (*CV, error) {
	cv, err := scanCV(db.pool.QueryRow(ctx,
		`UPDATE cvs
		 SET title = $3, template_id = $4, color_scheme = $5, font_family = $6, data = $7, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+cvColumns,
		id, ownerID, input.Title, input.TemplateID, input.ColorScheme, input.FontFamily, input.Data,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update cv: %w", err)
	}
	return cv, nil
}

// DeleteCV removes an owned CV. Deleting an id that is already gone (or was
// never owned) is not an error.
func (db *DB) DeleteCV(ctx context.Context, id, ownerID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM cvs WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete cv: %w", err)
	}
	return nil
}

// IssueShareID assigns a public share id to an owned CV, reusing the
// existing one on repeated calls. Returns "" when the CV is not owned by
// ownerID.
func (db *DB) IssueShareID(ctx context.Context, id, ownerID uuid.UUID) (string, error) {
	var shareID string
	err := db.pool.QueryRow(ctx,
		`UPDATE cvs SET share_id = COALESCE(share_id, $3)
		 WHERE id = $1 AND user_id = $2
		 RETURNING share_id`,
		id, ownerID, newShareID(),
	).Scan(&shareID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to issue share id: %w", err)
	}
	return shareID, nil
}

// RevokeShare clears the public share id of an owned CV. Idempotent.
func (db *DB) RevokeShare(ctx context.Context, id, ownerID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE cvs SET share_id = NULL WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to revoke share: %w", err)
	}
	return nil
}

// GetCVByShareID reads a publicly shared CV with its owner's display name.
// Returns nil when no CV carries the share id.
func (db *DB) GetCVByShareID(ctx context.Context, shareID string) (*SharedCV, error) {
	var s SharedCV
	err := db.pool.QueryRow(ctx,
		`SELECT c.id, c.user_id, c.title, c.template_id, c.color_scheme, c.font_family,
		        c.share_id, c.created_at, c.updated_at, c.data, u.name
		 FROM cvs c JOIN users u ON u.id = c.user_id
		 WHERE c.share_id = $1`,
		shareID,
	).Scan(&s.ID, &s.UserID, &s.Title, &s.TemplateID, &s.ColorScheme, &s.FontFamily,
		&s.ShareID, &s.CreatedAt, &s.UpdatedAt, &s.Data, &s.OwnerName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shared cv: %w", err)
	}
	return &s, nil
}

// shareIDAlphabet matches the URL-safe alphabet commonly used for short
// public identifiers.
const shareIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

const shareIDLength = 10

// newShareID generates a 10-character URL-safe public identifier.
func newShareID() string {
	buf := make([]byte, shareIDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// UUID-derived id if it somehow does.
		return uuid.NewString()[:shareIDLength]
	}
	for i, b := range buf {
		buf[i] = shareIDAlphabet[int(b)%len(shareIDAlphabet)]
	}
	return string(buf)
}
