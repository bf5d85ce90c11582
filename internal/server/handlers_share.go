package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mlefevre/cv-builder/internal/db"
	"github.com/mlefevre/cv-builder/internal/render"
)

// fetchShared reads a publicly shared CV, returning ErrShareNotFound when no
// CV is published under the id.
func (s *Server) fetchShared(ctx context.Context, shareID string) (*db.SharedCV, error) {
	shared, err := s.db.GetCVByShareID(ctx, shareID)
	if err != nil {
		return nil, fmt.Errorf("loading shared CV: %w", err)
	}
	if shared == nil {
		return nil, &ErrShareNotFound{ShareID: shareID}
	}
	return shared, nil
}

// handleCreateShare issues (or re-returns) the CV's public share id. Issuing
// is idempotent: repeated calls return the same link.
func (s *Server) handleCreateShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathCVID(w, r)
	if !ok {
		return
	}

	shareID, err := s.db.IssueShareID(r.Context(), id, userID)
	if err != nil {
		s.log.Error().Err(err).Str("cv_id", id.String()).Msg("issuing share id")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if shareID == "" {
		s.writeAPIError(w, &ErrCVNotFound{})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"shareId":  shareID,
		"shareUrl": fmt.Sprintf("%s/share/%s", s.baseURL, shareID),
	})
}

// handleDeleteShare revokes the CV's share link. The old id is gone for
// good; re-sharing issues a fresh one.
func (s *Server) handleDeleteShare(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadCV(w, r)
	if !ok {
		return
	}

	if err := s.db.RevokeShare(r.Context(), rec.ID, rec.UserID); err != nil {
		s.log.Error().Err(err).Str("cv_id", rec.ID.String()).Msg("revoking share")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if rec.ShareID != nil {
		s.drafts.DropSharedPage(r.Context(), *rec.ShareID)
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleSharedPage serves the public, read-only render of a shared CV. No
// authentication; the share id is the only credential.
func (s *Server) handleSharedPage(w http.ResponseWriter, r *http.Request) {
	shareID := r.PathValue("shareId")

	if page := s.drafts.GetSharedPage(r.Context(), shareID); page != "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
		return
	}

	shared, err := s.fetchShared(r.Context(), shareID)
	if err != nil {
		var nf *ErrShareNotFound
		if errors.As(err, &nf) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(HTTPStatus(nf))
			fmt.Fprint(w, sharedNotFoundPage)
			return
		}
		s.log.Error().Err(err).Str("share_id", shareID).Msg("loading shared CV")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	doc, err := documentFrom(&shared.CV)
	if err != nil {
		s.log.Error().Err(err).Str("share_id", shareID).Msg("decoding shared CV content")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	page, err := render.Render(doc)
	if err != nil {
		s.log.Error().Err(err).Str("share_id", shareID).Msg("rendering shared CV")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.drafts.PutSharedPage(r.Context(), shareID, page)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}

const sharedNotFoundPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>CV not found</title></head>
<body style="font-family: sans-serif; text-align: center; padding: 4rem;">
<h1>CV not found</h1>
<p>This link is invalid or has been revoked by its owner.</p>
</body>
</html>
`
