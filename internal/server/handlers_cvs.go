package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mlefevre/cv-builder/internal/cv"
	"github.com/mlefevre/cv-builder/internal/db"
	"github.com/mlefevre/cv-builder/internal/server/middleware"
)

// cvPayload is the API representation of a stored CV, with the content blob
// inlined as JSON rather than the raw bytes the db layer carries.
type cvPayload struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	Title       string          `json:"title"`
	TemplateID  string          `json:"templateId"`
	ColorScheme string          `json:"colorScheme"`
	FontFamily  string          `json:"fontFamily"`
	ShareID     *string         `json:"shareId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Data        json.RawMessage `json:"data"`
}

func payloadFrom(rec *db.CV) cvPayload {
	return cvPayload{
		ID:          rec.ID,
		UserID:      rec.UserID,
		Title:       rec.Title,
		TemplateID:  rec.TemplateID,
		ColorScheme: rec.ColorScheme,
		FontFamily:  rec.FontFamily,
		ShareID:     rec.ShareID,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		Data:        json.RawMessage(rec.Data),
	}
}

// payloadFromDocument serializes a domain document into the API shape, for
// responses served from the draft mirror rather than a stored record.
func payloadFromDocument(doc cv.Document) (cvPayload, error) {
	data, err := json.Marshal(doc.Data)
	if err != nil {
		return cvPayload{}, err
	}
	p := cvPayload{
		ID:          doc.ID,
		UserID:      doc.OwnerID,
		Title:       doc.Title,
		TemplateID:  doc.TemplateID,
		ColorScheme: doc.ColorScheme,
		FontFamily:  doc.FontFamily,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
		Data:        data,
	}
	if doc.ShareID != "" {
		shareID := doc.ShareID
		p.ShareID = &shareID
	}
	return p, nil
}

// cvRequest is the caller-settable subset of a CV. Zero-valued fields keep
// their current (or default) values.
type cvRequest struct {
	Title       string          `json:"title"`
	TemplateID  string          `json:"templateId"`
	ColorScheme string          `json:"colorScheme"`
	FontFamily  string          `json:"fontFamily"`
	Data        json.RawMessage `json:"data"`
}

// documentFrom rebuilds the domain document from a stored record.
func documentFrom(rec *db.CV) (cv.Document, error) {
	content, err := cv.ParseContent(rec.Data)
	if err != nil {
		return cv.Document{}, err
	}

	doc := cv.Document{
		ID:          rec.ID,
		OwnerID:     rec.UserID,
		Title:       rec.Title,
		TemplateID:  rec.TemplateID,
		ColorScheme: rec.ColorScheme,
		FontFamily:  rec.FontFamily,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		Data:        content,
	}
	if rec.ShareID != nil {
		doc.ShareID = *rec.ShareID
	}
	return doc, nil
}

// requireUser resolves the authenticated user from the request context.
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// pathCVID parses the {id} path segment. An unparseable id is reported the
// same way as a missing record.
func pathCVID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		nf := &ErrCVNotFound{}
		writeError(w, HTTPStatus(nf), nf.Error())
		return uuid.Nil, false
	}
	return id, true
}

// fetchCV retrieves one CV scoped to its owner, returning ErrCVNotFound for
// missing and foreign records alike.
func (s *Server) fetchCV(ctx context.Context, id, ownerID uuid.UUID) (*db.CV, error) {
	rec, err := s.db.GetCV(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("loading CV %s: %w", id, err)
	}
	if rec == nil {
		return nil, &ErrCVNotFound{}
	}
	return rec, nil
}

// loadCV fetches one owner-scoped CV and writes the error response on
// failure.
func (s *Server) loadCV(w http.ResponseWriter, r *http.Request) (*db.CV, bool) {
	userID, ok := requireUser(w, r)
	if !ok {
		return nil, false
	}
	id, ok := pathCVID(w, r)
	if !ok {
		return nil, false
	}

	rec, err := s.fetchCV(r.Context(), id, userID)
	if err != nil {
		s.writeAPIError(w, err)
		return nil, false
	}
	return rec, true
}

// handleListCVs returns the caller's CVs, most recently updated first.
func (s *Server) handleListCVs(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	records, err := s.db.ListCVs(r.Context(), userID)
	if err != nil {
		s.log.Error().Err(err).Msg("listing CVs")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	payloads := make([]cvPayload, 0, len(records))
	for i := range records {
		payloads = append(payloads, payloadFrom(&records[i]))
	}
	writeJSON(w, http.StatusOK, payloads)
}

// handleCreateCV creates a CV. All body fields are optional; omitted ones
// take the document defaults.
func (s *Server) handleCreateCV(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req cvRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := db.CVInput{
		Title:       req.Title,
		TemplateID:  req.TemplateID,
		ColorScheme: req.ColorScheme,
		FontFamily:  req.FontFamily,
	}
	if input.Title == "" {
		input.Title = cv.DefaultTitle
	}
	if input.TemplateID == "" {
		input.TemplateID = cv.DefaultTemplateID
	}
	if input.ColorScheme == "" {
		input.ColorScheme = cv.DefaultColorScheme
	}
	if input.FontFamily == "" {
		input.FontFamily = cv.DefaultFontFamily
	}

	content := cv.NewContent()
	if len(req.Data) > 0 {
		parsed, err := cv.ParseContent(req.Data)
		if err != nil {
			s.writeContentError(w, err)
			return
		}
		content = parsed
	}
	data, err := json.Marshal(content)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	input.Data = data

	rec, err := s.db.CreateCV(r.Context(), userID, input)
	if err != nil {
		s.log.Error().Err(err).Msg("creating CV")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, payloadFrom(rec))
}

// handleGetCV returns a single owned CV. An editing session may have
// mirrored state newer than the last save; the mirror wins when its
// UpdatedAt is ahead of the stored record.
func (s *Server) handleGetCV(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadCV(w, r)
	if !ok {
		return
	}

	draft, err := s.drafts.LoadDraft(r.Context(), rec.UserID.String(), rec.ID.String())
	if err != nil {
		s.log.Warn().Err(err).Str("cv_id", rec.ID.String()).Msg("reading draft mirror")
	}
	if draft != nil && draft.UpdatedAt.After(rec.UpdatedAt) {
		payload, perr := payloadFromDocument(*draft)
		if perr == nil {
			writeJSON(w, http.StatusOK, payload)
			return
		}
		s.log.Warn().Err(perr).Str("cv_id", rec.ID.String()).Msg("serializing draft")
	}

	writeJSON(w, http.StatusOK, payloadFrom(rec))
}

// handleUpdateCV replaces a CV's caller-settable fields. Missing fields keep
// their stored values; the content blob is validated and normalized before
// it is written. Concurrent writers race under last-write-wins.
func (s *Server) handleUpdateCV(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadCV(w, r)
	if !ok {
		return
	}

	var req cvRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, err := documentFrom(rec)
	if err != nil {
		s.log.Error().Err(err).Str("cv_id", rec.ID.String()).Msg("decoding stored CV content")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if req.Title != "" {
		doc.Title = req.Title
	}
	if req.TemplateID != "" {
		doc.TemplateID = req.TemplateID
	}
	if req.ColorScheme != "" {
		doc.ColorScheme = req.ColorScheme
	}
	if req.FontFamily != "" {
		doc.FontFamily = req.FontFamily
	}
	if len(req.Data) > 0 {
		content, perr := cv.ParseContent(req.Data)
		if perr != nil {
			s.writeContentError(w, perr)
			return
		}
		doc.Data = content
	}

	// Run the updated document through the store so normalization applies
	// and the draft mirror sees the new state.
	store := cv.NewStore()
	store.Subscribe(s.drafts.DraftObserver(r.Context()))
	store.SetDocument(doc)
	normalized, err := store.Document()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	data, err := json.Marshal(normalized.Data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	updated, err := s.db.UpdateCV(r.Context(), rec.ID, rec.UserID, db.CVInput{
		Title:       normalized.Title,
		TemplateID:  normalized.TemplateID,
		ColorScheme: normalized.ColorScheme,
		FontFamily:  normalized.FontFamily,
		Data:        data,
	})
	if err != nil {
		s.log.Error().Err(err).Str("cv_id", rec.ID.String()).Msg("updating CV")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if updated == nil {
		s.writeAPIError(w, &ErrCVNotFound{})
		return
	}

	// The public page, if any, renders stale content until re-fetched.
	if rec.ShareID != nil {
		s.drafts.DropSharedPage(r.Context(), *rec.ShareID)
	}

	writeJSON(w, http.StatusOK, payloadFrom(updated))
}

// handleDeleteCV deletes an owned CV and its cached artifacts.
func (s *Server) handleDeleteCV(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadCV(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteCV(r.Context(), rec.ID, rec.UserID); err != nil {
		s.log.Error().Err(err).Str("cv_id", rec.ID.String()).Msg("deleting CV")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.drafts.DropDraft(r.Context(), rec.UserID.String(), rec.ID.String())
	if rec.ShareID != nil {
		s.drafts.DropSharedPage(r.Context(), *rec.ShareID)
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// writeContentError reports a content blob that failed schema validation.
// Anything ParseContent rejects is a client error.
func (s *Server) writeContentError(w http.ResponseWriter, err error) {
	var ve *cv.ValidationError
	if errors.As(err, &ve) {
		s.writeAPIError(w, ve)
		return
	}
	writeError(w, http.StatusBadRequest, "Invalid request body")
}
