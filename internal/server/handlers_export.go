package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mlefevre/cv-builder/internal/cv"
	"github.com/mlefevre/cv-builder/internal/export"
	"github.com/mlefevre/cv-builder/internal/render"
	"github.com/mlefevre/cv-builder/internal/theme"
)

// handlePreview returns the rendered HTML for an owned CV, exactly as the
// export pipeline will print it.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadDocument(w, r)
	if !ok {
		return
	}

	page, err := render.Render(doc)
	if err != nil {
		s.log.Error().Err(err).Msg("rendering preview")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}

// handleExportPDF renders the CV and prints it to PDF through headless
// Chrome. The response is a file download named after the CV's owner line.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadDocument(w, r)
	if !ok {
		return
	}

	page, err := render.Render(doc)
	if err != nil {
		s.log.Error().Err(err).Msg("rendering for export")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	pdf, err := export.PDF(r.Context(), page, export.Options{})
	if err != nil {
		if errors.Is(err, export.ErrContainerMissing) {
			s.log.Error().Err(err).Str("template", doc.TemplateID).Msg("rendered page has no preview container")
		} else {
			s.log.Error().Err(err).Msg("printing PDF")
		}
		writeError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(doc.Data.PersonalInfo)))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
	if _, err := w.Write(pdf); err != nil {
		s.log.Warn().Err(err).Msg("writing PDF response")
	}
}

// handleExportText returns the ATS-friendly plain text projection of the CV.
func (s *Server) handleExportText(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadDocument(w, r)
	if !ok {
		return
	}

	page, err := render.Render(doc)
	if err != nil {
		s.log.Error().Err(err).Msg("rendering for text export")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	text, err := render.PlainText(page)
	if err != nil {
		s.log.Error().Err(err).Msg("extracting plain text")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	name := strings.TrimSuffix(export.FileName(doc.Data.PersonalInfo), ".pdf") + ".txt"
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	fmt.Fprint(w, text)
}

// loadDocument fetches an owned CV and rebuilds its domain document.
func (s *Server) loadDocument(w http.ResponseWriter, r *http.Request) (cv.Document, bool) {
	rec, ok := s.loadCV(w, r)
	if !ok {
		return cv.Document{}, false
	}

	doc, err := documentFrom(rec)
	if err != nil {
		s.log.Error().Err(err).Str("cv_id", rec.ID.String()).Msg("decoding stored CV content")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return cv.Document{}, false
	}
	return doc, true
}

// templateInfo describes one template variant for the catalog endpoint.
type templateInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// handleListTemplates returns the template variants and theme tables clients
// pick from. Static data; no authentication required.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	templates := make([]templateInfo, 0)
	for _, t := range render.Templates() {
		templates = append(templates, templateInfo{ID: t.ID(), Name: t.Name()})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"templates":    templates,
		"colorSchemes": theme.ColorSchemes,
		"fontFamilies": theme.FontPairings,
	})
}
