package http

import (
	"fmt"
	"io"
	"net/http"
)

// handleEntry serves reads and writes of a single day's entry.
// GET /api/entry?date=YYYY-MM-DD returns the stored or default entry;
// POST replaces the whole entry for the date in the body.
func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		date := dateParam(r.URL.Query())
		writeJSON(w, http.StatusOK, map[string]any{
			"date":  date,
			"entry": s.svc.Entry(date),
		})
	case http.MethodPost:
		date, input, err := decodeEntryBody(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"outcome": "BadRequest",
				"error":   "malformed request body",
			})
			return
		}
		entry, err := s.svc.SaveEntry(r.Context(), date, input)
		if err != nil {
			writeError(w, err)
			return
		}
		s.invalidateDerived()
		writeJSON(w, http.StatusOK, map[string]any{
			"date":  date,
			"entry": entry,
		})
	default:
		requireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// handleCopyPrevious copies the previous day's entry onto the given date.
func (s *Server) handleCopyPrevious(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	date := dateParam(r.URL.Query())
	entry, err := s.svc.CopyPreviousDay(r.Context(), date)
	if err != nil {
		writeError(w, err)
		return
	}
	s.invalidateDerived()
	writeJSON(w, http.StatusOK, map[string]any{
		"date":  date,
		"entry": entry,
	})
}

// handleExport streams the whole ledger as a pretty JSON download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	data, filename, err := s.svc.Export()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleImport replaces the whole ledger from the uploaded JSON body,
// all-or-nothing.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"outcome": "BadRequest",
			"error":   "unreadable request body",
		})
		return
	}
	count, err := s.svc.Import(r.Context(), raw)
	if err != nil {
		writeError(w, err)
		return
	}
	s.invalidateDerived()
	writeJSON(w, http.StatusOK, map[string]any{
		"imported": count,
	})
}
