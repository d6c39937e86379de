package web

import (
	"encoding/json"
	"net/http"

	"github.com/JonMunkholm/agendaboard/internal/agenda"
	"github.com/go-chi/chi/v5"
)

// handleHealth reports liveness and whether the spreadsheet parser is
// ready, so the UI knows when to enable the upload control.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":       "ok",
		"parser_ready": s.service.ParserReady(),
	})
}

// handleListRows returns the table contents in display order, plus the
// currently highlighted row (cosmetic, session-only).
func (s *Server) handleListRows(w http.ResponseWriter, r *http.Request) {
	rows := s.service.Rows()
	if rows == nil {
		rows = []agenda.Row{}
	}

	writeJSON(w, map[string]interface{}{
		"rows":        rows,
		"highlighted": s.service.Highlighted(),
	})
}

// handleAddRow creates a row from manual entry. All four fields are
// required; an incomplete submission is rejected and the table unchanged.
func (s *Server) handleAddRow(w http.ResponseWriter, r *http.Request) {
	var fields agenda.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	row, err := s.service.AddRow(r.Context(), fields)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, row)
}

// handleUpdateRow replaces the content fields of an existing row. An
// unknown ID is a no-op, reported in the response rather than failed.
func (s *Server) handleUpdateRow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing row ID")
		return
	}

	var fields agenda.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.service.UpdateRow(r.Context(), id, fields)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]interface{}{
		"status":  "saved",
		"updated": updated,
	})
}

// handleDeleteRow removes a row. The confirmation step lives in the UI;
// by the time the request arrives the user has already confirmed.
func (s *Server) handleDeleteRow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing row ID")
		return
	}

	deleted := s.service.DeleteRow(r.Context(), id)

	writeJSON(w, map[string]interface{}{
		"status":  "deleted",
		"deleted": deleted,
	})
}

// handleToggleHighlight flips the cosmetic highlight on a row and returns
// the currently highlighted row ID ("" when none).
func (s *Server) handleToggleHighlight(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing row ID")
		return
	}

	writeJSON(w, map[string]interface{}{
		"highlighted": s.service.ToggleHighlight(id),
	})
}
