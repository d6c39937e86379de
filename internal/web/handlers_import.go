package web

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/JonMunkholm/agendaboard/internal/agenda"
	"github.com/JonMunkholm/agendaboard/internal/spreadsheet"
)

// handleImport processes a spreadsheet upload: one multipart file, read
// in full, handed to the import pipeline. On any pipeline failure the
// table is left unchanged and the mapped status message is returned.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Import.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	result, err := s.service.Import(r.Context(), header.Filename, data)
	if err != nil {
		// Zero valid rows is informational: nothing was added, but the
		// upload itself did not fail.
		if errors.Is(err, agenda.ErrNoValidRows) {
			userMsg := agenda.MapError(err)
			writeJSON(w, map[string]interface{}{
				"status":  "no_valid_rows",
				"message": userMsg.Message,
				"code":    userMsg.Code,
				"result":  result,
			})
			return
		}
		s.respondError(w, r, err, statusForImportError(err))
		return
	}

	writeJSON(w, map[string]interface{}{
		"status": "imported",
		"result": result,
	})
}

// handleExport streams the current table as an .xlsx workbook.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	rows := s.service.Rows()

	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string{row.Time, row.Department, row.Issue, row.Presenter}
	}

	buf, err := spreadsheet.Write(agenda.RequiredColumns, records)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("agenda_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if _, err := w.Write(buf.Bytes()); err != nil {
		// Headers already sent, nothing left to do but log
		slog.Error("export write failed", "error", err)
	}
}
