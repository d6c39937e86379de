package web

// errors.go provides unified error response handling for the web layer.
//
// Every failure from the service surfaces as a single JSON status
// payload: the technical error is logged server-side with the request ID,
// and the client gets the user-friendly message, action, and support code
// from agenda.MapError. Nothing propagates upward to crash the process.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/agendaboard/internal/agenda"
	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the JSON structure for API error responses. It carries
// both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs the technical error with request context and writes
// the mapped user-facing message with the given status code.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := agenda.MapError(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encodeErr := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   userMsg.Message,
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
	}); encodeErr != nil {
		slog.Error("error response encode failed", "error", encodeErr)
	}
}

// statusForImportError picks the HTTP status for an import pipeline
// failure. The parser gate maps to 503 (the capability is not there yet);
// everything the user can fix by changing the file maps to 400.
func statusForImportError(err error) int {
	if errors.Is(err, agenda.ErrParserUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}

// writeError writes a minimal JSON error response for middleware-level
// rejections that never reach a service call.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		slog.Error("error response encode failed", "error", err)
	}
}
