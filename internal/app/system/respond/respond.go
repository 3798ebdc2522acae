// Package respond writes the portal's JSON response envelope.
//
// Every API endpoint answers with {"success": true, ...} on success and
// {"success": false, "message": "..."} on failure. Handlers never leak raw
// errors to clients; ErrorLogger logs the internals and sends a generic
// message.
package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// envelope is the failure body. Success bodies are endpoint-specific structs
// carrying their own Success field (see Data for the common case).
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// dataEnvelope is the common success body: {"success":true,"data":...}.
type dataEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Data writes a 200 success envelope wrapping data.
func Data(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, dataEnvelope{Success: true, Data: data})
}

// Created writes a 201 success envelope wrapping data.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, dataEnvelope{Success: true, Data: data})
}

// Fail writes a failure envelope with the given status and message.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, envelope{Success: false, Message: message})
}

// ErrorLogger logs handler errors and converts them to the 500 envelope.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger on the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs the underlying error with request context and writes
// a 500 failure envelope carrying only the user-facing message.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	Fail(w, http.StatusInternalServerError, userMsg)
}
