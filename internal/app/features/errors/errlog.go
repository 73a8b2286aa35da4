package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with user-facing error pages so
// handlers can fail in one line. The log message is for operators; the
// user message is what gets rendered.
type ErrorLogger struct {
	log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs err at Error level and renders a 500-class page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	w.WriteHeader(http.StatusInternalServerError)
	RenderForbidden(w, r, userMsg, backURL)
}

// LogBadRequest logs at Warn level and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	w.WriteHeader(http.StatusBadRequest)
	RenderForbidden(w, r, userMsg, backURL)
}

// LogNotFound logs at Debug level and renders the 404 page.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, logMsg string) {
	e.log.Debug(logMsg, zap.String("path", r.URL.Path))
	RenderNotFound(w, r)
}

// HTMXLogServerError logs err and answers an HTMX request with a plain
// error snippet instead of a full page swap.
func (e *ErrorLogger) HTMXLogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<div class="error-banner">` + userMsg + `</div>`))
}
