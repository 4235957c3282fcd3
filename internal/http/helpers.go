package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// --- Response Types ---

// Envelope is the uniform JSON response shape for every API endpoint:
// a success flag, an optional payload, and an optional message or error.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// --- Success Response Helpers ---

// respondOK sends a 200 OK envelope with data and a message.
func respondOK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// respondCreated sends a 201 Created envelope with data and a message.
func respondCreated(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

// respondMessage sends a 200 OK envelope carrying only a message.
func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// --- Error Response Helpers ---

// respondBadRequest logs the rejected input and sends a 400 envelope.
func respondBadRequest(c *gin.Context, message string) {
	logFailure(c, http.StatusBadRequest, message)
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: message})
}

// respondNotFound logs the miss and sends a 404 envelope.
func respondNotFound(c *gin.Context, message string) {
	logFailure(c, http.StatusNotFound, message)
	c.JSON(http.StatusNotFound, Envelope{Success: false, Error: message})
}

// respondServerError logs the underlying error and sends a 500 envelope.
// The message is user-facing; err is appended only when includeDetail is
// set (development mode).
func respondServerError(c *gin.Context, err error, message string, includeDetail bool) {
	slog.Error(message,
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("err", err.Error()),
	)
	body := message
	if includeDetail {
		body = message + ": " + err.Error()
	}
	c.JSON(http.StatusInternalServerError, Envelope{Success: false, Error: body})
}

// logFailure records a client-fault response before it is sent.
func logFailure(c *gin.Context, status int, message string) {
	slog.Warn(message,
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", status),
	)
}
