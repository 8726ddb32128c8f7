// Package api contains helpers for writing JSON responses.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
	// Message is a user-facing notification.
	Message string `json:"message,omitempty"`
}

// WriteOK writes v as JSON body with status code.
func WriteOK(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("failed to write response")
	}
}

// WriteError writes error message as JSON body with status code.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteOK(w, status, Error{Error: message})
}

// WriteInternalErrorf logs the error and writes generic internal error to the client.
func WriteInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	logrus.WithField("request_id", middleware.GetReqID(ctx)).Errorf(format, args...)

	WriteError(w, http.StatusInternalServerError, fmt.Sprintf("internal error: %s", http.StatusText(http.StatusInternalServerError)))
}
