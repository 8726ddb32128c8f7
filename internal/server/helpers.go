package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/acolhe/acolhe/internal/api"
	"github.com/acolhe/acolhe/internal/notify"
	"github.com/acolhe/acolhe/internal/service"
)

var log = logrus.WithField("layer", "http").WithField("package", "server")

var errInvalidRequest = errors.New("invalid request")

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(v); err != nil {
		return fmt.Errorf("%w: failed to decode body: %s", errInvalidRequest, err)
	}

	return nil
}

func pathID(r *http.Request) (string, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return "", fmt.Errorf("%w: invalid id", errInvalidRequest)
	}

	return id.String(), nil
}

func message(r *http.Request) string {
	n, _ := notify.Last(r.Context())
	return n.Message
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err string) {
	api.WriteOK(w, status, api.Error{
		Error:   err,
		Message: message(r),
	})
}

// writeServiceError maps service errors to http statuses.
// Partial delete goes first since its cause may wrap any other error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, what string) {
	switch {
	case errors.Is(err, service.ErrPartialDelete):
		writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("%s partially deleted, retry with finish=true", what))
	case errors.Is(err, service.ErrValidation):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthenticated):
		writeError(w, r, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, service.ErrNotFound):
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("%s not found", what))
	case errors.Is(err, service.ErrAlreadyExists):
		writeError(w, r, http.StatusConflict, fmt.Sprintf("%s already exists", what))
	case errors.Is(err, service.ErrListUnavailable):
		log.WithError(err).Warn("list is unavailable")
		writeError(w, r, http.StatusServiceUnavailable, fmt.Sprintf("%s are unavailable", what))
	default:
		api.WriteInternalErrorf(r.Context(), w, "%s: %s", what, err.Error())
	}
}
