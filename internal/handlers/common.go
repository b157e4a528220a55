package handlers

import (
	"errors"
	"net/http"

	"github.com/bikefight/bikefight.github.io/internal/models"
	"github.com/bikefight/bikefight.github.io/internal/store"
)

type ErrorResponse struct {
	Error string `json:"error" example:"invalid payload"`
}

type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// Type alias so swag can resolve models in annotations.
type Participant = models.Participant

// storeErrorStatus maps the store error taxonomy onto HTTP. AlreadyResolved
// is a 400 rather than a 404: the challenge exists, the caller just lost the
// race.
func storeErrorStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrAlreadyResolved):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
