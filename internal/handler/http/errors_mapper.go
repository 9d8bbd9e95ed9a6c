package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is matched in order, so specific validation errors come
// before the generic ErrInvalidDataProvided they are wrapped with.
var errorStatusMap = []errorStatus{
	{ErrInvalidItemID, http.StatusBadRequest, msgInvalidID},
	{utils.ErrInvalidJSONBody, http.StatusBadRequest, msgInvalidJSON},
	{service.ErrValidationEmptyTitle, http.StatusBadRequest, msgTitleRequired},
	{service.ErrValidationInvalidItemID, http.StatusBadRequest, msgInvalidID},
	{validators.ErrEmptyEmail, http.StatusBadRequest, msgCredentialsRequired},
	{validators.ErrEmptyPassword, http.StatusBadRequest, msgCredentialsRequired},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, msgInvalidData},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, msgInvalidCredentials},
	{service.ErrUnauthenticated, http.StatusUnauthorized, msgUnauthorized},
	{ErrNoSessionCookie, http.StatusUnauthorized, msgUnauthorized},

	{store.ErrItemNotFound, http.StatusNotFound, msgNotFound},
	{store.ErrEmailAlreadyExists, http.StatusConflict, msgEmailAlreadyRegistered},
}

// statusFromError returns the HTTP status and client message for err.
// Anything unmapped, storage failures included, is a 500.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, msgInternal
}
