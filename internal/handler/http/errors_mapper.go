// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"github.com/callward/callward/internal/identity"
	"github.com/callward/callward/internal/service"
	"github.com/callward/callward/internal/store"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	identity.ErrInvalidToken:      http.StatusUnauthorized,

	service.ErrForbidden: http.StatusForbidden,

	ErrMissingAction:         http.StatusBadRequest,
	service.ErrInvalidAction: http.StatusBadRequest,
	service.ErrInvalidParams: http.StatusBadRequest,

	store.ErrRecordNotFound: http.StatusNotFound,

	identity.ErrIdentityUnavailable: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:       http.StatusInternalServerError,
	store.ErrExecutingQuery:         http.StatusInternalServerError,
	store.ErrScanningRow:            http.StatusInternalServerError,
	store.ErrScanningRows:           http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessageFromError maps an internal error onto the fixed set of
// response bodies. Messages are deliberately generic: the real cause is
// logged server-side and never echoed to the caller, and 401 responses
// never distinguish "unknown user" from "bad token".
func publicMessageFromError(err error) string {
	switch {
	case errors.Is(err, identity.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, ErrEmptyAuthorizationHeader),
		errors.Is(err, ErrInvalidAuthorizationHeader),
		errors.Is(err, ErrEmptyToken):
		return "Unauthorized"
	case errors.Is(err, service.ErrForbidden):
		return "Forbidden"
	case errors.Is(err, ErrMissingAction), errors.Is(err, service.ErrInvalidAction):
		return "Invalid action"
	case errors.Is(err, service.ErrInvalidParams):
		return "Invalid request parameters"
	case errors.Is(err, store.ErrRecordNotFound):
		return "Not found"
	default:
		return "Internal server error"
	}
}
