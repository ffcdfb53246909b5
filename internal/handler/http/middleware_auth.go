// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/internal/utils"
	"github.com/callward/callward/models"
)

// auth is the entry guard of the access-control gate: it enforces
// bearer-token authentication before any handler runs.
//
// The bearer token is extracted from the "Authorization" header and
// presented to the configured [identity.Verifier] — once per request, no
// caching. On success the verified [models.Principal] is stored in the
// request context under [utils.PrincipalCtxKey] for downstream handlers.
//
// Rejections are immediate and touch no data:
//   - absent or malformed header → 401 {"error":"Unauthorized"}
//   - token the verifier rejects → 401 {"error":"Invalid token"}
//   - identity service unreachable → 500 {"error":"Internal server error"}
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			h.writeError(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			h.writeError(w, err)
			return
		}

		ctx := r.Context()
		principal, err := h.verifier.VerifyToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token verification failed")
			h.writeError(w, err)
			return
		}

		// Store the verified principal so downstream handlers never
		// re-parse the token.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form
// "Authorization: <scheme> <token>".
//
// It returns [ErrInvalidAuthorizationHeader] when the header has fewer
// than two space-separated parts and [ErrEmptyToken] when the token part
// is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

// writeError translates an internal error into the uniform JSON error body
// with its mapped status code.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: publicMessageFromError(err)}, statusFromError(err))
}
