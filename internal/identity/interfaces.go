// SPDX-License-Identifier: Apache-2.0

// Package identity verifies bearer tokens against the session-principal
// source of truth. Two implementations are provided: a remote verifier that
// calls the managed identity service once per request, and a local verifier
// that validates HS256-signed JWTs against a configured key. Neither caches
// anything: every request is verified fresh.
package identity

import (
	"context"

	"github.com/callward/callward/models"
)

// Verifier turns a presented bearer token into an authenticated
// [models.Principal], or fails.
type Verifier interface {
	// VerifyToken verifies token and returns the principal it belongs to.
	//
	// Every verification failure — unknown user, expired session, bad
	// signature, garbage token — collapses into [ErrInvalidToken] so the
	// response cannot be used to enumerate accounts. Transport failures
	// reaching a remote identity service return [ErrIdentityUnavailable]
	// instead, which the HTTP layer maps to a 500.
	VerifyToken(ctx context.Context, token string) (models.Principal, error)
}
