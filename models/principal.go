// SPDX-License-Identifier: Apache-2.0

package models

// Principal is the authenticated identity behind one request. It is
// re-derived from the bearer token on every request and never cached
// server-side beyond the request lifecycle.
type Principal struct {
	// UserID is the identity-service user id (the JWT "sub" claim).
	UserID string

	// Email is informational; it is present when the identity service
	// returns it and empty otherwise.
	Email string
}

// AccessContext is the outcome of a successful authorization pass: the
// principal, its resolved role, and any row-ownership scope the gate
// imposed on the dispatched action.
type AccessContext struct {
	Principal Principal

	// Role is the role resolved for this request. RoleNone when the user
	// has no role_assignments row.
	Role Role

	// EngineerScope, when non-empty, is an equality filter on the owning
	// engineer id that the orchestrator must apply to self-scoped actions.
	EngineerScope string
}
