// SPDX-License-Identifier: Apache-2.0

package models

// Role is the elevated-privilege label assigned to a user in the
// "role_assignments" table. A user without a row has RoleNone: absence of
// an assignment means "no elevated privilege", not an error.
type Role string

const (
	// RoleNone is the implicit role of any authenticated principal that has
	// no role_assignments row.
	RoleNone Role = ""

	// RoleAdmin grants access to every action, including tenant-wide
	// monitoring views.
	RoleAdmin Role = "admin"

	// RoleEngineer marks sales engineers. Engineer principals are
	// self-scoped on actions that enforce row ownership.
	RoleEngineer Role = "engineer"

	// RoleClient marks tenant users of the CRM UI.
	RoleClient Role = "client"
)

// RoleAssignment is a read-only view of one row in "role_assignments".
type RoleAssignment struct {
	UserID string
	Role   Role
}
