// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrForbidden is returned when an authenticated principal's role does
	// not meet the action's declared minimum.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidAction is returned for an action outside the closed
	// dispatch set.
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidParams is returned for malformed optional query
	// parameters, such as an unparseable date filter.
	ErrInvalidParams = errors.New("invalid request parameters")
)
