// SPDX-License-Identifier: Apache-2.0

package identity

import "errors"

var (
	// ErrInvalidToken is returned for every verification failure. It is
	// deliberately indistinguishable between "no such user", "expired
	// session", and "malformed token".
	ErrInvalidToken = errors.New("invalid token")

	// ErrIdentityUnavailable is returned when the remote identity service
	// cannot be reached at all. Unlike [ErrInvalidToken] it signals an
	// upstream failure, not a rejected credential.
	ErrIdentityUnavailable = errors.New("identity service unavailable")
)
