// SPDX-License-Identifier: Apache-2.0

package crypto

import "errors"

// Sentinel errors returned by the field cipher. Callers match against them
// with [errors.Is].
var (
	// ErrKeyMissing is returned by [KeyFromConfig] when neither a raw
	// base64 key nor a passphrase/salt pair is configured. The cipher must
	// never silently operate with an empty or default key, so this error
	// is fatal at startup.
	ErrKeyMissing = errors.New("encryption key is not configured")

	// ErrInvalidKeySize is returned when the configured key material does
	// not decode to exactly 32 bytes (256 bits).
	ErrInvalidKeySize = errors.New("encryption key must be 32 bytes")

	// ErrDecryptionFailed wraps every decryption failure: malformed
	// envelope shape, undecodable base64, authentication-tag mismatch, or
	// a wrong/rotated key. The affected field is rendered as a failure
	// placeholder; the request as a whole never fails because of it.
	ErrDecryptionFailed = errors.New("decryption failed")
)
