// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingEncryptionKey indicates that neither a raw encryption key
	// nor a passphrase/salt pair was configured. The proxy refuses to run
	// without field-encryption key material.
	ErrMissingEncryptionKey = errors.New("missing encryption key configuration")

	// ErrMissingTokenVerifier indicates that no token verification source
	// is configured: no identity-service base URL and no local sign
	// key/issuer pair.
	ErrMissingTokenVerifier = errors.New("missing token verifier configuration")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
