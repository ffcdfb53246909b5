// SPDX-License-Identifier: Apache-2.0

package crypto

import "github.com/callward/callward/models"

// FieldCipher performs authenticated encryption of individual sensitive
// fields. It knows nothing about HTTP, the database, or roles; its only job
// is turning plaintext into self-describing envelopes and back.
//
// Implementations hold the process-wide symmetric key, loaded once at
// startup and immutable for the process lifetime. Key rotation means a
// restart with new configuration.
type FieldCipher interface {
	// Encrypt seals plaintext into an [models.EncryptedPayload] envelope
	// using AES-256-GCM with a fresh random 96-bit nonce per call.
	//
	// Empty input yields the sentinel "no data" payload instead of an
	// envelope, so callers cannot distinguish "field was absent" from
	// "field was an encrypted empty string".
	Encrypt(plaintext string) (*models.EncryptedPayload, error)

	// Decrypt opens an envelope produced by Encrypt. It returns an error
	// wrapping [ErrDecryptionFailed] on a malformed envelope, a tampered
	// ciphertext/nonce/tag, or a wrong (rotated) key. It never panics;
	// callers treat failure as "cannot display", not as fatal.
	Decrypt(payload *models.EncryptedPayload) (string, error)
}
