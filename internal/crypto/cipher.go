// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the authenticated-encryption module of the
// proxy: AES-256-GCM field encryption producing self-describing envelopes
// (algorithm tag, IV, authentication tag, ciphertext) that can be embedded
// directly in JSON responses.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/callward/callward/models"
	"golang.org/x/crypto/argon2"
)

const (
	keySize = 32 // AES-256
	tagSize = 16 // GCM authentication tag, 128 bits
)

// fieldCipher is the private implementation of [FieldCipher]. The AEAD is
// built once at construction; per-call state is limited to the random nonce.
type fieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher constructs a [FieldCipher] from 32 bytes of key material.
// It fails fast on a wrong-sized key so the process never starts with a
// weak or empty key.
func NewFieldCipher(key []byte) (FieldCipher, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &fieldCipher{aead: aead}, nil
}

// KeyFromConfig resolves the process-wide encryption key from configured
// material. A base64-encoded raw key takes precedence; otherwise the key is
// derived from a passphrase and salt with Argon2id using the OWASP (2024)
// parameters (1 iteration, 64 MiB, 4 threads, 256-bit output).
//
// Returns [ErrKeyMissing] if neither source is configured and
// [ErrInvalidKeySize] if the decoded raw key is not 32 bytes.
func KeyFromConfig(encodedKey, passphrase, salt string) ([]byte, error) {
	if encodedKey != "" {
		key, err := base64.StdEncoding.DecodeString(encodedKey)
		if err != nil {
			return nil, fmt.Errorf("decode encryption key: %w", err)
		}
		if len(key) != keySize {
			return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
		}
		return key, nil
	}

	if passphrase != "" && salt != "" {
		return argon2.IDKey([]byte(passphrase), []byte(salt), 1, 64*1024, 4, keySize), nil
	}

	return nil, ErrKeyMissing
}

// Encrypt implements [FieldCipher]. The envelope layout is:
//
//	algorithm  = "AES-256-GCM"
//	iv         = base64(12 random bytes)
//	auth_tag   = base64(16-byte GCM tag)
//	ciphertext = base64(ciphertext without tag)
//
// The nonce is read fresh from the OS CSPRNG on every call; it is never
// derived from the plaintext. Empty input returns the sentinel payload from
// [models.NoDataPayload] instead of an envelope.
func (c *fieldCipher) Encrypt(plaintext string) (*models.EncryptedPayload, error) {
	if plaintext == "" {
		return models.NoDataPayload(), nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)

	// Seal appends the tag to the ciphertext; the envelope keeps them in
	// separate fields so it is self-describing and verifiable.
	split := len(sealed) - tagSize
	return &models.EncryptedPayload{
		Algorithm:  models.AlgorithmAESGCM,
		IV:         base64.StdEncoding.EncodeToString(nonce),
		AuthTag:    base64.StdEncoding.EncodeToString(sealed[split:]),
		Ciphertext: base64.StdEncoding.EncodeToString(sealed[:split]),
	}, nil
}

// Decrypt implements [FieldCipher]. The sentinel "no data" payload decrypts
// to the empty string. Every failure path wraps [ErrDecryptionFailed].
func (c *fieldCipher) Decrypt(payload *models.EncryptedPayload) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("%w: nil payload", ErrDecryptionFailed)
	}
	if payload.IsNoData() {
		return "", nil
	}
	if payload.Algorithm != models.AlgorithmAESGCM {
		return "", fmt.Errorf("%w: unknown algorithm %q", ErrDecryptionFailed, payload.Algorithm)
	}
	if payload.IV == "" || payload.AuthTag == "" || payload.Ciphertext == "" {
		return "", fmt.Errorf("%w: incomplete envelope", ErrDecryptionFailed)
	}

	nonce, err := base64.StdEncoding.DecodeString(payload.IV)
	if err != nil {
		return "", fmt.Errorf("%w: decode iv: %w", ErrDecryptionFailed, err)
	}
	if len(nonce) != c.aead.NonceSize() {
		return "", fmt.Errorf("%w: bad iv length %d", ErrDecryptionFailed, len(nonce))
	}

	tag, err := base64.StdEncoding.DecodeString(payload.AuthTag)
	if err != nil {
		return "", fmt.Errorf("%w: decode auth tag: %w", ErrDecryptionFailed, err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(payload.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode ciphertext: %w", ErrDecryptionFailed, err)
	}

	// Recombine ciphertext and tag into the form Open expects.
	plaintext, err := c.aead.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}
