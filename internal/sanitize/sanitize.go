// SPDX-License-Identifier: Apache-2.0

// Package sanitize filters free-form call metadata down to an explicit
// allow-list of keys and encrypts the extracted-data payload in place.
// The filter is fail-closed: anything not named in the allow-list is
// dropped silently, never passed through.
package sanitize

import (
	"encoding/json"
	"fmt"

	"github.com/callward/callward/internal/crypto"
)

// extractedDataKey is the metadata key whose value is replaced by its
// encrypted envelope rather than copied or dropped.
const extractedDataKey = "extracted_data"

// allowedKeys is the closed set of metadata keys copied forward verbatim.
var allowedKeys = []string{
	"source",
	"retry",
	"lead_name",
	"campaign_id",
	"status",
	"error",
	"retry_count",
	"voicemail",
}

// Sanitizer projects arbitrary metadata maps onto the allow-list.
type Sanitizer struct {
	cipher crypto.FieldCipher
}

// NewSanitizer constructs a [Sanitizer] that encrypts extracted data with
// the given cipher.
func NewSanitizer(cipher crypto.FieldCipher) *Sanitizer {
	return &Sanitizer{cipher: cipher}
}

// Sanitize returns a new map containing only the allow-listed keys of
// metadata, with the extracted-data value replaced by its encrypted
// envelope. Nil input returns nil. The function never fails for well-formed
// input: a key of unexpected shape is dropped, not reported.
func (s *Sanitizer) Sanitize(metadata map[string]any) map[string]any {
	if metadata == nil {
		return nil
	}

	clean := make(map[string]any, len(allowedKeys)+1)
	for _, key := range allowedKeys {
		if value, ok := metadata[key]; ok {
			clean[key] = value
		}
	}

	if raw, ok := metadata[extractedDataKey]; ok {
		if payload, err := s.encryptExtracted(raw); err == nil {
			clean[extractedDataKey] = payload
		}
	}

	return clean
}

// encryptExtracted serializes a non-string extracted-data value to JSON
// before encryption so the envelope always wraps text.
func (s *Sanitizer) encryptExtracted(raw any) (any, error) {
	text, ok := raw.(string)
	if !ok {
		serialized, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("serialize extracted data: %w", err)
		}
		text = string(serialized)
	}

	return s.cipher.Encrypt(text)
}
