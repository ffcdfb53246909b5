// SPDX-License-Identifier: Apache-2.0

package sanitize

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/callward/callward/internal/crypto"
	"github.com/callward/callward/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSanitizer(t *testing.T) (*Sanitizer, crypto.FieldCipher) {
	t.Helper()
	cipher, err := crypto.NewFieldCipher(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	return NewSanitizer(cipher), cipher
}

func TestSanitize_NilInput(t *testing.T) {
	s, _ := newTestSanitizer(t)
	assert.Nil(t, s.Sanitize(nil))
}

func TestSanitize_AllowListExactness(t *testing.T) {
	s, _ := newTestSanitizer(t)

	out := s.Sanitize(map[string]any{
		"source":       "fb",
		"secret_token": "xyz",
		"lead_name":    "Jane",
	})

	assert.Equal(t, map[string]any{
		"source":    "fb",
		"lead_name": "Jane",
	}, out)
	assert.NotContains(t, out, "secret_token")
}

func TestSanitize_CopiesAllAllowedKeysVerbatim(t *testing.T) {
	s, _ := newTestSanitizer(t)

	in := map[string]any{
		"source":      "webform",
		"retry":       true,
		"lead_name":   "Jane Roe",
		"campaign_id": "cmp-9",
		"status":      "completed",
		"error":       "busy",
		"retry_count": float64(2),
		"voicemail":   false,
		// not allow-listed:
		"api_key":      "sk-xxx",
		"internal_ref": map[string]any{"nested": true},
	}

	out := s.Sanitize(in)

	assert.Len(t, out, 8)
	for _, key := range []string{"source", "retry", "lead_name", "campaign_id", "status", "error", "retry_count", "voicemail"} {
		assert.Equal(t, in[key], out[key], "key %s", key)
	}
}

func TestSanitize_ExtractedDataStringIsEncrypted(t *testing.T) {
	s, cipher := newTestSanitizer(t)

	out := s.Sanitize(map[string]any{
		"extracted_data": "budget: 500k, timeline: Q3",
	})

	payload, ok := out["extracted_data"].(*models.EncryptedPayload)
	require.True(t, ok, "extracted_data must be replaced by an envelope")
	assert.Equal(t, models.AlgorithmAESGCM, payload.Algorithm)

	plaintext, err := cipher.Decrypt(payload)
	require.NoError(t, err)
	assert.Equal(t, "budget: 500k, timeline: Q3", plaintext)
}

func TestSanitize_ExtractedDataObjectIsSerializedThenEncrypted(t *testing.T) {
	s, cipher := newTestSanitizer(t)

	out := s.Sanitize(map[string]any{
		"extracted_data": map[string]any{"budget": "500k", "rooms": float64(3)},
	})

	payload, ok := out["extracted_data"].(*models.EncryptedPayload)
	require.True(t, ok)

	plaintext, err := cipher.Decrypt(payload)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(plaintext), &decoded))
	assert.Equal(t, map[string]any{"budget": "500k", "rooms": float64(3)}, decoded)
}

func TestSanitize_EmptyMapStaysEmpty(t *testing.T) {
	s, _ := newTestSanitizer(t)
	out := s.Sanitize(map[string]any{})
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
