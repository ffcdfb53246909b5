// SPDX-License-Identifier: Apache-2.0

package models

// Cryptographic envelope constants. AlgorithmAESGCM tags real envelopes;
// AlgorithmNone tags the sentinel payload produced for empty input.
const (
	AlgorithmAESGCM = "AES-256-GCM"
	AlgorithmNone   = "none"

	// NoDataMarker is carried in the Ciphertext field of the sentinel
	// payload. It signals "the source field was absent" without revealing
	// whether an empty string was ever encrypted.
	NoDataMarker = "[no data]"
)

// EncryptedPayload is the self-describing envelope emitted by the field
// cipher. All four fields are required for decryption; an envelope missing
// any of them is invalid and is not treated as recoverable.
//
// IV, AuthTag, and Ciphertext are standard-base64 encoded so the envelope
// can be embedded directly in JSON responses.
type EncryptedPayload struct {
	Algorithm  string `json:"algorithm"`
	IV         string `json:"iv"`
	AuthTag    string `json:"auth_tag"`
	Ciphertext string `json:"ciphertext"`
}

// NoDataPayload returns the sentinel payload used in place of an envelope
// when there was nothing to encrypt.
func NoDataPayload() *EncryptedPayload {
	return &EncryptedPayload{
		Algorithm:  AlgorithmNone,
		Ciphertext: NoDataMarker,
	}
}

// IsNoData reports whether p is the sentinel "no data" payload rather than
// a real envelope.
func (p *EncryptedPayload) IsNoData() bool {
	return p != nil && p.Algorithm == AlgorithmNone
}
