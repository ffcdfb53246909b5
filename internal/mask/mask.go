// SPDX-License-Identifier: Apache-2.0

// Package mask provides the irreversible display transformations applied to
// sensitive identifiers and contact fields before they leave the proxy
// boundary. Every function is pure, total, and side-effect free: defined
// for any input including the empty string, and never reversible.
package mask

import "strings"

const (
	// phonePlaceholder is returned for absent or too-short phone numbers.
	// Fixed length so the mask does not reveal the original length.
	phonePlaceholder = "****"

	// identifierPlaceholder is returned for absent identifiers.
	identifierPlaceholder = "N/A"

	// promptPlaceholder stands in for proprietary agent prompts. The
	// content is never partially revealed.
	promptPlaceholder = "[prompt hidden]"

	// mediaTokenPrefix prefixes opaque recording tokens. A separate,
	// authorized media-fetch path resolves them; the real storage URL
	// never reaches the client.
	mediaTokenPrefix = "proxy:recording:"

	identifierPrefixLen = 8
)

// Phone masks all but the last four digits of a phone number. Absent or
// four-or-fewer-character input collapses to a fixed four-star mask.
//
//	Phone("9876543210") == "******3210"
//	Phone("12")         == "****"
//	Phone("")           == "****"
func Phone(phone string) string {
	if len(phone) <= 4 {
		return phonePlaceholder
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}

// Identifier reduces an identifier to its first eight characters plus an
// ellipsis marker. Absent input returns a fixed placeholder.
//
//	Identifier("a1b2c3d4e5f6") == "a1b2c3d4..."
func Identifier(id string) string {
	if id == "" {
		return identifierPlaceholder
	}
	if len(id) <= identifierPrefixLen {
		return id + "..."
	}
	return id[:identifierPrefixLen] + "..."
}

// Prompt hides an agent prompt behind a constant opaque placeholder.
// Returns nil for absent prompts.
func Prompt(prompt string) *string {
	if prompt == "" {
		return nil
	}
	placeholder := promptPlaceholder
	return &placeholder
}

// MediaURL replaces a recording storage URL with an opaque indirection
// token bound to the owning record. Returns nil for absent URLs.
//
//	MediaURL("https://cdn/r.mp3", "call-1") == "proxy:recording:call-1"
func MediaURL(url, recordID string) *string {
	if url == "" {
		return nil
	}
	token := mediaTokenPrefix + recordID
	return &token
}
