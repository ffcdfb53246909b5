// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Call is a read-only view of one row in the "calls" table. Rows are written
// by the voice-provider webhook collaborator; this service only reads and
// transforms them.
type Call struct {
	// ID is the primary identifier of the call record.
	ID string

	// ExternalCallID is the identifier assigned by the voice-AI provider.
	ExternalCallID string

	// LeadID references the lead the call was placed to or received from.
	LeadID string

	// AgentID references the AI agent configuration that handled the call.
	AgentID string

	// ClientID is the tenant that owns the call.
	ClientID string

	// PhoneNumber is the dialed or calling number in E.164-ish form.
	PhoneNumber string

	// Status is the provider-reported call status
	// (e.g. "in_progress", "completed", "failed", "voicemail").
	Status string

	// Transcript is the full conversation transcript. Sensitive: it never
	// leaves the proxy boundary as plaintext.
	Transcript string

	// Summary is the provider-generated call summary. Sensitive, same rules
	// as Transcript.
	Summary string

	// RecordingURL is the raw storage URL of the call recording. Never
	// returned to callers; replaced by an opaque proxy token.
	RecordingURL string

	// Metadata is the free-form JSON payload attached by the provider.
	Metadata map[string]any

	// Sentiment is the provider-computed sentiment label.
	Sentiment string

	// DurationSec is the call duration in seconds.
	DurationSec int64

	// StartedAt is when the call began.
	StartedAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CallFilter narrows a call listing. Zero-value fields are ignored.
type CallFilter struct {
	// ClientID restricts rows to one tenant.
	ClientID string

	// StartDate is an inclusive lower bound on StartedAt.
	StartDate time.Time

	// Status restricts rows to a single provider status.
	Status string
}

// TodayStats is the scalar aggregate returned by the stats_today action.
// It is computed over status and duration columns only; sensitive text
// columns never participate in aggregation.
type TodayStats struct {
	TotalCalls     int64   `json:"total_calls"`
	CompletedCalls int64   `json:"completed_calls"`
	FailedCalls    int64   `json:"failed_calls"`
	ActiveCalls    int64   `json:"active_calls"`
	VoicemailCalls int64   `json:"voicemail_calls"`
	SuccessRate    float64 `json:"success_rate"`
	AvgDurationSec float64 `json:"avg_duration_sec"`
}
