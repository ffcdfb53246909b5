// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// CallView is the shape of one call row after it has passed through the
// masking/encryption pipeline. Every sensitive field is either an
// [EncryptedPayload], a masked value, or an explicitly allow-listed plain
// field; raw sensitive plaintext never appears here.
type CallView struct {
	ID             string            `json:"id"`
	ExternalCallID string            `json:"external_call_id"`
	LeadID         string            `json:"lead_id"`
	AgentID        string            `json:"agent_id"`
	ClientID       string            `json:"client_id"`
	PhoneNumber    string            `json:"phone_number"`
	Status         string            `json:"status"`
	Transcript     *EncryptedPayload `json:"transcript"`
	Summary        *EncryptedPayload `json:"summary"`
	RecordingURL   *string           `json:"recording_url"`
	Metadata       map[string]any    `json:"metadata"`
	Sentiment      string            `json:"sentiment"`
	DurationSec    int64             `json:"duration_sec"`
	StartedAt      time.Time         `json:"started_at"`

	// LeadName and AgentName are joined display fields, bulk-fetched once
	// per response and attached after masking.
	LeadName  string `json:"lead_name,omitempty"`
	AgentName string `json:"agent_name,omitempty"`
}

// DemoCallView is the masked/encrypted shape of one demo-call row.
type DemoCallView struct {
	ID           string            `json:"id"`
	EngineerID   string            `json:"engineer_id"`
	LeadID       string            `json:"lead_id"`
	LeadName     string            `json:"lead_name"`
	PhoneNumber  string            `json:"phone_number"`
	Status       string            `json:"status"`
	Transcript   *EncryptedPayload `json:"transcript"`
	AgentPrompt  *string           `json:"agent_prompt"`
	RecordingURL *string           `json:"recording_url"`
	Metadata     map[string]any    `json:"metadata"`
	ScheduledAt  time.Time         `json:"scheduled_at"`
}

// TaskView is the shaped task row. Tasks carry no free-text sensitive
// payloads; only the referenced lead identifier is masked.
type TaskView struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	AssignedTo string    `json:"assigned_to"`
	LeadID     string    `json:"lead_id"`
	CallID     string    `json:"call_id"`
	DueAt      time.Time `json:"due_at"`
	CreatedAt  time.Time `json:"created_at"`

	LeadName string `json:"lead_name,omitempty"`
}
