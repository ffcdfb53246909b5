// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// DemoCall is a read-only view of one row in the "demo_calls" table.
// Demo calls are placed by sales engineers when showcasing the platform;
// each row is owned by the engineer who booked it.
type DemoCall struct {
	ID          string
	EngineerID  string
	LeadID      string
	LeadName    string
	PhoneNumber string
	Status      string

	// Transcript is sensitive and is encrypted before leaving the boundary.
	Transcript string

	// AgentPrompt is the proprietary prompt used for the demo. It is never
	// revealed, not even partially.
	AgentPrompt string

	RecordingURL string
	Metadata     map[string]any
	ScheduledAt  time.Time
	CreatedAt    time.Time
}

// DemoCallFilter narrows a demo-call listing. Zero-value fields are ignored.
type DemoCallFilter struct {
	// EngineerID restricts rows to one owning engineer. The access gate
	// forces this to the caller's own id for self-scoped principals.
	EngineerID string

	// Status restricts rows to a single status.
	Status string
}
