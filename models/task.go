// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Task is a read-only view of one row in the "tasks" table: a follow-up
// item created from a call outcome (callback, escalation, contract send).
type Task struct {
	ID         string
	Title      string
	Status     string
	AssignedTo string
	LeadID     string
	CallID     string
	DueAt      time.Time
	CreatedAt  time.Time
}

// TaskFilter narrows a task listing. Zero-value fields are ignored.
type TaskFilter struct {
	AssignedTo string
	Status     string
}
