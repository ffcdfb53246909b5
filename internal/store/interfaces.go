// SPDX-License-Identifier: Apache-2.0

// Package store implements read-only data access against the backing
// database. The proxy never creates, updates, or deletes domain rows: rows
// are owned by external collaborators (the voice-provider webhook, the CRM
// write paths) and this package only fetches filtered views of them.
package store

import (
	"context"

	"github.com/callward/callward/models"
)

// CallRepository reads rows from the "calls" table.
type CallRepository interface {
	// List returns calls matching filter, newest first.
	List(ctx context.Context, filter models.CallFilter) ([]models.Call, error)

	// ListActive returns calls currently in progress, newest first.
	ListActive(ctx context.Context) ([]models.Call, error)

	// StatsToday aggregates today's calls over status and duration
	// columns only.
	StatsToday(ctx context.Context) (models.TodayStats, error)
}

// DemoCallRepository reads rows from the "demo_calls" table.
type DemoCallRepository interface {
	List(ctx context.Context, filter models.DemoCallFilter) ([]models.DemoCall, error)
}

// TaskRepository reads rows from the "tasks" table.
type TaskRepository interface {
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
}

// DirectoryRepository bulk-resolves display names for joined foreign keys.
// Both methods take the distinct id set gathered from a primary fetch and
// return an id→name map in a single IN query, avoiding per-row round trips.
type DirectoryRepository interface {
	LeadNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
	AgentNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

// RoleRepository resolves role assignments.
type RoleRepository interface {
	// RoleByUserID returns the role assigned to userID. A missing
	// assignment row yields [models.RoleNone] and no error: absence of a
	// role means "no elevated privilege", not a failure.
	RoleByUserID(ctx context.Context, userID string) (models.Role, error)
}

// ErrorClassificator classifies database errors as retryable or not, so
// callers can decide whether re-running an operation makes sense. The
// classification is logged alongside failures for operators.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
