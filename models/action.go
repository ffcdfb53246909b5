// SPDX-License-Identifier: Apache-2.0

package models

// Action is one entry in the closed set of operations the proxy exposes.
// Dispatch is a closed table keyed on these values; an unrecognised action
// string is a validation error, never a fallthrough to a default handler.
type Action string

const (
	// ActionCalls lists call records, optionally filtered by tenant,
	// start date, and status.
	ActionCalls Action = "calls"

	// ActionDemoCalls lists demo calls. Self-scoped for engineer
	// principals: they see only rows they own.
	ActionDemoCalls Action = "demo_calls"

	// ActionAdminDemoCalls lists every demo call across engineers.
	// Admin only.
	ActionAdminDemoCalls Action = "admin_demo_calls"

	// ActionActiveCalls is the live monitoring view of in-progress calls.
	// Admin only.
	ActionActiveCalls Action = "active_calls"

	// ActionStatsToday returns today's scalar call aggregates.
	ActionStatsToday Action = "stats_today"

	// ActionTasks lists follow-up tasks, optionally filtered by assignee
	// and status.
	ActionTasks Action = "tasks"
)

// KnownActions enumerates every supported action. Used by the dispatch
// table and by tests asserting the set is closed.
var KnownActions = []Action{
	ActionCalls,
	ActionDemoCalls,
	ActionAdminDemoCalls,
	ActionActiveCalls,
	ActionStatsToday,
	ActionTasks,
}

// QueryParams carries the optional per-action query parameters accepted by
// the proxy endpoint. Unused fields are zero for actions that do not accept
// them.
type QueryParams struct {
	ClientID   string
	EngineerID string
	StartDate  string
	Status     string
	AssignedTo string
}
