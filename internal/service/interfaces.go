// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/callward/callward/models"
)

// AccessService is the per-request authorization gate. It runs after token
// verification and before any data fetch: a request rejected here must not
// touch the backing store.
type AccessService interface {
	// Authorize resolves the principal's role and checks it against the
	// action's declared minimum. On success it returns the access context
	// the orchestrator must honor, including any self-scope filter.
	// Failures are [ErrForbidden] for an insufficient role and
	// [ErrInvalidAction] for an action outside the closed set.
	Authorize(ctx context.Context, principal models.Principal, action models.Action) (models.AccessContext, error)
}

// ProxyService is the query/response orchestrator: it dispatches an
// authorized action to its handler, fetches rows, and runs every row
// through the masking/encryption pipeline before returning it.
type ProxyService interface {
	// Handle executes action under the given access context and returns
	// the JSON-ready response body.
	Handle(ctx context.Context, access models.AccessContext, action models.Action, params models.QueryParams) (any, error)
}
