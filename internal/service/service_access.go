// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/internal/store"
	"github.com/callward/callward/models"
)

// adminOnlyActions declares the actions restricted to [models.RoleAdmin].
// Every other known action is available to any authenticated principal,
// subject to self-scoping below.
var adminOnlyActions = map[models.Action]bool{
	models.ActionAdminDemoCalls: true,
	models.ActionActiveCalls:    true,
}

// selfScopedActions declares the actions on which an engineer principal
// only sees rows it owns. The gate expresses the restriction as an
// equality filter the orchestrator must apply.
var selfScopedActions = map[models.Action]bool{
	models.ActionDemoCalls: true,
}

type accessService struct {
	roleRepository store.RoleRepository

	logger *logger.Logger
}

func NewAccessService(roleRepository store.RoleRepository, logger *logger.Logger) AccessService {
	return &accessService{
		roleRepository: roleRepository,
		logger:         logger,
	}
}

// Authorize implements [AccessService]. The role is resolved fresh on
// every call; authorization outcomes are never cached across requests.
func (a *accessService) Authorize(ctx context.Context, principal models.Principal, action models.Action) (models.AccessContext, error) {
	log := logger.FromContext(ctx)

	if !isKnownAction(action) {
		return models.AccessContext{}, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	role, err := a.roleRepository.RoleByUserID(ctx, principal.UserID)
	if err != nil {
		log.Err(err).
			Str("func", "accessService.Authorize").
			Msg("failed to resolve role")
		return models.AccessContext{}, fmt.Errorf("resolving role: %w", err)
	}

	if adminOnlyActions[action] && role != models.RoleAdmin {
		log.Warn().
			Str("func", "accessService.Authorize").
			Str("action", string(action)).
			Str("role", string(role)).
			Msg("action rejected for non-admin role")
		return models.AccessContext{}, fmt.Errorf("%w: action %q requires admin role", ErrForbidden, action)
	}

	access := models.AccessContext{
		Principal: principal,
		Role:      role,
	}

	// Admins see all rows; engineers are pinned to their own.
	if selfScopedActions[action] && role == models.RoleEngineer {
		access.EngineerScope = principal.UserID
	}

	return access, nil
}

func isKnownAction(action models.Action) bool {
	for _, known := range models.KnownActions {
		if action == known {
			return true
		}
	}
	return false
}
