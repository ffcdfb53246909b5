// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"

	"github.com/callward/callward/models"
)

// ─────────────────────────────────────────────
// Mock: identity.Verifier
// ─────────────────────────────────────────────

type mockVerifier struct {
	verifyFn func(ctx context.Context, token string) (models.Principal, error)

	calls int
}

func (m *mockVerifier) VerifyToken(ctx context.Context, token string) (models.Principal, error) {
	m.calls++
	if m.verifyFn != nil {
		return m.verifyFn(ctx, token)
	}
	return models.Principal{UserID: "user-1"}, nil
}

// ─────────────────────────────────────────────
// Mock: service.AccessService
// ─────────────────────────────────────────────

type mockAccessService struct {
	authorizeFn func(ctx context.Context, principal models.Principal, action models.Action) (models.AccessContext, error)

	calls int
}

func (m *mockAccessService) Authorize(ctx context.Context, principal models.Principal, action models.Action) (models.AccessContext, error) {
	m.calls++
	if m.authorizeFn != nil {
		return m.authorizeFn(ctx, principal, action)
	}
	return models.AccessContext{Principal: principal}, nil
}

// ─────────────────────────────────────────────
// Mock: service.ProxyService
// ─────────────────────────────────────────────

type mockProxyService struct {
	handleFn func(ctx context.Context, access models.AccessContext, action models.Action, params models.QueryParams) (any, error)

	calls int
}

func (m *mockProxyService) Handle(ctx context.Context, access models.AccessContext, action models.Action, params models.QueryParams) (any, error) {
	m.calls++
	if m.handleFn != nil {
		return m.handleFn(ctx, access, action, params)
	}
	return []models.CallView{}, nil
}
