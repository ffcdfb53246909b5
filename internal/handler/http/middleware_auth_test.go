// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/callward/callward/internal/identity"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/internal/service"
	"github.com/callward/callward/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(verifier *mockVerifier, access *mockAccessService, proxy *mockProxyService) *Handler {
	return NewHandler(&service.Services{
		AccessService: access,
		ProxyService:  proxy,
	}, verifier, "test", logger.Nop())
}

func decodeError(t *testing.T, body []byte) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestAuth_MissingHeader(t *testing.T) {
	verifier := &mockVerifier{}
	access := &mockAccessService{}
	proxy := &mockProxyService{}
	router := newTestHandler(verifier, access, proxy).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/proxy?action=calls", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, rec.Body.Bytes()).Error)

	// A rejected request does no verification and no data access.
	assert.Zero(t, verifier.calls)
	assert.Zero(t, access.calls)
	assert.Zero(t, proxy.calls)
}

func TestAuth_MalformedHeader(t *testing.T) {
	verifier := &mockVerifier{}
	router := newTestHandler(verifier, &mockAccessService{}, &mockProxyService{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/proxy?action=calls", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, rec.Body.Bytes()).Error)
	assert.Zero(t, verifier.calls)
}

func TestAuth_InvalidToken(t *testing.T) {
	verifier := &mockVerifier{
		verifyFn: func(_ context.Context, _ string) (models.Principal, error) {
			return models.Principal{}, identity.ErrInvalidToken
		},
	}
	access := &mockAccessService{}
	router := newTestHandler(verifier, access, &mockProxyService{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/proxy?action=calls", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeError(t, rec.Body.Bytes()).Error)
	assert.Zero(t, access.calls)
}

func TestAuth_IdentityServiceDown(t *testing.T) {
	verifier := &mockVerifier{
		verifyFn: func(_ context.Context, _ string) (models.Principal, error) {
			return models.Principal{}, identity.ErrIdentityUnavailable
		},
	}
	router := newTestHandler(verifier, &mockAccessService{}, &mockProxyService{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/proxy?action=calls", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec.Body.Bytes()).Error)
}

func TestAuth_ValidTokenReachesHandler(t *testing.T) {
	verifier := &mockVerifier{
		verifyFn: func(_ context.Context, token string) (models.Principal, error) {
			assert.Equal(t, "good-token", token)
			return models.Principal{UserID: "user-1"}, nil
		},
	}
	access := &mockAccessService{}
	proxy := &mockProxyService{}
	router := newTestHandler(verifier, access, proxy).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/proxy?action=calls", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, verifier.calls)
	assert.Equal(t, 1, access.calls)
	assert.Equal(t, 1, proxy.calls)
}
