// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/callward/callward/internal/service"
	"github.com/callward/callward/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authorizedRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer good-token")
	return req
}

func TestProxy_MissingAction(t *testing.T) {
	access := &mockAccessService{}
	router := newTestHandler(&mockVerifier{}, access, &mockProxyService{}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authorizedRequest("/api/proxy"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid action", decodeError(t, rec.Body.Bytes()).Error)
	assert.Zero(t, access.calls)
}

func TestProxy_UnknownAction(t *testing.T) {
	access := &mockAccessService{
		authorizeFn: func(_ context.Context, _ models.Principal, action models.Action) (models.AccessContext, error) {
			return models.AccessContext{}, service.ErrInvalidAction
		},
	}
	proxy := &mockProxyService{}
	router := newTestHandler(&mockVerifier{}, access, proxy).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authorizedRequest("/api/proxy?action=export_all"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid action", decodeError(t, rec.Body.Bytes()).Error)
	assert.Zero(t, proxy.calls)
}

func TestProxy_Forbidden(t *testing.T) {
	access := &mockAccessService{
		authorizeFn: func(_ context.Context, _ models.Principal, _ models.Action) (models.AccessContext, error) {
			return models.AccessContext{}, service.ErrForbidden
		},
	}
	proxy := &mockProxyService{}
	router := newTestHandler(&mockVerifier{}, access, proxy).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authorizedRequest("/api/proxy?action=active_calls"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden", decodeError(t, rec.Body.Bytes()).Error)
	assert.Zero(t, proxy.calls, "a rejected request does no data access")
}

func TestProxy_InvalidParams(t *testing.T) {
	proxy := &mockProxyService{
		handleFn: func(_ context.Context, _ models.AccessContext, _ models.Action, _ models.QueryParams) (any, error) {
			return nil, service.ErrInvalidParams
		},
	}
	router := newTestHandler(&mockVerifier{}, &mockAccessService{}, proxy).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authorizedRequest("/api/proxy?action=calls&start_date=yesterday"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request parameters", decodeError(t, rec.Body.Bytes()).Error)
}

func TestProxy_UpstreamFailureIsGeneric(t *testing.T) {
	proxy := &mockProxyService{
		handleFn: func(_ context.Context, _ models.AccessContext, _ models.Action, _ models.QueryParams) (any, error) {
			return nil, assert.AnError
		},
	}
	router := newTestHandler(&mockVerifier{}, &mockAccessService{}, proxy).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authorizedRequest("/api/proxy?action=calls"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec.Body.Bytes()).Error)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error(), "real causes never reach the response body")
}

func TestProxy_ParamsPassedThrough(t *testing.T) {
	var gotAction models.Action
	var gotParams models.QueryParams
	proxy := &mockProxyService{
		handleFn: func(_ context.Context, _ models.AccessContext, action models.Action, params models.QueryParams) (any, error) {
			gotAction = action
			gotParams = params
			return []models.TaskView{}, nil
		},
	}
	router := newTestHandler(&mockVerifier{}, &mockAccessService{}, proxy).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authorizedRequest("/api/proxy?action=tasks&assigned_to=eng-1&status=open"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ActionTasks, gotAction)
	assert.Equal(t, "eng-1", gotParams.AssignedTo)
	assert.Equal(t, "open", gotParams.Status)
}

func TestProxy_SuccessBodyIsJSON(t *testing.T) {
	proxy := &mockProxyService{
		handleFn: func(_ context.Context, _ models.AccessContext, _ models.Action, _ models.QueryParams) (any, error) {
			return models.TodayStats{TotalCalls: 5, SuccessRate: 0.8}, nil
		},
	}
	router := newTestHandler(&mockVerifier{}, &mockAccessService{}, proxy).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authorizedRequest("/api/proxy?action=stats_today"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var stats models.TodayStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(5), stats.TotalCalls)
}
