// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/callward/callward/internal/crypto"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/internal/service"
	"github.com/callward/callward/internal/store"
	"github.com/callward/callward/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCallRepository serves a single canned row for the end-to-end test.
type fakeCallRepository struct {
	row models.Call
}

func (f *fakeCallRepository) List(_ context.Context, filter models.CallFilter) ([]models.Call, error) {
	if filter.ClientID != "" && filter.ClientID != f.row.ClientID {
		return nil, nil
	}
	return []models.Call{f.row}, nil
}

func (f *fakeCallRepository) ListActive(_ context.Context) ([]models.Call, error) {
	return nil, nil
}

func (f *fakeCallRepository) StatsToday(_ context.Context) (models.TodayStats, error) {
	return models.TodayStats{}, nil
}

type fakeDirectoryRepository struct{}

func (fakeDirectoryRepository) LeadNamesByIDs(_ context.Context, ids []string) (map[string]string, error) {
	return map[string]string{}, nil
}

func (fakeDirectoryRepository) AgentNamesByIDs(_ context.Context, ids []string) (map[string]string, error) {
	return map[string]string{}, nil
}

type fakeRoleRepository struct {
	role models.Role
}

func (f *fakeRoleRepository) RoleByUserID(_ context.Context, _ string) (models.Role, error) {
	return f.role, nil
}

// TestHandler_AdminCallsScenario walks the full stack with real services
// and a real cipher: an authenticated admin lists calls for one tenant and
// gets back a row whose sensitive fields are all masked, encrypted, or
// tokenized.
func TestHandler_AdminCallsScenario(t *testing.T) {
	cipher, err := crypto.NewFieldCipher(bytes.Repeat([]byte{3}, 32))
	require.NoError(t, err)

	storages := &store.Storages{
		Calls: &fakeCallRepository{row: models.Call{
			ID:           "call-1",
			LeadID:       "L1-abcdef0123",
			ClientID:     "C1",
			PhoneNumber:  "9876543210",
			Status:       "completed",
			Transcript:   "hello",
			RecordingURL: "https://cdn.example.com/r.mp3",
		}},
		Directory: fakeDirectoryRepository{},
		Roles:     &fakeRoleRepository{role: models.RoleAdmin},
	}
	services := service.NewServices(storages, cipher, logger.Nop())
	router := NewHandler(services, &mockVerifier{}, "test", logger.Nop()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authorizedRequest("/api/proxy?action=calls&client_id=C1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var views []models.CallView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	view := views[0]

	assert.Equal(t, "L1-abcde...", view.LeadID)
	assert.Equal(t, "******3210", view.PhoneNumber)

	require.NotNil(t, view.Transcript)
	assert.Equal(t, models.AlgorithmAESGCM, view.Transcript.Algorithm)
	assert.NotContains(t, rec.Body.String(), `"hello"`, "plaintext never leaves the boundary")
	plaintext, err := cipher.Decrypt(view.Transcript)
	require.NoError(t, err)
	assert.Equal(t, "hello", plaintext)

	require.NotNil(t, view.RecordingURL)
	assert.Equal(t, "proxy:recording:call-1", *view.RecordingURL)
	assert.NotContains(t, rec.Body.String(), "cdn.example.com")
}
