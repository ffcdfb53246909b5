// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoCallRows(t *testing.T) *sqlmock.Rows {
	t.Helper()
	now := time.Now()
	return sqlmock.NewRows(demoCallColumns).
		AddRow(
			"demo-1", "eng-1", "lead-1", "Jamie Rivera", "5551234567",
			"scheduled", "demo transcript", "You are a helpful agent.",
			"https://cdn.example.com/demo.mp3", `{"campaign_id":"c-9"}`,
			now, now,
		)
}

func TestDemoCallRepository_List(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()
	repo := NewDemoCallRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM demo_calls").
		WillReturnRows(demoCallRows(t))

	demos, err := repo.List(context.Background(), models.DemoCallFilter{})
	require.NoError(t, err)
	require.Len(t, demos, 1)
	assert.Equal(t, "demo-1", demos[0].ID)
	assert.Equal(t, "You are a helpful agent.", demos[0].AgentPrompt)
	assert.Equal(t, "c-9", demos[0].Metadata["campaign_id"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDemoCallRepository_List_ScopedToEngineer(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()
	repo := NewDemoCallRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM demo_calls WHERE engineer_id = (.+)").
		WithArgs("eng-1").
		WillReturnRows(demoCallRows(t))

	_, err := repo.List(context.Background(), models.DemoCallFilter{EngineerID: "eng-1"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
