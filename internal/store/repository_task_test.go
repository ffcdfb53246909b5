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

func TestTaskRepository_List(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()
	repo := NewTaskRepository(db, logger.Nop())

	due := time.Now().Add(24 * time.Hour)
	rows := sqlmock.NewRows(taskColumns).
		AddRow("task-1", "Call back the lead", "open", "eng-1", "lead-1", "call-1", due, time.Now()).
		AddRow("task-2", "Send follow-up email", "open", nil, nil, nil, nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM tasks").WillReturnRows(rows)

	tasks, err := repo.List(context.Background(), models.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "eng-1", tasks[0].AssignedTo)
	assert.Empty(t, tasks[1].AssignedTo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_List_AppliesFilters(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()
	repo := NewTaskRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM tasks WHERE assigned_to = (.+) AND status = (.+)").
		WithArgs("eng-1", "open").
		WillReturnRows(sqlmock.NewRows(taskColumns))

	tasks, err := repo.List(context.Background(), models.TaskFilter{AssignedTo: "eng-1", Status: "open"})
	require.NoError(t, err)
	assert.Empty(t, tasks)
	require.NoError(t, mock.ExpectationsWereMet())
}
