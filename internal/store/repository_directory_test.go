// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/callward/callward/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryRepository_LeadNamesByIDs(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()
	repo := NewDirectoryRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow("lead-1", "Jamie Rivera").
		AddRow("lead-2", "Sam Okafor")
	mock.ExpectQuery("SELECT id, name FROM leads WHERE id IN (.+)").
		WithArgs("lead-1", "lead-2").
		WillReturnRows(rows)

	names, err := repo.LeadNamesByIDs(context.Background(), []string{"lead-1", "lead-2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"lead-1": "Jamie Rivera",
		"lead-2": "Sam Okafor",
	}, names)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryRepository_EmptyIDsSkipsQuery(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()
	repo := NewDirectoryRepository(db, logger.Nop())

	names, err := repo.AgentNamesByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, names)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryRepository_AgentNamesByIDs(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()
	repo := NewDirectoryRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT id, name FROM agents WHERE id IN (.+)").
		WithArgs("agent-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("agent-1", "Sales Bot"))

	names, err := repo.AgentNamesByIDs(context.Background(), []string{"agent-1"})
	require.NoError(t, err)
	assert.Equal(t, "Sales Bot", names["agent-1"])
}
