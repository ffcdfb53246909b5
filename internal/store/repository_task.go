// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/models"
)

var taskColumns = []string{
	"id", "title", "status", "assigned_to", "lead_id", "call_id",
	"due_at", "created_at",
}

// taskRepository is the SQL-backed implementation of [TaskRepository].
type taskRepository struct {
	*DB
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

// List implements [TaskRepository]. Zero-value filter fields are ignored.
func (r *taskRepository) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	q := r.builder.
		Select(taskColumns...).
		From("tasks").
		OrderBy("due_at ASC")

	if filter.AssignedTo != "" {
		q = q.Where(sq.Eq{"assigned_to": filter.AssignedTo})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := q.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.List").
			Msg("failed to build tasks query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.List").
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute tasks query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Task, 0, 50)

	for rows.Next() {
		var (
			task             models.Task
			assignedTo       sql.NullString
			leadID, callID   sql.NullString
			dueAt, createdAt sql.NullTime
		)

		if scanErr := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Status,
			&assignedTo,
			&leadID,
			&callID,
			&dueAt,
			&createdAt,
		); scanErr != nil {
			log.Err(scanErr).
				Str("func", "taskRepository.List").
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		task.AssignedTo = assignedTo.String
		task.LeadID = leadID.String
		task.CallID = callID.String
		task.DueAt = dueAt.Time
		task.CreatedAt = createdAt.Time

		results = append(results, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "taskRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
