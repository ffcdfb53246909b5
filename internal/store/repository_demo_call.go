// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/models"
)

var demoCallColumns = []string{
	"id", "engineer_id", "lead_id", "lead_name", "phone_number", "status",
	"transcript", "agent_prompt", "recording_url", "metadata",
	"scheduled_at", "created_at",
}

// demoCallRepository is the SQL-backed implementation of [DemoCallRepository].
type demoCallRepository struct {
	*DB
	logger *logger.Logger
}

// NewDemoCallRepository constructs a [DemoCallRepository] backed by the
// provided database connection and logger.
func NewDemoCallRepository(db *DB, logger *logger.Logger) DemoCallRepository {
	return &demoCallRepository{
		DB:     db,
		logger: logger,
	}
}

// List implements [DemoCallRepository]. The EngineerID filter doubles as
// the gate-imposed ownership scope: when present, only rows owned by that
// engineer are returned.
func (r *demoCallRepository) List(ctx context.Context, filter models.DemoCallFilter) ([]models.DemoCall, error) {
	log := logger.FromContext(ctx)

	q := r.builder.
		Select(demoCallColumns...).
		From("demo_calls").
		OrderBy("scheduled_at DESC")

	if filter.EngineerID != "" {
		q = q.Where(sq.Eq{"engineer_id": filter.EngineerID})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := q.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "demoCallRepository.List").
			Msg("failed to build demo calls query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "demoCallRepository.List").
			Str("engineer_id", filter.EngineerID).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute demo calls query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.DemoCall, 0, 50)

	for rows.Next() {
		call, scanErr := scanDemoCall(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "demoCallRepository.List").
				Msg("failed to scan demo call row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, call)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "demoCallRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func scanDemoCall(rows *sql.Rows) (models.DemoCall, error) {
	var (
		call models.DemoCall

		leadID, leadName, phone       sql.NullString
		transcript, prompt, recording sql.NullString
		metadata                      sql.NullString
		scheduledAt, createdAt        sql.NullTime
	)

	if err := rows.Scan(
		&call.ID,
		&call.EngineerID,
		&leadID,
		&leadName,
		&phone,
		&call.Status,
		&transcript,
		&prompt,
		&recording,
		&metadata,
		&scheduledAt,
		&createdAt,
	); err != nil {
		return models.DemoCall{}, err
	}

	call.LeadID = leadID.String
	call.LeadName = leadName.String
	call.PhoneNumber = phone.String
	call.Transcript = transcript.String
	call.AgentPrompt = prompt.String
	call.RecordingURL = recording.String
	call.ScheduledAt = scheduledAt.Time
	call.CreatedAt = createdAt.Time

	if metadata.Valid && metadata.String != "" {
		if err := json.Unmarshal([]byte(metadata.String), &call.Metadata); err != nil {
			return models.DemoCall{}, fmt.Errorf("decode demo call metadata: %w", err)
		}
	}

	return call, nil
}
