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

// statusActive is the provider status of a call that is still running.
const statusActive = "in_progress"

// callColumns is the fixed column order shared by every call query and its
// row scanner.
var callColumns = []string{
	"id", "external_call_id", "lead_id", "agent_id", "client_id",
	"phone_number", "status", "transcript", "summary", "recording_url",
	"metadata", "sentiment", "duration_sec", "started_at", "created_at",
	"updated_at",
}

// callRepository is the SQL-backed implementation of [CallRepository].
// All methods are read-only; the webhook collaborator owns the writes.
type callRepository struct {
	*DB
	logger *logger.Logger
}

// NewCallRepository constructs a [CallRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewCallRepository(db *DB, logger *logger.Logger) CallRepository {
	return &callRepository{
		DB:     db,
		logger: logger,
	}
}

// List implements [CallRepository]. Zero-value filter fields are ignored;
// the rest become equality/lower-bound predicates. Rows come back newest
// first.
func (r *callRepository) List(ctx context.Context, filter models.CallFilter) ([]models.Call, error) {
	log := logger.FromContext(ctx)

	q := r.builder.
		Select(callColumns...).
		From("calls").
		OrderBy("started_at DESC")

	if filter.ClientID != "" {
		q = q.Where(sq.Eq{"client_id": filter.ClientID})
	}
	if !filter.StartDate.IsZero() {
		q = q.Where(sq.GtOrEq{"started_at": filter.StartDate})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := q.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "callRepository.List").
			Msg("failed to build calls query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryCalls(ctx, "callRepository.List", query, args...)
}

// ListActive implements [CallRepository]. It returns the in-progress calls
// for the live monitoring view.
func (r *callRepository) ListActive(ctx context.Context) ([]models.Call, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(callColumns...).
		From("calls").
		Where(sq.Eq{"status": statusActive}).
		OrderBy("started_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "callRepository.ListActive").
			Msg("failed to build active calls query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryCalls(ctx, "callRepository.ListActive", query, args...)
}

// StatsToday implements [CallRepository]. Aggregation runs over status and
// duration columns only; the sensitive text columns never participate.
func (r *callRepository) StatsToday(ctx context.Context) (models.TodayStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN status = 'in_progress' THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN status = 'voicemail' THEN 1 ELSE 0 END), 0)",
			"COALESCE(AVG(duration_sec), 0)",
		).
		From("calls").
		Where("started_at >= CURRENT_DATE").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "callRepository.StatsToday").
			Msg("failed to build stats query")
		return models.TodayStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stats models.TodayStats
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(
		&stats.TotalCalls,
		&stats.CompletedCalls,
		&stats.FailedCalls,
		&stats.ActiveCalls,
		&stats.VoicemailCalls,
		&stats.AvgDurationSec,
	); err != nil {
		log.Err(err).
			Str("func", "callRepository.StatsToday").
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute stats query")
		return models.TodayStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if stats.TotalCalls > 0 {
		stats.SuccessRate = float64(stats.CompletedCalls) / float64(stats.TotalCalls)
	}

	return stats, nil
}

func (r *callRepository) queryCalls(ctx context.Context, caller, query string, args ...any) ([]models.Call, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute calls query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Call, 0, 50)

	for rows.Next() {
		call, scanErr := scanCall(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan call row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, call)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// scanCall maps one result row onto [models.Call], tolerating NULLs in
// every optional column.
func scanCall(rows *sql.Rows) (models.Call, error) {
	var (
		call models.Call

		externalCallID, leadID, agentID, phone sql.NullString
		transcript, summary, recording         sql.NullString
		metadata, sentiment                    sql.NullString
		duration                               sql.NullInt64
		startedAt, createdAt, updatedAt        sql.NullTime
	)

	if err := rows.Scan(
		&call.ID,
		&externalCallID,
		&leadID,
		&agentID,
		&call.ClientID,
		&phone,
		&call.Status,
		&transcript,
		&summary,
		&recording,
		&metadata,
		&sentiment,
		&duration,
		&startedAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		return models.Call{}, err
	}

	call.ExternalCallID = externalCallID.String
	call.LeadID = leadID.String
	call.AgentID = agentID.String
	call.PhoneNumber = phone.String
	call.Transcript = transcript.String
	call.Summary = summary.String
	call.RecordingURL = recording.String
	call.Sentiment = sentiment.String
	call.DurationSec = duration.Int64
	call.StartedAt = startedAt.Time
	call.CreatedAt = createdAt.Time
	call.UpdatedAt = updatedAt.Time

	if metadata.Valid && metadata.String != "" {
		if err := json.Unmarshal([]byte(metadata.String), &call.Metadata); err != nil {
			return models.Call{}, fmt.Errorf("decode call metadata: %w", err)
		}
	}

	return call, nil
}
