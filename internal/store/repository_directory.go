// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/callward/callward/internal/logger"
)

// directoryRepository is the SQL-backed implementation of
// [DirectoryRepository]. It resolves display names for leads and agents in
// one bulk IN query per table, keyed by the distinct foreign-id set
// collected from a primary fetch.
type directoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewDirectoryRepository constructs a [DirectoryRepository] backed by the
// provided database connection and logger.
func NewDirectoryRepository(db *DB, logger *logger.Logger) DirectoryRepository {
	return &directoryRepository{
		DB:     db,
		logger: logger,
	}
}

// LeadNamesByIDs implements [DirectoryRepository].
func (r *directoryRepository) LeadNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	return r.namesByIDs(ctx, "leads", ids)
}

// AgentNamesByIDs implements [DirectoryRepository].
func (r *directoryRepository) AgentNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	return r.namesByIDs(ctx, "agents", ids)
}

func (r *directoryRepository) namesByIDs(ctx context.Context, table string, ids []string) (map[string]string, error) {
	log := logger.FromContext(ctx)

	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	query, args, err := r.builder.
		Select("id", "name").
		From(table).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "directoryRepository.namesByIDs").
			Str("table", table).
			Msg("failed to build names query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "directoryRepository.namesByIDs").
			Str("table", table).
			Int("id_count", len(ids)).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute names query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if scanErr := rows.Scan(&id, &name); scanErr != nil {
			log.Err(scanErr).
				Str("func", "directoryRepository.namesByIDs").
				Str("table", table).
				Msg("failed to scan name row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		names[id] = name
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "directoryRepository.namesByIDs").
			Str("table", table).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return names, nil
}
