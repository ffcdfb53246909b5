// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/models"
)

// roleRepository is the SQL-backed implementation of [RoleRepository].
type roleRepository struct {
	*DB
	logger *logger.Logger
}

// NewRoleRepository constructs a [RoleRepository] backed by the provided
// database connection and logger.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	return &roleRepository{
		DB:     db,
		logger: logger,
	}
}

// RoleByUserID implements [RoleRepository]. The role is looked up fresh on
// every request; nothing is cached. A user without an assignment row gets
// [models.RoleNone] and no error.
func (r *roleRepository) RoleByUserID(ctx context.Context, userID string) (models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("role").
		From("role_assignments").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "roleRepository.RoleByUserID").
			Msg("failed to build role query")
		return models.RoleNone, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var role string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&role)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// No assignment row means no elevated privilege, not an error.
		return models.RoleNone, nil
	case err != nil:
		log.Err(err).
			Str("func", "roleRepository.RoleByUserID").
			Str("user_id", userID).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute role query")
		return models.RoleNone, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.Role(role), nil
}
