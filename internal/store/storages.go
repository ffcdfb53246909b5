// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/callward/callward/internal/config"
	"github.com/callward/callward/internal/logger"
	"github.com/callward/callward/migrations"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	Calls     CallRepository
	DemoCalls DemoCallRepository
	Tasks     TaskRepository
	Directory DirectoryRepository
	Roles     RoleRepository
}

// NewStorages connects to the backing store selected by the DSN, applies
// pending schema migrations, and constructs all repositories.
//
// A DSN starting with "postgres://" or "postgresql://" selects PostgreSQL;
// anything else is treated as a SQLite path (dev/demo mode).
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, dialect, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connecting storage: %w", err)
	}

	if err := migrations.Migrate(db.DB, dialect); err != nil {
		return nil, fmt.Errorf("migrating storage: %w", err)
	}

	return &Storages{
		Calls:     NewCallRepository(db, log),
		DemoCalls: NewDemoCallRepository(db, log),
		Tasks:     NewTaskRepository(db, log),
		Directory: NewDirectoryRepository(db, log),
		Roles:     NewRoleRepository(db, log),
	}, nil
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, string, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		db, err := NewConnectPostgres(ctx, cfg, log)
		return db, "pgx", err
	case cfg.DSN != "":
		db, err := NewConnectSQLite(ctx, cfg, log)
		return db, "sqlite3", err
	default:
		return nil, "", ErrUnsupportedDriver
	}
}
