// Package pgtest starts a throwaway PostgreSQL container with the application schema
// for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	adapter "distributor/internal/adapters/out/postgres"

	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine, connects and migrates the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	database := &Database{Container: container}

	database.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	database.DB, err = adapter.Open(database.DSN, logger.Silent)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := adapter.Migrate(database.DB); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return database, nil
}

// Truncate empties every application table.
func (d *Database) Truncate() error {
	tables := adapter.Tables()
	quoted := make([]string, 0, len(tables))
	for _, table := range tables {
		quoted = append(quoted, pq.QuoteIdentifier(table))
	}
	return d.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(quoted, ", "))).Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	if sqlDB, err := d.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return d.Container.Terminate(ctx)
}
