// Package database opens the word store and keeps its schema and forms
// catalog in place.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mssola/mihi/internal/infrastructure/config"
	"github.com/sirupsen/logrus"
)

// Open connects to the configured database and returns an ent driver for
// it. The returned function releases the connection.
func Open(cfg *config.Config, logger logrus.FieldLogger) (dialect.Driver, func(), error) {
	var (
		db      *sql.DB
		cleanup func()
		name    string
		err     error
	)

	switch cfg.Database.Driver {
	case "sqlite3":
		db, err = openSQLite(cfg.DatabasePath())
		if err == nil {
			cleanup = func() { _ = db.Close() }
		}
		name = dialect.SQLite
	case "postgres":
		db, err = openPostgres(cfg.DataSource())
		if err == nil {
			cleanup = func() { _ = db.Close() }
		}
		name = dialect.Postgres
	case "pgx":
		db, cleanup, err = newPgxConnection(cfg, logger)
		name = dialect.Postgres
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	var drv dialect.Driver = entsql.OpenDB(name, db)
	if cfg.Database.LogSQL && cfg.Database.Driver != "pgx" {
		drv = dialect.DebugWithContext(drv, func(ctx context.Context, args ...any) {
			logger.WithField("dialect", name).Debug(args...)
		})
	}
	return drv, cleanup, nil
}

// OpenSQLite opens the sqlite database at the given path, creating its
// directory when needed.
func OpenSQLite(path string) (dialect.Driver, error) {
	db, err := openSQLite(path)
	if err != nil {
		return nil, err
	}
	return entsql.OpenDB(dialect.SQLite, db), nil
}

func openSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	rawDB, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_fk=1", path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	rawDB.SetMaxOpenConns(1)
	rawDB.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rawDB.PingContext(ctx); err != nil {
		rawDB.Close()
		return nil, fmt.Errorf("could not fetch the database in '%s': %w", path, err)
	}
	return rawDB, nil
}

func openPostgres(dsn string) (*sql.DB, error) {
	rawDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rawDB.PingContext(ctx); err != nil {
		rawDB.Close()
		return nil, fmt.Errorf("ping postgres db: %w", err)
	}
	return rawDB, nil
}
