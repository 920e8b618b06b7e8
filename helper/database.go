package helper

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// DatabaseConfiguration holds everything needed to open the local store.
type DatabaseConfiguration struct {
	// Path is the sqlite database file. ":memory:" opens a throwaway store.
	Path string
	// BusyTimeout bounds how long a write waits on a locked database.
	BusyTimeout time.Duration
}

// NewDatabaseConfiguration builds a configuration from environment variables.
// CARDLENS_DB_PATH selects the database file and defaults to "cardlens.db" in
// the working directory.
func NewDatabaseConfiguration() (*DatabaseConfiguration, error) {
	path := os.Getenv("CARDLENS_DB_PATH")
	if path == "" {
		path = "cardlens.db"
	}

	return &DatabaseConfiguration{
		Path:        path,
		BusyTimeout: 5 * time.Second,
	}, nil
}

// SetTestDatabaseConfigEnvs points the database at a per-test temporary file.
func SetTestDatabaseConfigEnvs(t *testing.T) {
	t.Helper()
	t.Setenv("CARDLENS_DB_PATH", filepath.Join(t.TempDir(), "cardlens_test.db"))
}

// Database wraps the sql connection together with its logger so handlers can
// share both.
type Database struct {
	Name     string
	Instance *sql.DB
	Logger   *slog.Logger
}

// NewDatabase opens the sqlite database described by config. The connection
// pool is limited to a single connection; every mutating operation is a full
// read-modify-write of a collection snapshot and must not interleave.
func NewDatabase(name string, config *DatabaseConfiguration, logger *slog.Logger) (*Database, error) {
	if config == nil {
		return nil, NewError("database configuration validation", fmt.Errorf("configuration is nil"))
	}

	dsn := config.Path
	if dsn != ":memory:" {
		busy := config.BusyTimeout
		if busy <= 0 {
			busy = 5 * time.Second
		}
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", config.Path, busy.Milliseconds())
	}

	instance, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, NewError("open database", err)
	}
	instance.SetMaxOpenConns(1)

	err = instance.Ping()
	if err != nil {
		return nil, NewError("ping database", err)
	}

	logger.Info("Opened database", slog.String("name", name), slog.String("path", config.Path))

	return &Database{
		Name:     name,
		Instance: instance,
		Logger:   logger,
	}, nil
}
