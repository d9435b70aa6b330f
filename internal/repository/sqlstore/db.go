// Package sqlstore keeps scenario sets in Postgres or SQLite.
package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

const schema = `
CREATE TABLE IF NOT EXISTS scenarios (
	set_name TEXT NOT NULL,
	position INTEGER NOT NULL,
	label    TEXT NOT NULL,
	counts   TEXT NOT NULL,
	PRIMARY KEY (set_name, position)
);`

// Connect opens a database from a URL and migrates the schema.
// postgres:// and postgresql:// use lib/pq; sqlite://PATH (or sqlite://:memory:)
// uses the pure Go SQLite driver.
func Connect(ctx context.Context, databaseURL string) (*sqlx.DB, error) {
	driver, dsn, err := splitURL(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s open: %w", driver, err)
	}
	if driver == "sqlite" {
		// Each connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s ping: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s migrate: %w", driver, err)
	}
	return db, nil
}

func splitURL(u string) (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(u, "postgres://"), strings.HasPrefix(u, "postgresql://"):
		return "postgres", u, nil
	case strings.HasPrefix(u, "sqlite://"):
		path := strings.TrimPrefix(u, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite URL %q has no path", u)
		}
		if path != ":memory:" {
			path += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
		}
		return "sqlite", path, nil
	}
	return "", "", fmt.Errorf("unsupported database URL %q", u)
}
