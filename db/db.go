// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database backend.
// dbType is "sqlite" or "postgres"; url is a connection string, or a
// plain file path for sqlite.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "postgres":
		return sql.Open("postgres", url)

	case "sqlite":
		dsn := url
		if !strings.HasPrefix(dsn, "file:") {
			dsn = "file:" + dsn
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

		conn, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// sqlite allows a single writer; one pooled connection keeps
		// concurrent vote updates from hitting SQLITE_BUSY
		conn.SetMaxOpenConns(1)
		return conn, nil

	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}
