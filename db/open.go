// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ippon-board/cliparse"
)

// sqliteParams are appended to SQLite DSNs that do not set them already.
var sqliteParams = []struct{ key, value string }{
	{"_pragma=foreign_keys", "_pragma=foreign_keys(1)"},
	{"_pragma=busy_timeout", "_pragma=busy_timeout(5000)"},
	{"_time_format", "_time_format=sqlite"},
}

// Open connects to the configured database and verifies the connection.
// SQLite pools are capped at one connection so writers never race for the lock.
func Open(dbType, databaseURL string) (*sql.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("open: empty database URL")
	}

	var driver, dsn string
	switch dbType {
	case cliparse.DatabasePostgres:
		driver, dsn = "postgres", databaseURL
	case cliparse.DatabaseSQLite:
		driver, dsn = "sqlite", sqliteDSN(databaseURL)
	default:
		return nil, fmt.Errorf("open: unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open: sql open: %w", err)
	}

	if dbType == cliparse.DatabaseSQLite {
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetConnMaxIdleTime(5 * time.Minute)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open: ping: %w", err)
	}

	return conn, nil
}

func sqliteDSN(url string) string {
	var extra []string
	for _, p := range sqliteParams {
		if !strings.Contains(url, p.key) {
			extra = append(extra, p.value)
		}
	}
	if len(extra) == 0 {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + strings.Join(extra, "&")
}
