// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/ippon-board/cliparse"
	"github.com/danielhkuo/ippon-board/db"
)

// SetupTestDB creates a fresh SQLite database in a temp dir with the full
// schema and the five default judges. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, "file:"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.SeedJudges(conn, cliparse.DefaultJudgeNames); err != nil {
		t.Fatalf("Failed to seed judges: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:test.db",
		DatabaseType: cliparse.DatabaseSQLite,
		JudgeNames:   append([]string(nil), cliparse.DefaultJudgeNames...),
	}
}

// CreateTestSession inserts a session row directly and returns its ID.
// Callers creating an active session must make sure no other one is active.
func CreateTestSession(t *testing.T, conn *sql.DB, roundNumber int, active bool) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO sessions (round_number, is_active, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, roundNumber, active, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return id
}

// SetTestVote writes a vote row for a judge in a session
func SetTestVote(t *testing.T, conn *sql.DB, sessionID int64, judgeNumber int, voted bool) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO votes (session_id, judge_id, voted, voted_at)
		SELECT $1, id, $2, $3 FROM judges WHERE judge_number = $4
	`, sessionID, voted, time.Now().UTC(), judgeNumber)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
