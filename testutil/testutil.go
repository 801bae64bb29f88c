// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pingbot/cliparse"
	"github.com/danielhkuo/pingbot/db"
	"github.com/danielhkuo/pingbot/models"
)

// TestDBURL opens a private in-memory sqlite database with foreign keys on
const TestDBURL = "file::memory:?_pragma=foreign_keys(1)"

// OpenTestDB opens an empty in-memory database. The pool is limited to one
// connection since every new connection would get its own empty database.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	return conn
}

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn := OpenTestDB(t)
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		RosterFile:      "moderators.json",
		DatabaseType:    "sqlite",
		Transport:       cliparse.TransportTerminal,
		PingFormat:      "@{}",
		SuperpingFormat: "@@{}",
		AdminKeySalt:    "test-admin-salt",
		CommandRPS:      100,
		CommandBurst:    100,
	}
}

// TestRoster is a small roster covering the lookup outcomes:
// math has two moderators, hsm is tracked but empty.
func TestRoster() models.Roster {
	return models.Roster{
		"math": {{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}},
		"hsm":  {},
	}
}

// Sent is a message recorded by FakeRoom.
type Sent struct {
	Text    string
	ReplyTo *models.Message
}

// FakeRoom renders every mention as a superping and records sends.
type FakeRoom struct {
	mu   sync.Mutex
	sent []Sent
}

func (f *FakeRoom) Mention(id models.UserID, quoted bool) string {
	if quoted {
		return fmt.Sprintf("`@@%d`", id)
	}
	return fmt.Sprintf("@@%d", id)
}

func (f *FakeRoom) Send(text string, replyTo *models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, Sent{Text: text, ReplyTo: replyTo})
	return nil
}

// Sent returns a copy of everything sent so far.
func (f *FakeRoom) Sent() []Sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Sent(nil), f.sent...)
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
