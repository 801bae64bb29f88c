// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/pingbot/auth"
	"github.com/danielhkuo/pingbot/command"
	"github.com/danielhkuo/pingbot/models"
	"github.com/danielhkuo/pingbot/presence"
	"github.com/danielhkuo/pingbot/roster"
	"github.com/danielhkuo/pingbot/selection"
	"github.com/danielhkuo/pingbot/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	store := roster.NewStore()
	store.Replace(testutil.TestRoster())
	primary := presence.StaticSource{PresentIDs: models.NewIDSet(1)}
	room := &testutil.FakeRoom{}
	engine := &selection.Engine{Roster: store, Primary: primary, Mentions: room}

	return NewRouter(Services{
		Store:      store,
		Dispatcher: command.NewDispatcher(engine, room),
		Primary:    primary,
	}, testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	expected := "pingbot API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	// Run a command first so the counters have a sample.
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/commands", models.CommandRequest{Content: "sites"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "pingbot_commands_total") {
		t.Error("Expected pingbot_commands_total in metrics output")
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/metrics"},
		{"GET", "/sites"},
		{"GET", "/sites/math/moderators"},
		{"POST", "/roster/reload"},
		{"POST", "/commands"},
		{"GET", "/presence"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// 400, 401, 404 are all valid responses depending on handler logic
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/sites/math/moderators"},
		{"DELETE", "/roster/reload"},
		{"PUT", "/commands"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestReloadRequiresAdminKey(t *testing.T) {
	mux := newTestRouter(t)
	cfg := testutil.GetTestConfig()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/roster/reload", nil, nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Valid key, but this router has no roster source.
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/roster/reload", nil, map[string]string{
		"X-Admin-Key": auth.GenerateAdminKey(auth.ScopeRoster, cfg.AdminKeySalt),
	}))
	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}

func TestCommandsRateLimited(t *testing.T) {
	store := roster.NewStore()
	room := &testutil.FakeRoom{}
	engine := &selection.Engine{Roster: store, Primary: presence.StaticSource{}, Mentions: room}
	cfg := testutil.GetTestConfig()
	cfg.CommandRPS = 0.001
	cfg.CommandBurst = 2
	mux := NewRouter(Services{Store: store, Dispatcher: command.NewDispatcher(engine, room), Primary: presence.StaticSource{}}, cfg)

	codes := make([]int, 3)
	for i := range codes {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("POST", "/commands", models.CommandRequest{Content: "sites"}, nil))
		codes[i] = w.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("Expected [200 200 429], got %v", codes)
	}
}
