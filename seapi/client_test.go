// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pingbot/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("app-key")
	c.BaseURL = srv.URL
	c.sleep = func(context.Context, time.Duration) error { return nil }
	return c
}

func TestModeratorsPages(t *testing.T) {
	var backoffs int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/moderators", r.URL.Path)
		assert.Equal(t, "math.stackexchange.com", r.URL.Query().Get("site"))
		assert.Equal(t, "app-key", r.URL.Query().Get("key"))
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, `{"items":[{"user_id":1,"display_name":"Alice &amp; Co"}],"has_more":true,"backoff":2}`)
		case "2":
			fmt.Fprint(w, `{"items":[{"user_id":-1,"display_name":"Community"}],"has_more":false}`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	})
	c.sleep = func(_ context.Context, d time.Duration) error {
		backoffs++
		assert.Equal(t, 2*time.Second, d)
		return nil
	}

	users, err := c.Moderators(context.Background(), "math.stackexchange.com")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice & Co", users[0].DisplayName)
	assert.Equal(t, int64(-1), users[1].UserID)
	assert.Equal(t, 1, backoffs)
}

func TestModeratorsAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error_id":400,"error_name":"bad_parameter","error_message":"site is required"}`)
	})

	_, err := c.Moderators(context.Background(), "nowhere.stackexchange.com")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad_parameter", apiErr.Name)
}

func TestSiteDomain(t *testing.T) {
	assert.Equal(t, "stackoverflow.com", SiteDomain("so"))
	assert.Equal(t, "askubuntu.com", SiteDomain("askubuntu"))
	assert.Equal(t, "math.stackexchange.com", SiteDomain("math"))
}

type fakeLister map[string][]User

func (f fakeLister) Moderators(_ context.Context, domain string) ([]User, error) {
	users, ok := f[domain]
	if !ok {
		return nil, errors.New("no such site")
	}
	return users, nil
}

func TestRefresh(t *testing.T) {
	api := fakeLister{
		"math.stackexchange.com": {
			{UserID: 10, DisplayName: "Alice"},
			{UserID: 11, DisplayName: "Newcomer"},
			{UserID: 12, DisplayName: "Staff", IsEmployee: true},
			{UserID: -1, DisplayName: "Community"},
		},
		"hsm.stackexchange.com": {},
	}
	old := models.Roster{
		"math": {{ID: 1, Name: "Alice"}, {ID: 2, Name: "Retired"}},
		"hsm":  {},
	}

	got, err := Refresh(context.Background(), api, old)
	require.NoError(t, err)
	assert.Equal(t, models.Roster{
		"math": {{ID: 1, Name: "Alice"}, {ID: -1, Name: "Newcomer"}},
		"hsm":  {},
	}, got)
}

func TestRefreshFails(t *testing.T) {
	_, err := Refresh(context.Background(), fakeLister{}, models.Roster{"math": {}})
	assert.Error(t, err)
}
