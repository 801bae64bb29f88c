// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seapi

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const DefaultBaseURL = "https://api.stackexchange.com/2.3"

// User is a site account as returned by the users endpoints.
type User struct {
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	IsEmployee  bool   `json:"is_employee"`
	UserType    string `json:"user_type"`
}

type wrapper struct {
	Items          []User `json:"items"`
	HasMore        bool   `json:"has_more"`
	Backoff        int    `json:"backoff"`
	QuotaRemaining int    `json:"quota_remaining"`
	ErrorID        int    `json:"error_id"`
	ErrorName      string `json:"error_name"`
	ErrorMessage   string `json:"error_message"`
}

// APIError is an error reported in the body of an API response.
type APIError struct {
	ID      int
	Name    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stack exchange api: %s (%d): %s", e.Name, e.ID, e.Message)
}

type Client struct {
	BaseURL string
	// Key is an optional app key; it raises the daily quota.
	Key  string
	HTTP *http.Client

	sleep func(context.Context, time.Duration) error
}

// NewClient returns a client whose HTTP transport retries connection errors,
// 5xx and 429 responses.
func NewClient(key string) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.Logger = retryablehttp.LeveledLogger(slog.With("component", "seapi"))
	client := retryClient.StandardClient()
	client.Timeout = 30 * time.Second
	return &Client{BaseURL: DefaultBaseURL, Key: key, HTTP: client}
}

// Moderators lists every moderator of the site at domain, elected and
// appointed, across all result pages.
func (c *Client) Moderators(ctx context.Context, domain string) ([]User, error) {
	var users []User
	for page := 1; ; page++ {
		w, err := c.get(ctx, "/users/moderators", url.Values{
			"site":     {domain},
			"page":     {strconv.Itoa(page)},
			"pagesize": {"100"},
			"order":    {"desc"},
			"sort":     {"reputation"},
		})
		if err != nil {
			return nil, fmt.Errorf("listing moderators of %s: %w", domain, err)
		}
		for _, u := range w.Items {
			u.DisplayName = html.UnescapeString(u.DisplayName)
			users = append(users, u)
		}
		if w.Backoff > 0 {
			slog.Info("api requested backoff", "seconds", w.Backoff, "quota_remaining", w.QuotaRemaining)
			if err := c.wait(ctx, time.Duration(w.Backoff)*time.Second); err != nil {
				return nil, err
			}
		}
		if !w.HasMore {
			return users, nil
		}
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*wrapper, error) {
	if c.Key != "" {
		params.Set("key", c.Key)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var w wrapper
	if err := json.NewDecoder(res.Body).Decode(&w); err != nil {
		return nil, fmt.Errorf("decoding response (status %d): %w", res.StatusCode, err)
	}
	if w.ErrorID != 0 {
		return nil, &APIError{ID: w.ErrorID, Name: w.ErrorName, Message: w.ErrorMessage}
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}
	return &w, nil
}

func (c *Client) wait(ctx context.Context, d time.Duration) error {
	if c.sleep != nil {
		return c.sleep(ctx, d)
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
