// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/danielhkuo/pingbot/models"
)

// HTTPPoster posts messages to the chat server's message endpoint as form
// fields "text" and "fkey". Replies are prefixed ":<message id> ", which the
// chat server renders as a reply.
type HTTPPoster struct {
	URL    string
	FKey   string
	Client *http.Client
}

// NewHTTPPoster returns a poster whose client retries connection errors, 5xx
// and 429 responses.
func NewHTTPPoster(sendURL, fkey string) *HTTPPoster {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.Logger = retryablehttp.LeveledLogger(slog.With("component", "chat-sender"))
	client := retryClient.StandardClient()
	client.Timeout = 20 * time.Second
	return &HTTPPoster{URL: sendURL, FKey: fkey, Client: client}
}

func (p *HTTPPoster) Post(text string, replyTo *models.Message) error {
	if replyTo != nil {
		text = fmt.Sprintf(":%d %s", replyTo.ID, text)
	}
	form := url.Values{"text": {text}, "fkey": {p.FKey}}

	req, err := http.NewRequest(http.MethodPost, p.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("posting message: %w", err)
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("posting message: unexpected status %s", res.Status)
	}
	return nil
}
