// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/pingbot/models"
	"github.com/danielhkuo/pingbot/presence"
)

// TerminalPoster prints room output, prefixing replies with "reply:".
type TerminalPoster struct {
	mu sync.Mutex
	W  io.Writer
}

func (p *TerminalPoster) Post(text string, replyTo *models.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var err error
	if replyTo != nil {
		_, err = fmt.Fprintln(p.W, "reply:", text)
	} else {
		_, err = fmt.Fprintln(p.W, text)
	}
	return err
}

// TerminalReader turns input lines into messages from a single poster.
type TerminalReader struct {
	R      io.Reader
	RoomID int64
	Poster models.UserID

	// Tracker, when set, records each line as activity by Poster.
	Tracker *presence.Tracker
}

// Run reads until input ends or ctx is done, sending each line to out.
// It returns nil at end of input.
func (t *TerminalReader) Run(ctx context.Context, out chan<- models.Message) error {
	scanner := bufio.NewScanner(t.R)
	var id int64
	for scanner.Scan() {
		line := scanner.Text()
		slog.Debug("read input line", "line", id, "content", line)

		now := time.Now()
		if t.Tracker != nil {
			t.Tracker.Active(t.Poster, now)
		}
		msg := models.Message{
			ID:      id,
			RoomID:  t.RoomID,
			OwnerID: t.Poster,
			Content: line,
			Source:  line,
			Time:    now,
		}
		id++

		select {
		case out <- msg:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

// TerminalPresence is the terminal room's view of who is around: the
// configured present and pingable users plus activity seen on input.
type TerminalPresence struct {
	Static  presence.StaticSource
	Tracker *presence.Tracker
}

func (p TerminalPresence) Present() models.IDSet {
	return p.Static.Present()
}

func (p TerminalPresence) Pingable() models.IDSet {
	return p.Static.Pingable()
}

func (p TerminalPresence) LastActivity(id models.UserID) time.Time {
	if p.Tracker == nil {
		return p.Static.LastActivity(id)
	}
	return presence.LastActivity(id, p.Static, p.Tracker)
}
