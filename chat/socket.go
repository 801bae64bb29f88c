// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/pingbot/models"
	"github.com/danielhkuo/pingbot/presence"
)

// Room event types.
const (
	EventMessagePosted = 1
	EventMessageEdited = 2
	EventUserEntered   = 3
	EventUserLeft      = 4
)

// Event is one entry of a room event frame.
type Event struct {
	Type      int           `json:"event_type"`
	TimeStamp int64         `json:"time_stamp"`
	Content   string        `json:"content"`
	ID        int64         `json:"id"`
	UserID    models.UserID `json:"user_id"`
	UserName  string        `json:"user_name"`
	RoomID    int64         `json:"room_id"`
	MessageID int64         `json:"message_id"`
}

type roomEvents struct {
	Events []Event `json:"e"`
}

// DecodeFrame extracts the events for roomID from a websocket frame. Frames
// are keyed by "r<room id>"; other rooms and heartbeats yield no events.
func DecodeFrame(data []byte, roomID int64) ([]Event, error) {
	var frame map[string]json.RawMessage
	if err := json.Unmarshal(data, &frame); err != nil {
		return nil, fmt.Errorf("decoding frame: %w", err)
	}
	raw, ok := frame[fmt.Sprintf("r%d", roomID)]
	if !ok {
		return nil, nil
	}
	var re roomEvents
	if err := json.Unmarshal(raw, &re); err != nil {
		return nil, fmt.Errorf("decoding room events: %w", err)
	}
	return re.Events, nil
}

// SocketObserver follows a room's event websocket, feeding membership and
// activity into Tracker. When Messages is set, posted messages are also
// forwarded there for dispatch.
type SocketObserver struct {
	URL     string
	RoomID  int64
	BotID   models.UserID
	Tracker *presence.Tracker
	Names   *NameBook

	Messages chan<- models.Message

	Dialer *websocket.Dialer
	Header http.Header
	log    *slog.Logger
}

// Run connects and reads events until ctx is done, redialing with backoff
// whenever the connection drops.
func (o *SocketObserver) Run(ctx context.Context) error {
	o.log = slog.With("room", o.RoomID)
	d := o.Dialer
	if d == nil {
		d = websocket.DefaultDialer
	}

	var backoff int
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		con, res, err := d.DialContext(ctx, o.URL, o.Header)
		if err != nil {
			o.log.Warn("dialing room events failed", "error", err, "backoff", backoff)
			if err := sleepCtx(ctx, sleepForBackoff(backoff)); err != nil {
				return err
			}
			backoff++
			continue
		}
		backoff = 0
		o.log.Info("watching room events", "code", res.StatusCode)

		if err := o.handleConnection(ctx, con); err != nil && ctx.Err() == nil {
			o.log.Warn("room event connection failed", "error", err)
		}
	}
}

func (o *SocketObserver) handleConnection(ctx context.Context, con *websocket.Conn) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		con.Close()
	}()

	for {
		_, data, err := con.ReadMessage()
		if err != nil {
			return err
		}
		events, err := DecodeFrame(data, o.RoomID)
		if err != nil {
			o.log.Warn("skipping malformed frame", "error", err)
			continue
		}
		for _, ev := range events {
			if err := o.Handle(ctx, ev); err != nil {
				return err
			}
		}
	}
}

// Handle applies a single event. It only fails when ctx ends while a message
// is waiting to be forwarded.
func (o *SocketObserver) Handle(ctx context.Context, ev Event) error {
	if ev.RoomID != 0 && ev.RoomID != o.RoomID {
		return nil
	}
	at := time.Unix(ev.TimeStamp, 0)
	if o.Names != nil {
		o.Names.Set(ev.UserID, ev.UserName)
	}

	switch ev.Type {
	case EventUserEntered:
		o.Tracker.Entered(ev.UserID, at)
	case EventUserLeft:
		o.Tracker.Left(ev.UserID, at)
	case EventMessageEdited:
		// Only someone in the room can edit, so this counts as being present.
		if ev.UserID != o.BotID {
			o.Tracker.Entered(ev.UserID, at)
		}
	case EventMessagePosted:
		if ev.UserID == o.BotID {
			return nil
		}
		// Users already in the room when we connected only show up here.
		o.Tracker.Entered(ev.UserID, at)
		if o.Messages == nil {
			return nil
		}
		content := html.UnescapeString(ev.Content)
		msg := models.Message{
			ID:      ev.MessageID,
			RoomID:  o.RoomID,
			OwnerID: ev.UserID,
			Owner:   ev.UserName,
			Content: content,
			Source:  content,
			Time:    at,
		}
		select {
		case o.Messages <- msg:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func sleepForBackoff(b int) time.Duration {
	if b == 0 {
		return 0
	}
	if b < 10 {
		return time.Millisecond * time.Duration(rand.Intn(500)+(500*b))
	}
	return time.Second * 30
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
