// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"log/slog"
	"sync"

	"github.com/danielhkuo/pingbot/models"
)

const (
	JoinMessage  = "Ping bot is now active"
	LeaveMessage = "Ping bot is leaving"
)

// Poster delivers already formatted text to the room.
type Poster interface {
	Post(text string, replyTo *models.Message) error
}

// Room is the bot's seat in the primary room. It formats outgoing messages,
// renders mentions, and drops messages once the bot has left.
type Room struct {
	poster   Poster
	mentions Mentions
	announce bool

	mu     sync.Mutex
	active bool
}

func NewRoom(poster Poster, mentions Mentions, announce bool) *Room {
	return &Room{poster: poster, mentions: mentions, announce: announce}
}

func (r *Room) Mention(id models.UserID, quoted bool) string {
	return r.mentions.Mention(id, quoted)
}

// Send posts text, as a reply to replyTo when it is non-nil.
func (r *Room) Send(text string, replyTo *models.Message) error {
	r.mu.Lock()
	active := r.active
	r.mu.Unlock()
	if !active {
		slog.Info("dropping message while not in room", "text", text)
		return nil
	}
	return r.post(text, replyTo)
}

func (r *Room) post(text string, replyTo *models.Message) error {
	text = FormatMessage(text)
	if replyTo != nil {
		slog.Debug("replying with message", "text", text, "reply_to", replyTo.ID)
	} else {
		slog.Debug("sending message", "text", text)
	}
	return r.poster.Post(text, replyTo)
}

// Join marks the bot present and announces it.
func (r *Room) Join() error {
	r.mu.Lock()
	r.active = true
	r.mu.Unlock()
	if r.announce {
		return r.post(JoinMessage, nil)
	}
	return nil
}

// Leave announces the bot's departure. Later sends are dropped.
func (r *Room) Leave() error {
	r.mu.Lock()
	wasActive := r.active
	r.active = false
	r.mu.Unlock()
	if r.announce && wasActive {
		return r.post(LeaveMessage, nil)
	}
	return nil
}
