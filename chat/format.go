// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"strconv"
	"strings"
	"sync"

	"github.com/danielhkuo/pingbot/models"
	"github.com/danielhkuo/pingbot/presence"
)

// FormatMessage marks text as posted by a bot. Multi-line messages get the
// marker on a line of its own so the chat renders them as a block.
func FormatMessage(text string) string {
	if strings.Contains(text, "\n") {
		return "[auto]\n" + text
	}
	return "[auto] " + text
}

func codeQuote(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "") + "`"
}

// Namer resolves a user's display name.
type Namer interface {
	Name(id models.UserID) (string, bool)
}

// Mentions renders mentions for one room. Users the room considers pingable
// get PingFormat filled with their display name; everyone else gets
// SuperpingFormat filled with their raw ID.
type Mentions struct {
	PingFormat      string
	SuperpingFormat string
	Room            presence.Source
	Names           Namer
}

func (m Mentions) Mention(id models.UserID, quoted bool) string {
	ping, superping := m.PingFormat, m.SuperpingFormat
	if quoted {
		ping, superping = codeQuote(ping), codeQuote(superping)
	}
	if m.Room != nil && m.Room.Pingable().Contains(id) && m.Names != nil {
		// A ping needs the display name; without one only a superping notifies.
		if name, ok := m.Names.Name(id); ok && name != "" {
			return strings.ReplaceAll(ping, "{}", strings.ReplaceAll(name, " ", ""))
		}
	}
	return strings.ReplaceAll(superping, "{}", strconv.FormatInt(int64(id), 10))
}

// NameBook remembers the display names seen in room events, deferring to
// Fallback for users it hasn't seen.
type NameBook struct {
	mu       sync.RWMutex
	names    map[models.UserID]string
	Fallback Namer
}

func NewNameBook(fallback Namer) *NameBook {
	return &NameBook{names: make(map[models.UserID]string), Fallback: fallback}
}

func (b *NameBook) Set(id models.UserID, name string) {
	if name == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.names[id] = name
}

func (b *NameBook) Name(id models.UserID) (string, bool) {
	b.mu.RLock()
	name, ok := b.names[id]
	b.mu.RUnlock()
	if ok {
		return name, true
	}
	if b.Fallback != nil {
		return b.Fallback.Name(id)
	}
	return "", false
}
