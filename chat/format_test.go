// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/pingbot/models"
	"github.com/danielhkuo/pingbot/presence"
)

type names map[models.UserID]string

func (n names) Name(id models.UserID) (string, bool) {
	name, ok := n[id]
	return name, ok
}

func TestFormatMessage(t *testing.T) {
	assert.Equal(t, "[auto] Known sites: math", FormatMessage("Known sites: math"))
	assert.Equal(t, "[auto]\nline one\nline two", FormatMessage("line one\nline two"))
}

func TestMention(t *testing.T) {
	m := Mentions{
		PingFormat:      "@{}",
		SuperpingFormat: "@@{}",
		Room:            presence.StaticSource{PingableIDs: models.NewIDSet(1, 2)},
		Names:           names{1: "Jane Doe"},
	}

	testCases := []struct {
		name     string
		id       models.UserID
		quoted   bool
		expected string
	}{
		{"pingable with name", 1, false, "@JaneDoe"},
		{"pingable without name falls back to superping", 2, false, "@@2"},
		{"not pingable", 3, false, "@@3"},
		{"quoted pingable", 1, true, "`@JaneDoe`"},
		{"quoted superping", 3, true, "`@@3`"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, m.Mention(tc.id, tc.quoted))
		})
	}
}

func TestMentionQuotingStripsBackticks(t *testing.T) {
	m := Mentions{PingFormat: "@{}", SuperpingFormat: "`@@{}`"}
	assert.Equal(t, "`@@9`", m.Mention(9, true))
	assert.Equal(t, "`@@9`", m.Mention(9, false))
}

func TestNameBook(t *testing.T) {
	book := NewNameBook(names{1: "Roster Name", 2: "Only In Roster"})
	book.Set(1, "Chat Name")
	book.Set(3, "")

	name, ok := book.Name(1)
	assert.True(t, ok)
	assert.Equal(t, "Chat Name", name)

	name, ok = book.Name(2)
	assert.True(t, ok)
	assert.Equal(t, "Only In Roster", name)

	_, ok = book.Name(3)
	assert.False(t, ok)
}
