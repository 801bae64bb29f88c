// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package chat connects the dispatcher to chat rooms.

# Rooms

A Room is the bot's seat in the primary room. It satisfies both the selection
engine's Mentioner and the dispatcher's Sender:

	room := chat.NewRoom(poster, mentions, cfg.Announce)
	room.Join()         // "[auto] Ping bot is now active"
	defer room.Leave()  // "[auto] Ping bot is leaving"

Every outgoing message is prefixed "[auto] ", or "[auto]\n" when it spans
several lines. Sends after Leave are dropped.

# Mentions

Mentions renders a notifying mention. Users the room considers pingable get
PingFormat ("@{}") with their display name, spaces removed. Everyone else
gets SuperpingFormat ("@@{}") with their raw ID. Quoted mentions wrap the
format in backticks so the text shows without notifying anyone.

# Transports

  - TerminalReader / TerminalPoster: stdin lines become messages from a fixed
    poster; output is printed, replies prefixed "reply:".
  - SocketObserver: follows a room's event websocket (gorilla/websocket),
    tracking entries, exits and messages in a presence.Tracker and redialing
    with backoff. With Messages set it also feeds the dispatcher.
  - HTTPPoster: posts messages over HTTP with go-retryablehttp.

# Event Frames

	{"r17": {"e": [{"event_type": 1, "time_stamp": 1700000000,
	  "content": "math mod", "user_id": 5, "user_name": "Alice",
	  "room_id": 17, "message_id": 99}]}}

Event types: 1 message posted, 3 user entered, 4 user left. Others are ignored.
*/
package chat
