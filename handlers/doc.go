// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the pingbot admin API.

# Handler Types

Each handler is a struct built by a constructor from its dependencies:

  - RosterHandler: site listing, per-site moderators, roster reload
  - CommandHandler: dry-run of chat commands through the dispatcher
  - PresenceHandler: who the bot currently sees in its rooms

Handlers are mounted by the router package:

	rosterHandler := handlers.NewRosterHandler(store, source, cfg)

# Roster

	GET  /sites                   → ListSites
	GET  /sites/{site}/moderators → GetModerators (aliases accepted)
	POST /roster/reload           → Reload

An unknown site is 404. A tracked site without moderators is 200 with an
empty list. Reload requires the X-Admin-Key header for the "roster" scope; on
failure it returns 500 with the load error and the previous roster stays live.

# Commands

	POST /commands {"poster_id": 7, "content": "math mod", "source": "math mod"}
	→ {"intent": "ping_one", "reply": "Pinging one moderator: @Alice"}

The reply is computed exactly as in chat but never posted. Messages that are
not commands return empty intent and reply.

# Presence

	GET /presence → {"primary": {"present": [...], "pingable": [...]}, "secondary": {...}}
*/
package handlers
