// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the data types shared across pingbot.

# Domain Types

  - UserID: chat user identifier (-1 when a moderator has no known chat account)
  - Moderator: a roster entry {id, name}
  - Roster: canonical site ID → ordered moderators
  - RosterDocument: on-disk roster file with a top-level "moderators" key
  - Message: an incoming chat message (rendered content plus markdown source)
  - IDSet: set of user IDs with Union, Minus, Intersect and Sorted helpers

# Roster File

	{
	  "moderators": {
	    "math": [{"id": 1, "name": "Alice"}, {"id": 2, "name": "Bob"}],
	    "hsm": []
	  }
	}

A site with an empty list is tracked but currently has no moderators.

# Request/Response Types

Types used by the admin HTTP API:

  - CommandRequest / CommandResponse: POST /commands
  - SitesResponse, SiteModeratorsResponse: GET /sites, GET /sites/{site}/moderators
  - ReloadResponse: POST /roster/reload
  - PresenceResponse: GET /presence
  - ErrorResponse: every error body

# Intents

The Intent* constants name the commands the dispatcher recognizes and label
the pingbot_commands_total metric.
*/
package models
