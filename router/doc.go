// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the pingbot admin API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(router.Services{
		Store:      store,
		Source:     source,
		Dispatcher: dispatcher,
		Primary:    primaryPresence,
		Secondary:  secondaryTracker,
	}, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics - Prometheus exposition

Roster:

	GET  /sites                   - Tracked sites with moderator counts
	GET  /sites/{site}/moderators - One site's moderators
	POST /roster/reload           - Reload from the configured source (X-Admin-Key)

Commands (rate limited per client by COMMAND_RPS / COMMAND_BURST):

	POST /commands - Compute the bot's reply to a message

Presence:

	GET /presence - Present and pingable users per room
*/
package router
