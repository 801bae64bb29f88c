// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for pingbot.

pingbot sits in a chat room and pings the moderators of Stack Exchange sites
on request, preferring moderators who are around:

	math mod            → pings one math moderator, present ones first
	math mods           → pings every math moderator in the room
	all math mods: help → pings every math moderator
	whois math mods     → lists them without pinging
	sites               → lists the known sites

# Starting the Bot

With the terminal transport, stdin lines are chat messages:

	ADMIN_KEY_SALT=dev go run . -poster 7 -present 1,2 -r moderators.json

Against a live room:

	TRANSPORT=socket ROOM_ID=17 PRIMARY_WS_URL=wss://... SEND_URL=https://... \
	SEND_FKEY=... BOT_ID=100 ADMIN_KEY_SALT=... go run .

A .env file in the working directory is loaded first.

# Roster

The roster comes from ROSTER_FILE (JSON or YAML) or, when DATABASE_URL is
set, from the site and moderator tables (postgres via lib/pq, or sqlite). It
is reloaded on SIGHUP, on POST /roster/reload, and with -watch whenever the
file changes. A failed reload keeps the previous roster.

# Architecture

  - sites: site aliases and display names
  - roster: roster store, file/SQL sources, file watcher
  - presence: room presence sources, activity tracking, classification
  - selection: WhoIs and the ping policies
  - command: command grammar and the dispatcher's error boundary
  - chat: rooms, mentions, terminal and websocket transports
  - handlers, router, middleware: admin HTTP API
  - seapi: Stack Exchange API client for `pingbot-admin regenerate`
  - cliparse, db, auth, metrics, models: configuration and shared pieces

See package documentation for each component.
*/
package main
