// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Flags and Environment Variables

Every flag falls back to an environment variable:

	-p                PORT               Admin API port (default 3318, 0 disables)
	-r                ROSTER_FILE        Roster file (default moderators.json)
	-d                DATABASE_URL       Load the roster from SQL instead
	-t                DATABASE_TYPE      sqlite or postgres (default sqlite)
	-watch            WATCH_ROSTER       Reload the roster file on change
	-transport        TRANSPORT          terminal or socket (default terminal)
	-room             ROOM_ID            Primary room ID
	-bot-id           BOT_ID             The bot's own user ID
	-poster           POSTER_ID          Author of terminal input
	-present          PRESENT_IDS        Users present in the room at startup
	-pingable         PINGABLE_IDS       Users pingable from the room at startup
	-primary-ws       PRIMARY_WS_URL     Primary room event socket
	-secondary-ws     SECONDARY_WS_URL   Secondary room event socket
	-secondary-room   SECONDARY_ROOM_ID  Secondary room ID
	-send-url         SEND_URL           Message post endpoint
	-fkey             SEND_FKEY          Form key for posting
	-ping-format      PING_FORMAT        default "@{}"
	-superping-format SUPERPING_FORMAT   default "@@{}"
	-announce         ANNOUNCE           Join/leave announcements (default true)
	-admin-salt       ADMIN_KEY_SALT     Admin key salt
	-log-level        LOG_LEVEL          debug, info, warn or error
	-rps, -burst      COMMAND_RPS/BURST  POST /commands rate limit per client

CLI flags take precedence over environment variables. Environment values are
parsed by the same flag.Value as the flag, so they are validated identically.

# Validation

  - ADMIN_KEY_SALT is required unless the admin API is disabled (-p 0)
  - the socket transport requires ROOM_ID, PRIMARY_WS_URL and SEND_URL
  - SECONDARY_WS_URL requires SECONDARY_ROOM_ID
  - both ping formats must contain the {} placeholder
*/
package cliparse
