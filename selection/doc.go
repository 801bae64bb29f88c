// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package selection decides which moderators a reply names or pings.

# Engine

An Engine combines the roster, the primary room, an optional secondary room,
and the transport's mention renderer:

	e := &selection.Engine{
		Roster:    store,
		Primary:   room,
		Secondary: lounge, // may be nil
		Mentions:  room,
	}

Every operation resolves the site alias, looks up the roster and drops the
poster from the target set. The expected failures never surface as errors:

  - unknown site       → "No moderator info for site X."
  - no moderators      → "No moderators are listed for X."
  - only the poster    → "No other moderators for site X."

# Policies

  - Sites: the tracked site IDs
  - WhoIs: moderators by tier (present, recently active, others)
  - PingOne: one moderator, chosen by activity score
  - PingPresent: every moderator in the primary room
  - PingAll: every moderator, sorted by name

# PingOne Scoring

The pool is the first non-empty tier among present, recent and other. Each
candidate gets

	score = round(sqrt(m + 25/m))

for m minutes since its latest activity in either room, and a random tie-break
key. The lowest (score, key) wins. The score is smallest near five minutes of
inactivity, so someone who just stepped away is preferred over someone typing
and over someone gone for days.

The secondary room feeds WhoIs and PingOne only; PingPresent and PingAll look
at the primary room alone.
*/
package selection
