// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package presence classifies users by how reachable they are in a chat room.

# Sources

A Source reports the users currently present in a room, the users reachable
by a lightweight mention (a superset of present), and each user's last
activity time.

Implementations:

  - Tracker: built from room events (enter, leave, message); safe for
    concurrent use by a transport read loop and the dispatcher
  - StaticSource: a fixed room state, used by the terminal room and tests

# Classification

	snap := presence.Classify(candidates, primary, secondary)

Classify returns three disjoint tiers covering the candidates:

  - Present: in the primary room
  - Recent: pingable in the primary room, or present/pingable in the
    secondary room, and not present in the primary room
  - Other: everyone else

secondary may be nil. A user present only in the secondary room is recent,
not present, because presence is per room.
*/
package presence
