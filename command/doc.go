// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package command parses chat messages into commands and answers them.

# Grammar

	help me ping              help text
	sites                     list known sites
	whois SITE mods           who moderates SITE and who is here
	whoare SITE mods          same as whois
	[any ]SITE mod[: MSG]     ping one moderator
	SITE mods[: MSG]          ping moderators present in the room
	all SITE mods[: MSG]      ping every moderator

Matching is case-sensitive and runs on the trimmed rendered content. For
pings the site and trailing message are re-read from the markdown source
when the source matches the same pattern.

# Dispatch

Dispatch never panics. A failure while composing a reply is answered with
ReplyFailed; a failure posting that reply is followed by ReplyFailedHard as a
plain message. Respond is the side-effect free half used by POST /commands.
*/
package command
