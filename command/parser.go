// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package command

import (
	"regexp"
	"strings"

	"github.com/danielhkuo/pingbot/models"
)

const Help = `"whois [sitename] mods" works as in TL.
"[sitename] mod" or "any [sitename] mod" pings a single mod of the site, one who is in the room if possible.
"[sitename] mods" pings all mods of the site currently in the room, or if none are present, does nothing.
"all [sitename] mods" pings all mods of the site, period.
"sites" gives a list of pingable sites (not including some aliases which are also recognized).
Pings can optionally be followed by a colon and a message.`

// Command is a parsed chat command.
type Command struct {
	Intent  string
	Site    string
	Message string
}

type pattern struct {
	intent string
	re     *regexp.Regexp
}

// patterns are tried in order; the single-ping pattern must come before the
// present-ping one since "x mod" is a prefix of "x mods".
var patterns = []pattern{
	{models.IntentHelp, regexp.MustCompile(`^help me ping$`)},
	{models.IntentListSites, regexp.MustCompile(`^sites$`)},
	{models.IntentWhoIs, regexp.MustCompile(`^who(?:is|are) (\w+) mods$`)},
	{models.IntentPingOne, regexp.MustCompile(`^(?:any )?(\w+) mod(?:\s*:\s*(.+))?$`)},
	{models.IntentPingPresent, regexp.MustCompile(`^(\w+) mods(?:\s*:\s*(.+))?$`)},
	{models.IntentPingAll, regexp.MustCompile(`^all (\w+) mods(?:\s*:\s*(.+))?$`)},
}

// Parse recognizes a command in trimmed message text.
func Parse(content string) (Command, bool) {
	content = strings.TrimSpace(content)
	for _, p := range patterns {
		if cmd, ok := p.match(content); ok {
			return cmd, true
		}
	}
	return Command{}, false
}

func (p pattern) match(text string) (Command, bool) {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return Command{}, false
	}
	cmd := Command{Intent: p.intent}
	if len(m) > 1 {
		cmd.Site = m[1]
	}
	if len(m) > 2 {
		cmd.Message = m[2]
	}
	return cmd, true
}

// ParseMessage parses the rendered content of msg. For pings the site and
// trailing message are taken from the markdown source when it matches the
// same pattern, so formatting survives into the ping.
func ParseMessage(msg models.Message) (Command, bool) {
	content := strings.TrimSpace(msg.Content)
	for _, p := range patterns {
		cmd, ok := p.match(content)
		if !ok {
			continue
		}
		if isPing(cmd.Intent) {
			if src, ok := p.match(strings.TrimSpace(msg.Source)); ok {
				cmd = src
			}
		}
		return cmd, true
	}
	return Command{}, false
}

func isPing(intent string) bool {
	switch intent {
	case models.IntentPingOne, models.IntentPingPresent, models.IntentPingAll:
		return true
	}
	return false
}
