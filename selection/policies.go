// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selection

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/pingbot/metrics"
	"github.com/danielhkuo/pingbot/presence"
)

// Sites lists the tracked sites.
func (e *Engine) Sites() string {
	ids := e.Roster.Sites()
	if len(ids) == 0 {
		return "No sites are known."
	}
	return "Known sites: " + strings.Join(ids, ", ")
}

// WhoIs describes a site's moderators by tier. Moderators outside the present
// and recent tiers are listed with a quoted mention so the reply itself
// notifies nobody.
func (e *Engine) WhoIs(req Request) (string, error) {
	set, err := e.moderators(req)
	if err != nil {
		return failureReply(req, err)
	}

	count := fmt.Sprintf("%d", len(set.mods))
	if set.excluding {
		count += " other"
	}
	noun := "moderators"
	if len(set.mods) == 1 {
		noun = "moderator"
	}

	snap := presence.Classify(set.ids, e.Primary, e.Secondary)

	var others []string
	for _, m := range set.mods {
		if snap.Other.Contains(m.ID) {
			others = append(others, fmt.Sprintf("%s (%s)", m.Name, e.Mentions.Mention(m.ID, true)))
		}
	}
	otherList := strings.Join(others, ", ")

	if snap.Present.Len() == 0 && snap.Recent.Len() == 0 {
		return fmt.Sprintf("I know of %s %s on %s: %s. None are recently active.",
			count, noun, set.siteName, otherList), nil
	}

	parts := []string{fmt.Sprintf("I know of %s %s on %s.", count, noun, set.siteName)}
	var lead string
	switch {
	case snap.Present.Len() > 0 && snap.Recent.Len() > 0:
		parts = append(parts,
			fmt.Sprintf("Currently in this room: %s.", namesOf(set.mods, snap.Present)),
			fmt.Sprintf("Recently active: %s.", namesOf(set.mods, snap.Recent)))
		lead = "Others:"
	case snap.Present.Len() > 0:
		parts = append(parts, fmt.Sprintf("Currently in this room: %s.", namesOf(set.mods, snap.Present)))
		lead = "Not currently in this room:"
	default:
		parts = append(parts, fmt.Sprintf("Recently active: %s.", namesOf(set.mods, snap.Recent)))
		lead = "Not recently active:"
	}
	if len(others) > 0 {
		parts = append(parts, fmt.Sprintf("%s %s.", lead, otherList))
	}
	return strings.Join(parts, " "), nil
}

// PingOne mentions a single moderator. The pool is the first non-empty tier
// of present, recent and other; within it the best Score wins, with ties
// broken by a fresh random key per candidate.
func (e *Engine) PingOne(req Request) (string, error) {
	set, err := e.moderators(req)
	if err != nil {
		return failureReply(req, err)
	}

	snap := presence.Classify(set.ids, e.Primary, e.Secondary)
	pool := snap.Present
	if pool.Len() == 0 {
		pool = snap.Recent
	}
	if pool.Len() == 0 {
		pool = snap.Other
	}

	target := e.pickOne(pool)
	metrics.PingsTotal.WithLabelValues("one").Inc()
	return withMessage(e.Mentions.Mention(target, false), req.Message, "Pinging one moderator"), nil
}

// PingPresent mentions every moderator currently in the primary room.
func (e *Engine) PingPresent(req Request) (string, error) {
	set, err := e.moderators(req)
	if err != nil {
		return failureReply(req, err)
	}

	present := presence.Observe(set.ids, e.Primary).Present
	if present.Len() == 0 {
		no := "No"
		if set.excluding {
			no = "No other"
		}
		return fmt.Sprintf("%s moderators of %s are currently in this room. Use `%s mod` to ping one.",
			no, set.siteName, req.Site), nil
	}

	targets := idsOf(set.mods, present)
	metrics.PingsTotal.WithLabelValues("present").Add(float64(len(targets)))
	plural := "s"
	if len(targets) == 1 {
		plural = ""
	}
	return withMessage(e.mentions(targets), req.Message,
		fmt.Sprintf("Pinging %d moderator%s", len(targets), plural)), nil
}

// PingAll mentions every moderator of the site regardless of presence.
func (e *Engine) PingAll(req Request) (string, error) {
	set, err := e.moderators(req)
	if err != nil {
		return failureReply(req, err)
	}

	targets := idsOf(set.mods, nil)
	metrics.PingsTotal.WithLabelValues("all").Add(float64(len(targets)))
	return withMessage(e.mentions(targets), req.Message,
		fmt.Sprintf("Pinging %d moderators", len(targets))), nil
}
