// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selection

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/danielhkuo/pingbot/models"
	"github.com/danielhkuo/pingbot/presence"
	"github.com/danielhkuo/pingbot/roster"
	"github.com/danielhkuo/pingbot/sites"
)

var ErrNoOtherModerators = errors.New("no other moderators")

// Roster is the read side of roster.Store.
type Roster interface {
	Lookup(siteID string) ([]models.Moderator, error)
	Sites() []string
}

// Mentioner renders the text that makes the chat platform notify a user.
// Quoted mentions are displayed without notifying anyone.
type Mentioner interface {
	Mention(id models.UserID, quoted bool) string
}

// Request names a site as the user typed it and who asked. The poster is
// left out of every target set unless IncludePoster is set.
type Request struct {
	Site          string
	Poster        models.UserID
	IncludePoster bool
	Message       string
}

// Engine answers roster and ping requests. Secondary may be nil.
type Engine struct {
	Roster    Roster
	Primary   presence.Source
	Secondary presence.Source
	Mentions  Mentioner

	// Now and Rand default to time.Now and rand.Float64.
	Now  func() time.Time
	Rand func() float64
}

// moderatorSet is the resolved, poster-excluded target set for a request.
type moderatorSet struct {
	siteID    string
	siteName  string
	mods      []models.Moderator // sorted case-insensitively by name
	ids       models.IDSet
	excluding bool
}

func (e *Engine) moderators(req Request) (moderatorSet, error) {
	siteID := sites.Canonicalize(req.Site)
	mods, err := e.Roster.Lookup(siteID)
	if err != nil {
		return moderatorSet{}, err
	}

	set := moderatorSet{
		siteID:   siteID,
		siteName: sites.DisplayName(siteID),
		ids:      models.NewIDSet(),
	}
	for _, m := range mods {
		if !req.IncludePoster && m.ID == req.Poster {
			set.excluding = true
			continue
		}
		set.mods = append(set.mods, m)
		set.ids.Add(m.ID)
	}
	if len(set.mods) == 0 {
		return moderatorSet{}, ErrNoOtherModerators
	}

	sort.SliceStable(set.mods, func(i, j int) bool {
		return strings.ToLower(set.mods[i].Name) < strings.ToLower(set.mods[j].Name)
	})
	return set, nil
}

// failureReply maps the expected lookup failures to their canned replies.
func failureReply(req Request, err error) (string, error) {
	switch {
	case errors.Is(err, roster.ErrUnknownSite):
		return fmt.Sprintf("No moderator info for site %s.", req.Site), nil
	case errors.Is(err, roster.ErrNoModerators):
		return fmt.Sprintf("No moderators are listed for %s.", sites.DisplayName(sites.Canonicalize(req.Site))), nil
	case errors.Is(err, ErrNoOtherModerators):
		return fmt.Sprintf("No other moderators for site %s.", req.Site), nil
	default:
		return "", err
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) random() float64 {
	if e.Rand != nil {
		return e.Rand()
	}
	return rand.Float64()
}

func (e *Engine) mentions(ids []models.UserID) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = e.Mentions.Mention(id, false)
	}
	return strings.Join(out, " ")
}

// idsOf returns the IDs of mods that are in filter, in mods order. A nil
// filter keeps everyone.
func idsOf(mods []models.Moderator, filter models.IDSet) []models.UserID {
	var out []models.UserID
	for _, m := range mods {
		if filter == nil || filter.Contains(m.ID) {
			out = append(out, m.ID)
		}
	}
	return out
}

func namesOf(mods []models.Moderator, filter models.IDSet) string {
	var out []string
	for _, m := range mods {
		if filter.Contains(m.ID) {
			out = append(out, m.Name)
		}
	}
	return strings.Join(out, ", ")
}

func withMessage(pings, message, lead string) string {
	if message != "" {
		return fmt.Sprintf("%s: %s", pings, message)
	}
	return fmt.Sprintf("%s: %s", lead, pings)
}
