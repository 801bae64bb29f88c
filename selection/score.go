// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selection

import (
	"math"
	"time"

	"github.com/danielhkuo/pingbot/models"
	"github.com/danielhkuo/pingbot/presence"
)

// idealInactivity is where Score bottoms out: moderators active about this
// long ago are preferred over ones typing right now or long gone.
const idealInactivity = 5.0 // minutes

// minInactivity stands in for zero inactivity so Score stays finite.
const minInactivity = 1e-6 // minutes

// Score rates how good a ping target a user is, lower being better. It is
// round(sqrt(m + 25/m)) for m minutes of inactivity; rounding makes a few
// seconds' difference irrelevant.
func Score(inactive time.Duration) int {
	m := inactive.Minutes()
	if m < minInactivity {
		m = minInactivity
	}
	return int(math.Round(math.Sqrt(m + idealInactivity*idealInactivity/m)))
}

type candidate struct {
	id    models.UserID
	score int
	tie   float64
}

func (c candidate) less(o candidate) bool {
	if c.score != o.score {
		return c.score < o.score
	}
	return c.tie < o.tie
}

// pickOne returns the pool member with the lowest (score, tie) pair. Users
// never seen count as inactive since the Unix epoch.
func (e *Engine) pickOne(pool models.IDSet) models.UserID {
	now := e.now()
	epoch := time.Unix(0, 0)

	var best candidate
	first := true
	for _, id := range pool.Sorted() {
		last := presence.LastActivity(id, e.Primary, e.Secondary)
		if last.Before(epoch) {
			last = epoch
		}
		c := candidate{id: id, score: Score(now.Sub(last)), tie: e.random()}
		if first || c.less(best) {
			best = c
			first = false
		}
	}
	return best.id
}
