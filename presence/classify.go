// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package presence

import (
	"time"

	"github.com/danielhkuo/pingbot/models"
)

// Source reports who is in a chat room. Pingable must include everyone in
// Present. LastActivity returns the zero time for users never seen.
type Source interface {
	Present() models.IDSet
	Pingable() models.IDSet
	LastActivity(id models.UserID) time.Time
}

// Room is one room's view of a candidate set: Present and Pingable are
// restricted to the candidates, Absent is everyone else.
type Room struct {
	Present  models.IDSet
	Pingable models.IDSet
	Absent   models.IDSet
}

// Observe splits candidates according to a single source.
func Observe(candidates models.IDSet, src Source) Room {
	present := candidates.Intersect(src.Present())
	pingable := candidates.Intersect(src.Pingable())
	return Room{
		Present:  present,
		Pingable: pingable,
		Absent:   candidates.Minus(present, pingable),
	}
}

// Snapshot partitions a candidate set into three disjoint tiers whose union
// is the candidate set.
type Snapshot struct {
	Present models.IDSet
	Recent  models.IDSet
	Other   models.IDSet
}

// Classify partitions candidates against the primary room and, when
// secondary is non-nil, widens the recent tier with the secondary room.
// Nobody is counted present because of the secondary room.
func Classify(candidates models.IDSet, primary, secondary Source) Snapshot {
	p := Observe(candidates, primary)

	recentPool := p.Pingable
	otherPool := p.Absent
	if secondary != nil {
		s := Observe(candidates, secondary)
		recentPool = recentPool.Union(s.Present, s.Pingable)
		otherPool = otherPool.Union(s.Absent)
	}

	recent := recentPool.Minus(p.Present)
	return Snapshot{
		Present: p.Present,
		Recent:  recent,
		Other:   otherPool.Minus(recent, p.Present),
	}
}

// LastActivity returns the latest activity time known to any of the sources.
// Nil sources are skipped.
func LastActivity(id models.UserID, sources ...Source) time.Time {
	var last time.Time
	for _, src := range sources {
		if src == nil {
			continue
		}
		if t := src.LastActivity(id); t.After(last) {
			last = t
		}
	}
	return last
}
