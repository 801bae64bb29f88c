// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package presence

import (
	"time"

	"github.com/danielhkuo/pingbot/models"
)

// StaticSource is a fixed room state. PingableIDs is widened to include
// PresentIDs.
type StaticSource struct {
	PresentIDs  models.IDSet
	PingableIDs models.IDSet
	Activity    map[models.UserID]time.Time
}

func (s StaticSource) Present() models.IDSet {
	return s.PresentIDs.Union()
}

func (s StaticSource) Pingable() models.IDSet {
	return s.PingableIDs.Union(s.PresentIDs)
}

func (s StaticSource) LastActivity(id models.UserID) time.Time {
	return s.Activity[id]
}
