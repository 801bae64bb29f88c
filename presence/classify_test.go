// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package presence

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pingbot/models"
)

func ids(xs ...models.UserID) models.IDSet {
	return models.NewIDSet(xs...)
}

func TestClassifyPrimaryOnly(t *testing.T) {
	primary := StaticSource{
		PresentIDs:  ids(1, 9),
		PingableIDs: ids(2, 8),
	}

	snap := Classify(ids(1, 2, 3), primary, nil)

	assert.Equal(t, []models.UserID{1}, snap.Present.Sorted())
	assert.Equal(t, []models.UserID{2}, snap.Recent.Sorted())
	assert.Equal(t, []models.UserID{3}, snap.Other.Sorted())
}

func TestClassifySecondaryWidensRecent(t *testing.T) {
	primary := StaticSource{
		PresentIDs:  ids(1),
		PingableIDs: ids(1),
	}
	secondary := StaticSource{
		PresentIDs:  ids(1, 3),
		PingableIDs: ids(4),
	}

	snap := Classify(ids(1, 2, 3, 4), primary, secondary)

	assert.Equal(t, []models.UserID{1}, snap.Present.Sorted(), "secondary presence never promotes to present")
	assert.Equal(t, []models.UserID{3, 4}, snap.Recent.Sorted())
	assert.Equal(t, []models.UserID{2}, snap.Other.Sorted())
}

func TestClassifyIgnoresBrokenPingableContract(t *testing.T) {
	// present users missing from Pingable still land only in Present
	primary := brokenSource{present: ids(1, 2)}
	secondary := StaticSource{PresentIDs: ids(2)}

	snap := Classify(ids(1, 2, 3), primary, secondary)

	assert.Equal(t, []models.UserID{1, 2}, snap.Present.Sorted())
	assert.False(t, snap.Recent.Contains(2))
	assert.False(t, snap.Other.Contains(1))
	assert.Equal(t, []models.UserID{3}, snap.Other.Sorted())
}

type brokenSource struct {
	present models.IDSet
}

func (b brokenSource) Present() models.IDSet                { return b.present }
func (b brokenSource) Pingable() models.IDSet               { return models.NewIDSet() }
func (b brokenSource) LastActivity(models.UserID) time.Time { return time.Time{} }

func TestClassifyPartitionsCandidates(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	randomSet := func(n int) models.IDSet {
		s := models.NewIDSet()
		for i := 0; i < n; i++ {
			s.Add(models.UserID(rng.IntN(30)))
		}
		return s
	}

	for i := 0; i < 500; i++ {
		candidates := randomSet(12)
		primary := StaticSource{PresentIDs: randomSet(8), PingableIDs: randomSet(8)}
		var secondary Source
		if i%2 == 0 {
			secondary = StaticSource{PresentIDs: randomSet(8), PingableIDs: randomSet(8)}
		}

		snap := Classify(candidates, primary, secondary)

		union := snap.Present.Union(snap.Recent, snap.Other)
		require.Equal(t, candidates.Sorted(), union.Sorted(), "tiers must cover the candidates")
		require.Equal(t, snap.Present.Len()+snap.Recent.Len()+snap.Other.Len(), candidates.Len(), "tiers must be disjoint")

		for id := range primary.Present().Intersect(candidates) {
			require.True(t, snap.Present.Contains(id))
		}
	}
}

func TestLastActivityTakesLatest(t *testing.T) {
	early := time.Unix(1000, 0)
	late := time.Unix(2000, 0)
	a := StaticSource{Activity: map[models.UserID]time.Time{1: late, 2: early}}
	b := StaticSource{Activity: map[models.UserID]time.Time{1: early, 2: late}}

	assert.Equal(t, late, LastActivity(1, a, b))
	assert.Equal(t, late, LastActivity(2, a, nil, b))
	assert.True(t, LastActivity(3, a, b).IsZero())
}
