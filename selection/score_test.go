// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScoreMinimumNearFiveMinutes(t *testing.T) {
	assert.Equal(t, 3, Score(5*time.Minute))
	assert.Greater(t, Score(10*time.Second), Score(5*time.Minute))
	assert.Greater(t, Score(24*time.Hour), Score(5*time.Minute))
}

func TestScoreZeroInactivityIsFinite(t *testing.T) {
	s := Score(0)
	assert.Greater(t, s, Score(time.Second))
	assert.Equal(t, s, Score(-time.Minute))
}

func TestScoreIgnoresSmallDifferences(t *testing.T) {
	base := 72 * time.Hour
	assert.Equal(t, Score(base), Score(base+5*time.Minute))
}

func TestScoreMonotonicAwayFromIdeal(t *testing.T) {
	// at or beyond five minutes, longer inactivity never scores better
	prev := Score(5 * time.Minute)
	for d := 5 * time.Minute; d <= 60*24*time.Hour; d += 7 * time.Minute {
		s := Score(d)
		assert.GreaterOrEqual(t, s, prev, "inactive %v", d)
		prev = s
	}

	// below five minutes, getting closer to five never scores worse
	prev = Score(time.Millisecond)
	for d := time.Millisecond; d <= 5*time.Minute; d += 250 * time.Millisecond {
		s := Score(d)
		assert.LessOrEqual(t, s, prev, "inactive %v", d)
		prev = s
	}
}
