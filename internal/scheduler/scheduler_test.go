package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShouldHuntFiresOncePerHour(t *testing.T) {
	s := &Scheduler{huntHours: map[int]struct{}{9: {}, 13: {}}}

	at := time.Date(2026, 3, 2, 9, 0, 30, 0, time.UTC)
	assert.True(t, s.shouldHunt(at))

	s.lastHuntHour = at.Truncate(time.Hour)
	assert.False(t, s.shouldHunt(at.Add(5*time.Minute)), "same hour must not re-fire")

	assert.True(t, s.shouldHunt(at.Add(4*time.Hour)), "13:00 is a configured hour")
	assert.False(t, s.shouldHunt(at.Add(2*time.Hour)), "11:00 is not configured")
}

func TestShouldHuntNextDaySameHour(t *testing.T) {
	s := &Scheduler{huntHours: map[int]struct{}{9: {}}}

	day1 := time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)
	s.lastHuntHour = day1.Truncate(time.Hour)

	assert.True(t, s.shouldHunt(day1.Add(24*time.Hour)))
}
