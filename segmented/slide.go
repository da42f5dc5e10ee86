// SPDX-License-Identifier: Unlicense OR MIT

package segmented

import (
	"time"
)

// slideDuration is the time the background takes to reach a new segment.
const slideDuration = 250 * time.Millisecond

// slide moves a position measured in segments from one index to another.
type slide struct {
	from, to float32
	start    time.Time
	valid    bool
}

// Retarget moves the slide towards index to. If animate is false, or the
// slide has no position yet, it jumps there.
func (s *slide) Retarget(now time.Time, to int, animate bool) {
	target := float32(to)
	if !s.valid || !animate {
		s.from, s.to = target, target
		s.start = now
		s.valid = true
		return
	}
	if target == s.to {
		return
	}
	s.from, _ = s.Pos(now)
	s.to = target
	s.start = now
}

// Pos returns the position at now and whether the slide is still moving.
func (s *slide) Pos(now time.Time) (float32, bool) {
	if s.from == s.to {
		return s.to, false
	}
	elapsed := now.Sub(s.start)
	if elapsed >= slideDuration {
		return s.to, false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := easeInOut(float32(elapsed) / float32(slideDuration))
	return s.from + (s.to-s.from)*t, true
}

// easeInOut is a cubic ease-in-out curve over [0, 1].
func easeInOut(t float32) float32 {
	if t < .5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
