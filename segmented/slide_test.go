// SPDX-License-Identifier: Unlicense OR MIT

package segmented

import (
	"testing"
	"time"
)

func TestSlide(t *testing.T) {
	var s slide
	now := time.Now()

	s.Retarget(now, 2, true)
	if pos, moving := s.Pos(now); pos != 2 || moving {
		t.Errorf("first position = %v, %v, want 2, false", pos, moving)
	}

	s.Retarget(now, 4, true)
	if pos, moving := s.Pos(now); pos != 2 || !moving {
		t.Errorf("position at start = %v, %v, want 2, true", pos, moving)
	}
	if pos, _ := s.Pos(now.Add(slideDuration / 2)); pos != 3 {
		t.Errorf("position halfway = %v, want 3", pos)
	}
	if pos, moving := s.Pos(now.Add(slideDuration)); pos != 4 || moving {
		t.Errorf("position at end = %v, %v, want 4, false", pos, moving)
	}

	// Retargeting mid flight starts from the current position.
	mid := now.Add(slideDuration / 2)
	s.Retarget(mid, 0, true)
	if pos, _ := s.Pos(mid); pos != 3 {
		t.Errorf("position after retarget = %v, want 3", pos)
	}
	if pos, _ := s.Pos(mid.Add(slideDuration)); pos != 0 {
		t.Errorf("position after retarget settles at %v, want 0", pos)
	}

	s.Retarget(mid, 1, false)
	if pos, moving := s.Pos(mid); pos != 1 || moving {
		t.Errorf("position after jump = %v, %v, want 1, false", pos, moving)
	}
}

func TestEaseInOut(t *testing.T) {
	if easeInOut(0) != 0 || easeInOut(.5) != .5 || easeInOut(1) != 1 {
		t.Error("easeInOut does not fix 0, .5 and 1")
	}
	prev := float32(0)
	for i := 1; i <= 100; i++ {
		v := easeInOut(float32(i) / 100)
		if v < prev {
			t.Fatalf("easeInOut decreases at %d", i)
		}
		prev = v
	}
}
