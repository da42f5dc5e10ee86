// SPDX-License-Identifier: Unlicense OR MIT

package segmented

import (
	"image"
	"math"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
)

// SegmentFunc draws one segment. The constraints fix its width to the
// width of a slot.
type SegmentFunc func(gtx layout.Context, label string, selected, enabled bool) layout.Dimensions

// BackgroundFunc draws the background of the selected segment. The
// constraints are exactly the measured size of a segment.
type BackgroundFunc func(gtx layout.Context, enabled bool) layout.Dimensions

// Control is the state of a segmented selector. The zero value is ready
// to use.
type Control struct {
	// Space between adjacent segments.
	Space unit.Dp
	// OnChange, if set, is called after a tap changed the selected index.
	OnChange func(index int)

	slots     []widget.Clickable
	size      SizeReporter
	slide     slide
	indicator image.Rectangle
	// count is the number of segments of the last Layout.
	count int
}

// Update processes taps on the segments and reports whether the selected
// index changed. Layout calls Update; call it directly to observe changes
// before laying out.
func (c *Control) Update(gtx layout.Context, n int, selected *int, enabled bool) bool {
	c.grow(n)
	changed := false
	for i := range c.slots {
		for c.slots[i].Clicked(gtx) {
			if c.Select(i, n, selected, enabled) {
				changed = true
			}
		}
	}
	return changed
}

// Select applies a tap on segment i of n. It writes i to selected and
// reports true, unless the control is disabled, i is out of range or
// already selected.
func (c *Control) Select(i, n int, selected *int, enabled bool) bool {
	if !enabled || selected == nil || i < 0 || i >= n || *selected == i {
		return false
	}
	*selected = i
	if c.OnChange != nil {
		c.OnChange(i)
	}
	return true
}

// Layout draws the segments in a row with the background of the selected
// segment beneath them. The segments share the maximum width of the
// constraints, which must be bounded.
func (c *Control) Layout(gtx layout.Context, segments []string, selected *int, enabled bool, seg SegmentFunc, bg BackgroundFunc) layout.Dimensions {
	n := len(segments)
	c.Update(gtx, n, selected, enabled)
	index := clampIndex(selected, n)
	_, wasMeasured := c.size.Size()

	cgtx := gtx
	if !enabled {
		cgtx = gtx.Disabled()
	}
	cs := gtx.Constraints
	space := gtx.Dp(c.Space)
	if space < 0 {
		space = 0
	}
	w := slotWidth(cs.Max.X, space, n)

	// Lay out the segments first to know the size of the background
	// drawn beneath them.
	macro := op.Record(gtx.Ops)
	x, height := 0, 0
	for i, label := range segments {
		if i > 0 {
			x += space
		}
		sgtx := cgtx
		sgtx.Constraints = layout.Constraints{
			Min: image.Pt(w, cs.Min.Y),
			Max: image.Pt(w, cs.Max.Y),
		}
		trans := op.Offset(image.Pt(x, 0)).Push(gtx.Ops)
		dims := c.slots[i].Layout(sgtx, func(gtx layout.Context) layout.Dimensions {
			return c.size.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				if seg == nil {
					return layout.Dimensions{}
				}
				return seg(gtx, label, i == index, enabled)
			})
		})
		trans.Pop()
		x += dims.Size.X
		if h := dims.Size.Y; h > height {
			height = h
		}
	}
	call := macro.Stop()

	var pos float32
	var moving bool
	size, _ := c.size.Size()
	if n == 0 {
		c.size.Report(image.Point{})
		size = image.Point{}
		c.slide.Retarget(gtx.Now, 0, false)
	} else {
		// Slot positions change with the segment count; jump there.
		c.slide.Retarget(gtx.Now, index, wasMeasured && n == c.count)
		pos, moving = c.slide.Pos(gtx.Now)
		if last := float32(n - 1); pos > last {
			pos = last
		}
		if pos < 0 {
			pos = 0
		}
	}
	c.count = n
	off := int(math.Round(float64(float32(size.X) * pos)))
	c.indicator = image.Rectangle{Min: image.Pt(off, 0), Max: image.Pt(off+size.X, size.Y)}

	bgtx := cgtx
	bgtx.Constraints = layout.Exact(size)
	trans := op.Offset(c.indicator.Min).Push(gtx.Ops)
	if bg != nil {
		bg(bgtx, enabled)
	}
	trans.Pop()

	call.Add(gtx.Ops)
	if moving {
		gtx.Execute(op.InvalidateCmd{})
	}
	return layout.Dimensions{Size: cs.Constrain(image.Pt(x, height))}
}

// Indicator returns the bounds of the background drawn by the last
// Layout, relative to the control.
func (c *Control) Indicator() image.Rectangle {
	return c.indicator
}

// Measured returns the last measured segment size and whether a segment
// has been measured.
func (c *Control) Measured() (image.Point, bool) {
	return c.size.Size()
}

// Animating reports whether the background is still moving at now.
func (c *Control) Animating(now time.Time) bool {
	_, moving := c.slide.Pos(now)
	return moving
}

func (c *Control) grow(n int) {
	if len(c.slots) < n {
		c.slots = append(c.slots, make([]widget.Clickable, n-len(c.slots))...)
	}
}

// slotWidth divides the space left after the gaps equally between n
// slots.
func slotWidth(avail, space, n int) int {
	if n <= 0 {
		return 0
	}
	free := avail - space*(n-1)
	if free < 0 {
		return 0
	}
	return free / n
}

// clampIndex returns the selected index limited to [0, n-1]. A nil index
// or an empty control yields 0.
func clampIndex(selected *int, n int) int {
	if selected == nil || n == 0 {
		return 0
	}
	switch i := *selected; {
	case i < 0:
		return 0
	case i >= n:
		return n - 1
	default:
		return i
	}
}
