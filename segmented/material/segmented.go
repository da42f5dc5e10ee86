// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws segmented controls in the style of the Gio
// material theme.
package material

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/piterwilson/SegmentedControlBase/segmented"
)

type SegmentedStyle struct {
	Control  *segmented.Control
	Segments []string
	Selected *int
	Enabled  bool

	Font     font.Font
	TextSize unit.Sp
	// Color is the label color of unselected segments.
	Color color.NRGBA
	// SelectedColor is the label color of the selected segment.
	SelectedColor  color.NRGBA
	TrackColor     color.NRGBA
	IndicatorColor color.NRGBA
	CornerRadius   unit.Dp
	// Inset around the segment labels.
	Inset layout.Inset

	theme *material.Theme
}

// Segmented returns an enabled segmented control for the segments, with
// the selected index stored in selected.
func Segmented(th *material.Theme, c *segmented.Control, segments []string, selected *int) SegmentedStyle {
	return SegmentedStyle{
		Control:        c,
		Segments:       segments,
		Selected:       selected,
		Enabled:        true,
		TextSize:       th.TextSize * 14.0 / 16.0,
		Color:          th.Palette.Fg,
		SelectedColor:  th.Palette.ContrastFg,
		TrackColor:     mulAlpha(th.Palette.Fg, 0x20),
		IndicatorColor: th.Palette.ContrastBg,
		CornerRadius:   4,
		Inset: layout.Inset{
			Top: 8, Bottom: 8,
			Left: 12, Right: 12,
		},
		theme: th,
	}
}

// Layout updates the control and draws the track, the indicator and the
// segment labels.
func (s SegmentedStyle) Layout(gtx layout.Context) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			return fill(gtx, s.color(s.TrackColor), gtx.Dp(s.CornerRadius))
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return s.Control.Layout(gtx, s.Segments, s.Selected, s.Enabled, s.segment, s.indicator)
		}),
	)
}

func (s SegmentedStyle) segment(gtx layout.Context, label string, selected, enabled bool) layout.Dimensions {
	if enabled {
		pointer.CursorPointer.Add(gtx.Ops)
	}
	col := s.Color
	if selected {
		col = s.SelectedColor
	}
	return s.Inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			lbl := material.Label(s.theme, s.TextSize, label)
			lbl.Font = s.Font
			lbl.Color = s.color(col)
			lbl.Alignment = text.Middle
			lbl.MaxLines = 1
			return lbl.Layout(gtx)
		})
	})
}

func (s SegmentedStyle) indicator(gtx layout.Context, enabled bool) layout.Dimensions {
	return fill(gtx, s.color(s.IndicatorColor), gtx.Dp(s.CornerRadius))
}

// color returns c faded when the control is disabled.
func (s SegmentedStyle) color(c color.NRGBA) color.NRGBA {
	if !s.Enabled {
		return mulAlpha(c, 150)
	}
	return c
}

// fill paints a rounded rectangle over the minimum constraints.
func fill(gtx layout.Context, col color.NRGBA, radius int) layout.Dimensions {
	r := image.Rectangle{Max: gtx.Constraints.Min}
	paint.FillShape(gtx.Ops, col, clip.UniformRRect(r, radius).Op(gtx.Ops))
	return layout.Dimensions{Size: r.Max}
}

// mulAlpha applies the alpha a to c.
func mulAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(a) / 0xFF)
	return c
}
