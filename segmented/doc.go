// SPDX-License-Identifier: Unlicense OR MIT

/*
Package segmented implements a segmented selector for Gio: a row of
equally sized segments drawn above a sliding background that marks the
selected one.

The selected index and the enabled flag belong to the caller. Control reads
them on every Layout and writes the index only when an enabled segment is
tapped, so the caller keeps a single source of truth:

	var (
		days     segmented.Control
		selected int
	)

	days.Space = unit.Dp(4)
	days.Layout(gtx, []string{"M", "T", "W", "T", "F"}, &selected, true,
		func(gtx layout.Context, label string, sel, enabled bool) layout.Dimensions {
			...
		},
		func(gtx layout.Context, enabled bool) layout.Dimensions {
			...
		},
	)

The background is sized from a SizeReporter that measures a segment after
it is laid out, and it slides to a new position whenever the selected index
changes. See package segmented/material for a themed rendering.
*/
package segmented
