// SPDX-License-Identifier: Unlicense OR MIT

package segmented

import (
	"image"

	"gioui.org/layout"
)

// SizeReporter measures the rendered size of a widget after layout and
// keeps the most recent measurement.
type SizeReporter struct {
	// Changed, if set, is called with each new measurement. It is not
	// called when a report repeats the previous size.
	Changed func(size image.Point)

	size     image.Point
	measured bool
}

// Layout lays out w, constrains its size to the constraints and reports
// the result.
func (r *SizeReporter) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	var dims layout.Dimensions
	if w != nil {
		dims = w(gtx)
	}
	dims.Size = gtx.Constraints.Constrain(dims.Size)
	r.Report(dims.Size)
	return dims
}

// Report records size and reports whether it differs from the previous
// measurement. The first report always counts as a change.
func (r *SizeReporter) Report(size image.Point) bool {
	if r.measured && r.size == size {
		return false
	}
	r.size = size
	r.measured = true
	if r.Changed != nil {
		r.Changed(size)
	}
	return true
}

// Size returns the last measurement and whether there is one.
func (r *SizeReporter) Size() (image.Point, bool) {
	return r.size, r.measured
}

// Reset forgets the measurement.
func (r *SizeReporter) Reset() {
	r.size = image.Point{}
	r.measured = false
}
