/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–23 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/wyse/core/geom"
)

// Direction tells whether a sequence of children is set out left to right
// or top to bottom.
type Direction uint8

const (
	Horizontal Direction = iota // children advance rightwards
	Vertical                    // children advance downwards
)

// IsVertical is true for Vertical.
func (d Direction) IsVertical() bool {
	return d == Vertical
}

// Stringer implementation.
func (d Direction) String() string {
	if d.IsVertical() {
		return "vertical"
	}
	return "horizontal"
}

// AxisInfo identifies which axis is being measured.
//
// Also conveys the size of the other axis, if that one has already been
// fixed. Content which reflows, e.g. wrapped text, needs the fixed extent
// of the perpendicular axis to answer a size query.
type AxisInfo struct {
	vertical  bool
	hasFixed  bool
	otherAxis geom.Coord
}

// NewAxisInfo constructs an AxisInfo for one axis, with the perpendicular
// axis not (yet) fixed.
func NewAxisInfo(vertical bool) AxisInfo {
	return AxisInfo{vertical: vertical}
}

// WithFixed returns a copy of ax with the perpendicular axis fixed to the
// given extent.
func (ax AxisInfo) WithFixed(other geom.Coord) AxisInfo {
	ax.hasFixed = true
	ax.otherAxis = other
	return ax
}

// IsVertical is true if the axis being measured is the vertical one.
func (ax AxisInfo) IsVertical() bool {
	return ax.vertical
}

// IsHorizontal is true if the axis being measured is the horizontal one.
func (ax AxisInfo) IsHorizontal() bool {
	return !ax.vertical
}

// Other returns the extent of the perpendicular axis, if fixed.
func (ax AxisInfo) Other() (geom.Coord, bool) {
	return ax.otherAxis, ax.hasFixed
}

// OtherIfFixed returns the extent of the perpendicular axis, if it is
// fixed and vertical matches the measured axis.
func (ax AxisInfo) OtherIfFixed(vertical bool) (geom.Coord, bool) {
	if vertical == ax.vertical && ax.hasFixed {
		return ax.otherAxis, true
	}
	return 0, false
}

// ExtractSize returns the component of a size belonging to the measured
// axis.
func (ax AxisInfo) ExtractSize(sz geom.Size) geom.Coord {
	return sz.Extent(ax.vertical)
}

// Stringer implementation.
func (ax AxisInfo) String() string {
	d := Horizontal
	if ax.vertical {
		d = Vertical
	}
	if ax.hasFixed {
		return d.String() + "(other=" + ax.otherAxis.String() + ")"
	}
	return d.String()
}
