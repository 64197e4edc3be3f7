// Package geom implements pixel geometry for widget layout.
//
/*
BSD License

Copyright (c) 2021–23, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package geom

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Coord is a pixel coordinate or extent.
// Layout operates on physical (real) pixels throughout; device-independent
// scaling is the business of the windowing backend, not of layout.
type Coord int32

// Infinity is the largest possible extent.
const Infinity Coord = math.MaxInt32

// Stringer implementation.
func (c Coord) String() string {
	return fmt.Sprintf("%dpx", int32(c))
}

// Min returns the smaller of two coordinates.
func Min(a, b Coord) Coord {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two coordinates.
func Max(a, b Coord) Coord {
	if a > b {
		return a
	}
	return b
}

// Point is a position on the screen, relative to a window's top-left corner.
type Point struct {
	X, Y Coord
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p Point) Shift(vector Point) Point {
	return Point{p.X + vector.X, p.Y + vector.Y}
}

// Size is a two-dimensional extent. Both components are non-negative for
// all sizes produced by layout.
type Size struct {
	W, H Coord
}

// Add returns the componentwise sum of two sizes.
func (sz Size) Add(other Size) Size {
	return Size{sz.W + other.W, sz.H + other.H}
}

// MaxSize returns the componentwise maximum of two sizes.
func (sz Size) MaxSize(other Size) Size {
	return Size{Max(sz.W, other.W), Max(sz.H, other.H)}
}

// Extent returns the W component for the horizontal axis, the H component
// for the vertical one.
func (sz Size) Extent(vertical bool) Coord {
	if vertical {
		return sz.H
	}
	return sz.W
}

// Rect is a widget's pixel placement: position of its top-left corner plus
// its size.
type Rect struct {
	Pos  Point
	Size Size
}

// Right returns the x-coordinate just right of the rectangle.
func (r Rect) Right() Coord {
	return r.Pos.X + r.Size.W
}

// Bottom returns the y-coordinate just below the rectangle.
func (r Rect) Bottom() Coord {
	return r.Pos.Y + r.Size.H
}

// Contains checks whether p lies within r. Points on the top/left edge are
// inside, points on the right/bottom edge are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Pos.X && p.X < r.Right() && p.Y >= r.Pos.Y && p.Y < r.Bottom()
}

// Intersects checks whether two rectangles overlap in at least one pixel.
func (r Rect) Intersects(other Rect) bool {
	return r.Pos.X < other.Right() && other.Pos.X < r.Right() &&
		r.Pos.Y < other.Bottom() && other.Pos.Y < r.Bottom()
}

// Shrink cuts off margins at the edges of a rectangle: first at the
// top/left, last at the bottom/right. The resulting size is floored at zero.
func (r Rect) Shrink(first, last Size) Rect {
	r.Pos = r.Pos.Shift(Point{first.W, first.H})
	r.Size.W = Max(0, r.Size.W-first.W-last.W)
	r.Size.H = Max(0, r.Size.H-first.H-last.H)
	return r
}

// ---------------------------------------------------------------------------

var pxPattern = regexp.MustCompile(`^([+\-]?[0-9]+)(px|PX)?$`)

// ParsePx parses a pixel dimension from a string, as found in theme files.
// Accepted syntax is a decimal integer with an optional "px" suffix.
func ParsePx(s string) (Coord, error) {
	d := pxPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, errors.New("format error parsing pixel dimension")
	}
	n, err := strconv.ParseInt(d[1], 10, 32)
	if err != nil {
		return 0, err
	}
	return Coord(n), nil
}
