/*
BSD License

Copyright (c) 2021–23, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package layout

import (
	"fmt"
	"math"

	"github.com/npillmayer/wyse/core/geom"
)

// StretchPolicy tells how eagerly a widget absorbs space beyond its ideal
// size. Higher tiers receive surplus space before lower ones;
// StretchFixed never grows past the ideal size.
type StretchPolicy uint8

const (
	StretchFixed  StretchPolicy = iota // never larger than ideal
	StretchLow                         // e.g. text input fields
	StretchHigh                        // e.g. scrollable regions
	StretchFiller                      // pure space filler
)

// Stringer implementation.
func (sp StretchPolicy) String() string {
	switch sp {
	case StretchFixed:
		return "fixed"
	case StretchLow:
		return "low"
	case StretchHigh:
		return "high"
	case StretchFiller:
		return "filler"
	}
	return "StretchPolicy(" + fmt.Sprint(uint8(sp)) + ")"
}

func maxPolicy(a, b StretchPolicy) StretchPolicy {
	if a > b {
		return a
	}
	return b
}

// Margins are a container's spacing requirements: outer margins at the
// top-left and bottom-right edges of its content, and a uniform gap
// between adjacent children per axis.
type Margins struct {
	First geom.Size // margin at left/top edge
	Last  geom.Size // margin at right/bottom edge
	Inter geom.Size // minimum gap between adjacent children, per axis
}

// UniformMargins builds Margins with the same outer margin at all four
// edges and the same inter-child gap along both axes.
func UniformMargins(outer, inter geom.Coord) Margins {
	return Margins{
		First: geom.Size{W: outer, H: outer},
		Last:  geom.Size{W: outer, H: outer},
		Inter: geom.Size{W: inter, H: inter},
	}
}

// extract returns the margin components for one axis.
func (m Margins) extract(vertical bool) (first, last, inter geom.Coord) {
	return m.First.Extent(vertical), m.Last.Extent(vertical), m.Inter.Extent(vertical)
}

// SizeRules are the requirements of one axis of one widget (or of an
// aggregated group of widgets): a minimum and an ideal size, the margins
// required before and after the widget, and its stretch policy.
//
// The zero value is the neutral element of sequential combination: no
// extent, no margins, no stretch.
type SizeRules struct {
	min, ideal geom.Coord // invariant: min ≤ ideal
	mBefore    uint16
	mAfter     uint16
	stretch    StretchPolicy
}

// Empty returns the neutral SizeRules: zero size, zero margins, no stretch.
func Empty() SizeRules {
	return SizeRules{}
}

// Fixed returns rules for content of exactly the given size.
func Fixed(size geom.Coord) SizeRules {
	return SizeRules{min: size, ideal: size}
}

// Variable returns rules for content with a size range. If ideal < min,
// ideal is clamped up to min.
func Variable(min, ideal geom.Coord) SizeRules {
	if ideal < min {
		tracer().Errorf("size rules with ideal %v < min %v; clamping ideal", ideal, min)
		ideal = min
	}
	return SizeRules{min: min, ideal: ideal}
}

// ExtractFixed converts a measured two-dimensional size plus margins into
// rules for one axis, with min == ideal (content with no flexibility,
// e.g. an icon).
func ExtractFixed(vertical bool, size geom.Size, m Margins) SizeRules {
	first, last, _ := m.extract(vertical)
	r := Fixed(size.Extent(vertical))
	r.mBefore = clampU16(first)
	r.mAfter = clampU16(last)
	return r
}

// WithMargins returns a copy of r with the given before/after margins.
func (r SizeRules) WithMargins(before, after uint16) SizeRules {
	r.mBefore = before
	r.mAfter = after
	return r
}

// WithStretch returns a copy of r with the given stretch policy.
func (r SizeRules) WithStretch(policy StretchPolicy) SizeRules {
	r.stretch = policy
	return r
}

// Min returns the minimum acceptable size.
func (r SizeRules) Min() geom.Coord {
	return r.min
}

// Ideal returns the ideal size.
func (r SizeRules) Ideal() geom.Coord {
	return r.ideal
}

// Margins returns the margins required before and after the widget.
func (r SizeRules) Margins() (before, after uint16) {
	return r.mBefore, r.mAfter
}

// Stretch returns the stretch policy.
func (r SizeRules) Stretch() StretchPolicy {
	return r.stretch
}

// Appended combines rules of two widgets set out one after another along
// the measured axis. Sizes add; the margins at the shared edge collapse
// to the larger of the two and are accounted for in the combined sizes;
// the outer margins of the operands survive at the outer edges. The
// combined stretch is the more eager of the two.
func (r SizeRules) Appended(rhs SizeRules) SizeRules {
	return r.appendedWithGap(rhs, 0)
}

// appendedWithGap is Appended with a floor on the collapsed shared-edge
// margin, used by containers that enforce a minimum inter-child gap.
func (r SizeRules) appendedWithGap(rhs SizeRules, minGap geom.Coord) SizeRules {
	inner := geom.Max(minGap, geom.Max(geom.Coord(r.mAfter), geom.Coord(rhs.mBefore)))
	return SizeRules{
		min:     r.min + rhs.min + inner,
		ideal:   r.ideal + rhs.ideal + inner,
		mBefore: r.mBefore,
		mAfter:  rhs.mAfter,
		stretch: maxPolicy(r.stretch, rhs.stretch),
	}
}

// Max combines rules of two widgets sharing the measured extent, e.g. the
// cells of a row when its height is measured. Sizes and margins take the
// elementwise maximum. The combined stretch is the more eager tier, so a
// single stretchy cell makes the whole group stretchy.
func (r SizeRules) Max(rhs SizeRules) SizeRules {
	return SizeRules{
		min:     geom.Max(r.min, rhs.min),
		ideal:   geom.Max(r.ideal, rhs.ideal),
		mBefore: maxU16(r.mBefore, rhs.mBefore),
		mAfter:  maxU16(r.mAfter, rhs.mAfter),
		stretch: maxPolicy(r.stretch, rhs.stretch),
	}
}

// SurroundedBy adds a frame's size to content rules, e.g. for a
// decorative border. With bothEnds the frame size is added twice (once
// per edge), otherwise once. The frame's margins become the outer
// margins of the result; the content's margins are consumed by the
// frame.
func (r SizeRules) SurroundedBy(frame SizeRules, bothEnds bool) SizeRules {
	factor := geom.Coord(1)
	if bothEnds {
		factor = 2
	}
	return SizeRules{
		min:     r.min + factor*frame.min,
		ideal:   r.ideal + factor*frame.ideal,
		mBefore: frame.mBefore,
		mAfter:  frame.mAfter,
		stretch: maxPolicy(r.stretch, frame.stretch),
	}
}

// Stringer implementation.
func (r SizeRules) String() string {
	return fmt.Sprintf("rules{%v..%v, m=(%d,%d), %s}", r.min, r.ideal,
		r.mBefore, r.mAfter, r.stretch)
}

func clampU16(c geom.Coord) uint16 {
	if c < 0 {
		return 0
	}
	if c > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(c)
}

func maxU16(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}
