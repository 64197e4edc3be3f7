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
package widget

import (
	"github.com/npillmayer/wyse/core/geom"
	"github.com/npillmayer/wyse/core/theme"
	"github.com/npillmayer/wyse/engine/layout"
)

// Widget is the capability the layout engine relies on. Rendering,
// event handling and theming live elsewhere; layout only measures and
// places.
type Widget interface {
	// SizeRules reports the widget's size requirements for the axis
	// identified by axis. Called once per axis per measurement pass;
	// must be pure with respect to axis.
	SizeRules(axis layout.AxisInfo) layout.SizeRules
	// SetRect assigns the widget's final placement. The widget stores it
	// for drawing and hit-testing; it must not re-invoke the solver.
	SetRect(r geom.Rect, hints AlignHints)
	// Margins reports outer spacing requirements not expressible through
	// the widget's own SizeRules.
	Margins() layout.Margins
}

// Align tells how a widget places itself within an assigned cell that is
// larger than its ideal size.
type Align uint8

const (
	AlignStretch Align = iota // fill the cell (default)
	AlignBegin                // left/top
	AlignCenter
	AlignEnd // right/bottom
)

// AlignHints are per-axis alignment wishes, passed down with SetRect.
type AlignHints struct {
	Horiz, Vert Align
}

// Apply aligns a widget of the given ideal size within a cell. Per axis,
// AlignStretch keeps the cell's extent; the other alignments shrink the
// widget to its ideal (where the cell permits) and position it.
func (h AlignHints) Apply(cell geom.Rect, ideal geom.Size) geom.Rect {
	cell.Pos.X, cell.Size.W = alignExtent(h.Horiz, cell.Pos.X, cell.Size.W, ideal.W)
	cell.Pos.Y, cell.Size.H = alignExtent(h.Vert, cell.Pos.Y, cell.Size.H, ideal.H)
	return cell
}

func alignExtent(a Align, pos, extent, ideal geom.Coord) (geom.Coord, geom.Coord) {
	if a == AlignStretch || ideal >= extent {
		return pos, extent
	}
	switch a {
	case AlignCenter:
		return pos + (extent-ideal)/2, ideal
	case AlignEnd:
		return pos + extent - ideal, ideal
	}
	return pos, ideal // AlignBegin
}

// --- Leaf widgets ----------------------------------------------------------

// Rigid is content with no flexibility: an icon, a fixed-size canvas, a
// measured glyph run. It reports min == ideal on both axes.
type Rigid struct {
	size    geom.Size
	margins layout.Margins
	rect    geom.Rect
}

// NewRigid creates a leaf widget of exactly the given size.
func NewRigid(size geom.Size, margins layout.Margins) *Rigid {
	return &Rigid{size: size, margins: margins}
}

// SizeRules reports fixed rules extracted from the widget's size.
func (w *Rigid) SizeRules(axis layout.AxisInfo) layout.SizeRules {
	return layout.ExtractFixed(axis.IsVertical(), w.size, w.margins)
}

// SetRect stores the widget's placement.
func (w *Rigid) SetRect(r geom.Rect, hints AlignHints) {
	w.rect = hints.Apply(r, w.size)
}

// Margins reports the widget's outer margins.
func (w *Rigid) Margins() layout.Margins {
	return w.margins
}

// Rect returns the placement assigned by the last layout pass.
func (w *Rigid) Rect() geom.Rect {
	return w.rect
}

// Filler is invisible stretchable space, used to push siblings apart.
type Filler struct {
	policy layout.StretchPolicy
	rect   geom.Rect
}

// NewFiller creates a filler with the given stretch eagerness.
func NewFiller(policy layout.StretchPolicy) *Filler {
	return &Filler{policy: policy}
}

// SizeRules reports zero size with the filler's stretch policy.
func (w *Filler) SizeRules(layout.AxisInfo) layout.SizeRules {
	return layout.Empty().WithStretch(w.policy)
}

// SetRect stores the widget's placement.
func (w *Filler) SetRect(r geom.Rect, _ AlignHints) {
	w.rect = r
}

// Margins reports no margins.
func (w *Filler) Margins() layout.Margins {
	return layout.Margins{}
}

// Rect returns the placement assigned by the last layout pass.
func (w *Filler) Rect() geom.Rect {
	return w.rect
}

// Frame surrounds a single child with a decorative border, whose width
// and inner gap come from the theme.
type Frame struct {
	child Widget
	width geom.Coord // border plus inner gap, per edge
	rect  geom.Rect
}

// NewFrame wraps child in a frame with metrics from regs.
func NewFrame(child Widget, regs *theme.Registers) *Frame {
	return &Frame{
		child: child,
		width: regs.Px(theme.P_FRAME_WIDTH) + regs.Px(theme.P_FRAME_INNER),
	}
}

// SizeRules reports the child's rules surrounded by the frame.
func (w *Frame) SizeRules(axis layout.AxisInfo) layout.SizeRules {
	axis = shrinkFixed(axis, 2*w.width)
	return w.child.SizeRules(axis).SurroundedBy(layout.Fixed(w.width), true)
}

// SetRect places the child inside the frame.
func (w *Frame) SetRect(r geom.Rect, hints AlignHints) {
	w.rect = r
	edge := geom.Size{W: w.width, H: w.width}
	w.child.SetRect(r.Shrink(edge, edge), hints)
}

// Margins reports no margins; spacing around a frame is its parent's
// business.
func (w *Frame) Margins() layout.Margins {
	return layout.Margins{}
}

// Rect returns the placement assigned by the last layout pass.
func (w *Frame) Rect() geom.Rect {
	return w.rect
}

// shrinkFixed reduces a fixed perpendicular extent by d, e.g. when a
// wrapper consumes part of the extent before passing the query on.
func shrinkFixed(axis layout.AxisInfo, d geom.Coord) layout.AxisInfo {
	if other, ok := axis.Other(); ok {
		return layout.NewAxisInfo(axis.IsVertical()).WithFixed(geom.Max(0, other-d))
	}
	return axis
}
