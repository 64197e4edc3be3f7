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
	"sort"

	"github.com/npillmayer/wyse/core/geom"
)

// RowSolver is the RulesSolver for a row of children (and, without loss
// of generality, for a column).
//
// When the row's main axis is measured, children's rules are combined
// sequentially and written into storage; on the cross axis they are
// combined in parallel. If the cross axis is measured while the main
// axis is already fixed, each child is told its own solved main-axis
// extent, so reflowing content (e.g. wrapped text) measures correctly.
type RowSolver struct {
	axis      AxisInfo
	crossAxis bool // measured axis is perpendicular to the row direction
	inter     geom.Coord
	padFirst  geom.Coord // container padding along the measured axis
	padLast   geom.Coord
	n         int
	seen      int
	rules     SizeRules
	sizes     []geom.Coord // per-child main-axis extents, cross measurement only
	storage   RowStorage
}

var _ RulesSolver[int] = (*RowSolver)(nil)

// NewRowSolver prepares a measurement pass over a row's children.
//
//   - dir: the row's own direction
//   - axis: the AxisInfo passed into the container's size query
//   - margins: the container's padding and inter-child gap
//   - n: number of children
//   - storage: the container's persistent row storage
func NewRowSolver(dir Direction, axis AxisInfo, margins Margins, n int, storage RowStorage) *RowSolver {
	storage.SetLen(n + 1)
	cross := axis.IsVertical() != dir.IsVertical()
	padFirst, padLast, _ := margins.extract(axis.IsVertical())
	_, _, inter := margins.extract(dir.IsVertical())
	s := &RowSolver{
		axis:      axis,
		crossAxis: cross,
		inter:     inter,
		padFirst:  padFirst,
		padLast:   padLast,
		n:         n,
		storage:   storage,
	}
	if other, ok := axis.Other(); ok && cross && n > 0 {
		// The main axis has been solved already; replay the solve so that
		// each child learns its own extent, not the container's.
		mainFirst, mainLast, _ := margins.extract(dir.IsVertical())
		rules := storage.Rules()[:n]
		_, gapTotal := innerGaps(rules, inter)
		s.sizes = make([]geom.Coord, n)
		SolveSeq(s.sizes, rules, 0, other-mainFirst-mainLast-gapTotal)
	}
	return s
}

// ForChild queries the child at the given index. Children must be
// visited in index order.
func (s *RowSolver) ForChild(child int, rules func(AxisInfo) SizeRules) {
	if child != s.seen {
		panic("layout: row solver children must be visited in index order")
	}
	axis := s.axis
	if s.sizes != nil {
		axis = axis.WithFixed(s.sizes[child])
	}
	r := rules(axis)
	if s.crossAxis {
		s.rules = s.rules.Max(r)
	} else {
		s.storage.Rules()[child] = r
		if child == 0 {
			s.rules = r
		} else {
			s.rules = s.rules.appendedWithGap(r, s.inter)
		}
	}
	s.seen++
}

// Finish completes the pass. The aggregate includes the container's
// padding along the measured axis; the children's outermost margins
// survive as the aggregate's margins. On the main axis the aggregate is
// persisted in the final storage slot.
func (s *RowSolver) Finish() SizeRules {
	if s.seen != s.n {
		panic("layout: row solver did not visit every child")
	}
	total := s.rules
	total.min += s.padFirst + s.padLast
	total.ideal += s.padFirst + s.padLast
	if !s.crossAxis {
		s.storage.Rules()[s.n] = total
	}
	tracer().Debugf("row measured %s: %v", s.axis, total)
	return total
}

// RowSetter is the RulesSetter for a row of children. It solves pixel
// sizes from the rules persisted by a RowSolver (reusing a cached solve
// when the extent is unchanged) and assigns consecutive rectangles.
type RowSetter struct {
	dir     Direction
	rect    geom.Rect
	n       int
	offsets []geom.Coord // main-axis offset per child, relative to rect
	sizes   []geom.Coord
	cross   geom.Coord // cross-axis offset, relative to rect
	extent  geom.Coord // cross-axis extent of every child
}

var _ RulesSetter[int] = (*RowSetter)(nil)

// NewRowSetter prepares an assignment pass. The cache, if non-nil, is
// consulted for a previous solve of the same extent; pass the container's
// persistent SolveCache.
func NewRowSetter(dir Direction, rect geom.Rect, margins Margins, n int,
	storage RowStorage, cache *SolveCache) *RowSetter {
	//
	storage.SetLen(n + 1)
	dv := dir.IsVertical()
	first, last, inter := margins.extract(dv)
	crossFirst, crossLast, _ := margins.extract(!dv)
	rules := storage.Rules()[:n]
	gaps, gapTotal := innerGaps(rules, inter)
	avail := rect.Size.Extent(dv) - first - last - gapTotal

	var sizes []geom.Coord
	if cache != nil {
		sizes = cache.Solve(rules, 0, avail)
	} else {
		sizes = make([]geom.Coord, n)
		SolveSeq(sizes, rules, 0, avail)
	}
	offsets := make([]geom.Coord, n)
	pos := first
	for i := range offsets {
		offsets[i] = pos
		pos += sizes[i]
		if i < n-1 {
			pos += gaps[i]
		}
	}
	return &RowSetter{
		dir:     dir,
		rect:    rect,
		n:       n,
		offsets: offsets,
		sizes:   sizes,
		cross:   crossFirst,
		extent:  geom.Max(0, rect.Size.Extent(!dv)-crossFirst-crossLast),
	}
}

// ChildRect returns the rectangle for the child at the given index.
func (s *RowSetter) ChildRect(child int) geom.Rect {
	if s.dir.IsVertical() {
		return geom.Rect{
			Pos:  geom.Point{X: s.rect.Pos.X + s.cross, Y: s.rect.Pos.Y + s.offsets[child]},
			Size: geom.Size{W: s.extent, H: s.sizes[child]},
		}
	}
	return geom.Rect{
		Pos:  geom.Point{X: s.rect.Pos.X + s.offsets[child], Y: s.rect.Pos.Y + s.cross},
		Size: geom.Size{W: s.sizes[child], H: s.extent},
	}
}

// PositionSolver returns a RowPositionSolver over this setter's solved
// layout, for hit-testing without re-running the solver.
func (s *RowSetter) PositionSolver() *RowPositionSolver {
	return &RowPositionSolver{setter: s}
}

// RowPositionSolver maps coordinates back to the children set out by a
// RowSetter.
type RowPositionSolver struct {
	setter *RowSetter
}

// ChildAt returns the index of the child covering the given point, or
// false if the point lies outside all children (including in a gap or
// margin between children).
func (ps *RowPositionSolver) ChildAt(p geom.Point) (int, bool) {
	s := ps.setter
	if s.n == 0 {
		return 0, false
	}
	dv := s.dir.IsVertical()
	main := p.X - s.rect.Pos.X
	cross := p.Y - s.rect.Pos.Y
	if dv {
		main, cross = cross, main
	}
	if cross < s.cross || cross >= s.cross+s.extent {
		return 0, false
	}
	i := sort.Search(s.n, func(i int) bool {
		return main < s.offsets[i]+s.sizes[i]
	})
	if i == s.n || main < s.offsets[i] {
		return 0, false
	}
	return i, true
}

// ChildrenWithin returns the inclusive index range of children whose
// rectangles intersect r, or false if there is none.
func (ps *RowPositionSolver) ChildrenWithin(r geom.Rect) (first, last int, ok bool) {
	s := ps.setter
	if s.n == 0 {
		return 0, 0, false
	}
	dv := s.dir.IsVertical()
	lo := r.Pos.X - s.rect.Pos.X
	hi := lo + r.Size.W
	crossLo := r.Pos.Y - s.rect.Pos.Y
	crossHi := crossLo + r.Size.H
	if dv {
		lo, crossLo = crossLo, lo
		hi, crossHi = crossHi, hi
	}
	if crossHi <= s.cross || crossLo >= s.cross+s.extent {
		return 0, 0, false
	}
	first = sort.Search(s.n, func(i int) bool {
		return lo < s.offsets[i]+s.sizes[i]
	})
	last = sort.Search(s.n, func(i int) bool {
		return hi <= s.offsets[i]
	}) - 1
	if first == s.n || last < first {
		return 0, 0, false
	}
	return first, last, true
}
