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
	"sort"

	"github.com/npillmayer/wyse/core/geom"
)

// GridChildInfo is a cell's placement within a grid: a half-open column
// span [Col, ColEnd) and a half-open row span [Row, RowEnd). Spans cover
// at least one column and one row. Cells register their placement once,
// at configuration time.
type GridChildInfo struct {
	Col, ColEnd int
	Row, RowEnd int
}

// GridCell returns a GridChildInfo for a cell spanning a single column
// and row.
func GridCell(col, row int) GridChildInfo {
	return GridChildInfo{Col: col, ColEnd: col + 1, Row: row, RowEnd: row + 1}
}

// span returns the cell's track span along one axis: rows for the
// vertical axis, columns for the horizontal one.
func (info GridChildInfo) span(vertical bool) (start, end int) {
	if vertical {
		return info.Row, info.RowEnd
	}
	return info.Col, info.ColEnd
}

func (info GridChildInfo) check(cols, rows int) {
	if info.Col < 0 || info.Col >= info.ColEnd || info.ColEnd > cols ||
		info.Row < 0 || info.Row >= info.RowEnd || info.RowEnd > rows {
		panic(fmt.Sprintf("layout: grid cell %v outside a %d x %d grid", info, cols, rows))
	}
}

type spanRules struct {
	start, end int
	rules      SizeRules
}

// GridSolver is the RulesSolver for children assigned to grid cells.
//
// Measurement of one axis accumulates per-track rules: column rules for
// the horizontal axis, row rules for the vertical one. A cell spanning a
// single track combines into that track in parallel; spanning cells are
// held back and processed in Finish, once the non-spanning cells have
// established the baseline track rules.
type GridSolver struct {
	axis         AxisInfo
	cols, rows   int
	inter        geom.Coord // along measured axis
	padFirst     geom.Coord
	padLast      geom.Coord
	spans        []spanRules
	otherSizes   []geom.Coord // pre-solved track extents on the other axis
	otherOffsets []geom.Coord
	storage      GridStorage
}

var _ RulesSolver[GridChildInfo] = (*GridSolver)(nil)

// NewGridSolver prepares a measurement pass over a grid's cells.
func NewGridSolver(axis AxisInfo, cols, rows int, margins Margins, storage GridStorage) *GridSolver {
	storage.SetDims(cols, rows)
	padFirst, padLast, inter := margins.extract(axis.IsVertical())
	s := &GridSolver{
		axis:     axis,
		cols:     cols,
		rows:     rows,
		inter:    inter,
		padFirst: padFirst,
		padLast:  padLast,
		storage:  storage,
	}
	// Track rules accumulate by parallel combination; start from scratch.
	tracks := s.tracks()
	for i := range tracks {
		tracks[i] = Empty()
	}
	if other, ok := axis.Other(); ok {
		// The other axis has been solved already; replay the solve so
		// that spanning cells learn their own extents.
		oFirst, oLast, oInter := margins.extract(!axis.IsVertical())
		var oRules []SizeRules
		if axis.IsVertical() {
			oRules = storage.WidthRules()[:cols]
		} else {
			oRules = storage.HeightRules()[:rows]
		}
		gaps, gapTotal := innerGaps(oRules, oInter)
		s.otherSizes = make([]geom.Coord, len(oRules))
		SolveSeq(s.otherSizes, oRules, 0, other-oFirst-oLast-gapTotal)
		s.otherOffsets = make([]geom.Coord, len(oRules))
		pos := oFirst
		for i := range oRules {
			s.otherOffsets[i] = pos
			pos += s.otherSizes[i]
			if i < len(gaps) {
				pos += gaps[i]
			}
		}
	}
	return s
}

// tracks returns the per-track rules of the measured axis, without the
// aggregate slot.
func (s *GridSolver) tracks() []SizeRules {
	if s.axis.IsVertical() {
		return s.storage.HeightRules()[:s.rows]
	}
	return s.storage.WidthRules()[:s.cols]
}

// ForChild queries one cell. Cells may be visited in any order; each
// cell exactly once.
func (s *GridSolver) ForChild(child GridChildInfo, rules func(AxisInfo) SizeRules) {
	child.check(s.cols, s.rows)
	axis := s.axis
	if s.otherSizes != nil {
		start, end := child.span(!s.axis.IsVertical())
		extent := s.otherOffsets[end-1] + s.otherSizes[end-1] - s.otherOffsets[start]
		axis = axis.WithFixed(extent)
	}
	r := rules(axis)
	start, end := child.span(s.axis.IsVertical())
	if end-start == 1 {
		tracks := s.tracks()
		tracks[start] = tracks[start].Max(r)
	} else {
		s.spans = append(s.spans, spanRules{start: start, end: end, rules: r})
	}
}

// Finish distributes the requirements of spanning cells over their
// tracks, folds the track rules into the grid's aggregate, persists it
// and returns it.
func (s *GridSolver) Finish() SizeRules {
	tracks := s.tracks()
	// Shorter spans first, so they establish track requirements before
	// wider spans distribute their residue; ties keep registration order.
	sort.SliceStable(s.spans, func(i, j int) bool {
		return s.spans[i].end-s.spans[i].start < s.spans[j].end-s.spans[j].start
	})
	for _, sp := range s.spans {
		s.distributeSpan(tracks, sp)
	}
	total := sumSeq(tracks, s.inter)
	total.min += s.padFirst + s.padLast
	total.ideal += s.padFirst + s.padLast
	if s.axis.IsVertical() {
		s.storage.HeightRules()[s.rows] = total
	} else {
		s.storage.WidthRules()[s.cols] = total
	}
	tracer().Debugf("grid measured %s: %v", s.axis, total)
	return total
}

// distributeSpan raises the spanned tracks' requirements until they
// cover the spanning cell's rules. A spanning cell never gets a solve of
// its own; it only inflates the tracks it covers.
func (s *GridSolver) distributeSpan(tracks []SizeRules, sp spanRules) {
	covered := tracks[sp.start:sp.end]
	cur := sumSeq(covered, s.inter)
	if need := sp.rules.min - cur.min; need > 0 {
		distributeExtra(covered, need, false)
	}
	cur = sumSeq(covered, s.inter)
	if need := sp.rules.ideal - cur.ideal; need > 0 {
		distributeExtra(covered, need, true)
	}
	// The cell's outer margins and stretch propagate onto its tracks.
	covered[0].mBefore = maxU16(covered[0].mBefore, sp.rules.mBefore)
	covered[len(covered)-1].mAfter = maxU16(covered[len(covered)-1].mAfter, sp.rules.mAfter)
	for i := range covered {
		covered[i].stretch = maxPolicy(covered[i].stretch, sp.rules.stretch)
	}
}

// distributeExtra raises either the ideal or the minimum sizes of tracks
// by extra in total, proportionally to the tracks' current sizes (evenly
// when all are zero), remainder to the first tracks in index order.
func distributeExtra(tracks []SizeRules, extra geom.Coord, toIdeal bool) {
	weight := func(r SizeRules) geom.Coord {
		if toIdeal {
			return r.ideal
		}
		return r.min
	}
	var sum geom.Coord
	for _, r := range tracks {
		sum += weight(r)
	}
	assigned := geom.Coord(0)
	for i := range tracks {
		var share geom.Coord
		if sum == 0 {
			share = extra / geom.Coord(len(tracks))
		} else {
			share = geom.Coord(int64(extra) * int64(weight(tracks[i])) / int64(sum))
		}
		grow(&tracks[i], share, toIdeal)
		assigned += share
	}
	for i := range tracks {
		if assigned == extra {
			break
		}
		grow(&tracks[i], 1, toIdeal)
		assigned++
	}
}

func grow(r *SizeRules, by geom.Coord, toIdeal bool) {
	if toIdeal {
		r.ideal += by
		return
	}
	r.min += by
	if r.ideal < r.min {
		r.ideal = r.min
	}
}

// GridSetter is the RulesSetter for a grid. Column widths and row
// heights are solved independently; a spanning cell's rectangle is
// derived from its solved tracks, never solved on its own.
type GridSetter struct {
	rect       geom.Rect
	cols, rows int
	xoff, yoff []geom.Coord
	ws, hs     []geom.Coord
}

var _ RulesSetter[GridChildInfo] = (*GridSetter)(nil)

// NewGridSetter prepares an assignment pass. The caches, if non-nil, are
// consulted for previous solves of the same extents (one cache per
// axis).
func NewGridSetter(rect geom.Rect, margins Margins, cols, rows int,
	storage GridStorage, wcache, hcache *SolveCache) *GridSetter {
	//
	storage.SetDims(cols, rows)
	xoff, ws := solveTracks(storage.WidthRules()[:cols], margins, false, rect.Size.W, wcache)
	yoff, hs := solveTracks(storage.HeightRules()[:rows], margins, true, rect.Size.H, hcache)
	return &GridSetter{
		rect: rect,
		cols: cols, rows: rows,
		xoff: xoff, yoff: yoff,
		ws: ws, hs: hs,
	}
}

func solveTracks(rules []SizeRules, margins Margins, vertical bool, extent geom.Coord,
	cache *SolveCache) (offsets, sizes []geom.Coord) {
	//
	first, last, inter := margins.extract(vertical)
	gaps, gapTotal := innerGaps(rules, inter)
	avail := extent - first - last - gapTotal
	if cache != nil {
		sizes = cache.Solve(rules, 0, avail)
	} else {
		sizes = make([]geom.Coord, len(rules))
		SolveSeq(sizes, rules, 0, avail)
	}
	offsets = make([]geom.Coord, len(rules))
	pos := first
	for i := range rules {
		offsets[i] = pos
		pos += sizes[i]
		if i < len(gaps) {
			pos += gaps[i]
		}
	}
	return offsets, sizes
}

// ChildRect returns the rectangle for a cell. A spanning cell covers all
// its tracks including the gaps between them.
func (s *GridSetter) ChildRect(child GridChildInfo) geom.Rect {
	child.check(s.cols, s.rows)
	x := s.xoff[child.Col]
	w := s.xoff[child.ColEnd-1] + s.ws[child.ColEnd-1] - x
	y := s.yoff[child.Row]
	h := s.yoff[child.RowEnd-1] + s.hs[child.RowEnd-1] - y
	return geom.Rect{
		Pos:  geom.Point{X: s.rect.Pos.X + x, Y: s.rect.Pos.Y + y},
		Size: geom.Size{W: w, H: h},
	}
}
