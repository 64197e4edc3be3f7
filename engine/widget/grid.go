/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–23 Norbert Pillmayer <norbert@pillmayer.com>

*/
package widget

import (
	"github.com/npillmayer/wyse/core/geom"
	"github.com/npillmayer/wyse/core/theme"
	"github.com/npillmayer/wyse/engine/layout"
)

type gridCell struct {
	widget Widget
	info   layout.GridChildInfo
}

// Grid sets out its children in a grid of cells, with optional spans
// over multiple rows or columns. Cells register their placement once, at
// configuration time; measurement and assignment passes then walk the
// registered cells.
type Grid struct {
	cols, rows int
	cells      []gridCell
	margins    layout.Margins
	storage    layout.DynGridStorage
	wcache     layout.SolveCache
	hcache     layout.SolveCache
	rect       geom.Rect
}

// NewGrid creates a cols × rows grid container with padding and gap
// metrics from regs.
func NewGrid(cols, rows int, regs *theme.Registers) *Grid {
	return &Grid{
		cols: cols,
		rows: rows,
		margins: layout.UniformMargins(
			regs.Px(theme.P_MARGIN_OUTER),
			regs.Px(theme.P_MARGIN_INNER)),
	}
}

// Add registers a child at the given cell span.
func (g *Grid) Add(w Widget, info layout.GridChildInfo) *Grid {
	g.cells = append(g.cells, gridCell{widget: w, info: info})
	g.Invalidate()
	return g
}

// Len returns the number of registered cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// SizeRules measures all cells along one axis and reports the grid's
// aggregated requirements.
func (g *Grid) SizeRules(axis layout.AxisInfo) layout.SizeRules {
	solver := layout.NewGridSolver(axis, g.cols, g.rows, g.margins, &g.storage)
	for _, cell := range g.cells {
		solver.ForChild(cell.info, cell.widget.SizeRules)
	}
	return solver.Finish()
}

// SetRect assigns rectangles to all cells from the solved storage.
func (g *Grid) SetRect(r geom.Rect, hints AlignHints) {
	g.rect = r
	setter := layout.NewGridSetter(r, g.margins, g.cols, g.rows,
		&g.storage, &g.wcache, &g.hcache)
	for _, cell := range g.cells {
		cell.widget.SetRect(setter.ChildRect(cell.info), hints)
	}
}

// Margins reports the grid's outer spacing (none; padding is interior).
func (g *Grid) Margins() layout.Margins {
	return layout.Margins{}
}

// Rect returns the placement assigned by the last layout pass.
func (g *Grid) Rect() geom.Rect {
	return g.rect
}

// Invalidate discards the cached solves. Must be called whenever a
// cell's intrinsic size may have changed.
func (g *Grid) Invalidate() {
	g.wcache.Invalidate()
	g.hcache.Invalidate()
}
