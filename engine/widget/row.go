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

// Row sets out its children in a row or column. Solved child rules are
// persisted between layout passes, so a pass triggered by an unchanged
// extent skips the numeric solve.
type Row struct {
	dir      layout.Direction
	children []Widget
	margins  layout.Margins
	storage  layout.DynRowStorage
	cache    layout.SolveCache
	rect     geom.Rect
	posn     *layout.RowPositionSolver
}

// NewRow creates a row (or column) container with padding and gap
// metrics from regs.
func NewRow(dir layout.Direction, regs *theme.Registers, children ...Widget) *Row {
	return &Row{
		dir:      dir,
		children: children,
		margins: layout.UniformMargins(
			regs.Px(theme.P_MARGIN_OUTER),
			regs.Px(theme.P_MARGIN_INNER)),
	}
}

// Len returns the number of children.
func (row *Row) Len() int {
	return len(row.children)
}

// Append adds a child. The persistent storage grows on the next
// measurement pass; the cached solve is invalidated.
func (row *Row) Append(w Widget) {
	row.children = append(row.children, w)
	row.Invalidate()
}

// SizeRules measures all children along one axis and reports the row's
// aggregated requirements.
func (row *Row) SizeRules(axis layout.AxisInfo) layout.SizeRules {
	solver := layout.NewRowSolver(row.dir, axis, row.margins, len(row.children), &row.storage)
	for i, child := range row.children {
		solver.ForChild(i, child.SizeRules)
	}
	return solver.Finish()
}

// SetRect assigns rectangles to all children from the solved storage.
func (row *Row) SetRect(r geom.Rect, hints AlignHints) {
	row.rect = r
	setter := layout.NewRowSetter(row.dir, r, row.margins, len(row.children),
		&row.storage, &row.cache)
	for i, child := range row.children {
		child.SetRect(setter.ChildRect(i), hints)
	}
	row.posn = setter.PositionSolver()
}

// Margins reports the row's outer spacing (none; padding is interior).
func (row *Row) Margins() layout.Margins {
	return layout.Margins{}
}

// Rect returns the placement assigned by the last layout pass.
func (row *Row) Rect() geom.Rect {
	return row.rect
}

// ChildAt maps a point to the child covering it, using the solved
// layout of the last assignment pass. No solver runs.
func (row *Row) ChildAt(p geom.Point) (Widget, bool) {
	if row.posn == nil || !row.rect.Contains(p) {
		return nil, false
	}
	i, ok := row.posn.ChildAt(p)
	if !ok {
		return nil, false
	}
	return row.children[i], true
}

// Invalidate discards the cached solve. Must be called whenever a
// child's intrinsic size may have changed; the solver does not detect
// staleness on its own.
func (row *Row) Invalidate() {
	row.cache.Invalidate()
	row.posn = nil
}
