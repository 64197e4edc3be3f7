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

// RulesSolver is the interface of layout engines during the measurement
// pass: a container queries each child for its SizeRules along one axis
// and accumulates them into its own rules. The type parameter C
// identifies a child: a plain index for single/row engines, a
// GridChildInfo for grids.
//
// Children must be visited exactly once each, in their natural order.
type RulesSolver[C any] interface {
	// ForChild queries one child. The callback receives the AxisInfo the
	// child must answer for; for cross-axis measurement with the
	// perpendicular axis fixed this carries the child's own solved
	// extent.
	ForChild(child C, rules func(AxisInfo) SizeRules)
	// Finish completes accumulation, stores the aggregate rules and
	// returns them.
	Finish() SizeRules
}

// RulesSetter is the interface of layout engines during the assignment
// pass: having solved pixel sizes from the storage filled by a
// RulesSolver, it hands out one final rectangle per child.
type RulesSetter[C any] interface {
	ChildRect(child C) geom.Rect
}

// SolveCache memoizes the pixel sizes a setter computes from solved
// rules, keyed by the target extent they were solved for. Assignment
// passes triggered by events that do not change a container's extent
// then skip the numeric solve entirely.
//
// The cache is owned by its container; the widget tree must call
// Invalidate whenever a child's intrinsic size may have changed (e.g.
// text content edited). The solver never detects staleness on its own.
//
// The zero value is an empty, invalid cache, ready for use.
type SolveCache struct {
	sizes  []geom.Coord
	target geom.Coord
	valid  bool
}

// Invalidate discards cached sizes. The next Solve recomputes.
func (c *SolveCache) Invalidate() {
	c.valid = false
}

// Solve returns per-child pixel sizes for the given rules and target,
// reusing the cached result when the target matches the cached one.
// Rules must not include the aggregate entry. The returned slice is
// owned by the cache and valid until the next Solve.
func (c *SolveCache) Solve(rules []SizeRules, inter geom.Coord, target geom.Coord) []geom.Coord {
	if c.valid && c.target == target && len(c.sizes) == len(rules) {
		return c.sizes
	}
	if len(c.sizes) != len(rules) {
		c.sizes = make([]geom.Coord, len(rules))
	}
	SolveSeq(c.sizes, rules, inter, target)
	c.target = target
	c.valid = true
	return c.sizes
}
