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

// SingleSolver is the trivial RulesSolver for a parent with exactly one
// child. It needs no persistent storage.
type SingleSolver struct {
	axis  AxisInfo
	rules SizeRules
}

var _ RulesSolver[int] = (*SingleSolver)(nil)

// NewSingleSolver constructs a solver for one measurement pass.
func NewSingleSolver(axis AxisInfo) *SingleSolver {
	return &SingleSolver{axis: axis}
}

// ForChild queries the single child. The child index must be 0.
func (s *SingleSolver) ForChild(child int, rules func(AxisInfo) SizeRules) {
	if child != 0 {
		panic("layout: single solver child index out of range")
	}
	s.rules = rules(s.axis)
}

// Finish returns the child's rules unchanged.
func (s *SingleSolver) Finish() SizeRules {
	return s.rules
}

// SingleSetter is the trivial RulesSetter for a parent with exactly one
// child: the child covers the parent's rectangle minus outer margins.
type SingleSetter struct {
	crect geom.Rect
}

var _ RulesSetter[int] = (*SingleSetter)(nil)

// NewSingleSetter constructs a setter for one assignment pass.
func NewSingleSetter(rect geom.Rect, margins Margins) *SingleSetter {
	return &SingleSetter{crect: rect.Shrink(margins.First, margins.Last)}
}

// ChildRect returns the single child's rectangle. The child index must
// be 0.
func (s *SingleSetter) ChildRect(child int) geom.Rect {
	if child != 0 {
		panic("layout: single setter child index out of range")
	}
	return s.crect
}
