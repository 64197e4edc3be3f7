/*
Package layout solves widget layout by constraint propagation.

Size units are physical (real) pixels throughout.

Data types

SizeRules is the heart of widget layout: a widget's size requirements
along one axis, i.e. a minimum and an ideal size together with margin
and stretch metadata. SizeRules compose: sequentially (Appended) for
children set out one after another, in parallel (Max) for children
sharing an extent. SolveSeq is the muscle of the engine, turning a
target extent and a sequence of SizeRules into exact per-child pixel
sizes.

AxisInfo, Margins and StretchPolicy are auxiliary data types.

Layout engines

The RulesSolver and RulesSetter interfaces are implemented by three
layout engines:

  - SingleSolver and SingleSetter are trivial implementations for
    single-child parents.
  - RowSolver and RowSetter set out a row or column of children. They
    operate on RowStorage, with FixedRowStorage for a fixed number of
    children and DynRowStorage for a variable one.
  - GridSolver and GridSetter set out children assigned to grid cells
    with optional cell spans. This is the most powerful engine.

RowPositionSolver maps a coordinate back to the child set out there by
a RowSetter, without re-running the solver.

A layout pass is two-phased: first every child is queried for its
SizeRules along the horizontal axis, then along the vertical axis with
the horizontal result fixed (content may reflow); finally a RulesSetter
walks the solved storage and assigns a concrete pixel rectangle to
every child. Storage persists between passes, owned by the container.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–23 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wyse.layout'.
func tracer() tracing.Trace {
	return tracing.Select("wyse.layout")
}
