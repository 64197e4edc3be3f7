/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–23 Norbert Pillmayer <norbert@pillmayer.com>

*/
package widget

import (
	"github.com/npillmayer/wyse/core/geom"
	"github.com/npillmayer/wyse/engine/layout"
)

// Layout runs a complete layout pass over a widget hierarchy: the
// horizontal axis is measured first, then the vertical axis with the
// horizontal extent fixed (content may reflow), and finally every widget
// is assigned its rectangle top-down.
//
// The root's rules for both axes are returned, so a window may adjust
// its own size constraints from them.
func Layout(root Widget, bounds geom.Rect) (hrules, vrules layout.SizeRules) {
	tracer().Debugf("layout pass over %v", bounds)
	hrules = root.SizeRules(layout.NewAxisInfo(false))
	vrules = root.SizeRules(layout.NewAxisInfo(true).WithFixed(bounds.Size.W))
	root.SetRect(bounds, AlignHints{})
	return hrules, vrules
}
