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

// Popup hosts a transient overlay (menu, tooltip, completion list)
// anchored to another widget's rectangle. Placement is a one-shot
// computation, not part of the iterative solver.
type Popup struct {
	child    Widget
	distance geom.Coord
	rect     geom.Rect
}

// NewPopup wraps content to be shown as an overlay, keeping the themed
// distance from its anchor.
func NewPopup(child Widget, regs *theme.Registers) *Popup {
	return &Popup{child: child, distance: regs.Px(theme.P_POPUP_DISTANCE)}
}

// PlaceAround measures the content and places the popup relative to
// anchor within bounds. With vertical the popup opens below (or above)
// the anchor, otherwise to the right (or left). reversed prefers the
// before side where it fits the ideal size.
func (p *Popup) PlaceAround(bounds, anchor geom.Rect, vertical, reversed bool) geom.Rect {
	hrules := p.child.SizeRules(layout.NewAxisInfo(false))
	vrules := p.child.SizeRules(layout.NewAxisInfo(true))
	p.rect = layout.PlacePopup(bounds, anchor, hrules, vrules, vertical, reversed, p.distance)
	p.child.SetRect(p.rect, AlignHints{})
	return p.rect
}

// Rect returns the placement from the last PlaceAround.
func (p *Popup) Rect() geom.Rect {
	return p.rect
}
