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

// PlacePopup positions a transient overlay region (popup, menu, tooltip)
// relative to an anchor rectangle, within the given bounds. This is a
// one-shot computation, not part of the iterative solver.
//
// One axis expands outward from the anchor, selected by vertical: a menu
// opens below/above its anchor (vertical), a submenu to the right/left
// of it (horizontal). The side is chosen by available room: "after"
// (below/right) is preferred; "before" is taken when "after" cannot fit
// the popup's ideal size but "before" can, or, with reversed set, when
// "before" fits the ideal. If neither side fits, the roomier side wins.
// gap is extra distance kept between anchor and popup.
//
// On the perpendicular axis the popup is centered on the anchor and
// clamped into bounds.
//
// hrules and vrules are the popup content's size requirements per axis.
// The resulting rectangle honors the ideal sizes where room permits and
// shrinks toward the bounds otherwise, possibly below the minimum sizes:
// bounds always win.
func PlacePopup(bounds, anchor geom.Rect, hrules, vrules SizeRules,
	vertical, reversed bool, gap geom.Coord) geom.Rect {
	//
	expand := hrules
	clamp := vrules
	if vertical {
		expand, clamp = vrules, hrules
	}

	// Expand axis: pick a side, then size into its room.
	var boundsLo, boundsHi, anchorLo, anchorHi geom.Coord
	if vertical {
		boundsLo, boundsHi = bounds.Pos.Y, bounds.Bottom()
		anchorLo, anchorHi = anchor.Pos.Y, anchor.Bottom()
	} else {
		boundsLo, boundsHi = bounds.Pos.X, bounds.Right()
		anchorLo, anchorHi = anchor.Pos.X, anchor.Right()
	}
	before := anchorLo - boundsLo - gap
	after := boundsHi - anchorHi - gap
	useBefore := false
	switch {
	case reversed && before >= expand.ideal:
		useBefore = true
	case after >= expand.ideal:
		useBefore = false
	case before >= expand.ideal:
		useBefore = true
	default:
		useBefore = before > after
	}
	room := after
	if useBefore {
		room = before
	}
	extent := geom.Min(expand.ideal, geom.Max(0, room))
	var lo geom.Coord
	if useBefore {
		lo = anchorLo - gap - extent
	} else {
		lo = anchorHi + gap
	}

	// Clamp axis: center on the anchor, clamp into bounds.
	var cBoundsLo, cBoundsHi, cAnchorLo, cAnchorHi geom.Coord
	if vertical {
		cBoundsLo, cBoundsHi = bounds.Pos.X, bounds.Right()
		cAnchorLo, cAnchorHi = anchor.Pos.X, anchor.Right()
	} else {
		cBoundsLo, cBoundsHi = bounds.Pos.Y, bounds.Bottom()
		cAnchorLo, cAnchorHi = anchor.Pos.Y, anchor.Bottom()
	}
	cExtent := geom.Min(clamp.ideal, cBoundsHi-cBoundsLo)
	cLo := cAnchorLo + (cAnchorHi-cAnchorLo-cExtent)/2
	cLo = geom.Max(cBoundsLo, geom.Min(cLo, cBoundsHi-cExtent))

	r := geom.Rect{}
	if vertical {
		r.Pos = geom.Point{X: cLo, Y: lo}
		r.Size = geom.Size{W: cExtent, H: extent}
	} else {
		r.Pos = geom.Point{X: lo, Y: cLo}
		r.Size = geom.Size{W: extent, H: cExtent}
	}
	tracer().Debugf("popup at %v/%v placed %v", anchor, bounds, r)
	return r
}
