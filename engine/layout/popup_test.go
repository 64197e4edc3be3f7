package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/wyse/core/geom"
)

var popupBounds = geom.Rect{Size: geom.Size{W: 200, H: 100}}

func TestPlacePopupBelow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	anchor := geom.Rect{Pos: geom.Point{X: 50, Y: 40}, Size: geom.Size{W: 20, H: 10}}
	r := PlacePopup(popupBounds, anchor, Fixed(30), Fixed(20), true, false, 2)
	// below the anchor, centered on it horizontally
	assert.Equal(t, geom.Rect{
		Pos:  geom.Point{X: 45, Y: 52},
		Size: geom.Size{W: 30, H: 20},
	}, r)
}

func TestPlacePopupFlipsAbove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	// anchor close to the lower edge; below has room for 8 only
	anchor := geom.Rect{Pos: geom.Point{X: 50, Y: 80}, Size: geom.Size{W: 20, H: 10}}
	r := PlacePopup(popupBounds, anchor, Fixed(30), Fixed(20), true, false, 2)
	assert.Equal(t, geom.Coord(58), r.Pos.Y)
	assert.Equal(t, geom.Coord(20), r.Size.H)
}

func TestPlacePopupReversed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	anchor := geom.Rect{Pos: geom.Point{X: 50, Y: 40}, Size: geom.Size{W: 20, H: 10}}
	r := PlacePopup(popupBounds, anchor, Fixed(30), Fixed(20), true, true, 2)
	// reversed prefers above, which has room here
	assert.Equal(t, geom.Coord(18), r.Pos.Y)
	assert.Equal(t, geom.Coord(20), r.Size.H)
}

func TestPlacePopupNeitherSideFits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	anchor := geom.Rect{Pos: geom.Point{X: 50, Y: 40}, Size: geom.Size{W: 20, H: 10}}
	r := PlacePopup(popupBounds, anchor, Fixed(30), Fixed(90), true, false, 2)
	// the roomier side wins and the popup shrinks into it
	assert.Equal(t, geom.Coord(52), r.Pos.Y)
	assert.Equal(t, geom.Coord(48), r.Size.H)
}

func TestPlacePopupHorizontal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	anchor := geom.Rect{Pos: geom.Point{X: 50, Y: 40}, Size: geom.Size{W: 20, H: 10}}
	r := PlacePopup(popupBounds, anchor, Fixed(30), Fixed(20), false, false, 2)
	// a submenu opens to the right, centered vertically
	assert.Equal(t, geom.Rect{
		Pos:  geom.Point{X: 72, Y: 35},
		Size: geom.Size{W: 30, H: 20},
	}, r)
}

func TestPlacePopupClampsIntoBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	// anchor in the top left corner: centering would leave the bounds
	anchor := geom.Rect{Size: geom.Size{W: 10, H: 10}}
	r := PlacePopup(popupBounds, anchor, Fixed(30), Fixed(20), true, false, 2)
	assert.Equal(t, geom.Coord(0), r.Pos.X)
	assert.Equal(t, geom.Coord(12), r.Pos.Y)
}
