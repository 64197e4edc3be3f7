package geom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParsePx(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.core")
	defer teardown()
	//
	c, err := ParsePx("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if c != 12 {
		t.Errorf("(1) expected c to be 12, is %d", c)
	}
	//
	c, err = ParsePx("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if c != 0 {
		t.Errorf("(2) expected c to be 0, is %d", c)
	}
	//
	c, err = ParsePx("-3PX")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if c != -3 {
		t.Errorf("(3) expected c to be -3, is %d", c)
	}
	//
	_, err = ParsePx("2em")
	if err == nil {
		t.Errorf("(4) expected parsing of \"2em\" to fail")
	}
}

func TestRectContains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.core")
	defer teardown()
	//
	r := Rect{Pos: Point{X: 10, Y: 20}, Size: Size{W: 5, H: 5}}
	if !r.Contains(Point{X: 10, Y: 20}) {
		t.Errorf("expected top left corner to be inside %v", r)
	}
	if r.Contains(Point{X: 15, Y: 20}) {
		t.Errorf("expected right edge to be outside %v", r)
	}
	if r.Contains(Point{X: 10, Y: 25}) {
		t.Errorf("expected bottom edge to be outside %v", r)
	}
}

func TestRectIntersects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.core")
	defer teardown()
	//
	r := Rect{Pos: Point{X: 0, Y: 0}, Size: Size{W: 10, H: 10}}
	other := Rect{Pos: Point{X: 9, Y: 9}, Size: Size{W: 10, H: 10}}
	if !r.Intersects(other) {
		t.Errorf("expected %v and %v to intersect", r, other)
	}
	touching := Rect{Pos: Point{X: 10, Y: 0}, Size: Size{W: 10, H: 10}}
	if r.Intersects(touching) {
		t.Errorf("expected %v and %v not to intersect", r, touching)
	}
}

func TestRectShrink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.core")
	defer teardown()
	//
	r := Rect{Pos: Point{X: 10, Y: 10}, Size: Size{W: 20, H: 20}}
	s := r.Shrink(Size{W: 2, H: 3}, Size{W: 4, H: 5})
	if s.Pos != (Point{X: 12, Y: 13}) {
		t.Errorf("expected position (12,13), got %v", s.Pos)
	}
	if s.Size != (Size{W: 14, H: 12}) {
		t.Errorf("expected size 14x12, got %v", s.Size)
	}
	//
	// margins larger than the rectangle floor the size at zero
	s = r.Shrink(Size{W: 15, H: 15}, Size{W: 15, H: 15})
	if s.Size.W != 0 || s.Size.H != 0 {
		t.Errorf("expected empty size, got %v", s.Size)
	}
}
