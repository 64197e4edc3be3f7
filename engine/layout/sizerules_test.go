package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/wyse/core/geom"
)

func TestRulesConstructors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	assert.Equal(t, Empty(), SizeRules{})
	r := Fixed(12)
	assert.Equal(t, geom.Coord(12), r.Min())
	assert.Equal(t, geom.Coord(12), r.Ideal())
	assert.Equal(t, StretchFixed, r.Stretch())
	//
	r = Variable(10, 30)
	assert.Equal(t, geom.Coord(10), r.Min())
	assert.Equal(t, geom.Coord(30), r.Ideal())
}

func TestRulesVariableClampsIdeal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	r := Variable(10, 5)
	assert.Equal(t, geom.Coord(10), r.Min())
	assert.Equal(t, geom.Coord(10), r.Ideal())
}

func TestRulesAppendedCollapsesMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	a := Variable(10, 20).WithMargins(2, 5)
	b := Fixed(30).WithMargins(3, 4).WithStretch(StretchHigh)
	c := a.Appended(b)
	// shared edge collapses to max(5, 3) = 5 and counts toward the sizes
	assert.Equal(t, geom.Coord(10+30+5), c.Min())
	assert.Equal(t, geom.Coord(20+30+5), c.Ideal())
	before, after := c.Margins()
	assert.Equal(t, uint16(2), before)
	assert.Equal(t, uint16(4), after)
	assert.Equal(t, StretchHigh, c.Stretch())
}

func TestRulesMaxCombine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	a := Variable(10, 40).WithMargins(2, 5)
	b := Variable(15, 20).WithMargins(3, 4).WithStretch(StretchLow)
	c := a.Max(b)
	assert.Equal(t, geom.Coord(15), c.Min())
	assert.Equal(t, geom.Coord(40), c.Ideal())
	before, after := c.Margins()
	assert.Equal(t, uint16(3), before)
	assert.Equal(t, uint16(5), after)
	// a single stretchy member makes the group stretchy
	assert.Equal(t, StretchLow, c.Stretch())
}

func TestRulesSurroundedBy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	content := Variable(10, 30).WithMargins(1, 1)
	frame := Fixed(3).WithMargins(2, 2)
	r := content.SurroundedBy(frame, true)
	assert.Equal(t, geom.Coord(16), r.Min())
	assert.Equal(t, geom.Coord(36), r.Ideal())
	before, after := r.Margins()
	assert.Equal(t, uint16(2), before)
	assert.Equal(t, uint16(2), after)
	//
	r = content.SurroundedBy(frame, false)
	assert.Equal(t, geom.Coord(13), r.Min())
}

func TestRulesExtractFixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	m := Margins{
		First: geom.Size{W: 1, H: 2},
		Last:  geom.Size{W: 3, H: 4},
	}
	sz := geom.Size{W: 40, H: 25}
	h := ExtractFixed(false, sz, m)
	assert.Equal(t, geom.Coord(40), h.Min())
	assert.Equal(t, h.Min(), h.Ideal())
	before, after := h.Margins()
	assert.Equal(t, uint16(1), before)
	assert.Equal(t, uint16(3), after)
	//
	v := ExtractFixed(true, sz, m)
	assert.Equal(t, geom.Coord(25), v.Min())
	before, after = v.Margins()
	assert.Equal(t, uint16(2), before)
	assert.Equal(t, uint16(4), after)
}
