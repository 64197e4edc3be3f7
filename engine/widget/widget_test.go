package widget

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/wyse/core/geom"
	"github.com/npillmayer/wyse/core/theme"
	"github.com/npillmayer/wyse/engine/layout"
)

func TestRigidRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.widget")
	defer teardown()
	//
	w := NewRigid(geom.Size{W: 30, H: 12}, layout.Margins{})
	h := w.SizeRules(layout.NewAxisInfo(false))
	assert.Equal(t, geom.Coord(30), h.Min())
	assert.Equal(t, h.Min(), h.Ideal())
	v := w.SizeRules(layout.NewAxisInfo(true))
	assert.Equal(t, geom.Coord(12), v.Min())
}

func TestFillerRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.widget")
	defer teardown()
	//
	w := NewFiller(layout.StretchFiller)
	r := w.SizeRules(layout.NewAxisInfo(false))
	assert.Equal(t, geom.Coord(0), r.Min())
	assert.Equal(t, layout.StretchFiller, r.Stretch())
}

func TestAlignHints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.widget")
	defer teardown()
	//
	cell := geom.Rect{Pos: geom.Point{X: 10, Y: 10}, Size: geom.Size{W: 40, H: 20}}
	ideal := geom.Size{W: 20, H: 10}
	//
	r := AlignHints{}.Apply(cell, ideal) // stretch fills the cell
	assert.Equal(t, cell, r)
	//
	r = AlignHints{Horiz: AlignCenter, Vert: AlignEnd}.Apply(cell, ideal)
	assert.Equal(t, geom.Rect{
		Pos:  geom.Point{X: 20, Y: 20},
		Size: geom.Size{W: 20, H: 10},
	}, r)
	//
	// an ideal larger than the cell never escapes it
	r = AlignHints{Horiz: AlignBegin}.Apply(cell, geom.Size{W: 60, H: 30})
	assert.Equal(t, cell, r)
}

func TestFrameSurroundsChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.widget")
	defer teardown()
	//
	regs := theme.NewRegisters() // frame-width 1 + frame-inner 2
	child := NewRigid(geom.Size{W: 10, H: 10}, layout.Margins{})
	frame := NewFrame(child, regs)
	//
	r := frame.SizeRules(layout.NewAxisInfo(false))
	assert.Equal(t, geom.Coord(16), r.Min())
	//
	frame.SetRect(geom.Rect{Size: geom.Size{W: 20, H: 20}}, AlignHints{})
	assert.Equal(t, geom.Rect{
		Pos:  geom.Point{X: 3, Y: 3},
		Size: geom.Size{W: 14, H: 14},
	}, child.Rect())
}

func TestFrameShrinksFixedExtent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.widget")
	defer teardown()
	//
	regs := theme.NewRegisters()
	probe := &probeWidget{}
	frame := NewFrame(probe, regs)
	frame.SizeRules(layout.NewAxisInfo(true).WithFixed(40))
	// the frame consumes 3 pixels per edge before the child sees the extent
	assert.Equal(t, geom.Coord(34), probe.seenOther)
}

// probeWidget records the fixed perpendicular extent it is measured with.
type probeWidget struct {
	seenOther geom.Coord
	rect      geom.Rect
}

func (w *probeWidget) SizeRules(axis layout.AxisInfo) layout.SizeRules {
	if other, ok := axis.Other(); ok {
		w.seenOther = other
	}
	return layout.Fixed(10)
}

func (w *probeWidget) SetRect(r geom.Rect, _ AlignHints) {
	w.rect = r
}

func (w *probeWidget) Margins() layout.Margins {
	return layout.Margins{}
}
