package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/wyse/core/geom"
)

func TestSingleSolver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	solver := NewSingleSolver(NewAxisInfo(false))
	solver.ForChild(0, func(AxisInfo) SizeRules { return Variable(10, 30) })
	assert.Equal(t, Variable(10, 30), solver.Finish())
	//
	assert.Panics(t, func() {
		NewSingleSolver(NewAxisInfo(false)).ForChild(1,
			func(AxisInfo) SizeRules { return Empty() })
	})
}

func TestSingleSetter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	rect := geom.Rect{Pos: geom.Point{X: 10, Y: 10}, Size: geom.Size{W: 30, H: 20}}
	setter := NewSingleSetter(rect, UniformMargins(4, 2))
	assert.Equal(t, geom.Rect{
		Pos:  geom.Point{X: 14, Y: 14},
		Size: geom.Size{W: 22, H: 12},
	}, setter.ChildRect(0))
}
