/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–23 Norbert Pillmayer <norbert@pillmayer.com>

*/
package theme

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/npillmayer/wyse/core/geom"
)

// Param identifies a single theme metric.
type Param int

//go:generate stringer -type=Param
const (
	none Param = iota
	P_MARGIN_OUTER   // margin between a container's border and its content
	P_MARGIN_INNER   // gap between adjacent children of a container
	P_FRAME_WIDTH    // width of a decorative frame around a widget
	P_FRAME_INNER    // gap between a frame and the framed content
	P_POPUP_DISTANCE // gap between an anchor widget and a popup
	P_STOPPER
)

// Registers hold the current value for every theme metric.
//
// Values may be overridden in groups: after a call to Begingroup, every
// Set is recorded and will be undone by the matching Endgroup. Groups
// nest; a widget sub-tree typically brackets its configuration in one.
type Registers struct {
	base   [P_STOPPER]geom.Coord
	groups *arraystack.Stack // stack of group records
}

type group map[Param]geom.Coord // saved pre-group values

// NewRegisters creates theme registers, initialized to built-in defaults.
func NewRegisters() *Registers {
	regs := &Registers{groups: arraystack.New()}
	initParams(&regs.base)
	return regs
}

func initParams(p *[P_STOPPER]geom.Coord) {
	p[P_MARGIN_OUTER] = 4
	p[P_MARGIN_INNER] = 2
	p[P_FRAME_WIDTH] = 1
	p[P_FRAME_INNER] = 2
	p[P_POPUP_DISTANCE] = 2
}

// Px returns the current value of a metric, in pixels.
func (regs *Registers) Px(p Param) geom.Coord {
	if p <= none || p >= P_STOPPER {
		tracer().Errorf("theme register access with invalid parameter %d", p)
		return 0
	}
	return regs.base[p]
}

// Set overrides a metric. Inside a group the previous value is recorded
// and restored by Endgroup.
func (regs *Registers) Set(p Param, value geom.Coord) {
	if p <= none || p >= P_STOPPER {
		tracer().Errorf("theme register update with invalid parameter %d", p)
		return
	}
	if g, ok := regs.groups.Peek(); ok {
		grp := g.(group)
		if _, saved := grp[p]; !saved {
			grp[p] = regs.base[p]
		}
	}
	tracer().Debugf("theme %s = %v", p, value)
	regs.base[p] = value
}

// Begingroup opens a scope for metric overrides.
func (regs *Registers) Begingroup() {
	regs.groups.Push(make(group))
}

// Endgroup closes the most recent scope, restoring all metrics
// overridden within it. Calling Endgroup without a matching Begingroup
// is a programmer error and panics.
func (regs *Registers) Endgroup() {
	g, ok := regs.groups.Pop()
	if !ok {
		panic("theme: Endgroup without Begingroup")
	}
	for p, value := range g.(group) {
		regs.base[p] = value
	}
}

// Grouplevel returns the current group nesting depth.
func (regs *Registers) Grouplevel() int {
	return regs.groups.Size()
}
