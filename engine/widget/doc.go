/*
Package widget defines the narrow widget capability the layout engine
relies on, and container widgets built from it.

A widget, as far as layout is concerned, can do three things: report its
size requirements for one axis at a time, accept a final pixel
rectangle, and report its outer margins. Containers compose this
capability instead of subclassing anything: a Row or Grid holds child
widgets, runs the layout engines over them, and persists the solved
rules between passes.

Layout is single-threaded and synchronous: a resize triggers one
depth-first measurement pass per axis, then one assignment pass; no
widget may re-enter the solver from SetRect.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–23 Norbert Pillmayer <norbert@pillmayer.com>

*/
package widget

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wyse.widget'.
func tracer() tracing.Trace {
	return tracing.Select("wyse.widget")
}
