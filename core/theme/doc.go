/*
Package theme provides sizing constants for widget layout.

A theme, in the sense of this package, is not concerned with colors or
fonts, but with the metrics a layout pass consumes: outer margins around
a container's content, gaps between adjacent children, frame widths,
popup distances. Widgets query these from a set of registers, which may
be scoped: a sub-tree of the widget hierarchy may open a group, override
some metrics, and restore the previous values afterwards.

Register defaults may be overridden from a TOML theme file.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–23 Norbert Pillmayer <norbert@pillmayer.com>

*/
package theme

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wyse.core'.
func tracer() tracing.Trace {
	return tracing.Select("wyse.core")
}
