/*
Package rose draws rose-cross sigils.

A sigil is drawn on a fixed diagram of three concentric groups: an outer ring
of thirteen symbol positions, a middle ring of thirteen, and a center cluster
of three. Every canonical symbol of package `sigil` owns one immutable
coordinate on this diagram. Rendering a word walks its symbol sequence over
these coordinates, connecting consecutive positions with colored segments and
marking start, end and revisited positions.

Layout and atlas are process-wide constants; rendering itself is a pure,
synchronous function of its input and may run on any number of goroutines
without locking.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © the rosesigil authors
*/
package rose

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rose.render'
func tracer() tracing.Trace {
	return tracing.Select("rose.render")
}

// errRender produces user level errors for failures of the render backend.
func errRender(message string) error {
	return fmt.Errorf("sigil render: %s", message)
}
