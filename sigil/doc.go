/*
Package sigil maps words onto sequences of canonical rose-cross symbols.

The package is the front half of the sigil pipeline: a static letter atlas
(letters and digraphs of the alchemelodic alphabet, each with a canonical
display symbol and a color) and a tokenizer that scans a word into atlas keys,
preferring two-letter combinations over single letters.

Symbols produced here are placed and drawn by the sister package `rose`.

# Status

Stable. The atlas is a fixed alphabet; there are no plans to make it
configurable.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © the rosesigil authors
*/
package sigil

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rose.sigil'
func tracer() tracing.Trace {
	return tracing.Select("rose.sigil")
}
