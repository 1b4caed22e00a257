/*
Package rosesigil turns words into rose-cross sigils.

This top-level package is a convenience front for the topic packages:
`sigil` holds the letter atlas and tokenizer, `rose` the diagram layout and
the PNG renderer, and `almanac` the planner's time heuristics. The web
planner and the interactive CLI live in `rosed` and `rosecli`.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © the rosesigil authors
*/
package rosesigil

import (
	"io"

	"github.com/alchemelodic/rosesigil/rose"
	"github.com/alchemelodic/rosesigil/sigil"
)

// Sigil renders the rose-cross sigil for a word and returns it as PNG bytes.
// A word with no mapped letters renders an empty diagram, not an error.
func Sigil(word string) ([]byte, error) {
	return rose.Render(word)
}

// SigilTo renders the rose-cross sigil for a word as PNG onto w.
func SigilTo(w io.Writer, word string) error {
	return rose.RenderTo(w, word)
}

// Symbols returns the ordered canonical symbol sequence a word resolves to.
func Symbols(word string) []string {
	entries := sigil.Resolve(word)
	symbols := make([]string, len(entries))
	for i, e := range entries {
		symbols[i] = e.Symbol
	}
	return symbols
}
