package sigil

import "strings"

// Tokenize scans a word into atlas keys, left to right. At each position a
// two-letter window is tried first; if it is in the atlas both characters are
// consumed as one token. Otherwise a single mapped character is consumed as
// one token, and an unmapped character is skipped. The two-letter window is
// only tried while it fits inside the word.
//
// The returned keys are uppercase and are all valid arguments to [Lookup].
// A word with no mapped characters yields an empty sequence, not an error.
func Tokenize(word string) []string {
	w := strings.ToUpper(word)
	var tokens []string
	for i := 0; i < len(w); {
		if i+2 <= len(w) {
			if _, ok := atlas[w[i:i+2]]; ok {
				tokens = append(tokens, w[i:i+2])
				i += 2
				continue
			}
		}
		if _, ok := atlas[w[i:i+1]]; ok {
			tokens = append(tokens, w[i:i+1])
		}
		i++
	}
	tracer().Debugf("tokenized %q into %d symbols", word, len(tokens))
	return tokens
}

// Resolve tokenizes a word and looks every token up in the atlas, returning
// the ordered sequence of (symbol, color) entries.
func Resolve(word string) []Entry {
	keys := Tokenize(word)
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		if e, ok := Lookup(key); ok {
			entries = append(entries, e)
		}
	}
	return entries
}
