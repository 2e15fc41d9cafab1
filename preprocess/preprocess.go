// Package preprocess normalizes whitespace to the sentinel code point
// a SentencePiece vocabulary expects and tracks how each preprocessed
// byte maps back to the original string.
package preprocess

import (
	"unicode"
	"unicode/utf8"
)

// WhitespaceToken is the word-boundary marker, U+2581 LOWER ONE
// EIGHTH BLOCK. Not configurable.
const WhitespaceToken = '▁'

// OffsetMap maps a byte position in preprocessed text back to the
// original text. Defined for every code-point boundary of the
// preprocessed text plus a terminal entry at len(preprocessed). Dense
// array indexed by preprocessed byte offset: O(n) space, O(1) lookup.
type OffsetMap struct {
	toOriginal []int
}

// At returns the original byte offset for preprocessed byte offset
// pos. pos must be a position Normalize recorded.
func (m OffsetMap) At(pos int) int {
	return m.toOriginal[pos]
}

// Normalize rewrites every whitespace code point in original to
// WhitespaceToken and prepends one if original doesn't already start
// with it, so the first word looks word-initial to the vocabulary
// same as any other.
func Normalize(original string) (text string, offsets OffsetMap) {
	var b []byte
	var toOriginal []int

	appendRune := func(r rune, origByte int) {
		var tmp [utf8.UTFMax]byte
		n := utf8.EncodeRune(tmp[:], r)
		for i := 0; i < n; i++ {
			toOriginal = append(toOriginal, origByte)
		}
		b = append(b, tmp[:n]...)
	}

	needsPrefix := true
	if r, _ := utf8.DecodeRuneInString(original); r == WhitespaceToken {
		needsPrefix = false
	}
	if needsPrefix {
		// no original byte behind the prepended sentinel; collapses to
		// the start of the original string
		appendRune(WhitespaceToken, 0)
	}

	for i, r := range original {
		if unicode.IsSpace(r) {
			appendRune(WhitespaceToken, i)
		} else {
			appendRune(r, i)
		}
	}

	toOriginal = append(toOriginal, len(original))

	return string(b), OffsetMap{toOriginal: toOriginal}
}
