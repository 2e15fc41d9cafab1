// Package engine collects the helpers shared by the four merge-engine
// variants: a common contract plus plain functions, rather than a
// deep inheritance hierarchy.
package engine

import (
	"unicode/utf8"

	"github.com/spmbpe/symbol"
)

// Engine is the contract every merge-engine variant satisfies: given
// already-preprocessed text, return the final, merged symbol sequence
// in start-byte order. Preprocessing the input and projecting the
// result back through the original string is the caller's job.
type Engine interface {
	Tokenize(text string) []symbol.Symbol
}

// PopulateSymbols splits preprocessed text into one Symbol per code
// point, in order.
func PopulateSymbols(text string) []symbol.Symbol {
	if text == "" {
		return nil
	}
	symbols := make([]symbol.Symbol, 0, len(text))
	pos := 0
	for pos < len(text) {
		_, size := utf8.DecodeRuneInString(text[pos:])
		symbols = append(symbols, symbol.Symbol{Start: pos, End: pos + size})
		pos += size
	}
	return symbols
}

// CodepointCount returns the number of code points in text. Arena
// engines must size against this, not len(text) in bytes.
func CodepointCount(text string) int {
	return utf8.RuneCountInString(text)
}

// Score looks up the vocabulary score for the concatenation of two
// adjacent symbols' bytes. The naive and PQ-Set engines score through
// it; pqlist scores the same left-start to right-end span inline over
// its arena nodes.
func Score(vocab interface{ Score(string) (int, bool) }, text string, left, right symbol.Symbol) (int, bool) {
	return vocab.Score(text[left.Start:right.End])
}
