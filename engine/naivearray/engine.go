// Package naivearray implements the same full-rescan merge strategy
// as naiveset over a contiguous slice instead of an ordered set.
// Adjacency is array-index adjacency; a merge builds a new slice with
// the pair replaced by one merged symbol.
package naivearray

import (
	"github.com/spmbpe/engine"
	"github.com/spmbpe/symbol"
)

// Vocabulary is the minimal read-only contract this engine needs.
type Vocabulary interface {
	Score(text string) (int, bool)
}

// Engine is the Naive-Array merge engine for a fixed vocabulary.
type Engine struct {
	vocab Vocabulary
}

// New returns a Naive-Array engine backed by vocab.
func New(vocab Vocabulary) *Engine {
	return &Engine{vocab: vocab}
}

// Tokenize merges preprocessed text to completion and returns the
// final symbols in start-byte order.
func (e *Engine) Tokenize(text string) []symbol.Symbol {
	symbols := engine.PopulateSymbols(text)

	for {
		pos, score, found := e.findBestMerge(symbols, text)
		if !found {
			break
		}
		symbols = e.mergeAt(symbols, pos, score)
	}
	return symbols
}

// findBestMerge scans every adjacent pair in order, scoring those
// present in the vocabulary, and returns the index of the lowest
// scoring pair's left element; ties go to the leftmost position
// because a forward scan only replaces the running best on a strict
// improvement.
func (e *Engine) findBestMerge(symbols []symbol.Symbol, text string) (int, int, bool) {
	bestPos, bestScore, found := -1, 0, false

	for i := 0; i+1 < len(symbols); i++ {
		score, ok := engine.Score(e.vocab, text, symbols[i], symbols[i+1])
		if !ok {
			continue
		}
		if !found || score < bestScore {
			bestPos, bestScore, found = i, score, true
		}
	}
	return bestPos, bestScore, found
}

func (e *Engine) mergeAt(symbols []symbol.Symbol, pos int, _ int) []symbol.Symbol {
	merged := symbol.Symbol{Start: symbols[pos].Start, End: symbols[pos+1].End}

	out := make([]symbol.Symbol, 0, len(symbols)-1)
	out = append(out, symbols[:pos]...)
	out = append(out, merged)
	out = append(out, symbols[pos+2:]...)
	return out
}
