// Package naiveset implements a merge engine backed by an ordered set
// of symbols, rescanned in full after every merge. O(N^2) worst case;
// kept as a correctness reference, not for production use.
//
// container/list gives us the ordered set: its iteration order is
// already start-byte order, and a merge (remove two, insert one) is
// O(1) once positioned.
package naiveset

import (
	"container/list"

	"github.com/spmbpe/engine"
	"github.com/spmbpe/symbol"
)

// Vocabulary is the minimal read-only contract this engine needs.
type Vocabulary interface {
	Score(text string) (int, bool)
}

// Engine is the Naive-Set merge engine for a fixed vocabulary.
type Engine struct {
	vocab Vocabulary
}

// New returns a Naive-Set engine backed by vocab.
func New(vocab Vocabulary) *Engine {
	return &Engine{vocab: vocab}
}

// Tokenize merges preprocessed text to completion and returns the
// final symbols in start-byte order.
func (e *Engine) Tokenize(text string) []symbol.Symbol {
	symbols := engine.PopulateSymbols(text)
	if len(symbols) == 0 {
		return nil
	}

	set := list.New()
	for _, s := range symbols {
		set.PushBack(s)
	}

	for {
		bestElem, bestScore, found := e.findBestMerge(set, text)
		if !found {
			break
		}
		e.mergeAt(set, bestElem, bestScore)
	}

	out := make([]symbol.Symbol, 0, set.Len())
	for el := set.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(symbol.Symbol))
	}
	return out
}

// findBestMerge does a full scan of adjacent pairs, scoring each one
// whose concatenation exists in the vocabulary, and returns the left
// element of the lowest-scoring pair (ties broken by leftmost start
// byte, which a left-to-right scan gives for free).
func (e *Engine) findBestMerge(set *list.List, text string) (*list.Element, int, bool) {
	var best *list.Element
	bestScore := 0
	found := false

	for el := set.Front(); el != nil && el.Next() != nil; el = el.Next() {
		left := el.Value.(symbol.Symbol)
		right := el.Next().Value.(symbol.Symbol)

		score, ok := engine.Score(e.vocab, text, left, right)
		if !ok {
			continue
		}
		if !found || score < bestScore {
			best, bestScore, found = el, score, true
		}
	}
	return best, bestScore, found
}

func (e *Engine) mergeAt(set *list.List, left *list.Element, _ int) {
	right := left.Next()
	leftSym := left.Value.(symbol.Symbol)
	rightSym := right.Value.(symbol.Symbol)

	left.Value = symbol.Symbol{Start: leftSym.Start, End: rightSym.End}
	set.Remove(right)
}
