// Package pqset implements a merge engine driven by an ordered symbol
// set plus a min-heap agenda of candidate merges. O(N log N) with
// O(N) total merges.
//
// Stale agenda entries aren't removed from the heap; they're
// validated lazily on pop by checking both endpoints are still
// present in the set.
package pqset

import (
	"container/heap"
	"container/list"

	"github.com/spmbpe/engine"
	"github.com/spmbpe/symbol"
)

// Vocabulary is the minimal read-only contract this engine needs.
type Vocabulary interface {
	Score(text string) (int, bool)
}

// Engine is the PQ-Set merge engine for a fixed vocabulary.
type Engine struct {
	vocab Vocabulary
}

// New returns a PQ-Set engine backed by vocab.
func New(vocab Vocabulary) *Engine {
	return &Engine{vocab: vocab}
}

type agenda []symbol.Pair

func (a agenda) Len() int            { return len(a) }
func (a agenda) Less(i, j int) bool  { return symbol.Less(a[i], a[j]) }
func (a agenda) Swap(i, j int)       { a[i], a[j] = a[j], a[i] }
func (a *agenda) Push(x interface{}) { *a = append(*a, x.(symbol.Pair)) }
func (a *agenda) Pop() interface{} {
	old := *a
	n := len(old)
	x := old[n-1]
	*a = old[:n-1]
	return x
}

// orderedSet keeps symbols ordered by start byte. container/list
// iteration order equals start-byte order since symbols never split
// and merges never reorder the sequence; the map gives O(1) presence
// checks and lookup by exact symbol value.
type orderedSet struct {
	order *list.List
	index map[symbol.Symbol]*list.Element
}

func newOrderedSet(symbols []symbol.Symbol) *orderedSet {
	s := &orderedSet{order: list.New(), index: make(map[symbol.Symbol]*list.Element, len(symbols))}
	for _, sym := range symbols {
		el := s.order.PushBack(sym)
		s.index[sym] = el
	}
	return s
}

func (s *orderedSet) has(sym symbol.Symbol) bool {
	_, ok := s.index[sym]
	return ok
}

// replace removes left and right and inserts their merge in left's
// old position, returning the merged symbol's predecessor and
// successor for re-seeding.
func (s *orderedSet) replace(left, right symbol.Symbol) (merged symbol.Symbol, prev, next symbol.Symbol, hasPrev, hasNext bool) {
	leftEl := s.index[left]
	rightEl := s.index[right]

	merged = symbol.Symbol{Start: left.Start, End: right.End}

	if p := leftEl.Prev(); p != nil {
		prev, hasPrev = p.Value.(symbol.Symbol), true
	}
	if n := rightEl.Next(); n != nil {
		next, hasNext = n.Value.(symbol.Symbol), true
	}

	delete(s.index, left)
	delete(s.index, right)
	s.order.Remove(rightEl)
	leftEl.Value = merged
	s.index[merged] = leftEl

	return merged, prev, next, hasPrev, hasNext
}

// Tokenize merges preprocessed text to completion and returns the
// final symbols in start-byte order.
func (e *Engine) Tokenize(text string) []symbol.Symbol {
	symbols := engine.PopulateSymbols(text)
	if len(symbols) == 0 {
		return nil
	}

	set := newOrderedSet(symbols)

	a := &agenda{}
	heap.Init(a)

	for i := 0; i+1 < len(symbols); i++ {
		e.maybeAddPair(a, text, symbols[i], symbols[i+1])
	}

	for a.Len() > 0 {
		pair := heap.Pop(a).(symbol.Pair)

		if !set.has(pair.Left) || !set.has(pair.Right) {
			continue // stale: at least one endpoint was already consumed
		}

		merged, prev, next, hasPrev, hasNext := set.replace(pair.Left, pair.Right)

		if hasNext {
			e.maybeAddPair(a, text, merged, next)
		}
		if hasPrev {
			e.maybeAddPair(a, text, prev, merged)
		}
	}

	out := make([]symbol.Symbol, 0, set.order.Len())
	for el := set.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(symbol.Symbol))
	}
	return out
}

func (e *Engine) maybeAddPair(a *agenda, text string, left, right symbol.Symbol) {
	score, ok := engine.Score(e.vocab, text, left, right)
	if !ok {
		return
	}
	heap.Push(a, symbol.Pair{Left: left, Right: right, Score: score})
}
