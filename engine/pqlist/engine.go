// Package pqlist implements a merge engine over an index-based arena
// of symbol nodes with prev/next links, merged via O(1) splices and
// driven by a bucket queue agenda. This is the production engine; the
// other three variants exist for correctness cross-checking.
package pqlist

import (
	"sync"

	"github.com/spmbpe/engine"
	"github.com/spmbpe/internal/utils"
	"github.com/spmbpe/symbol"
)

// Vocabulary is the minimal read-only contract this engine needs.
type Vocabulary interface {
	Score(text string) (int, bool)
	MaxIndex() int
}

// Engine is the PQ-LinkedList merge engine for a fixed vocabulary.
// Its arena scratch buffers are pooled across calls; the pool holds
// only backing storage, never cross-call state, so concurrent
// Tokenize calls on a shared *Engine remain safe.
type Engine struct {
	vocab Vocabulary
	pool  sync.Pool
}

// New returns a PQ-LinkedList engine backed by vocab.
func New(vocab Vocabulary) *Engine {
	return &Engine{vocab: vocab}
}

type node struct {
	start, end int
	prev, next int
	size       int
	alive      bool
}

type nodePair struct {
	leftIdx, rightIdx int
	pairSize          int
}

type scratch struct {
	arena []node
}

func (e *Engine) acquireScratch(n int) *scratch {
	v := e.pool.Get()
	var sc *scratch
	if v == nil {
		sc = &scratch{}
	} else {
		sc = v.(*scratch)
	}
	if cap(sc.arena) < n {
		sc.arena = make([]node, n)
	} else {
		sc.arena = sc.arena[:n]
	}
	return sc
}

func (e *Engine) releaseScratch(sc *scratch) {
	e.pool.Put(sc)
}

// Tokenize merges preprocessed text to completion and returns the
// final symbols in start-byte order.
func (e *Engine) Tokenize(text string) []symbol.Symbol {
	symbols := engine.PopulateSymbols(text)
	n := len(symbols)
	if n == 0 {
		return nil
	}

	sc := e.acquireScratch(n)
	defer e.releaseScratch(sc)
	arena := sc.arena

	for i, s := range symbols {
		prev := i - 1
		next := i + 1
		if next >= n {
			next = -1
		}
		arena[i] = node{start: s.Start, end: s.End, prev: prev, next: next, size: 1, alive: true}
	}

	maxRank := e.vocab.MaxIndex()
	agenda := utils.NewBucketQueue(maxRank)

	maybeAdd := func(leftIdx, rightIdx int) {
		if leftIdx == -1 || rightIdx == -1 {
			return
		}
		left, right := arena[leftIdx], arena[rightIdx]
		score, ok := e.vocab.Score(text[left.start:right.end])
		if !ok {
			return
		}
		agenda.Push(utils.Candidate{
			Rank:    score,
			Pos:     left.start,
			Payload: nodePair{leftIdx: leftIdx, rightIdx: rightIdx, pairSize: left.size + right.size},
		})
	}

	for i := 0; i+1 < n; i++ {
		maybeAdd(i, i+1)
	}

	for {
		c, ok := agenda.Pop()
		if !ok {
			break
		}
		np := c.Payload.(nodePair)

		left, right := arena[np.leftIdx], arena[np.rightIdx]
		if !left.alive || !right.alive {
			continue // one endpoint already absorbed into another merge
		}
		if left.size+right.size != np.pairSize {
			continue // stale: the size witness no longer matches
		}

		merged := node{
			start: left.start,
			end:   right.end,
			prev:  left.prev,
			next:  right.next,
			size:  left.size + right.size,
			alive: true,
		}
		if merged.next != -1 {
			arena[merged.next].prev = np.leftIdx
		}
		arena[np.rightIdx] = node{}
		arena[np.leftIdx] = merged

		if merged.prev != -1 {
			maybeAdd(merged.prev, np.leftIdx)
		}
		if merged.next != -1 {
			maybeAdd(np.leftIdx, merged.next)
		}
	}

	out := make([]symbol.Symbol, 0, n)
	for i := 0; i != -1; i = arena[i].next {
		out = append(out, symbol.Symbol{Start: arena[i].start, End: arena[i].end})
	}
	return out
}
