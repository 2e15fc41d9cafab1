// Package spmbpe tokenizes UTF-8 text against a SentencePiece-style
// scored-vocabulary BPE model. It composes the text preprocessor, one
// of four interchangeable merge engines, and the output projector into
// the single public contract: Tokenize(text) -> []string.
package spmbpe

import (
	"github.com/spmbpe/engine/naivearray"
	"github.com/spmbpe/engine/naiveset"
	"github.com/spmbpe/engine/pqlist"
	"github.com/spmbpe/engine/pqset"
	"github.com/spmbpe/model"
	"github.com/spmbpe/preprocess"
	"github.com/spmbpe/symbol"
	"github.com/spmbpe/vocab"
)

// Variant selects which merge engine TokenizeWith runs.
type Variant int

const (
	// VariantPQLinkedList is the production engine: arena + bucket
	// queue, O(N log N). It backs Tokenize.
	VariantPQLinkedList Variant = iota
	// VariantNaiveSet rescans an ordered set of symbols every merge.
	VariantNaiveSet
	// VariantNaiveArray rescans a contiguous symbol slice every merge.
	VariantNaiveArray
	// VariantPQSet drives an ordered set with a min-heap agenda,
	// validating stale entries by presence.
	VariantPQSet
)

type engine interface {
	Tokenize(text string) []symbol.Symbol
}

// Tokenizer tokenizes text against a fixed vocabulary. The zero value
// is not usable; construct with New or Load. A *Tokenizer is safe for
// concurrent use: the underlying vocabulary is read-only after
// construction and each Tokenize/TokenizeWith call owns its own
// working state.
type Tokenizer struct {
	vocab   *vocab.Vocabulary
	engines [4]engine
}

// New builds a Tokenizer directly from a decoded piece list; index 0
// is the highest merge priority.
func New(pieces []vocab.Piece) *Tokenizer {
	v := vocab.New(pieces)
	return &Tokenizer{
		vocab: v,
		engines: [4]engine{
			VariantPQLinkedList: pqlist.New(v),
			VariantNaiveSet:     naiveset.New(v),
			VariantNaiveArray:   naivearray.New(v),
			VariantPQSet:        pqset.New(v),
		},
	}
}

// Load reads a SentencePiece .model file from a local path and builds
// a Tokenizer from its decoded piece list. It never touches the
// network; fetching or caching a remote model is out of scope here.
func Load(modelPath string) (*Tokenizer, error) {
	pieces, err := model.Load(modelPath)
	if err != nil {
		return nil, err
	}
	return New(pieces), nil
}

// Tokenize splits text into vocabulary pieces using the production
// engine (PQ-LinkedList).
func (t *Tokenizer) Tokenize(text string) []string {
	return t.TokenizeWith(VariantPQLinkedList, text)
}

// TokenizeWith splits text using a specific merge engine. All four
// variants implement the same contract and must agree on every input;
// TokenizeWith exists for cross-checking and benchmarking, not to
// offer callers a quality/speed tradeoff.
func (t *Tokenizer) TokenizeWith(v Variant, text string) []string {
	preprocessed, offsets := preprocess.Normalize(text)
	symbols := t.engines[v].Tokenize(preprocessed)
	return symbol.Project(text, offsets, symbols)
}

// Vocabulary returns the tokenizer's underlying vocabulary.
func (t *Tokenizer) Vocabulary() *vocab.Vocabulary {
	return t.vocab
}
