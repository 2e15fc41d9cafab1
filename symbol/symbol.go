// Package symbol holds the byte ranges merge engines splice together
// and the candidate-merge ("pair") bookkeeping shared across them.
package symbol

// Symbol is a half-open byte range [Start, End) into the preprocessed
// text. Both endpoints fall on UTF-8 code-point boundaries.
type Symbol struct {
	Start int
	End   int
}

// Text returns the substring of preprocessed this symbol spans, for
// use as a vocabulary lookup key.
func (s Symbol) Text(preprocessed string) string {
	return preprocessed[s.Start:s.End]
}

// Pair is a candidate merge of two adjacent symbols: the score at
// enqueue time, and PairSize (combined code-point size at enqueue
// time) as a staleness witness. No engine sets PairSize: pqset checks
// presence instead, and pqlist keeps its own witness in its arena
// agenda entries.
type Pair struct {
	Left, Right Symbol
	Score       int
	PairSize    int
}

// Less orders pairs by ascending score, tiebreak by leftmost start
// byte.
func Less(a, b Pair) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.Left.Start < b.Left.Start
}
