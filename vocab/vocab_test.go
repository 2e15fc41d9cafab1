package vocab

import "testing"

func TestNewLastWins(t *testing.T) {
	v := New([]Piece{
		{Text: "a", Index: 0},
		{Text: "a", Index: 5},
	})

	got, ok := v.Score("a")
	if !ok || got != 5 {
		t.Fatalf("Score(a) = (%d, %v), want (5, true)", got, ok)
	}
}

func TestNewEmptyIsNotAnError(t *testing.T) {
	v := New(nil)
	if v.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", v.Len())
	}
	if _, ok := v.Score("anything"); ok {
		t.Fatalf("Score on empty vocabulary should miss")
	}
	if got := v.MaxIndex(); got != -1 {
		t.Fatalf("MaxIndex() on empty vocabulary = %d, want -1", got)
	}
}

func TestScoreMiss(t *testing.T) {
	v := New([]Piece{{Text: "▁the", Index: 12}})

	if _, ok := v.Score("▁them"); ok {
		t.Fatalf("expected miss for unknown piece")
	}
	got, ok := v.Score("▁the")
	if !ok || got != 12 {
		t.Fatalf("Score(▁the) = (%d, %v), want (12, true)", got, ok)
	}
}

func TestMaxIndex(t *testing.T) {
	v := New([]Piece{{Text: "a", Index: 3}, {Text: "b", Index: 9}, {Text: "c", Index: 1}})
	if got := v.MaxIndex(); got != 9 {
		t.Fatalf("MaxIndex() = %d, want 9", got)
	}
}
