package naivearray

import (
	"strings"
	"testing"

	"github.com/spmbpe/symbol"
)

type testVocab struct {
	scores map[string]int
}

func (v testVocab) Score(text string) (int, bool) {
	s, ok := v.scores[text]
	return s, ok
}

func newFixtureVocab() testVocab {
	order := []string{"a", "b", "c", "d", "▁", "ab", "abc", "cd", "▁ab"}
	scores := make(map[string]int, len(order))
	for i, p := range order {
		scores[p] = i
	}
	return testVocab{scores: scores}
}

func joinSymbols(text string, syms []symbol.Symbol) string {
	var b strings.Builder
	for _, s := range syms {
		b.WriteString(s.Text(text))
	}
	return b.String()
}

func TestTokenizeEmptyProducesNoSymbols(t *testing.T) {
	e := New(newFixtureVocab())
	if got := e.Tokenize(""); len(got) != 0 {
		t.Fatalf("Tokenize(\"\") = %v, want empty", got)
	}
}

func TestTokenizeMatchesNaiveSetShape(t *testing.T) {
	e := New(newFixtureVocab())
	text := "abcd"
	got := e.Tokenize(text)

	if joinSymbols(text, got) != text {
		t.Fatalf("coverage violated: got %q want %q", joinSymbols(text, got), text)
	}
	want := []string{"abc", "d"}
	if len(got) != len(want) {
		t.Fatalf("got %d symbols %v, want %v", len(got), got, want)
	}
	for i, w := range want {
		if got[i].Text(text) != w {
			t.Fatalf("symbol %d = %q, want %q", i, got[i].Text(text), w)
		}
	}
}

func TestTokenizeNonOverlappingCoverage(t *testing.T) {
	e := New(newFixtureVocab())
	text := "▁abcd☃"
	got := e.Tokenize(text)

	prevEnd := 0
	for _, s := range got {
		if s.Start != prevEnd {
			t.Fatalf("gap or overlap at %+v, expected start %d", s, prevEnd)
		}
		prevEnd = s.End
	}
	if prevEnd != len(text) {
		t.Fatalf("final symbol ends at %d, want %d", prevEnd, len(text))
	}
}
