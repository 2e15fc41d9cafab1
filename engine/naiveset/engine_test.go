package naiveset

import (
	"strings"
	"testing"

	"github.com/spmbpe/engine"
	"github.com/spmbpe/symbol"
)

type testVocab struct {
	scores map[string]int
}

func (v testVocab) Score(text string) (int, bool) {
	s, ok := v.scores[text]
	return s, ok
}

func (v testVocab) MaxIndex() int {
	max := -1
	for _, idx := range v.scores {
		if idx > max {
			max = idx
		}
	}
	return max
}

// newFixtureVocab builds a tiny vocabulary over lowercase letters and
// a handful of merges, in SentencePiece priority order (index 0 =
// highest priority).
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
	got := e.Tokenize("")
	if len(got) != 0 {
		t.Fatalf("Tokenize(\"\") = %v, want empty", got)
	}
}

func TestTokenizeMergesHighestPriorityPairFirst(t *testing.T) {
	e := New(newFixtureVocab())
	text := "abcd"
	got := e.Tokenize(text)

	if joinSymbols(text, got) != text {
		t.Fatalf("coverage violated: got %q want %q", joinSymbols(text, got), text)
	}
	// "ab" (score 5) beats "cd" (score 7) and "abc" needs "ab" first;
	// vocabulary has no entry for "abcd", so the final state is ["abc", "d"].
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

func TestTokenizeUnknownCharacterSurvivesAsIs(t *testing.T) {
	e := New(newFixtureVocab())
	text := "a☃b"
	got := e.Tokenize(text)

	if joinSymbols(text, got) != text {
		t.Fatalf("coverage violated: got %q want %q", joinSymbols(text, got), text)
	}
	foundSnowman := false
	for _, s := range got {
		if s.Text(text) == "☃" {
			foundSnowman = true
		}
	}
	if !foundSnowman {
		t.Fatalf("expected the unknown rune to survive as its own symbol, got %v", got)
	}
}

func TestTokenizeIsOrderedAndNonOverlapping(t *testing.T) {
	e := New(newFixtureVocab())
	text := "▁abcd"
	got := e.Tokenize(text)

	prevEnd := 0
	for _, s := range got {
		if s.Start != prevEnd {
			t.Fatalf("gap or overlap at symbol %+v, expected start %d", s, prevEnd)
		}
		prevEnd = s.End
	}
	if prevEnd != len(text) {
		t.Fatalf("final symbol ends at %d, want %d", prevEnd, len(text))
	}
}

func TestPopulateSymbolsAlignsToCodepoints(t *testing.T) {
	syms := engine.PopulateSymbols("a☃b")
	if len(syms) != 3 {
		t.Fatalf("got %d symbols, want 3", len(syms))
	}
	if syms[1].End-syms[1].Start != 3 {
		t.Fatalf("snowman symbol should span 3 bytes, got %d", syms[1].End-syms[1].Start)
	}
}
