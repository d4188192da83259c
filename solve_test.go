package xword

import "testing"

// TestSolutionCompleteness is property 7: every dictionary word admissible
// for a single-clue crossword appears in the enumerated solutions.
func TestSolutionCompleteness(t *testing.T) {
	s := newTestSolver(t, 2)
	dict, err := s.LoadDictionary([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("LoadDictionary: %s", err)
	}
	cw := &Crossword{Clues: []Clue{{Dir: Across, Anchor: Coord{0, 0}, Pattern: "*"}}}

	encoded, err := s.EncodeCrossword(dict, cw)
	if err != nil {
		t.Fatalf("EncodeCrossword: %s", err)
	}
	sols, err := s.Solutions(encoded, cw)
	if err != nil {
		t.Fatalf("Solutions: %s", err)
	}
	if len(sols) != 3 {
		t.Fatalf("got %d solutions, want 3: %+v", len(sols), sols)
	}
	seen := map[byte]bool{}
	for _, sol := range sols {
		c, ok := sol.At(0, 0)
		if !ok {
			t.Fatalf("solution has no letter at (0,0): %+v", sol)
		}
		seen[c] = true
	}
	for _, want := range []byte{'a', 'b', 'c'} {
		if !seen[want] {
			t.Fatalf("expected a solution with %q at (0,0), got %v", want, sols)
		}
	}
}

// TestPrefilledLetterSolve extends scenario S6 to a full solve: the
// prefilled letter in the pattern restricts the admitted words.
func TestPrefilledLetterSolve(t *testing.T) {
	s := newTestSolver(t, 3)
	dict, err := s.LoadDictionary([]string{"ca", "ba"})
	if err != nil {
		t.Fatalf("LoadDictionary: %s", err)
	}
	cw := &Crossword{Clues: []Clue{{Dir: Across, Anchor: Coord{0, 0}, Pattern: "c*"}}}

	encoded, err := s.EncodeCrossword(dict, cw)
	if err != nil {
		t.Fatalf("EncodeCrossword: %s", err)
	}
	sols, err := s.Solutions(encoded, cw)
	if err != nil {
		t.Fatalf("Solutions: %s", err)
	}
	if len(sols) != 1 {
		t.Fatalf("got %d solutions, want 1: %+v", len(sols), sols)
	}
	if c, _ := sols[0].At(0, 0); c != 'c' {
		t.Fatalf("At(0,0) = %q, want 'c'", c)
	}
	if c, _ := sols[0].At(1, 0); c != 'a' {
		t.Fatalf("At(1,0) = %q, want 'a'", c)
	}
}

func TestSolutionStringCollapsesGaps(t *testing.T) {
	sol := Solution{Wmax: 3, Cells: map[Coord]byte{{2, 1}: 'x'}}
	got := sol.String()
	want := "\n  x\n\n"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
