package xword

import "testing"

// TestCrossoverConsistency is property 6 and scenario S3: an across clue and
// a down clue crossing at a shared cell only ever appear together with
// matching letters at that cell, and every admissible combination shows up.
func TestCrossoverConsistency(t *testing.T) {
	s := newTestSolver(t, 3)
	dict, err := s.LoadDictionary([]string{"an", "at", "no", "on"})
	if err != nil {
		t.Fatalf("LoadDictionary: %s", err)
	}
	cw := &Crossword{Clues: []Clue{
		{Dir: Across, Anchor: Coord{0, 0}, Pattern: "**"},
		{Dir: Down, Anchor: Coord{1, 0}, Pattern: "**"},
	}}

	encoded, err := s.EncodeCrossword(dict, cw)
	if err != nil {
		t.Fatalf("EncodeCrossword: %s", err)
	}
	sols, err := s.Solutions(encoded, cw)
	if err != nil {
		t.Fatalf("Solutions: %s", err)
	}

	want := []map[Coord]byte{
		{{0, 0}: 'a', {1, 0}: 'n', {1, 1}: 'o'}, // an / no
		{{0, 0}: 'n', {1, 0}: 'o', {1, 1}: 'n'}, // no / on
		{{0, 0}: 'o', {1, 0}: 'n', {1, 1}: 'o'}, // on / no
	}
	if len(sols) != len(want) {
		t.Fatalf("got %d solutions, want %d: %+v", len(sols), len(want), sols)
	}
	for _, w := range want {
		found := false
		for _, sol := range sols {
			if cellsEqual(sol.Cells, w) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected solution %v not found among %v", w, sols)
		}
	}
}

func cellsEqual(a, b map[Coord]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// TestUnsatisfiable is scenario S4: a crossword with no admissible word
// reduces the encoded BDD to False.
func TestUnsatisfiable(t *testing.T) {
	s := newTestSolver(t, 3)
	dict, err := s.LoadDictionary([]string{"a"})
	if err != nil {
		t.Fatalf("LoadDictionary: %s", err)
	}
	cw := &Crossword{Clues: []Clue{{Dir: Across, Anchor: Coord{0, 0}, Pattern: "**"}}}

	encoded, err := s.EncodeCrossword(dict, cw)
	if err != nil {
		t.Fatalf("EncodeCrossword: %s", err)
	}
	if s.BDD.Satcount(encoded).Sign() != 0 {
		t.Fatalf("expected an unsatisfiable crossword")
	}
}

// TestEncoderCommutativity is property 8: reordering clues yields the same
// solution set.
func TestEncoderCommutativity(t *testing.T) {
	s := newTestSolver(t, 3)
	dict, err := s.LoadDictionary([]string{"an", "at", "no", "on"})
	if err != nil {
		t.Fatalf("LoadDictionary: %s", err)
	}
	forward := &Crossword{Clues: []Clue{
		{Dir: Across, Anchor: Coord{0, 0}, Pattern: "**"},
		{Dir: Down, Anchor: Coord{1, 0}, Pattern: "**"},
	}}
	reversed := &Crossword{Clues: []Clue{
		{Dir: Down, Anchor: Coord{1, 0}, Pattern: "**"},
		{Dir: Across, Anchor: Coord{0, 0}, Pattern: "**"},
	}}

	encFwd, err := s.EncodeCrossword(dict, forward)
	if err != nil {
		t.Fatalf("EncodeCrossword(forward): %s", err)
	}
	encRev, err := s.EncodeCrossword(dict, reversed)
	if err != nil {
		t.Fatalf("EncodeCrossword(reversed): %s", err)
	}

	solsFwd, err := s.Solutions(encFwd, forward)
	if err != nil {
		t.Fatalf("Solutions(forward): %s", err)
	}
	solsRev, err := s.Solutions(encRev, reversed)
	if err != nil {
		t.Fatalf("Solutions(reversed): %s", err)
	}

	if len(solsFwd) != len(solsRev) {
		t.Fatalf("forward has %d solutions, reversed has %d", len(solsFwd), len(solsRev))
	}
	for _, f := range solsFwd {
		found := false
		for _, r := range solsRev {
			if cellsEqual(f.Cells, r.Cells) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("forward solution %v missing from reversed solution set %v", f.Cells, solsRev)
		}
	}
}
