package xword

import "github.com/dalzilio/rudd"

// EncodeCrossword builds the BDD whose satisfying assignments are exactly
// the solved grids: an assignment of every grid cell and every clue's
// private terminator such that each clue's word, read off the grid, is in
// dict and matches that clue's pattern. Clues that cross agree automatically
// because they are renamed onto the same grid-cell variables before being
// conjoined.
func (s *Solver) EncodeCrossword(dict *Dictionary, cw *Crossword) (rudd.Node, error) {
	if err := cw.Validate(s.MaxWordLen); err != nil {
		return nil, err
	}
	numClues := len(cw.Clues)
	needed := varnumFor(s.MaxWordLen, numClues)
	if needed > s.BDD.Varnum() {
		if err := s.BDD.SetVarnum(needed); err != nil {
			return nil, errf(Internal, "growing bdd manager to %d variables: %s", needed, err)
		}
	}

	result := s.BDD.True()
	for k, clue := range cw.Clues {
		c, err := s.encodeClue(dict, clue, k, numClues)
		if err != nil {
			return nil, err
		}
		result = s.BDD.And(result, c)
	}
	if s.BDD.Errored() {
		return nil, errf(Internal, "encoding crossword: %s", s.BDD.Error())
	}
	return result, nil
}

// encodeClue projects clue k's admitted words onto its slice of the grid:
// intersect the dictionary with the clue's pattern, rename the in-pattern
// dictionary bits onto the grid cells the clue occupies and its terminator
// bits onto its private slice of the terminator region, then existentially
// abstract whatever dictionary bits the rename left behind.
func (s *Solver) encodeClue(dict *Dictionary, clue Clue, k, numClues int) (rudd.Node, error) {
	pat, err := EncodePattern(s.BDD, clue.Pattern, s.MaxWordLen)
	if err != nil {
		return nil, err
	}
	f := s.BDD.And(dict.Node, pat)

	length := len(clue.Pattern)
	oldvars := make([]int, 0, 8*(length+1))
	newvars := make([]int, 0, 8*(length+1))
	for i := 0; i < length; i++ {
		x, y := clue.Anchor.X, clue.Anchor.Y
		if clue.Dir == Across {
			x += i
		} else {
			y += i
		}
		for b := 0; b < 8; b++ {
			oldvars = append(oldvars, dictVar(i, b))
			newvars = append(newvars, gridVar(s.MaxWordLen, numClues, x, y, b))
		}
	}
	for b := 0; b < 8; b++ {
		oldvars = append(oldvars, dictVar(length, b))
		newvars = append(newvars, clueEndVar(s.MaxWordLen, k, b))
	}

	rep, err := s.BDD.NewReplacer(oldvars, newvars)
	if err != nil {
		return nil, errf(Internal, "building clue %d renamer: %s", k, err)
	}
	f = s.BDD.Replace(f, rep)

	residual := make([]int, 0, 8*(s.MaxWordLen-length-1))
	for i := length + 1; i < s.MaxWordLen; i++ {
		for b := 0; b < 8; b++ {
			residual = append(residual, dictVar(i, b))
		}
	}
	if len(residual) > 0 {
		varset := s.BDD.Makeset(residual)
		f = s.BDD.Exist(f, varset)
	}
	if s.BDD.Errored() {
		return nil, errf(Internal, "projecting clue %d: %s", k, s.BDD.Error())
	}
	return f, nil
}
