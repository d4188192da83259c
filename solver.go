package xword

import "github.com/dalzilio/rudd"

// Solver owns the BDD manager shared by a dictionary and every crossword
// encoded against it. A Solver is scoped to one MaxWordLen: the dictionary
// region is sized 8*MaxWordLen variables wide from the start, and grows
// again (see EncodeCrossword) once a crossword's clue count is known.
type Solver struct {
	BDD        *rudd.BDD
	MaxWordLen int
}

// NewSolver creates a BDD manager wide enough for the dictionary region and
// returns a Solver over it. nodesize, cachesize and cacheratio are the same
// tuning knobs rudd.New exposes; see internal/config for their defaults.
func NewSolver(maxWordLen, nodesize, cachesize, cacheratio int) (*Solver, error) {
	varnum := 8 * maxWordLen
	if varnum < 1 {
		varnum = 1
	}
	b, err := rudd.New(varnum, rudd.Nodesize(nodesize), rudd.Cachesize(cachesize), rudd.Cacheratio(cacheratio))
	if err != nil {
		return nil, errf(Internal, "creating bdd manager: %s", err)
	}
	return &Solver{BDD: b, MaxWordLen: maxWordLen}, nil
}

// LoadDictionary builds a Dictionary over the solver's manager from words.
func (s *Solver) LoadDictionary(words []string) (*Dictionary, error) {
	return BuildDictionary(s.BDD, words, s.MaxWordLen)
}
