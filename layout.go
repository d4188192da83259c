package xword

// This file is the single place that turns a (region, coordinate) triple
// into a BDD variable index. Every other file must go through these helpers
// — see the design note in SPEC_FULL.md §3/§9 about keeping the three
// regions (dictionary, clue-terminator, grid) from drifting out of
// agreement.
//
// Region D (dictionary): variables [0, 8*wmax).
// Region T (clue terminators): variables [8*wmax, 8*wmax + 8*numClues).
// Region G (grid cells): variables [8*(wmax+numClues), varnumFor(wmax, numClues)).

// dictVar returns the variable index of bit b of the character at position i
// in the dictionary region.
func dictVar(i, b int) int {
	return 8*i + b
}

// clueEndVar returns the variable index of bit b of clue k's private
// terminator byte.
func clueEndVar(wmax, k, b int) int {
	return 8*wmax + 8*k + b
}

// gridVar returns the variable index of bit b of the grid cell at (x, y).
func gridVar(wmax, numClues, x, y int, b int) int {
	return 8*(wmax+numClues) + 8*(y*wmax+x) + b
}

// varnumFor returns the number of BDD variables needed to host the
// dictionary, clue-terminator, and grid regions for a crossword of
// numClues clues over a wmax x wmax grid.
func varnumFor(wmax, numClues int) int {
	return 8 * (wmax + numClues + wmax*wmax)
}
