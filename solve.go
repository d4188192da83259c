package xword

import (
	"strings"

	"github.com/dalzilio/rudd"
)

// Solution is one satisfying assignment of a crossword's encoded BDD,
// restricted to the grid cells and terminator bits some clue actually
// constrains. Cells the crossword never touches are simply absent from the
// map rather than carrying an arbitrary don't-care value.
type Solution struct {
	Wmax  int
	Cells map[Coord]byte
}

// At returns the letter at (x, y), or ok=false if no clue constrains it.
func (s Solution) At(x, y int) (byte, bool) {
	c, ok := s.Cells[Coord{X: x, Y: y}]
	return c, ok
}

// String renders the grid row by row. A run of cells no clue constrains
// collapses to spaces, and those spaces are only emitted immediately before
// the next printed character in that row — a row with no further letters
// ends without trailing whitespace.
func (s Solution) String() string {
	var sb strings.Builder
	for y := 0; y < s.Wmax; y++ {
		pending := 0
		for x := 0; x < s.Wmax; x++ {
			c, ok := s.At(x, y)
			if !ok {
				pending++
				continue
			}
			sb.WriteString(strings.Repeat(" ", pending))
			pending = 0
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Solutions enumerates every satisfying assignment of a crossword's encoded
// BDD (as returned by EncodeCrossword) into rendered Solution values. It
// always restricts the cube walk to the relevance mask — the grid and
// terminator bits some clue actually constrains — rather than branching on
// every don't-care bit in the manager; branching on irrelevant bits would
// multiply the enumeration by 2^(unused bits) for no semantic gain.
func (s *Solver) Solutions(encoded rudd.Node, cw *Crossword) ([]Solution, error) {
	numClues := len(cw.Clues)
	mask := relevanceMask(s.MaxWordLen, numClues, cw)

	var sols []Solution
	err := s.BDD.Allsat(func(cube []int) error {
		cube = append([]int(nil), cube...)
		walkSolutionCube(cube, mask, 0, len(cube), s.MaxWordLen, numClues, &sols)
		return nil
	}, encoded)
	if err != nil {
		return nil, errf(Internal, "enumerating solutions: %s", err)
	}
	return sols, nil
}

// relevanceMask marks every variable some clue actually binds: the 8 grid
// bits of each cell it occupies, and its own 8 terminator bits.
func relevanceMask(wmax, numClues int, cw *Crossword) []bool {
	mask := make([]bool, varnumFor(wmax, numClues))
	for k, clue := range cw.Clues {
		for i := 0; i < len(clue.Pattern); i++ {
			x, y := clue.Anchor.X, clue.Anchor.Y
			if clue.Dir == Across {
				x += i
			} else {
				y += i
			}
			for b := 0; b < 8; b++ {
				mask[gridVar(wmax, numClues, x, y, b)] = true
			}
		}
		for b := 0; b < 8; b++ {
			mask[clueEndVar(wmax, k, b)] = true
		}
	}
	return mask
}

func walkSolutionCube(cube []int, mask []bool, i, size, wmax, numClues int, out *[]Solution) {
	if i == size {
		*out = append(*out, renderSolution(cube, mask, wmax, numClues))
		return
	}
	if !mask[i] || cube[i] != -1 {
		walkSolutionCube(cube, mask, i+1, size, wmax, numClues, out)
		return
	}
	cube[i] = 0
	walkSolutionCube(cube, mask, i+1, size, wmax, numClues, out)
	cube[i] = 1
	walkSolutionCube(cube, mask, i+1, size, wmax, numClues, out)
	cube[i] = -1
}

func renderSolution(cube []int, mask []bool, wmax, numClues int) Solution {
	cells := map[Coord]byte{}
outer:
	for y := 0; y < wmax; y++ {
		for x := 0; x < wmax; x++ {
			v0 := gridVar(wmax, numClues, x, y, 0)
			if v0 >= len(cube) {
				break outer
			}
			if !mask[v0] {
				continue
			}
			var c byte
			for b := 0; b < 8; b++ {
				if cube[gridVar(wmax, numClues, x, y, b)] == 1 {
					c |= 1 << uint(b)
				}
			}
			cells[Coord{X: x, Y: y}] = c
		}
	}
	return Solution{Wmax: wmax, Cells: cells}
}
