package xword

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Coord is a zero-based (column, row) position on the grid.
type Coord struct {
	X, Y int
}

// Direction is the axis a clue runs along.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Clue is a single crossword entry: a pattern anchored at a cell and running
// in one direction. Pattern may contain Wildcard for unconstrained cells.
type Clue struct {
	Dir     Direction
	Anchor  Coord
	Pattern string
}

// Crossword is an ordered set of clues. Clue order has no effect on the
// solved grid: crossing clues agree because they are renamed onto the same
// grid variables, not because of the order they are conjoined in.
type Crossword struct {
	Clues []Clue
}

// Validate rejects clues that are empty or that spill outside a wmax x wmax
// grid. EncodeCrossword runs it before encoding, since the encoder assumes
// every clue fits.
func (cw *Crossword) Validate(wmax int) error {
	for i, c := range cw.Clues {
		if len(c.Pattern) == 0 {
			return errf(ParseError, "clue %d: empty pattern", i)
		}
		if len(c.Pattern) > wmax-1 {
			return errf(SizeBound, "clue %d: pattern length %d exceeds max %d", i, len(c.Pattern), wmax-1)
		}
		if c.Anchor.X < 0 || c.Anchor.Y < 0 {
			return errf(OutOfBounds, "clue %d: anchor (%d,%d) is negative", i, c.Anchor.X, c.Anchor.Y)
		}
		endX, endY := c.Anchor.X, c.Anchor.Y
		if c.Dir == Across {
			endX += len(c.Pattern) - 1
		} else {
			endY += len(c.Pattern) - 1
		}
		if endX >= wmax || endY >= wmax {
			return errf(OutOfBounds, "clue %d: runs from (%d,%d) to (%d,%d), outside the %dx%d grid",
				i, c.Anchor.X, c.Anchor.Y, endX, endY, wmax, wmax)
		}
	}
	return nil
}

// String renders the crossword back in the raw clue-list format understood
// by ParseRawClues.
func (cw *Crossword) String() string {
	var sb strings.Builder
	for _, c := range cw.Clues {
		d := "A"
		if c.Dir == Down {
			d = "D"
		}
		fmt.Fprintf(&sb, "%s %d %d %s\n", d, c.Anchor.X, c.Anchor.Y, c.Pattern)
	}
	return sb.String()
}

// ParseRawClues reads the "DIR X Y PATTERN" clue-list format, one clue per
// line: DIR is A or D, X and Y are the zero-based anchor coordinates, and
// PATTERN is the word pattern (Wildcard for an unconstrained cell).
func ParseRawClues(r io.Reader) (*Crossword, error) {
	cw := &Crossword{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 4 {
			return nil, errf(ParseError, "line %d: expected 4 fields, got %d", line, len(fields))
		}
		var dir Direction
		switch strings.ToUpper(fields[0]) {
		case "A":
			dir = Across
		case "D":
			dir = Down
		default:
			return nil, errf(ParseError, "line %d: direction must be A or D, got %q", line, fields[0])
		}
		x, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errf(ParseError, "line %d: bad x coordinate %q", line, fields[1])
		}
		y, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, errf(ParseError, "line %d: bad y coordinate %q", line, fields[2])
		}
		cw.Clues = append(cw.Clues, Clue{
			Dir:     dir,
			Anchor:  Coord{X: x, Y: y},
			Pattern: strings.ToLower(fields[3]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, errf(IOError, "reading clue list: %s", err)
	}
	return cw, nil
}

// cellFunc returns the byte occupying (x, y), or 0 if (x, y) is outside the
// diagram or falls in a short row's ragged edge.
type cellFunc func(x, y int) byte

// isOccupying reports whether c is a letter or Wildcard, i.e. part of a
// word rather than a block or an out-of-grid gap.
func isOccupying(c byte) bool {
	return (c >= 'a' && c <= 'z') || c == Wildcard
}

// ParseDiagram reads an ASCII grid, one row per line, lowercase letters and
// Wildcard marking occupied cells and any other character marking a block,
// and derives the clue list by row-major geometric scan: a cell starts an
// across clue if it is occupied, its left neighbor is not, and its right
// neighbor is; symmetrically for down. Rows and columns are bounded by wmax.
func ParseDiagram(r io.Reader, wmax int) (*Crossword, error) {
	sc := bufio.NewScanner(r)
	var rows [][]byte
	for sc.Scan() {
		if len(rows) >= wmax {
			return nil, errf(SizeBound, "diagram has more than %d rows", wmax)
		}
		row := []byte(strings.ToLower(sc.Text()))
		if len(row) > wmax {
			return nil, errf(SizeBound, "diagram row %d is %d cells, max is %d", len(rows)+1, len(row), wmax)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errf(IOError, "reading diagram: %s", err)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	height := len(rows)

	cell := func(x, y int) byte {
		if x < 0 || y < 0 || y >= height {
			return 0
		}
		row := rows[y]
		if x >= len(row) {
			return 0
		}
		return row[x]
	}

	cw := &Crossword{}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if acrossStart(cell, x, y) {
				cw.Clues = append(cw.Clues, Clue{Dir: Across, Anchor: Coord{X: x, Y: y}, Pattern: scanRun(cell, x, y, Across)})
			}
			if downStart(cell, x, y) {
				cw.Clues = append(cw.Clues, Clue{Dir: Down, Anchor: Coord{X: x, Y: y}, Pattern: scanRun(cell, x, y, Down)})
			}
		}
	}
	return cw, nil
}

// acrossStart reports whether (x, y) begins an across entry: occupied, with
// an occupied cell to its right and either the left edge of the grid or a
// non-occupied cell to its left.
func acrossStart(cell cellFunc, x, y int) bool {
	if !isOccupying(cell(x, y)) || !isOccupying(cell(x+1, y)) {
		return false
	}
	return x == 0 || !isOccupying(cell(x-1, y))
}

// downStart is acrossStart's mirror image along the vertical axis.
func downStart(cell cellFunc, x, y int) bool {
	if !isOccupying(cell(x, y)) || !isOccupying(cell(x, y+1)) {
		return false
	}
	return y == 0 || !isOccupying(cell(x, y-1))
}

// scanRun walks from (x, y) in direction dir while cells remain occupied,
// returning the run as a pattern string.
func scanRun(cell cellFunc, x, y int, dir Direction) string {
	var buf []byte
	for isOccupying(cell(x, y)) {
		buf = append(buf, cell(x, y))
		if dir == Across {
			x++
		} else {
			y++
		}
	}
	return string(buf)
}
