package xword

import "github.com/dalzilio/rudd"

// Match returns the BDD of words in dict that satisfy pattern, without
// enumerating them. Callers that need the actual words should pass the
// result to Enumerate.
func (d *Dictionary) Match(pattern string) (rudd.Node, error) {
	p, err := EncodePattern(d.bdd, pattern, d.MaxWordLen)
	if err != nil {
		return nil, err
	}
	m := d.bdd.And(d.Node, p)
	if d.bdd.Errored() {
		return nil, errf(Internal, "matching pattern %q: %s", pattern, d.bdd.Error())
	}
	return m, nil
}

// Matches is the composition of Match and Enumerate: every word in the
// dictionary that satisfies pattern.
func (d *Dictionary) Matches(pattern string) ([]string, error) {
	m, err := d.Match(pattern)
	if err != nil {
		return nil, err
	}
	return d.Enumerate(m)
}

// Enumerate walks every cube of n (a BDD over the dictionary region alone)
// and reconstructs the words it denotes. A don't-care bit forks the walk in
// both directions; a completed byte of all-zero bits terminates a word and
// stops the descent along that branch, matching the NUL-termination
// invariant EncodeWord establishes.
func (d *Dictionary) Enumerate(n rudd.Node) ([]string, error) {
	var words []string
	nbits := 8 * d.MaxWordLen
	err := d.bdd.Allsat(func(cube []int) error {
		buf := make([]byte, d.MaxWordLen)
		walkWordCube(cube, buf, 0, nbits, &words)
		return nil
	}, n)
	if err != nil {
		return nil, errf(Internal, "enumerating matches: %s", err)
	}
	return words, nil
}

func walkWordCube(cube []int, buf []byte, i, size int, words *[]string) {
	if i == size {
		return
	}
	pos, bit := i/8, i%8
	switch cube[i] {
	case 0, 1:
		buf[pos] = setBit(buf[pos], bit, cube[i])
		if bit == 7 && buf[pos] == 0 {
			*words = append(*words, string(buf[:pos]))
			return
		}
		walkWordCube(cube, buf, i+1, size, words)
	default: // don't-care: branch on both values
		cube[i] = 0
		walkWordCube(cube, buf, i, size, words)
		cube[i] = 1
		walkWordCube(cube, buf, i, size, words)
		cube[i] = -1
	}
}

func setBit(orig byte, bit, val int) byte {
	if val != 0 {
		return orig | (1 << uint(bit))
	}
	return orig &^ (1 << uint(bit))
}
