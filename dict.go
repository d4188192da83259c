package xword

import (
	"fmt"
	"strings"

	"github.com/dalzilio/rudd"
)

// Dictionary is the disjunction of every admitted word, over the dictionary
// region D, together with the running counters needed to report the
// observational statistics of spec §4.3 (word/char counts, node count,
// variable count, compression ratio). The counters are accumulators threaded
// through Add rather than package-level mutable globals.
type Dictionary struct {
	bdd        *rudd.BDD
	Node       rudd.Node
	MaxWordLen int

	words int
	chars int
}

// NewDictionary returns an empty dictionary (the BDD constant False) over b.
func NewDictionary(b *rudd.BDD, maxWordLen int) *Dictionary {
	return &Dictionary{bdd: b, Node: b.False(), MaxWordLen: maxWordLen}
}

// LoadedDictionary wraps a dictionary BDD read back from a serialized image
// (internal/store). Its word/character counters start at zero since that
// history is not part of the persisted image.
func LoadedDictionary(b *rudd.BDD, node rudd.Node, maxWordLen int) *Dictionary {
	return &Dictionary{bdd: b, Node: node, MaxWordLen: maxWordLen}
}

// Add lowercases word, encodes it, and disjoins it into the dictionary.
// Adding the same word twice is idempotent: a ∨ a = a.
func (d *Dictionary) Add(word string) error {
	word = strings.ToLower(word)
	w, err := EncodeWord(d.bdd, word, d.MaxWordLen)
	if err != nil {
		return err
	}
	d.Node = d.bdd.Or(d.Node, w)
	if d.bdd.Errored() {
		return errf(Internal, "adding word %q: %s", word, d.bdd.Error())
	}
	d.words++
	d.chars += len(word)
	return nil
}

// BuildDictionary accumulates words into a fresh Dictionary. Order does not
// affect the result: disjunction is commutative.
func BuildDictionary(b *rudd.BDD, words []string, maxWordLen int) (*Dictionary, error) {
	d := NewDictionary(b, maxWordLen)
	for _, w := range words {
		if err := d.Add(w); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Stats renders the same observational summary as the reference
// implementation's writeSummary: word/character/bit counts and BDD
// node/variable counts, plus a node-per-bit ratio. It has no effect on the
// semantics of the dictionary.
func (d *Dictionary) Stats() string {
	nodeCount := 0
	_ = d.bdd.Allnodes(func(id, level, low, high int) error {
		nodeCount++
		return nil
	}, d.Node)

	totalBytes := d.chars + d.words // includes one NUL terminator per word
	totalBits := 8 * totalBytes
	var ratio float64
	if totalBits > 0 {
		ratio = float64(nodeCount) / float64(totalBits)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d words read.\n", d.words)
	fmt.Fprintf(&sb, "%d characters read.\n", d.chars)
	fmt.Fprintf(&sb, "%d total bits.\n\n", totalBits)
	fmt.Fprintf(&sb, "BDD has %d nodes.\n", nodeCount)
	fmt.Fprintf(&sb, "BDD has %d variables.\n\n", d.bdd.Varnum())
	fmt.Fprintf(&sb, "num nodes / total bits = %f.\n", ratio)
	return sb.String()
}
