// Package store persists a dictionary BDD to disk and reloads it, so that
// "xword --ob" and "xword --ib" can skip re-reading and re-encoding a large
// word list on every run.
package store

import (
	"encoding/gob"
	"os"

	"github.com/dalzilio/rudd"
)

// record is one BDD node: its id, the level (variable index) it branches on,
// and the ids of its low and high successors. The constant nodes False and
// True always have id 0 and 1 and never appear in the Records slice.
type record struct {
	ID    int
	Level int
	Low   int
	High  int
}

// image is the on-disk representation of a dictionary BDD.
type image struct {
	Varnum  int
	RootID  int
	Records []record
}

// Save writes the BDD rooted at root to path. b must be the manager root was
// built against.
func Save(path string, b *rudd.BDD, root rudd.Node) error {
	var recs []record
	err := b.Allnodes(func(id, level, low, high int) error {
		recs = append(recs, record{ID: id, Level: level, Low: low, High: high})
		return nil
	}, root)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img := image{Varnum: b.Varnum(), RootID: int(*root), Records: recs}
	return gob.NewEncoder(f).Encode(&img)
}

// Load reads a BDD image from path and rebuilds it against b, growing b's
// variable count if the image needs more variables than b currently has.
func Load(path string, b *rudd.BDD) (rudd.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var img image
	if err := gob.NewDecoder(f).Decode(&img); err != nil {
		return nil, err
	}
	if img.Varnum > b.Varnum() {
		if err := b.SetVarnum(img.Varnum); err != nil {
			return nil, err
		}
	}

	byID := make(map[int]record, len(img.Records))
	for _, r := range img.Records {
		byID[r.ID] = r
	}
	memo := make(map[int]rudd.Node, len(img.Records))
	return rebuild(b, img.RootID, byID, memo), nil
}

// rebuild reconstructs the node with the given id bottom-up, regardless of
// the order Records was written in, since low/high are resolved recursively
// before the node itself is built.
func rebuild(b *rudd.BDD, id int, byID map[int]record, memo map[int]rudd.Node) rudd.Node {
	switch id {
	case 0:
		return b.False()
	case 1:
		return b.True()
	}
	if n, ok := memo[id]; ok {
		return n
	}
	r := byID[id]
	lo := rebuild(b, r.Low, byID, memo)
	hi := rebuild(b, r.High, byID, memo)
	n := b.Ite(b.Ithvar(r.Level), hi, lo)
	memo[id] = n
	return n
}
