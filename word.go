package xword

import "github.com/dalzilio/rudd"

// Wildcard is the character that stands for "any non-NUL byte" in a pattern.
const Wildcard = '*'

// EncodeWord returns the BDD over the dictionary region D whose only
// satisfying assignment is the byte sequence of word followed by its NUL
// terminator. Bits above the terminator are left unconstrained.
func EncodeWord(b *rudd.BDD, word string, maxWordLen int) (rudd.Node, error) {
	if len(word) >= maxWordLen {
		return nil, errf(SizeBound, "word %q is %d bytes, max is %d", word, len(word), maxWordLen-1)
	}
	n := b.True()
	for i := 0; i < len(word); i++ {
		n = b.And(n, charLiteral(b, word[i], i))
	}
	n = b.And(n, nulTerminator(b, len(word)))
	if b.Errored() {
		return nil, errf(Internal, "encoding word %q: %s", word, b.Error())
	}
	return n, nil
}

// EncodePattern is like EncodeWord, except a wildcard position is encoded as
// "the byte at this position is non-zero" instead of a fixed byte value. The
// trailing NUL terminator is still forced, exactly as in EncodeWord.
func EncodePattern(b *rudd.BDD, pat string, maxWordLen int) (rudd.Node, error) {
	if len(pat) >= maxWordLen {
		return nil, errf(SizeBound, "pattern %q is %d bytes, max is %d", pat, len(pat), maxWordLen-1)
	}
	n := b.True()
	for i := 0; i < len(pat); i++ {
		if pat[i] == Wildcard {
			n = b.And(n, nonNUL(b, i))
		} else {
			n = b.And(n, charLiteral(b, pat[i], i))
		}
	}
	n = b.And(n, nulTerminator(b, len(pat)))
	if b.Errored() {
		return nil, errf(Internal, "encoding pattern %q: %s", pat, b.Error())
	}
	return n, nil
}

// charLiteral builds the conjunction of the 8 bit literals pinning character
// position i of the dictionary region to the value of byte c.
func charLiteral(b *rudd.BDD, c byte, i int) rudd.Node {
	lit := b.True()
	for bit := 0; bit < 8; bit++ {
		v := dictVar(i, bit)
		if c&(1<<uint(bit)) != 0 {
			lit = b.And(lit, b.Ithvar(v))
		} else {
			lit = b.And(lit, b.NIthvar(v))
		}
	}
	return lit
}

// nulTerminator builds the conjunction forcing the byte at position i of the
// dictionary region to 0x00.
func nulTerminator(b *rudd.BDD, i int) rudd.Node {
	n := b.True()
	for bit := 0; bit < 8; bit++ {
		n = b.And(n, b.NIthvar(dictVar(i, bit)))
	}
	return n
}

// nonNUL builds the disjunction "some bit of the byte at position i is set",
// i.e. the byte is not 0x00.
func nonNUL(b *rudd.BDD, i int) rudd.Node {
	n := b.False()
	for bit := 0; bit < 8; bit++ {
		n = b.Or(n, b.Ithvar(dictVar(i, bit)))
	}
	return n
}
