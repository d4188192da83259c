/*
Package xword implements a symbolic crossword solver on top of a Binary
Decision Diagram (BDD). A dictionary — a finite language over 8-bit
characters — is represented as a single Boolean function; a crossword is a
conjunction of per-clue constraints sharing grid-cell variables, and
solutions are the satisfying assignments of that conjunction.

Variable layout

Every BDD variable used by this package belongs to exactly one of three
disjoint regions (see layout.go): the dictionary region D (one byte per
character position, reused across every clue during encoding), the
clue-terminator region T (one private NUL-terminator byte per clue), and
the grid region G (one byte per crossword cell). A word or pattern is
first encoded over D alone; encoding a crossword renames each clue's match
onto its slice of G plus its own slice of T, existentially abstracting
whatever of D it no longer needs, then conjoins all the clues. Because
clues that cross share the same grid cell variables, the conjunction
enforces consistency between intersecting words for free.

BDD engine

The BDD engine itself — github.com/dalzilio/rudd — is an external
collaborator. It tracks reference counts on the Node values it returns
using runtime.SetFinalizer, so this package never derefs a Node by hand;
intermediate nodes are reclaimed by the Go garbage collector as soon as
they go out of scope.
*/
package xword
