// Command xword builds a dictionary BDD from a word list or a serialized
// image, optionally matches a wildcard pattern against it, and optionally
// solves a crossword given as a raw clue list or an ASCII diagram.
package main

func main() {
	Execute()
}
