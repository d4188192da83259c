package xword

import (
	"bufio"
	"io"
)

// ReadWords scans r for whitespace-separated words, one token per dictionary
// entry, mirroring the reference loadWords reader.
func ReadWords(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errf(IOError, "reading word list: %s", err)
	}
	return words, nil
}
