package main

import (
	"bufio"
	"fmt"
	"strconv"
)

// tokenizer pulls whitespace-delimited tokens across lines, matching the
// CLI's stdin grammar: the input is a stream of integers and reals, not
// necessarily one per line.
type tokenizer struct {
	sc *bufio.Scanner
}

func newTokenizer(sc *bufio.Scanner) *tokenizer {
	sc.Split(bufio.ScanWords)

	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}

		return "", fmt.Errorf("unexpected end of input")
	}

	return t.sc.Text(), nil
}

func (t *tokenizer) int() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(tok)
}

func (t *tokenizer) float() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(tok, 64)
}
