package main

import (
	"bufio"
	"io"
	"unicode/utf8"
)

const EOF rune = -1

// Append payloads are not bounded by the protocol and can exceed
// bufio's default token size.
const maxLineSize = 4 * 1024 * 1024

// input wraps the protocol stream with a rune cursor over the current
// line.
type input struct {
	*bufio.Scanner
	buf string
	pos int
}

func newInput(r io.Reader) input {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return input{Scanner: s}
}

func (i *input) doInput(s string) { i.buf, i.pos = s, 0 }

func (i *input) eof() bool { return i.pos >= len(i.buf) }

func (i *input) consume() {
	if i.eof() {
		return
	}
	_, n := utf8.DecodeRuneInString(i.buf[i.pos:])
	i.pos += n
}

func (i *input) token() rune {
	if i.eof() {
		return EOF
	}
	tok, _ := utf8.DecodeRuneInString(i.buf[i.pos:])
	return tok
}

// rest returns everything from the cursor to the end of the line and
// consumes it.
func (i *input) rest() string {
	s := i.buf[i.pos:]
	i.pos = len(i.buf)
	return s
}

func (i *input) Scan() bool {
	ok := i.Scanner.Scan()
	i.doInput(i.Scanner.Text())
	return ok
}
