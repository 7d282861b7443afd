package main

import (
	"strconv"
	"unicode"
)

// opKind enumerates the four commands of the protocol.
type opKind int

const (
	opAppend opKind = iota + 1
	opDelete
	opPrint
	opUndo
)

// operation is one parsed command. text carries the append payload, n
// the delete count or the 1-based print index.
type operation struct {
	kind opKind
	text string
	n    int
}

// parseOp parses the current input line into an operation. The leading
// tag rune selects the command: append keeps everything after one
// separating space verbatim, delete and print accept an integer padded
// by any amount of whitespace, and undo ignores the rest of the line.
func (ed *Editor) parseOp() (operation, error) {
	ed.skipWhitespace()
	switch ed.token() {
	case '1':
		ed.consume()
		if ed.token() == ' ' {
			ed.consume()
		}
		return operation{kind: opAppend, text: ed.rest()}, nil
	case '2', '3':
		kind := opDelete
		if ed.token() == '3' {
			kind = opPrint
		}
		ed.consume()
		n, err := ed.scanNumber()
		if err != nil {
			return operation{}, err
		}
		return operation{kind: kind, n: n}, nil
	case '4':
		ed.consume()
		return operation{kind: opUndo}, nil
	}
	return operation{}, ErrUnknownCmd
}

// scanNumber scans the remainder of the line for a single non-negative
// integer surrounded by any amount of whitespace.
func (ed *Editor) scanNumber() (int, error) {
	ed.skipWhitespace()
	var s string
	for unicode.IsDigit(ed.token()) {
		s += string(ed.token())
		ed.consume()
	}
	ed.skipWhitespace()
	if !ed.input.eof() {
		return 0, ErrInvalidNumber
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return n, nil
}

func (ed *Editor) skipWhitespace() {
	for ed.token() == ' ' || ed.token() == '\t' {
		ed.consume()
	}
}
