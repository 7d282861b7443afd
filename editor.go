package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrUnknownCmd      = errors.New("unknown command")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrInvalidCount    = errors.New("delete count exceeds buffer size")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnexpectedEOF   = errors.New("unexpected end-of-file")
	ErrTooManyCmds     = errors.New("too many commands")
	ErrDeleteLimit     = errors.New("delete limit exceeded")
	ErrInterrupt       = errors.New("interrupt")
)

// maxOps caps the number of commands a single run will accept and
// maxDeleted caps the total number of characters deleted across the
// whole run.
const (
	maxOps     = 1_000_000
	maxDeleted = 2 * maxOps
)

type Editor struct {
	buffer
	history
	input

	deleted   int   // characters deleted so far
	lc        int   // current protocol line
	silent    bool  // suppress the final buffer dump
	interrupt bool  // stop before the next command
	err       error // last failed command

	sigch chan os.Signal

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type Option func(*Editor)

func WithStdin(stdin io.Reader) Option {
	return func(ed *Editor) {
		ed.stdin = stdin
		ed.input = newInput(stdin)
	}
}

func WithStdout(stdout io.Writer) Option {
	return func(ed *Editor) { ed.stdout = stdout }
}

func WithStderr(stderr io.Writer) Option {
	return func(ed *Editor) { ed.stderr = stderr }
}

func WithSilent(t bool) Option {
	return func(ed *Editor) { ed.silent = t }
}

// WithText seeds the buffer so a run can start from existing contents
// instead of an empty one.
func WithText(s string) Option {
	return func(ed *Editor) { ed.buffer.append(s) }
}

func NewEditor(opts ...Option) *Editor {
	ed := &Editor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		sigch:  make(chan os.Signal, 1),
		lc:     1,
	}
	ed.input = newInput(ed.stdin)
	for _, opt := range opts {
		opt(ed)
	}
	go ed.handleSignals()
	return ed
}

func (ed *Editor) errorln(err error) {
	fmt.Fprintf(ed.stderr, "line %d: %s\n", ed.lc, err)
}

// scanCount reads the leading command count line.
func (ed *Editor) scanCount() (int, error) {
	if !ed.input.Scan() {
		return 0, ErrUnexpectedEOF
	}
	n, err := ed.scanNumber()
	if err != nil {
		return 0, err
	}
	if n > maxOps {
		return 0, ErrTooManyCmds
	}
	return n, nil
}

// run consumes and executes one command line.
func (ed *Editor) run() error {
	if ed.interrupt {
		return ErrInterrupt
	}
	if !ed.input.Scan() {
		return ErrUnexpectedEOF
	}
	ed.lc++
	op, err := ed.parseOp()
	if err != nil {
		return err
	}
	return ed.exec(op)
}

// Run drives a whole session: the command count, that many command
// lines, and the final buffer dump. A failed command is reported on
// ed.stderr and the run continues with the remaining commands; a
// truncated or interrupted stream aborts without the final dump. The
// returned error is the last failure, if any.
func (ed *Editor) Run() error {
	n, err := ed.scanCount()
	if err != nil {
		ed.errorln(err)
		return err
	}
	for i := 0; i < n; i++ {
		err := ed.run()
		if err == nil {
			continue
		}
		ed.errorln(err)
		ed.err = err
		if errors.Is(err, ErrUnexpectedEOF) || errors.Is(err, ErrInterrupt) {
			return err
		}
	}
	if !ed.silent {
		fmt.Fprintln(ed.stdout, ed.buffer.String())
	}
	return ed.err
}

// Process applies an already parsed command sequence in order, writing
// print output to ed.stdout. Failed commands are reported on ed.stderr
// and processing continues; the last failure is returned. The final
// buffer is available through String.
func (ed *Editor) Process(ops []operation) error {
	for _, op := range ops {
		if err := ed.exec(op); err != nil {
			ed.errorln(err)
			ed.err = err
		}
	}
	return ed.err
}
