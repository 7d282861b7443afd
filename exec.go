package main

import "fmt"

type cmd func(ed *Editor, op operation) error

var cmds map[opKind]cmd

func init() {
	cmds = map[opKind]cmd{
		opAppend: cmdAppend,
		opDelete: cmdDelete,
		opPrint:  cmdPrint,
		opUndo:   cmdUndo,
	}
}

// exec applies a single parsed command against the buffer and the
// history. A failed command leaves both untouched.
func (ed *Editor) exec(op operation) error {
	if cmd, ok := cmds[op.kind]; ok {
		return cmd(ed, op)
	}
	return ErrUnknownCmd
}

func cmdAppend(ed *Editor, op operation) error {
	n := ed.buffer.append(op.text)
	ed.history.push(undoRecord{typ: undoTypeAppend, n: n})
	return nil
}

func cmdDelete(ed *Editor, op operation) error {
	if op.n > ed.buffer.len() {
		return ErrInvalidCount
	}
	if ed.deleted+op.n > maxDeleted {
		return ErrDeleteLimit
	}
	ed.deleted += op.n
	ed.history.push(undoRecord{typ: undoTypeDelete, text: ed.buffer.delete(op.n)})
	return nil
}

func cmdPrint(ed *Editor, op operation) error {
	if op.n < 1 || op.n > ed.buffer.len() {
		return ErrIndexOutOfRange
	}
	fmt.Fprintf(ed.stdout, "%c\n", ed.buffer.char(op.n))
	return nil
}

// cmdUndo reverses the most recent append or delete. Undo itself is
// never recorded, and an empty history makes it a no-op.
func cmdUndo(ed *Editor, _ operation) error {
	r, ok := ed.history.pop()
	if !ok {
		return nil
	}
	switch r.typ {
	case undoTypeAppend:
		ed.buffer.delete(r.n)
	case undoTypeDelete:
		ed.buffer.append(r.text)
	}
	return nil
}
