package main

// buffer is the character sequence under edit. Commands only ever
// touch its tail, so a flat rune slice is enough.
type buffer struct {
	runes []rune
}

// append concatenates s onto the end of the buffer and returns the
// number of characters added.
func (b *buffer) append(s string) int {
	r := []rune(s)
	b.runes = append(b.runes, r...)
	return len(r)
}

// delete removes the last n characters and returns them in their
// original left to right order. The caller validates n.
func (b *buffer) delete(n int) string {
	cut := len(b.runes) - n
	s := string(b.runes[cut:])
	b.runes = b.runes[:cut]
	return s
}

// char returns the character at the 1-based index i. The caller
// validates i.
func (b *buffer) char(i int) rune { return b.runes[i-1] }

func (b *buffer) len() int { return len(b.runes) }

func (b *buffer) String() string { return string(b.runes) }
