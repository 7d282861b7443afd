package main

// undoType determines how a history entry should be handled,
// undoTypeAppend removes characters and undoTypeDelete restores them.
type undoType int

const (
	undoTypeAppend undoType = iota
	undoTypeDelete
)

// undoRecord holds exactly what is needed to reverse one append or
// delete: the number of characters appended, or the removed text in
// its original order.
type undoRecord struct {
	typ  undoType
	n    int
	text string
}

type history struct {
	records []undoRecord
}

func (h *history) push(r undoRecord) { h.records = append(h.records, r) }

// pop removes and returns the most recent record. The second return
// value is false when there is nothing to undo.
func (h *history) pop() (undoRecord, bool) {
	if len(h.records) < 1 {
		return undoRecord{}, false
	}
	r := h.records[len(h.records)-1]
	h.records = h.records[:len(h.records)-1]
	return r, true
}

func (h *history) depth() int { return len(h.records) }

func (h *history) reset() { h.records = nil }
