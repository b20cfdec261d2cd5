package entity

import "go.lsp.dev/protocol"

// DefaultHistoryLimit bounds how many edits a session retains for undo.
const DefaultHistoryLimit = 100

// HistoryEntry pairs an applied edit with its exact inverse so it can be undone and redone.
type HistoryEntry struct {
	// Forward is the edit as it was applied to the document.
	Forward protocol.TextEdit
	// Inverse restores the text the forward edit replaced, at its post-edit range.
	Inverse protocol.TextEdit
	// Version is the document version produced by applying the forward edit.
	Version int32
}

// EditHistory is a bounded undo stack with a cursor separating undoable
// entries from redoable ones. Appending after an undo discards the redo branch.
type EditHistory struct {
	entries []HistoryEntry
	cursor  int
	limit   int
}

// NewEditHistory returns a history bounded to the given number of entries.
// A non-positive limit falls back to DefaultHistoryLimit.
func NewEditHistory(limit int) *EditHistory {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &EditHistory{limit: limit}
}

// Append records an applied edit. Any entries past the cursor are discarded,
// and the oldest entry is dropped once the limit is reached.
func (h *EditHistory) Append(entry HistoryEntry) {
	h.entries = append(h.entries[:h.cursor], entry)
	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
	}
	h.cursor = len(h.entries)
}

// Undo steps the cursor back and returns the entry to revert.
// ok is false when there is nothing left to undo.
func (h *EditHistory) Undo() (entry HistoryEntry, ok bool) {
	if h.cursor == 0 {
		return HistoryEntry{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Redo steps the cursor forward and returns the entry to replay.
// ok is false when there is nothing to redo.
func (h *EditHistory) Redo() (entry HistoryEntry, ok bool) {
	if h.cursor == len(h.entries) {
		return HistoryEntry{}, false
	}
	entry = h.entries[h.cursor]
	h.cursor++
	return entry, true
}

// Len returns the number of retained entries.
func (h *EditHistory) Len() int {
	return len(h.entries)
}

// UndoDepth returns how many entries can currently be undone.
func (h *EditHistory) UndoDepth() int {
	return h.cursor
}

// RedoDepth returns how many entries can currently be redone.
func (h *EditHistory) RedoDepth() int {
	return len(h.entries) - h.cursor
}
