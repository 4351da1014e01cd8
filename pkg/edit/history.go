// 28 Sep 2026

package edit

import (
	"errors"
)

var (
	ErrNothingToUndo = errors.New("edit: nothing to undo")
	ErrNothingToRedo = errors.New("edit: nothing to redo")
)

// Sink takes sealed edits. It is the append only end of an undo stack.
type Sink interface {
	AddEdit(u Undoable)
}

// History is an undo stack with a redo branch. Adding an edit throws
// the redo branch away. With a positive limit, the oldest edits are
// dropped once there are more than limit of them.
type History struct {
	done   []Undoable // stack of edits to undo
	undone []Undoable // stack of edits to redo
	limit  int
}

// NewHistory returns an empty history. A limit of zero or less means
// no limit.
func NewHistory(limit int) *History { return &History{limit: limit} }

func (h *History) AddEdit(u Undoable) {
	h.done = append(h.done, u)
	h.undone = nil
	if h.limit > 0 && len(h.done) > h.limit {
		h.done = append(h.done[:0], h.done[len(h.done)-h.limit:]...)
	}
}

func (h *History) CanUndo() bool { return len(h.done) > 0 }
func (h *History) CanRedo() bool { return len(h.undone) > 0 }

// Len returns the number of edits that can be undone.
func (h *History) Len() int { return len(h.done) }

// UndoName is the presentation name of the next edit to undo.
func (h *History) UndoName() string {
	if !h.CanUndo() {
		return ""
	}
	return h.done[len(h.done)-1].PresentationName()
}

// RedoName is the presentation name of the next edit to redo.
func (h *History) RedoName() string {
	if !h.CanRedo() {
		return ""
	}
	return h.undone[len(h.undone)-1].PresentationName()
}

// Undo undoes the last edit. An edit that fails to undo stays where it
// was.
func (h *History) Undo() error {
	if !h.CanUndo() {
		return ErrNothingToUndo
	}
	last := len(h.done) - 1
	u := h.done[last]
	if err := u.Undo(); err != nil {
		return err
	}
	h.done = h.done[:last]
	h.undone = append(h.undone, u)
	return nil
}

// Redo redoes the last undone edit.
func (h *History) Redo() error {
	if !h.CanRedo() {
		return ErrNothingToRedo
	}
	last := len(h.undone) - 1
	u := h.undone[last]
	if err := u.Redo(); err != nil {
		return err
	}
	h.undone = h.undone[:last]
	h.done = append(h.done, u)
	return nil
}

// Clear forgets everything.
func (h *History) Clear() {
	h.done, h.undone = nil, nil
}
