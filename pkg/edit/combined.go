// 28 Sep 2026

package edit

import (
	"errors"
	"fmt"
	"slices"
)

// Combined is a sealed list of edits that are undone and redone as
// one. Redo works through the list in order, Undo in reverse order,
// since later edits may depend on positions set up by earlier ones.
type Combined struct {
	name  string
	edits []Undoable
}

// NewCombined seals edits under one name. The list is copied, so the
// caller may reuse its slice.
func NewCombined(name string, edits ...Undoable) *Combined {
	return &Combined{name: name, edits: slices.Clone(edits)}
}

func (c *Combined) PresentationName() string { return c.name }

// Len returns the number of edits.
func (c *Combined) Len() int { return len(c.edits) }

// Edits returns a copy of the list.
func (c *Combined) Edits() []Undoable { return slices.Clone(c.edits) }

// Redo redoes every edit. If one fails, the ones already redone are
// undone again and the error is returned, joined with any errors from
// that rollback.
func (c *Combined) Redo() error {
	for i, e := range c.edits {
		if err := e.Redo(); err != nil {
			errs := []error{fmt.Errorf("redo %q step %d of %d: %w", c.name, i+1, len(c.edits), err)}
			for j := i - 1; j >= 0; j-- {
				if err := c.edits[j].Undo(); err != nil {
					errs = append(errs, fmt.Errorf("rolling back step %d: %w", j+1, err))
				}
			}
			return errors.Join(errs...)
		}
	}
	return nil
}

// Undo undoes every edit, last first. If one fails, the ones already
// undone are redone and the error is returned, joined with any errors
// from that rollback.
func (c *Combined) Undo() error {
	for i := len(c.edits) - 1; i >= 0; i-- {
		if err := c.edits[i].Undo(); err != nil {
			errs := []error{fmt.Errorf("undo %q step %d of %d: %w", c.name, i+1, len(c.edits), err)}
			for j := i + 1; j < len(c.edits); j++ {
				if err := c.edits[j].Redo(); err != nil {
					errs = append(errs, fmt.Errorf("rolling back step %d: %w", j+1, err))
				}
			}
			return errors.Join(errs...)
		}
	}
	return nil
}
