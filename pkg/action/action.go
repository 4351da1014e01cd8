// 2 Oct 2026

// Package action turns the keystrokes and menu actions of an alignment
// editor into changes of the alignment. Every action works on the rows
// under the cursor, top to bottom, and reads the current selection.
//
// Rows may have different lengths. Nothing is ever read or removed
// past the end of a row, and rows are padded with gaps where a token
// has to be written beyond their end.
//
// An action on a read only alignment reports that nothing changed. It
// does not return an error, since that is an ordinary outcome for the
// user. Errors are kept for mistakes by the caller, like a cursor on a
// sequence that has gone.
package action

import (
	"errors"
	"fmt"

	"github.com/andrew-torda/alnedit/pkg/model"
	"github.com/andrew-torda/alnedit/pkg/selection"
	"github.com/andrew-torda/alnedit/pkg/tokenset"
)

// Batcher is implemented by models that group changes into undo
// steps. edit.Recorder is one.
type Batcher interface {
	StartEdit()
	EndEdit(name string)
}

// Presentation names of the undo steps.
const (
	NameDelete    = "Delete"
	NameInsert    = "Insert"
	NameOverwrite = "Overwrite"
)

// Provider carries out editing actions on a model using a selection.
type Provider[T comparable] struct {
	m   model.Model[T]
	sel *selection.Selection
}

// New returns a provider for m and sel. If m is a Batcher, each action
// becomes one undo step.
func New[T comparable](m model.Model[T], sel *selection.Selection) *Provider[T] {
	return &Provider[T]{m: m, sel: sel}
}

// Selection returns the selection the provider works from.
func (p *Provider[T]) Selection() *selection.Selection { return p.sel }

// batch runs f as one undo step, if the model can do that, and turns a
// refused write into "nothing changed".
func (p *Provider[T]) batch(name string, f func() (bool, error)) (bool, error) {
	if p.m.Writability().TokensReadOnly() {
		return false, nil
	}
	if b, ok := p.m.(Batcher); ok {
		b.StartEdit()
		defer b.EndEdit(name)
	}
	changed, err := f()
	if errors.Is(err, model.ErrNotWritable) {
		return false, nil
	}
	return changed, err
}

// known fails if token cannot be written to the model. It is checked
// before any row is padded or cut.
func (p *Provider[T]) known(token T) error {
	if set := p.m.TokenSet(); !set.Contains(token) {
		return fmt.Errorf("%w: %s", tokenset.ErrUnknown, set.Repr(token))
	}
	return nil
}

// rows calls f for each sequence under the cursor. Rows past the last
// sequence are skipped.
func (p *Provider[T]) rows(f func(id string) error) error {
	first, end := p.sel.Rows()
	if n := p.m.SequenceCount(); end > n {
		end = n
	}
	for row := first; row < end; row++ {
		id, err := p.m.SequenceIDAt(row)
		if err != nil {
			return err
		}
		if err := f(id); err != nil {
			return err
		}
	}
	return nil
}

// removeClipped removes [begin, end) from a sequence, stopping at its
// end. It reports whether anything went.
func (p *Provider[T]) removeClipped(id string, begin, end int) (bool, error) {
	n, err := p.m.Len(id)
	if err != nil {
		return false, err
	}
	if end > n {
		end = n
	}
	if begin >= end {
		return false, nil
	}
	return true, p.m.RemoveTokensAt(id, begin, end)
}

// ElongateSequence pads a sequence with gaps up to length and returns
// the number of gaps added.
func (p *Provider[T]) ElongateSequence(id string, length int) (int, error) {
	n, err := p.m.Len(id)
	if err != nil {
		return 0, err
	}
	if n >= length {
		return 0, nil
	}
	gaps := make([]T, length-n)
	gap := p.m.TokenSet().Gap()
	for i := range gaps {
		gaps[i] = gap
	}
	return len(gaps), p.m.AppendTokens(id, gaps...)
}

func (p *Provider[T]) deleteSelection() (bool, error) {
	if p.sel.IsEmpty() {
		return false, nil
	}
	first, end := p.sel.FirstColumn, p.sel.EndColumn()
	changed := false
	err := p.rows(func(id string) error {
		c, err := p.removeClipped(id, first, end)
		changed = changed || c
		return err
	})
	if err != nil {
		return changed, err
	}
	return changed, p.sel.SetCursorColumn(first)
}

// DeleteSelection removes the selected columns from every row under
// the cursor and puts the cursor where the selection started.
func (p *Provider[T]) DeleteSelection() (bool, error) {
	return p.batch(NameDelete, p.deleteSelection)
}

// DeleteForward removes the token at the cursor from every row, or the
// selection if there is one.
func (p *Provider[T]) DeleteForward() (bool, error) {
	return p.batch(NameDelete, func() (bool, error) {
		if !p.sel.IsEmpty() {
			return p.deleteSelection()
		}
		col := p.sel.CursorColumn
		changed := false
		err := p.rows(func(id string) error {
			c, err := p.removeClipped(id, col, col+1)
			changed = changed || c
			return err
		})
		return changed, err
	})
}

// DeleteBackwards removes the token left of the cursor from every row
// and moves the cursor back one column, or removes the selection if
// there is one.
func (p *Provider[T]) DeleteBackwards() (bool, error) {
	return p.batch(NameDelete, func() (bool, error) {
		if !p.sel.IsEmpty() {
			return p.deleteSelection()
		}
		col := p.sel.CursorColumn
		if col == 0 {
			return false, nil
		}
		changed := false
		err := p.rows(func(id string) error {
			c, err := p.removeClipped(id, col-1, col)
			changed = changed || c
			return err
		})
		if err != nil {
			return changed, err
		}
		return changed, p.sel.SetCursorColumn(col - 1)
	})
}

// InsertToken inserts token at the first selected column, once for
// each selected column or once if nothing is selected. Short rows are
// padded with gaps first. The cursor ends up after the inserted tokens.
func (p *Provider[T]) InsertToken(token T) (bool, error) {
	if err := p.known(token); err != nil {
		return false, err
	}
	return p.batch(NameInsert, func() (bool, error) {
		first := p.sel.FirstColumn
		if p.sel.IsEmpty() {
			first = p.sel.CursorColumn
		}
		n := p.sel.Width
		if n < 1 {
			n = 1
		}
		tokens := make([]T, n)
		for i := range tokens {
			tokens[i] = token
		}
		changed := false
		err := p.rows(func(id string) error {
			if _, err := p.ElongateSequence(id, first); err != nil {
				return err
			}
			if err := p.m.InsertTokensAt(id, first, tokens...); err != nil {
				return err
			}
			changed = true
			return nil
		})
		if err != nil {
			return changed, err
		}
		return changed, p.sel.SetCursorColumn(first + n)
	})
}

// OverwriteWithToken replaces the first selected column with token.
// Any further selected columns are removed. The cursor ends up after
// the new token.
func (p *Provider[T]) OverwriteWithToken(token T) (bool, error) {
	if err := p.known(token); err != nil {
		return false, err
	}
	return p.batch(NameOverwrite, func() (bool, error) {
		first := p.sel.FirstColumn
		if p.sel.IsEmpty() {
			first = p.sel.CursorColumn
		}
		end := p.sel.EndColumn()
		changed := false
		err := p.rows(func(id string) error {
			if p.sel.Width > 1 {
				if _, err := p.removeClipped(id, first+1, end); err != nil {
					return err
				}
			}
			if _, err := p.ElongateSequence(id, first+1); err != nil {
				return err
			}
			if err := p.m.SetTokensAt(id, first, token); err != nil {
				return err
			}
			changed = true
			return nil
		})
		if err != nil {
			return changed, err
		}
		return changed, p.sel.SetCursorColumn(first + 1)
	})
}
