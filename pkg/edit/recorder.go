// 30 Sep 2026

package edit

import (
	"log"

	"github.com/andrew-torda/alnedit/pkg/model"
)

// defaultName is used for a sealed batch of several edits when the
// caller gives no name.
const defaultName = "Edit"

// Recorder is a model that records every change it makes. Reads go
// straight to the underlying model. Each write becomes an Edit, which
// is run against the underlying model and then added with AddSubedit.
//
// Between StartEdit and EndEdit, edits are collected and sealed into
// one Combined edit by EndEdit. Outside a batch, each edit goes to the
// sink on its own.
type Recorder[T comparable] struct {
	model.Model[T]
	sink      Sink
	open      []Undoable
	recording bool
	logger    *log.Logger
}

// NewRecorder wraps m. Sealed edits go to sink.
func NewRecorder[T comparable](m model.Model[T], sink Sink) *Recorder[T] {
	return &Recorder[T]{Model: m, sink: sink}
}

// SetLogger makes the recorder log each batch it seals. nil turns
// logging off.
func (r *Recorder[T]) SetLogger(l *log.Logger) { r.logger = l }

// Underlying returns the model that edits are applied to.
func (r *Recorder[T]) Underlying() model.Model[T] { return r.Model }

// Recording is true between StartEdit and EndEdit.
func (r *Recorder[T]) Recording() bool { return r.recording }

// StartEdit seals anything still open and starts a new batch.
func (r *Recorder[T]) StartEdit() {
	r.EndEdit("")
	r.recording = true
}

// EndEdit seals the open batch, if it holds anything, and passes it to
// the sink.
func (r *Recorder[T]) EndEdit(name string) {
	if len(r.open) > 0 {
		if name == "" {
			name = defaultName
			if len(r.open) == 1 {
				name = r.open[0].PresentationName()
			}
		}
		r.sink.AddEdit(NewCombined(name, r.open...))
		if r.logger != nil {
			r.logger.Printf("sealed %q with %d edits", name, len(r.open))
		}
	}
	r.open = nil
	r.recording = false
}

// AddSubedit adds an edit that has already been carried out.
func (r *Recorder[T]) AddSubedit(u Undoable) {
	if r.recording {
		r.open = append(r.open, u)
		return
	}
	r.sink.AddEdit(NewCombined(u.PresentationName(), u))
}

// do runs a freshly built edit and records it.
func (r *Recorder[T]) do(e *Edit[T], err error) error {
	if err != nil {
		return err
	}
	if err := e.Redo(); err != nil {
		return err
	}
	r.AddSubedit(e)
	return nil
}

// Empty changes go to the model so that they fail or do nothing the
// same way, but are not recorded.

func (r *Recorder[T]) InsertTokensAt(id string, begin int, tokens ...T) error {
	if len(tokens) == 0 {
		return r.Model.InsertTokensAt(id, begin)
	}
	return r.do(NewInsertTokens(r.Model, id, begin, tokens))
}

func (r *Recorder[T]) RemoveTokensAt(id string, begin, end int) error {
	if begin == end {
		return r.Model.RemoveTokensAt(id, begin, end)
	}
	return r.do(NewRemoveTokens(r.Model, id, begin, end))
}

func (r *Recorder[T]) SetTokensAt(id string, begin int, tokens ...T) error {
	if len(tokens) == 0 {
		return r.Model.SetTokensAt(id, begin)
	}
	return r.do(NewSetTokens(r.Model, id, begin, tokens))
}

func (r *Recorder[T]) AppendTokens(id string, tokens ...T) error {
	n, err := r.Model.Len(id)
	if err != nil {
		return err
	}
	return r.InsertTokensAt(id, n, tokens...)
}

func (r *Recorder[T]) AddSequence(name string) (string, error) {
	id, err := r.Model.AddSequence(name)
	if err != nil {
		return "", err
	}
	row, err := r.Model.SequenceRow(id)
	if err != nil {
		return "", err
	}
	r.AddSubedit(addedSequence(r.Model, row, id, name, nil))
	return id, nil
}

func (r *Recorder[T]) InsertSequence(row int, id, name string, tokens []T) error {
	return r.do(NewAddSequence(r.Model, row, id, name, tokens))
}

func (r *Recorder[T]) RemoveSequence(id string) error {
	return r.do(NewRemoveSequence(r.Model, id))
}

func (r *Recorder[T]) RenameSequence(id, name string) error {
	return r.do(NewRenameSequence(r.Model, id, name))
}
