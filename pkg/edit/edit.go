// 27 Sep 2026

// Package edit records changes to an alignment so they can be undone
// and redone.
//
// Each change is an Edit: one of a closed set of kinds, carrying what
// it needs to reverse itself. An Edit always works on the underlying
// model, never on a Recorder, so undoing one does not record anything.
// Edits raised during one user action are sealed into a Combined edit
// and handed to a Sink, normally a History.
package edit

import (
	"errors"
	"fmt"
	"slices"

	"github.com/andrew-torda/alnedit/pkg/model"
	"github.com/andrew-torda/alnedit/pkg/tokenset"
)

var ErrInvalidArgument = errors.New("edit: invalid argument")

// Undoable is a reversible transaction.
type Undoable interface {
	Redo() error
	Undo() error
	PresentationName() string
}

// Kind says which change an Edit makes.
type Kind byte

const (
	InsertTokens Kind = iota
	RemoveTokens
	SetTokens
	AddSequence
	RemoveSequence
	RenameSequence
)

func (k Kind) String() string {
	switch k {
	case InsertTokens:
		return "Insert tokens"
	case RemoveTokens:
		return "Remove tokens"
	case SetTokens:
		return "Set tokens"
	case AddSequence:
		return "Add sequence"
	case RemoveSequence:
		return "Remove sequence"
	case RenameSequence:
		return "Rename sequence"
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}

// Edit is one change to one sequence.
type Edit[T comparable] struct {
	kind  Kind
	m     model.Model[T]
	id    string
	begin int
	end   int // RemoveTokens only
	// Inserted, removed or new tokens. For sequence edits, the tokens
	// of the sequence.
	tokens  []T
	old     []T // SetTokens: what was overwritten
	row     int
	name    string
	oldName string
}

func (e *Edit[T]) Kind() Kind         { return e.kind }
func (e *Edit[T]) SequenceID() string { return e.id }
func (e *Edit[T]) Begin() int         { return e.begin }

// Tokens returns a copy of the tokens the edit inserts, removes or sets.
func (e *Edit[T]) Tokens() []T { return slices.Clone(e.tokens) }

func (e *Edit[T]) PresentationName() string { return e.kind.String() }

func (e *Edit[T]) String() string {
	switch e.kind {
	case InsertTokens, SetTokens:
		return fmt.Sprintf("%s: %d at %d of %q", e.kind, len(e.tokens), e.begin, e.id)
	case RemoveTokens:
		return fmt.Sprintf("%s: [%d, %d) of %q", e.kind, e.begin, e.end, e.id)
	case RenameSequence:
		return fmt.Sprintf("%s: %q from %q to %q", e.kind, e.id, e.oldName, e.name)
	}
	return fmt.Sprintf("%s: %q row %d", e.kind, e.id, e.row)
}

func tokensWritable[T comparable](m model.Reader[T]) error {
	if m.Writability().TokensReadOnly() {
		return fmt.Errorf("edit: %w", model.ErrNotWritable)
	}
	return nil
}

func sequencesWritable[T comparable](m model.Reader[T]) error {
	if m.Writability().SequencesReadOnly() {
		return fmt.Errorf("edit: %w", model.ErrNotWritable)
	}
	return nil
}

// knownTokens fails if any of tokens is not in the model's token set.
func knownTokens[T comparable](m model.Reader[T], tokens []T) error {
	set := m.TokenSet()
	for _, t := range tokens {
		if !set.Contains(t) {
			return fmt.Errorf("edit: %w: %s", tokenset.ErrUnknown, set.Repr(t))
		}
	}
	return nil
}

// tokenEdit checks what every token edit needs and returns the length
// of the sequence.
func tokenEdit[T comparable](m model.Reader[T], id string, begin, end int) (int, error) {
	if err := tokensWritable(m); err != nil {
		return 0, err
	}
	n, err := m.Len(id)
	if err != nil {
		return 0, err
	}
	if begin < 0 || begin > end || end > n {
		return 0, fmt.Errorf("%w: [%d, %d) of %q, length %d", model.ErrIndexOutOfRange, begin, end, id, n)
	}
	return n, nil
}

// NewInsertTokens returns an edit that inserts tokens at begin.
func NewInsertTokens[T comparable](m model.Model[T], id string, begin int, tokens []T) (*Edit[T], error) {
	if _, err := tokenEdit(m, id, begin, begin); err != nil {
		return nil, err
	}
	if err := knownTokens(m, tokens); err != nil {
		return nil, err
	}
	return &Edit[T]{kind: InsertTokens, m: m, id: id, begin: begin, tokens: slices.Clone(tokens)}, nil
}

// NewRemoveTokens returns an edit that removes [begin, end). The
// tokens are captured now and again each time the edit is redone.
func NewRemoveTokens[T comparable](m model.Model[T], id string, begin, end int) (*Edit[T], error) {
	if _, err := tokenEdit(m, id, begin, end); err != nil {
		return nil, err
	}
	removed, err := m.Tokens(id, begin, end)
	if err != nil {
		return nil, err
	}
	return &Edit[T]{kind: RemoveTokens, m: m, id: id, begin: begin, end: end, tokens: removed}, nil
}

// NewSetTokens returns an edit that overwrites tokens starting at
// begin, remembering what is there now.
func NewSetTokens[T comparable](m model.Model[T], id string, begin int, tokens []T) (*Edit[T], error) {
	if _, err := tokenEdit(m, id, begin, begin+len(tokens)); err != nil {
		return nil, err
	}
	old, err := m.Tokens(id, begin, begin+len(tokens))
	if err != nil {
		return nil, err
	}
	return NewSetTokensEdit(m, id, begin, old, tokens)
}

// NewSetTokensEdit returns an edit that replaces old with tokens. The
// two must be the same length.
func NewSetTokensEdit[T comparable](m model.Model[T], id string, begin int, old, tokens []T) (*Edit[T], error) {
	if len(old) != len(tokens) {
		return nil, fmt.Errorf("%w: %d old tokens, %d new", ErrInvalidArgument, len(old), len(tokens))
	}
	if _, err := tokenEdit(m, id, begin, begin+len(tokens)); err != nil {
		return nil, err
	}
	if err := knownTokens(m, tokens); err != nil {
		return nil, err
	}
	return &Edit[T]{kind: SetTokens, m: m, id: id, begin: begin,
		tokens: slices.Clone(tokens), old: slices.Clone(old)}, nil
}

// NewAddSequence returns an edit that puts a new sequence at row.
func NewAddSequence[T comparable](m model.Model[T], row int, id, name string, tokens []T) (*Edit[T], error) {
	if err := sequencesWritable(m); err != nil {
		return nil, err
	}
	if _, err := m.SequenceRow(id); err == nil {
		return nil, fmt.Errorf("edit: %w: %q", model.ErrDuplicateID, id)
	}
	if n := m.SequenceCount(); row < 0 || row > n {
		return nil, fmt.Errorf("%w: row %d of %d", model.ErrIndexOutOfRange, row, n)
	}
	if err := knownTokens(m, tokens); err != nil {
		return nil, err
	}
	return addedSequence(m, row, id, name, tokens), nil
}

// addedSequence describes a sequence that is already in the model.
func addedSequence[T comparable](m model.Model[T], row int, id, name string, tokens []T) *Edit[T] {
	return &Edit[T]{kind: AddSequence, m: m, id: id, row: row, name: name, tokens: slices.Clone(tokens)}
}

// NewRemoveSequence returns an edit that removes a sequence, keeping
// its row, name and tokens for undo.
func NewRemoveSequence[T comparable](m model.Model[T], id string) (*Edit[T], error) {
	if err := sequencesWritable(m); err != nil {
		return nil, err
	}
	e := &Edit[T]{kind: RemoveSequence, m: m, id: id}
	if err := e.capture(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewRenameSequence returns an edit that renames a sequence.
func NewRenameSequence[T comparable](m model.Model[T], id, name string) (*Edit[T], error) {
	if err := sequencesWritable(m); err != nil {
		return nil, err
	}
	old, err := m.SequenceName(id)
	if err != nil {
		return nil, err
	}
	return &Edit[T]{kind: RenameSequence, m: m, id: id, name: name, oldName: old}, nil
}

// capture reads the current state that undo will need.
func (e *Edit[T]) capture() error {
	var err error
	switch e.kind {
	case RemoveTokens:
		e.tokens, err = e.m.Tokens(e.id, e.begin, e.end)
	case SetTokens:
		e.old, err = e.m.Tokens(e.id, e.begin, e.begin+len(e.tokens))
	case RemoveSequence:
		if e.row, err = e.m.SequenceRow(e.id); err != nil {
			return err
		}
		if e.name, err = e.m.SequenceName(e.id); err != nil {
			return err
		}
		var n int
		if n, err = e.m.Len(e.id); err != nil {
			return err
		}
		e.tokens, err = e.m.Tokens(e.id, 0, n)
	case RenameSequence:
		e.oldName, err = e.m.SequenceName(e.id)
	}
	return err
}

// Redo makes the change.
func (e *Edit[T]) Redo() error {
	if err := e.capture(); err != nil {
		return err
	}
	switch e.kind {
	case InsertTokens:
		return e.m.InsertTokensAt(e.id, e.begin, e.tokens...)
	case RemoveTokens:
		return e.m.RemoveTokensAt(e.id, e.begin, e.end)
	case SetTokens:
		return e.m.SetTokensAt(e.id, e.begin, e.tokens...)
	case AddSequence:
		return e.m.InsertSequence(e.row, e.id, e.name, e.tokens)
	case RemoveSequence:
		return e.m.RemoveSequence(e.id)
	case RenameSequence:
		return e.m.RenameSequence(e.id, e.name)
	}
	panic(fmt.Sprintf("edit: unknown kind %d", e.kind))
}

// Undo reverses the change.
func (e *Edit[T]) Undo() error {
	switch e.kind {
	case InsertTokens:
		return e.m.RemoveTokensAt(e.id, e.begin, e.begin+len(e.tokens))
	case RemoveTokens:
		return e.m.InsertTokensAt(e.id, e.begin, e.tokens...)
	case SetTokens:
		return e.m.SetTokensAt(e.id, e.begin, e.old...)
	case AddSequence:
		n, err := e.m.Len(e.id)
		if err != nil {
			return err
		}
		if e.tokens, err = e.m.Tokens(e.id, 0, n); err != nil {
			return err
		}
		return e.m.RemoveSequence(e.id)
	case RemoveSequence:
		return e.m.InsertSequence(e.row, e.id, e.name, e.tokens)
	case RenameSequence:
		return e.m.RenameSequence(e.id, e.oldName)
	}
	panic(fmt.Sprintf("edit: unknown kind %d", e.kind))
}
