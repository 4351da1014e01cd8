// 18 Sep 2026

// Package model holds the alignment data model: a set of sequences,
// each with a unique ID, a display name and a row of tokens. Rows may
// have different lengths until they are padded with gaps.
//
// Every change to a model is reported to its listeners as an Event,
// synchronously, before the changing call returns. Listeners must not
// change the model themselves. If they try, the change fails with
// ErrReentrant and the model is left as it was.
package model

import (
	"errors"
	"fmt"

	"github.com/andrew-torda/alnedit/pkg/tokenset"
)

var (
	ErrNotWritable     = errors.New("model: alignment is not writable")
	ErrNoSequence      = errors.New("model: no such sequence")
	ErrIndexOutOfRange = errors.New("model: index out of range")
	ErrDuplicateID     = errors.New("model: duplicate sequence ID")
	ErrReentrant       = errors.New("model: alignment changed from inside a listener")
)

// Writability says which parts of an alignment may be changed.
type Writability byte

const (
	Writable      Writability = iota // tokens and sequences
	TokensOnly                       // tokens may change, the set of sequences may not
	SequencesOnly                    // sequences may be added, removed and renamed
	ReadOnly
)

// TokensReadOnly is true if tokens may not be inserted, removed or set.
func (w Writability) TokensReadOnly() bool { return w == SequencesOnly || w == ReadOnly }

// SequencesReadOnly is true if sequences may not be added, removed or
// renamed.
func (w Writability) SequencesReadOnly() bool { return w == TokensOnly || w == ReadOnly }

func (w Writability) String() string {
	switch w {
	case Writable:
		return "writable"
	case TokensOnly:
		return "tokens only"
	case SequencesOnly:
		return "sequences only"
	case ReadOnly:
		return "read only"
	}
	return fmt.Sprintf("Writability(%d)", byte(w))
}

// Reader is the read side of an alignment.
type Reader[T comparable] interface {
	TokenSet() *tokenset.Set[T]
	Writability() Writability
	SequenceIDs() []string
	SequenceCount() int
	SequenceIDAt(row int) (string, error)
	SequenceRow(id string) (int, error)
	SequenceName(id string) (string, error)
	Len(id string) (int, error)
	MaxLen() int
	TokenAt(id string, i int) (T, error)
	Tokens(id string, begin, end int) ([]T, error)
	Subscribe(l Listener[T]) (unsubscribe func())
}

// Model is an alignment that can be changed. Token indices are column
// positions. Ranges are half open, [begin, end).
//
// Every write fails with an error matching ErrNotWritable when the
// relevant part of the alignment is read only.
type Model[T comparable] interface {
	Reader[T]

	// InsertTokensAt shifts the tokens at and after begin to the right.
	InsertTokensAt(id string, begin int, tokens ...T) error
	// RemoveTokensAt removes [begin, end). begin == end does nothing.
	RemoveTokensAt(id string, begin, end int) error
	// SetTokensAt overwrites tokens without changing the length.
	SetTokensAt(id string, begin int, tokens ...T) error
	// AppendTokens inserts at the current end of the sequence.
	AppendTokens(id string, tokens ...T) error

	// AddSequence appends an empty sequence and returns its new ID.
	AddSequence(name string) (string, error)
	// InsertSequence puts a sequence with a caller chosen ID at row.
	InsertSequence(row int, id, name string, tokens []T) error
	RemoveSequence(id string) error
	RenameSequence(id, name string) error
}

// ChangeType says what happened in an Event.
type ChangeType byte

const (
	TokensInserted ChangeType = iota
	TokensRemoved
	TokensChanged
	SequenceAdded
	SequenceRemoved
	SequenceRenamed
)

func (c ChangeType) String() string {
	switch c {
	case TokensInserted:
		return "tokens inserted"
	case TokensRemoved:
		return "tokens removed"
	case TokensChanged:
		return "tokens changed"
	case SequenceAdded:
		return "sequence added"
	case SequenceRemoved:
		return "sequence removed"
	case SequenceRenamed:
		return "sequence renamed"
	}
	return fmt.Sprintf("ChangeType(%d)", byte(c))
}

// Event describes one change. For token changes, [Begin, End) is the
// affected range before a removal and after an insertion, and Tokens
// holds the inserted, removed or new tokens. Row is set for sequence
// changes.
type Event[T comparable] struct {
	Type       ChangeType
	SequenceID string
	Begin, End int
	Tokens     []T
	Row        int
	Name       string // the new name
	OldName    string
}

// Listener receives events from a model.
type Listener[T comparable] func(Event[T])

// IsTokenChange is true for events that change the tokens of a
// sequence without adding or removing it.
func (e Event[T]) IsTokenChange() bool {
	return e.Type == TokensInserted || e.Type == TokensRemoved || e.Type == TokensChanged
}
