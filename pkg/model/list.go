// 18 Sep 2026

package model

import (
	"fmt"
	"slices"

	"github.com/andrew-torda/alnedit/pkg/tokenset"
)

type sequence[T comparable] struct {
	id     string
	name   string
	tokens []T
}

type listener[T comparable] struct {
	key int
	fn  Listener[T]
}

// List is an in memory alignment. Sequences are kept in row order.
type List[T comparable] struct {
	set       *tokenset.Set[T]
	w         Writability
	rows      []*sequence[T]
	byID      map[string]*sequence[T]
	nextID    int
	listeners []listener[T]
	nextKey   int
	notifying bool
}

// New returns an empty alignment over the given token set.
func New[T comparable](set *tokenset.Set[T], w Writability) *List[T] {
	return &List[T]{set: set, w: w, byID: make(map[string]*sequence[T])}
}

func (l *List[T]) TokenSet() *tokenset.Set[T] { return l.set }
func (l *List[T]) Writability() Writability   { return l.w }

// SetWritability changes what may be written from now on.
func (l *List[T]) SetWritability(w Writability) { l.w = w }

// SequenceIDs returns the IDs in row order.
func (l *List[T]) SequenceIDs() []string {
	ids := make([]string, len(l.rows))
	for i, s := range l.rows {
		ids[i] = s.id
	}
	return ids
}

func (l *List[T]) SequenceCount() int { return len(l.rows) }

func (l *List[T]) SequenceIDAt(row int) (string, error) {
	if row < 0 || row >= len(l.rows) {
		return "", fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, row, len(l.rows))
	}
	return l.rows[row].id, nil
}

func (l *List[T]) SequenceRow(id string) (int, error) {
	for i, s := range l.rows {
		if s.id == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrNoSequence, id)
}

func (l *List[T]) SequenceName(id string) (string, error) {
	s, err := l.get(id)
	if err != nil {
		return "", err
	}
	return s.name, nil
}

func (l *List[T]) Len(id string) (int, error) {
	s, err := l.get(id)
	if err != nil {
		return 0, err
	}
	return len(s.tokens), nil
}

// MaxLen returns the length of the longest sequence.
func (l *List[T]) MaxLen() int {
	n := 0
	for _, s := range l.rows {
		if len(s.tokens) > n {
			n = len(s.tokens)
		}
	}
	return n
}

func (l *List[T]) TokenAt(id string, i int) (T, error) {
	var zero T
	s, err := l.get(id)
	if err != nil {
		return zero, err
	}
	if i < 0 || i >= len(s.tokens) {
		return zero, fmt.Errorf("%w: token %d of %q, length %d", ErrIndexOutOfRange, i, id, len(s.tokens))
	}
	return s.tokens[i], nil
}

// Tokens returns a copy of [begin, end).
func (l *List[T]) Tokens(id string, begin, end int) ([]T, error) {
	s, err := l.get(id)
	if err != nil {
		return nil, err
	}
	if err := checkRange(s, begin, end); err != nil {
		return nil, err
	}
	return slices.Clone(s.tokens[begin:end]), nil
}

// Subscribe adds a listener. Calling the returned function removes it.
func (l *List[T]) Subscribe(fn Listener[T]) func() {
	key := l.nextKey
	l.nextKey++
	l.listeners = append(l.listeners, listener[T]{key: key, fn: fn})
	return func() {
		for i, h := range l.listeners {
			if h.key == key {
				l.listeners = slices.Delete(slices.Clone(l.listeners), i, i+1)
				return
			}
		}
	}
}

func (l *List[T]) InsertTokensAt(id string, begin int, tokens ...T) error {
	s, err := l.tokenWrite(id, tokens)
	if err != nil {
		return err
	}
	if begin < 0 || begin > len(s.tokens) {
		return fmt.Errorf("%w: insert at %d of %q, length %d", ErrIndexOutOfRange, begin, id, len(s.tokens))
	}
	if len(tokens) == 0 {
		return nil
	}
	s.tokens = slices.Insert(s.tokens, begin, tokens...)
	l.notify(Event[T]{Type: TokensInserted, SequenceID: id, Begin: begin,
		End: begin + len(tokens), Tokens: slices.Clone(tokens)})
	return nil
}

func (l *List[T]) RemoveTokensAt(id string, begin, end int) error {
	s, err := l.tokenWrite(id, nil)
	if err != nil {
		return err
	}
	if err := checkRange(s, begin, end); err != nil {
		return err
	}
	if begin == end {
		return nil
	}
	removed := slices.Clone(s.tokens[begin:end])
	s.tokens = slices.Delete(s.tokens, begin, end)
	l.notify(Event[T]{Type: TokensRemoved, SequenceID: id, Begin: begin, End: end, Tokens: removed})
	return nil
}

func (l *List[T]) SetTokensAt(id string, begin int, tokens ...T) error {
	s, err := l.tokenWrite(id, tokens)
	if err != nil {
		return err
	}
	end := begin + len(tokens)
	if err := checkRange(s, begin, end); err != nil {
		return err
	}
	if begin == end {
		return nil
	}
	copy(s.tokens[begin:end], tokens)
	l.notify(Event[T]{Type: TokensChanged, SequenceID: id, Begin: begin, End: end,
		Tokens: slices.Clone(tokens)})
	return nil
}

func (l *List[T]) AppendTokens(id string, tokens ...T) error {
	s, err := l.get(id)
	if err != nil {
		return err
	}
	return l.InsertTokensAt(id, len(s.tokens), tokens...)
}

func (l *List[T]) AddSequence(name string) (string, error) {
	if err := l.sequenceWrite(); err != nil {
		return "", err
	}
	id := l.newID()
	if err := l.InsertSequence(len(l.rows), id, name, nil); err != nil {
		return "", err
	}
	return id, nil
}

func (l *List[T]) InsertSequence(row int, id, name string, tokens []T) error {
	if err := l.sequenceWrite(); err != nil {
		return err
	}
	if _, ok := l.byID[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	if row < 0 || row > len(l.rows) {
		return fmt.Errorf("%w: insert sequence at row %d of %d", ErrIndexOutOfRange, row, len(l.rows))
	}
	if err := l.checkTokens(tokens); err != nil {
		return err
	}
	s := &sequence[T]{id: id, name: name, tokens: slices.Clone(tokens)}
	l.rows = slices.Insert(l.rows, row, s)
	l.byID[id] = s
	l.notify(Event[T]{Type: SequenceAdded, SequenceID: id, Row: row, Name: name,
		End: len(tokens), Tokens: slices.Clone(tokens)})
	return nil
}

func (l *List[T]) RemoveSequence(id string) error {
	if err := l.sequenceWrite(); err != nil {
		return err
	}
	row, err := l.SequenceRow(id)
	if err != nil {
		return err
	}
	s := l.rows[row]
	l.rows = slices.Delete(l.rows, row, row+1)
	delete(l.byID, id)
	l.notify(Event[T]{Type: SequenceRemoved, SequenceID: id, Row: row, OldName: s.name,
		End: len(s.tokens), Tokens: s.tokens})
	return nil
}

func (l *List[T]) RenameSequence(id, name string) error {
	if err := l.sequenceWrite(); err != nil {
		return err
	}
	s, err := l.get(id)
	if err != nil {
		return err
	}
	if s.name == name {
		return nil
	}
	old := s.name
	s.name = name
	row, _ := l.SequenceRow(id)
	l.notify(Event[T]{Type: SequenceRenamed, SequenceID: id, Row: row, Name: name, OldName: old})
	return nil
}

func (l *List[T]) get(id string) (*sequence[T], error) {
	s, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSequence, id)
	}
	return s, nil
}

// tokenWrite checks that the tokens of sequence id may be written.
func (l *List[T]) tokenWrite(id string, tokens []T) (*sequence[T], error) {
	if l.notifying {
		return nil, ErrReentrant
	}
	if l.w.TokensReadOnly() {
		return nil, fmt.Errorf("writing tokens of %q: %w", id, ErrNotWritable)
	}
	s, err := l.get(id)
	if err != nil {
		return nil, err
	}
	if err := l.checkTokens(tokens); err != nil {
		return nil, err
	}
	return s, nil
}

func (l *List[T]) sequenceWrite() error {
	if l.notifying {
		return ErrReentrant
	}
	if l.w.SequencesReadOnly() {
		return fmt.Errorf("changing sequences: %w", ErrNotWritable)
	}
	return nil
}

func (l *List[T]) checkTokens(tokens []T) error {
	for _, t := range tokens {
		if !l.set.Contains(t) {
			return fmt.Errorf("%w: %s", tokenset.ErrUnknown, l.set.Repr(t))
		}
	}
	return nil
}

func checkRange[T comparable](s *sequence[T], begin, end int) error {
	if begin < 0 || begin > end || end > len(s.tokens) {
		return fmt.Errorf("%w: [%d, %d) of %q, length %d", ErrIndexOutOfRange, begin, end, s.id, len(s.tokens))
	}
	return nil
}

// newID makes an ID not used by any sequence.
func (l *List[T]) newID() string {
	for {
		id := fmt.Sprint("s", l.nextID)
		l.nextID++
		if _, ok := l.byID[id]; !ok {
			return id
		}
	}
}

// notify passes e to every listener. A listener that unsubscribes
// while we are looping does not disturb the loop.
func (l *List[T]) notify(e Event[T]) {
	l.notifying = true
	defer func() { l.notifying = false }()
	for _, h := range l.listeners {
		h.fn(e)
	}
}
