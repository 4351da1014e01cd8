// 23 Sep 2026

package ndx

import (
	"github.com/andrew-torda/alnedit/pkg/model"
)

// cursor is the position of a forward scan over one sequence. count is
// the number of tokens in columns [0, col). nTokens is -1 until the
// whole sequence has been counted.
type cursor struct {
	col, count int
	length     int
	nTokens    int
}

// Sequential walks along each sequence, remembering where it stopped.
// Queries with increasing positions cost constant amortised time. A
// query behind the cursor starts again from column zero.
type Sequential[T comparable] struct {
	m       model.Reader[T]
	cursors map[string]*cursor
	unsub   func()
}

// NewSequential returns a translator for the sequences of m. It
// listens to m until Close is called.
func NewSequential[T comparable](m model.Reader[T]) *Sequential[T] {
	s := &Sequential[T]{m: m, cursors: make(map[string]*cursor)}
	s.unsub = m.Subscribe(func(e model.Event[T]) { s.Invalidate(e.SequenceID) })
	return s
}

// Invalidate forgets the cursor of a sequence.
func (s *Sequential[T]) Invalidate(id string) { delete(s.cursors, id) }

// Close stops listening to the model.
func (s *Sequential[T]) Close() {
	s.unsub()
	clear(s.cursors)
}

func (s *Sequential[T]) cursor(id string) (*cursor, error) {
	if c, ok := s.cursors[id]; ok {
		return c, nil
	}
	n, err := s.m.Len(id)
	if err != nil {
		return nil, err
	}
	c := &cursor{length: n, nTokens: -1}
	s.cursors[id] = c
	return c, nil
}

// isGap reads column col, which must be in range.
func (s *Sequential[T]) isGap(id string, col int) bool {
	t, err := s.m.TokenAt(id, col)
	if err != nil {
		panic("program bug: model changed under the translator: " + err.Error())
	}
	return s.m.TokenSet().IsGap(t)
}

// total counts the tokens of the whole sequence, once.
func (s *Sequential[T]) total(id string, c *cursor) int {
	if c.nTokens < 0 {
		n := c.count
		for col := c.col; col < c.length; col++ {
			if !s.isGap(id, col) {
				n++
			}
		}
		c.nTokens = n
	}
	return c.nTokens
}

// seek moves the cursor to col.
func (s *Sequential[T]) seek(id string, c *cursor, col int) {
	if col < c.col {
		c.col, c.count = 0, 0
	}
	for ; c.col < col; c.col++ {
		if !s.isGap(id, c.col) {
			c.count++
		}
	}
}

func (s *Sequential[T]) UnalignedIndex(id string, column int) (Relation, error) {
	c, err := s.cursor(id)
	if err != nil {
		return Relation{}, err
	}
	nTokens := s.total(id, c)
	if column < 0 || column >= c.length {
		return relation(column, 0, false, c.length, nTokens), nil
	}
	s.seek(id, c, column)
	return relation(column, c.count, s.isGap(id, column), c.length, nTokens), nil
}

func (s *Sequential[T]) AlignedIndex(id string, unaligned int) (int, error) {
	c, err := s.cursor(id)
	if err != nil {
		return 0, err
	}
	if unaligned < 0 || unaligned >= s.total(id, c) {
		return OutOfRange, nil
	}
	if unaligned < c.count {
		c.col, c.count = 0, 0
	}
	for ; c.col < c.length; c.col++ {
		if !s.isGap(id, c.col) {
			if c.count == unaligned {
				return c.col, nil
			}
			c.count++
		}
	}
	return OutOfRange, nil
}

func (s *Sequential[T]) UnalignedLength(id string) (int, error) {
	c, err := s.cursor(id)
	if err != nil {
		return 0, err
	}
	return s.total(id, c), nil
}
