// 22 Sep 2026

package ndx

import (
	"fmt"

	"github.com/andrew-torda/alnedit/pkg/model"
	"github.com/andrew-torda/alnedit/pkg/packed"
	"github.com/andrew-torda/alnedit/pkg/tokenset"
)

// table holds the translation of one sequence. counts[c] is the number
// of tokens in columns [0, c), so it has one more entry than the
// sequence has columns and column c is a gap if counts[c+1] == counts[c].
// cols[u] is the aligned column of token u.
type table struct {
	counts *packed.Array
	cols   *packed.Array
}

func (tb *table) close() {
	tb.counts.Close()
	tb.cols.Close()
}

// Option changes how a translator stores its tables.
type Option func(*options)

type options struct {
	alloc packed.Allocator // nil for the Go heap
}

// Mapped keeps the tables in anonymous mapped memory.
func Mapped() Option { return WithAllocator(packed.Mapped()) }

// WithAllocator takes the memory for the tables from a.
func WithAllocator(a packed.Allocator) Option { return func(o *options) { o.alloc = a } }

// RandomAccess answers each query from a table built the first time a
// sequence is asked about.
type RandomAccess[T comparable] struct {
	m      model.Reader[T]
	opts   options
	tables map[string]*table
	unsub  func()
}

// NewRandomAccess returns a translator for the sequences of m. It
// listens to m until Close is called.
func NewRandomAccess[T comparable](m model.Reader[T], opts ...Option) *RandomAccess[T] {
	r := &RandomAccess[T]{m: m, tables: make(map[string]*table)}
	for _, o := range opts {
		o(&r.opts)
	}
	r.unsub = m.Subscribe(func(e model.Event[T]) { r.Invalidate(e.SequenceID) })
	return r
}

// Invalidate throws away the table of a sequence.
func (r *RandomAccess[T]) Invalidate(id string) {
	if tb, ok := r.tables[id]; ok {
		tb.close()
		delete(r.tables, id)
	}
}

// Close stops listening to the model and frees every table.
func (r *RandomAccess[T]) Close() {
	r.unsub()
	for id := range r.tables {
		r.Invalidate(id)
	}
}

// newArray returns an array that can hold capacity values below capacity.
func (r *RandomAccess[T]) newArray(capacity int) (*packed.Array, error) {
	if r.opts.alloc == nil {
		return packed.New(capacity), nil
	}
	width := packed.CalculateBitsPerValue(uint64(max(capacity, 1) - 1))
	return packed.NewWithAllocator(capacity, width, r.opts.alloc)
}

func (r *RandomAccess[T]) table(id string) (*table, error) {
	if tb, ok := r.tables[id]; ok {
		return tb, nil
	}
	n, err := r.m.Len(id)
	if err != nil {
		return nil, err
	}
	tokens, err := r.m.Tokens(id, 0, n)
	if err != nil {
		return nil, err
	}
	set := r.m.TokenSet()

	tb := new(table)
	if tb.counts, err = r.newArray(n + 1); err != nil {
		return nil, err
	}
	if tb.cols, err = r.newArray(n); err != nil {
		tb.counts.Close()
		return nil, err
	}
	if err := fill(tb, tokens, set); err != nil {
		tb.close()
		return nil, fmt.Errorf("ndx: table for %q: %w", id, err)
	}
	r.tables[id] = tb
	return tb, nil
}

// fill builds both tables of a sequence.
func fill[T comparable](tb *table, tokens []T, set *tokenset.Set[T]) error {
	count := 0
	if err := tb.counts.Add(0); err != nil {
		return err
	}
	for c, t := range tokens {
		if !set.IsGap(t) {
			if err := tb.cols.Add(uint64(c)); err != nil {
				return err
			}
			count++
		}
		if err := tb.counts.Add(uint64(count)); err != nil {
			return err
		}
	}
	return nil
}

// at reads an entry known to be in range.
func at(a *packed.Array, i int) int {
	v, err := a.Get(i)
	if err != nil {
		panic("program bug: " + err.Error())
	}
	return int(v)
}

func (r *RandomAccess[T]) UnalignedIndex(id string, column int) (Relation, error) {
	tb, err := r.table(id)
	if err != nil {
		return Relation{}, err
	}
	length, nTokens := tb.counts.Len()-1, tb.cols.Len()
	if column < 0 || column >= length {
		return relation(column, 0, false, length, nTokens), nil
	}
	count := at(tb.counts, column)
	gap := at(tb.counts, column+1) == count
	return relation(column, count, gap, length, nTokens), nil
}

func (r *RandomAccess[T]) AlignedIndex(id string, unaligned int) (int, error) {
	tb, err := r.table(id)
	if err != nil {
		return 0, err
	}
	if unaligned < 0 || unaligned >= tb.cols.Len() {
		return OutOfRange, nil
	}
	return at(tb.cols, unaligned), nil
}

func (r *RandomAccess[T]) UnalignedLength(id string) (int, error) {
	tb, err := r.table(id)
	if err != nil {
		return 0, err
	}
	return tb.cols.Len(), nil
}
