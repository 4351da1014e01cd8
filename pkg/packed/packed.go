// 14 Sep 2026

// Package packed provides a growable array of unsigned integers, each
// stored in a fixed number of bits. It is used for per-column index
// tables, where values rarely need more than 16 to 24 bits even for
// alignments with millions of columns.
//
// The width of an array only ever grows. EnsureCapacity widens it so
// that any index below the new capacity can be stored. Set widens it
// when it is given a value that does not fit. Widening re-encodes the
// stored values, so nothing is lost.
package packed

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxBits is the widest value an Array can hold.
const MaxBits = 64

var (
	ErrIndexOutOfRange = errors.New("packed: index out of range")
	ErrInvalidWidth    = errors.New("packed: bits per value must be between 1 and 64")
)

// Array is a sequence of unsigned integers packed into a byte buffer.
// Value i occupies bits [i*width, (i+1)*width) of the buffer, least
// significant bit first.
type Array struct {
	buf   []byte
	width uint
	size  int
	cap   int
	alloc Allocator
}

// CalculateBitsPerValue returns the number of bits needed to store
// every value from 0 to maxValue inclusive. It is never less than one.
func CalculateBitsPerValue(maxValue uint64) uint {
	if n := uint(bits.Len64(maxValue)); n > 1 {
		return n
	}
	return 1
}

// indexWidth is the width needed to store any index below capacity.
func indexWidth(capacity int) uint {
	if capacity < 1 {
		return 1
	}
	return CalculateBitsPerValue(uint64(capacity - 1))
}

// bytesFor is the size of the buffer for n values of the given width.
func bytesFor(n int, width uint) int {
	return (n*int(width) + 7) / 8
}

// New returns an empty array with room for capacity values, wide enough
// to hold any index below capacity.
func New(capacity int) *Array {
	a, err := newArray(capacity, indexWidth(capacity), heap{})
	if err != nil {
		panic("program bug: heap allocation cannot fail " + err.Error())
	}
	return a
}

// NewBits returns an empty array with room for capacity values of
// width bits each.
func NewBits(capacity int, width uint) (*Array, error) {
	return newArray(capacity, width, heap{})
}

// NewMapped is like New, but the values live in anonymous mapped memory
// rather than on the Go heap. The caller must Close the array.
func NewMapped(capacity int) (*Array, error) {
	return newArray(capacity, indexWidth(capacity), mapped{})
}

// NewWithAllocator returns an array using the given allocator for its
// buffer.
func NewWithAllocator(capacity int, width uint, alloc Allocator) (*Array, error) {
	return newArray(capacity, width, alloc)
}

func newArray(capacity int, width uint, alloc Allocator) (*Array, error) {
	if width < 1 || width > MaxBits {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	if capacity < 0 {
		capacity = 0
	}
	buf, err := alloc.Alloc(bytesFor(capacity, width))
	if err != nil {
		return nil, err
	}
	return &Array{buf: buf, width: width, cap: capacity, alloc: alloc}, nil
}

// Len returns the number of values stored.
func (a *Array) Len() int { return a.size }

// Cap returns the number of values that fit without reallocating.
func (a *Array) Cap() int { return a.cap }

// BitsPerValue returns the current width of each value.
func (a *Array) BitsPerValue() uint { return a.width }

// Get returns the value at index i.
func (a *Array) Get(i int) (uint64, error) {
	if i < 0 || i >= a.size {
		return 0, fmt.Errorf("%w: get %d, length %d", ErrIndexOutOfRange, i, a.size)
	}
	return get(a.buf, a.width, i), nil
}

// Set stores v at index i. If v is too big for the current width, the
// whole array is widened first.
func (a *Array) Set(i int, v uint64) error {
	if i < 0 || i >= a.size {
		return fmt.Errorf("%w: set %d, length %d", ErrIndexOutOfRange, i, a.size)
	}
	if need := CalculateBitsPerValue(v); need > a.width {
		if err := a.reshape(a.cap, need); err != nil {
			return err
		}
	}
	put(a.buf, a.width, i, v)
	return nil
}

// Add appends v, growing the array if necessary.
func (a *Array) Add(v uint64) error {
	if a.size == a.cap {
		n := 2 * a.cap
		if n < 8 {
			n = 8
		}
		if err := a.reshape(n, a.width); err != nil {
			return err
		}
	}
	a.size++
	return a.Set(a.size-1, v)
}

// EnsureCapacity makes room for at least n values. The width is widened,
// if necessary, so that every index below n can be stored.
func (a *Array) EnsureCapacity(n int) error {
	width := a.width
	if w := indexWidth(n); w > width {
		width = w
	}
	capacity := a.cap
	if n > capacity {
		capacity = n
	}
	if capacity == a.cap && width == a.width {
		return nil
	}
	return a.reshape(capacity, width)
}

// Widen sets the width to at least width bits.
func (a *Array) Widen(width uint) error {
	if width < 1 || width > MaxBits {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	if width <= a.width {
		return nil
	}
	return a.reshape(a.cap, width)
}

// Reset empties the array, but keeps its buffer and width.
func (a *Array) Reset() { a.size = 0 }

// Values returns a copy of the stored values.
func (a *Array) Values() []uint64 {
	v := make([]uint64, a.size)
	for i := range v {
		v[i] = get(a.buf, a.width, i)
	}
	return v
}

// Close gives the buffer back to the allocator. The array is empty
// afterwards.
func (a *Array) Close() error {
	buf := a.buf
	a.buf, a.size, a.cap = nil, 0, 0
	return a.alloc.Free(buf)
}

// reshape moves the values into a new buffer of the given capacity and
// width. Neither may be smaller than the current ones.
func (a *Array) reshape(capacity int, width uint) error {
	buf, err := a.alloc.Alloc(bytesFor(capacity, width))
	if err != nil {
		return err
	}
	if width == a.width {
		copy(buf, a.buf)
	} else {
		for i := 0; i < a.size; i++ {
			put(buf, width, i, get(a.buf, a.width, i))
		}
	}
	old := a.buf
	a.buf, a.width, a.cap = buf, width, capacity
	if err := a.alloc.Free(old); err != nil {
		return fmt.Errorf("packed: releasing old buffer: %w", err)
	}
	return nil
}

// get reads value i from a buffer holding values of width bits.
func get(buf []byte, width uint, i int) uint64 {
	pos := uint64(i) * uint64(width)
	var v uint64
	for done := uint(0); done < width; {
		off := uint(pos & 7)
		n := 8 - off
		if n > width-done {
			n = width - done
		}
		chunk := (uint64(buf[pos>>3]) >> off) & (1<<n - 1)
		v |= chunk << done
		done += n
		pos += uint64(n)
	}
	return v
}

// put writes v as value i. Bits of v above width are dropped.
func put(buf []byte, width uint, i int, v uint64) {
	pos := uint64(i) * uint64(width)
	for done := uint(0); done < width; {
		off := uint(pos & 7)
		n := 8 - off
		if n > width-done {
			n = width - done
		}
		mask := byte((1<<n - 1) << off)
		b := byte(((v >> done) & (1<<n - 1)) << off)
		buf[pos>>3] = buf[pos>>3]&^mask | b
		done += n
		pos += uint64(n)
	}
}
