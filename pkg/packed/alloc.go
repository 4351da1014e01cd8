// 15 Sep 2026

package packed

import (
	"fmt"

	"github.com/edsrzf/mmap-go"
)

// Allocator supplies the byte buffers behind an Array. Buffers must
// come back zeroed.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(b []byte) error
}

// heap allocates from the Go heap.
type heap struct{}

func (heap) Alloc(n int) ([]byte, error) { return make([]byte, n), nil }
func (heap) Free([]byte) error           { return nil }

// mapped allocates anonymous memory maps. The pages are zeroed by the
// kernel and are not seen by the garbage collector, which matters for
// index tables of very long alignments.
type mapped struct{}

func (mapped) Alloc(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	m, err := mmap.MapRegion(nil, n, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, fmt.Errorf("packed: mapping %d bytes: %w", n, err)
	}
	return m, nil
}

func (mapped) Free(b []byte) error {
	if b == nil {
		return nil
	}
	m := mmap.MMap(b)
	return m.Unmap()
}

// Heap returns the allocator used by New.
func Heap() Allocator { return heap{} }

// Mapped returns the allocator used by NewMapped.
func Mapped() Allocator { return mapped{} }
