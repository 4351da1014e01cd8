// 22 Sep 2026

// Package ndx translates between aligned (gapped) column indices and
// unaligned (gap free) token indices of a sequence.
//
// Given "--A-AC" the token C is at aligned column 5 and unaligned
// index 2. Column 3 holds a gap. Its relation is {0, Gap, 1}: the
// token before it has unaligned index 0 and the one after it index 1.
//
// Two translators are offered. RandomAccess builds a table per
// sequence and answers any query in constant time. Sequential keeps a
// cursor per sequence and is cheap when queries move forward, as they
// do when a row is painted from left to right. Both give the same
// answers and both forget what they know about a sequence as soon as
// it changes.
package ndx

import (
	"fmt"
)

const (
	Gap        = -1 // the aligned column holds a gap
	OutOfRange = -2 // there is no such position in the sequence
)

// Relation places an aligned column in unaligned coordinates. For a
// column holding a token all three fields are that token's unaligned
// index. For a gap, Corresponding is Gap, Before is the token to the
// left and After the token to the right. Fields with nothing to point
// to are OutOfRange.
type Relation struct {
	Before        int
	Corresponding int
	After         int
}

// IsGap is true if the column holds a gap.
func (r Relation) IsGap() bool { return r.Corresponding == Gap }

func (r Relation) String() string {
	s := func(i int) string {
		switch i {
		case Gap:
			return "gap"
		case OutOfRange:
			return "out"
		}
		return fmt.Sprint(i)
	}
	return fmt.Sprintf("{%s %s %s}", s(r.Before), s(r.Corresponding), s(r.After))
}

// Translator maps between the two coordinate systems for the
// sequences of one alignment. Only an unknown sequence is an error;
// positions with no counterpart give OutOfRange.
type Translator interface {
	UnalignedIndex(id string, column int) (Relation, error)
	AlignedIndex(id string, unaligned int) (int, error)
	UnalignedLength(id string) (int, error)
}

// relation works out the relation for a column from the number of
// tokens before it (count), whether it holds a gap, the sequence
// length and the unaligned length.
func relation(column, count int, gap bool, length, nTokens int) Relation {
	switch {
	case column < 0:
		after := OutOfRange
		if nTokens > 0 {
			after = 0
		}
		return Relation{OutOfRange, OutOfRange, after}
	case column >= length:
		before := OutOfRange
		if nTokens > 0 {
			before = nTokens - 1
		}
		return Relation{before, OutOfRange, OutOfRange}
	case !gap:
		return Relation{count, count, count}
	}
	r := Relation{OutOfRange, Gap, OutOfRange}
	if count > 0 {
		r.Before = count - 1
	}
	if count < nTokens {
		r.After = count
	}
	return r
}
