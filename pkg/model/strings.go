// 19 Sep 2026

package model

import (
	"fmt"

	"github.com/andrew-torda/alnedit/pkg/tokenset"
)

// FromStrings takes some strings and returns them as a writable
// alignment of byte tokens. Sequences get the IDs and names "s0",
// "s1", ... Every character must be in set.
func FromStrings(set *tokenset.Chars, rows ...string) (*List[byte], error) {
	l := New(set, Writable)
	for i, r := range rows {
		id := fmt.Sprint("s", i)
		if err := l.InsertSequence(i, id, id, []byte(r)); err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
	}
	return l, nil
}

// String returns the tokens of a byte sequence as a string. An
// unknown ID gives an empty string.
func String(m Reader[byte], id string) string {
	n, err := m.Len(id)
	if err != nil {
		return ""
	}
	b, _ := m.Tokens(id, 0, n)
	return string(b)
}

// Strings returns every row of a byte alignment in order.
func Strings(m Reader[byte]) []string {
	ids := m.SequenceIDs()
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = String(m, id)
	}
	return s
}
