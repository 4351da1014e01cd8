// 29 April 2020
// 8 Oct 2026 squash a model in place, so it can be undone

// Package squash removes the columns of an alignment where a reference
// sequence has a gap.
package squash

import (
	"github.com/andrew-torda/alnedit/pkg/action"
	"github.com/andrew-torda/alnedit/pkg/model"
)

// Name is the presentation name of the undo step.
const Name = "Squash"

// gapRuns returns the [begin, end) ranges of gaps in tokens.
func gapRuns[T comparable](tokens []T, gap T) [][2]int {
	var runs [][2]int
	for i := 0; i < len(tokens); i++ {
		if tokens[i] != gap {
			continue
		}
		j := i + 1
		for j < len(tokens) && tokens[j] == gap {
			j++
		}
		runs = append(runs, [2]int{i, j})
		i = j
	}
	return runs
}

// Squash removes, from every sequence in m, each column where the
// sequence refID has a gap. Rows shorter than the reference lose what
// they have of those columns. If m is an action.Batcher, the whole
// squash is one undo step. It returns the number of columns removed.
func Squash[T comparable](m model.Model[T], refID string) (int, error) {
	n, err := m.Len(refID)
	if err != nil {
		return 0, err
	}
	ref, err := m.Tokens(refID, 0, n)
	if err != nil {
		return 0, err
	}
	runs := gapRuns(ref, m.TokenSet().Gap())
	if len(runs) == 0 {
		return 0, nil
	}
	if b, ok := m.(action.Batcher); ok {
		b.StartEdit()
		defer b.EndEdit(Name)
	}
	removed := 0
	for i := len(runs) - 1; i >= 0; i-- { // right to left, so earlier runs stay put
		begin, end := runs[i][0], runs[i][1]
		for _, id := range m.SequenceIDs() {
			n, err := m.Len(id)
			if err != nil {
				return removed, err
			}
			if n <= begin {
				continue
			}
			if err := m.RemoveTokensAt(id, begin, min(end, n)); err != nil {
				return removed, err
			}
		}
		removed += end - begin
	}
	return removed, nil
}
