// 6 Oct 2026

// Package consensus counts the tokens at each column of an alignment
// and works out a consensus sequence from the counts.
package consensus

import (
	"math"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/alnedit/pkg/model"
	"github.com/andrew-torda/alnedit/pkg/tokenset"
)

// Table holds the token counts of an alignment.
// counts.Mat looks like [number_of_tokens][number_of_columns], with
// the rows in the order of the token set. A row that is shorter than
// the alignment does not count in the columns it lacks.
type Table[T comparable] struct {
	set    *tokenset.Set[T]
	tokens []T
	gapRow int
	counts *matrix.FMatrix2d
}

// Tally counts every token in m. Continuous token sets cannot be
// counted and give tokenset.ErrContinuous.
func Tally[T comparable](m model.Reader[T]) (*Table[T], error) {
	set := m.TokenSet()
	tokens, err := set.Tokens()
	if err != nil {
		return nil, err
	}
	tb := &Table[T]{set: set, tokens: tokens, gapRow: set.Index(set.Gap())}
	tb.counts = matrix.NewFMatrix2d(len(tokens), m.MaxLen())
	for _, id := range m.SequenceIDs() {
		n, err := m.Len(id)
		if err != nil {
			return nil, err
		}
		row, err := m.Tokens(id, 0, n)
		if err != nil {
			return nil, err
		}
		for col, t := range row {
			if i := set.Index(t); i >= 0 {
				tb.counts.Mat[i][col]++
			}
		}
	}
	return tb, nil
}

// Len returns the number of columns.
func (tb *Table[T]) Len() int {
	_, ncol := tb.counts.Size()
	return ncol
}

// Tokens returns the token of each row of the counts.
func (tb *Table[T]) Tokens() []T { return tb.tokens }

// Counts returns the raw counts. Callers must not change them.
func (tb *Table[T]) Counts() *matrix.FMatrix2d { return tb.counts }

// Count returns how often t occurs in column col.
func (tb *Table[T]) Count(t T, col int) float32 {
	i := tb.set.Index(t)
	if i < 0 || col < 0 || col >= tb.Len() {
		return 0
	}
	return tb.counts.Mat[i][col]
}

// Fractions converts the counts to frequencies in a new matrix. If
// gapsAreChar is true, gaps are treated like any other token.
// Otherwise,
//
//	a token's fraction is the fraction of non-gaps in which it is found
//	the gap's fraction is the fraction of all rows with a gap here.
//
// The fractions of the non-gaps then add up to one, and the gaps come
// on top.
func (tb *Table[T]) Fractions(gapsAreChar bool) *matrix.FMatrix2d {
	nrow, ncol := tb.counts.Size()
	frac := matrix.NewFMatrix2d(nrow, ncol)
	for icol := 0; icol < ncol; icol++ {
		var total float32
		for irow := 0; irow < nrow; irow++ {
			total += tb.counts.Mat[irow][icol]
		}
		if total == 0 {
			continue
		}
		gaps := tb.counts.Mat[tb.gapRow][icol]
		nonGap := total
		if !gapsAreChar {
			nonGap -= gaps
		}
		for irow := 0; irow < nrow; irow++ {
			if nonGap != 0 {
				frac.Mat[irow][icol] = tb.counts.Mat[irow][icol] / nonGap
			}
		}
		if !gapsAreChar {
			frac.Mat[tb.gapRow][icol] = gaps / total
		}
	}
	return frac
}

// GapFrac returns the fraction of gaps at each column, counting only
// the rows that reach that column.
func (tb *Table[T]) GapFrac() []float32 {
	return tb.Fractions(false).Mat[tb.gapRow]
}

// Consensus returns the most common non-gap token of each column. Ties
// go to the token that comes first in the token set. A column whose
// best token makes up less than threshold of its non-gaps gets the
// missing token. A column of nothing but gaps gets the gap.
func (tb *Table[T]) Consensus(threshold float32) []T {
	nrow, ncol := tb.counts.Size()
	cons := make([]T, ncol)
	for icol := range cons {
		best, nonGap := -1, float32(0)
		for irow := 0; irow < nrow; irow++ {
			if irow == tb.gapRow {
				continue
			}
			c := tb.counts.Mat[irow][icol]
			nonGap += c
			if c > 0 && (best < 0 || c > tb.counts.Mat[best][icol]) {
				best = irow
			}
		}
		switch {
		case best < 0:
			cons[icol] = tb.set.Gap()
		case tb.counts.Mat[best][icol]/nonGap < threshold:
			cons[icol] = tb.set.Missing()
		default:
			cons[icol] = tb.tokens[best]
		}
	}
	return cons
}

// logBase is the number of different tokens that appear anywhere, so
// that a column using all of them equally has entropy one.
func (tb *Table[T]) logBase(gapsAreChar bool) int {
	nrow, ncol := tb.counts.Size()
	n := 0
	for irow := 0; irow < nrow; irow++ {
		if irow == tb.gapRow && !gapsAreChar {
			continue
		}
		for icol := 0; icol < ncol; icol++ {
			if tb.counts.Mat[irow][icol] != 0 {
				n++
				break
			}
		}
	}
	return max(n, 2)
}

// Entropy returns the Shannon entropy of each column. Gaps count as a
// token if gapsAreChar is set. If logbase is less than 2, the number of
// tokens seen in the alignment is used.
func (tb *Table[T]) Entropy(gapsAreChar bool, logbase int) []float32 {
	if logbase < 2 {
		logbase = tb.logBase(gapsAreChar)
	}
	logfac := 1.0 / math.Log(float64(logbase)) // to change base of logs
	frac := tb.Fractions(gapsAreChar)
	nrow, ncol := frac.Size()
	entropy := make([]float32, ncol)
	for icol := range entropy {
		total := 0.0
		for irow := 0; irow < nrow; irow++ {
			if irow == tb.gapRow && !gapsAreChar {
				continue
			}
			f := float64(frac.Mat[irow][icol])
			if f == 0.0 {
				continue
			}
			total += f * math.Log(f) * logfac
		}
		entropy[icol] = float32(math.Abs(total))
	}
	return entropy
}
