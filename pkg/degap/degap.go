// 9 Oct 2026

// Package degap prints how the columns of aligned sequences map onto
// the sequences with their gaps taken out.
package degap

import (
	"fmt"
	"io"
	"log"

	"github.com/andrew-torda/alnedit/pkg/common"
	"github.com/andrew-torda/alnedit/pkg/model"
	"github.com/andrew-torda/alnedit/pkg/ndx"
	"github.com/andrew-torda/alnedit/pkg/tokenset"
	"github.com/andrew-torda/alnedit/pkg/white"
)

// CmdFlag has the command line options.
type CmdFlag struct {
	Sequential bool // walk the columns with the sequential translator
	Mapped     bool // keep the random access tables in mapped memory
}

// translator is what both kinds of translator give us.
type translator interface {
	ndx.Translator
	Close()
}

func newTranslator(m model.Reader[byte], flags *CmdFlag) translator {
	if flags.Sequential {
		return ndx.NewSequential[byte](m)
	}
	var opts []ndx.Option
	if flags.Mapped {
		opts = append(opts, ndx.Mapped())
	}
	return ndx.NewRandomAccess[byte](m, opts...)
}

// Mymain prints, for each sequence, its unaligned length, one line
// per column with the column's relation to the unaligned sequence,
// and finally the column of each token. White space in rows is
// ignored.
func Mymain(w io.Writer, flags *CmdFlag, rows ...string) int {
	rows = white.Strings(rows)
	m, err := model.FromStrings(tokenset.NewProtein(), rows...)
	if err != nil {
		log.Println(err)
		return common.ExitFailure
	}
	tr := newTranslator(m, flags)
	defer tr.Close()
	for i, id := range m.SequenceIDs() {
		if err := write(w, m, tr, id, i+1); err != nil {
			log.Println(err)
			return common.ExitFailure
		}
	}
	return common.ExitSuccess
}

func write(w io.Writer, m model.Reader[byte], tr translator, id string, num int) error {
	n, err := m.Len(id)
	if err != nil {
		return err
	}
	nTokens, err := tr.UnalignedLength(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d %s unaligned length %d\n", num, model.String(m, id), nTokens)
	for col := 0; col < n; col++ {
		r, err := tr.UnalignedIndex(id, col)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%4d %v\n", col, r)
	}
	cols := make([]int, nTokens)
	for i := range cols {
		if cols[i], err = tr.AlignedIndex(id, i); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "columns", cols)
	return nil
}
