// 29 April 2020

package squash

import (
	"fmt"
	"io"
	"log"

	"github.com/andrew-torda/alnedit/pkg/common"
	"github.com/andrew-torda/alnedit/pkg/edit"
	"github.com/andrew-torda/alnedit/pkg/model"
	"github.com/andrew-torda/alnedit/pkg/tokenset"
	"github.com/andrew-torda/alnedit/pkg/white"
)

// Options for MyMain, as set from the command line.
type Options struct {
	Ref  int  // reference sequence, counting from 1
	Undo bool // undo the squash and check the original comes back
}

// MyMain is the top level main, after parsing the command line. rows
// are the aligned sequences, written with the protein alphabet. White
// space in them is ignored.
func MyMain(w io.Writer, opts Options, rows ...string) int {
	rows = white.Strings(rows)
	m, err := model.FromStrings(tokenset.NewProtein(), rows...)
	if err != nil {
		log.Println(err)
		return common.ExitFailure
	}
	if opts.Ref < 1 || opts.Ref > m.SequenceCount() {
		log.Printf("reference %d but only %d sequences", opts.Ref, m.SequenceCount())
		return common.ExitUsageError
	}
	refID, _ := m.SequenceIDAt(opts.Ref - 1)
	h := edit.NewHistory(0)
	rec := edit.NewRecorder[byte](m, h)
	n, err := Squash[byte](rec, refID)
	if err != nil {
		log.Println("squash failed:", err)
		return common.ExitFailure
	}
	for _, s := range model.Strings(m) {
		fmt.Fprintln(w, s)
	}
	if !opts.Undo || n == 0 {
		return common.ExitSuccess
	}
	if err := h.Undo(); err != nil {
		log.Println("undo failed:", err)
		return common.ExitFailure
	}
	for i, s := range model.Strings(m) {
		if s != rows[i] {
			log.Printf("sequence %d came back as %q, not %q", i+1, s, rows[i])
			return common.ExitFailure
		}
	}
	fmt.Fprintf(w, "undo of %d columns restored %d sequences\n", n, len(rows))
	return common.ExitSuccess
}
