// 31 July 2020
// 10 Oct 2026 make alignments of any token set, not just fasta text

// Package randseq makes random alignments for testing and
// benchmarking.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/andrew-torda/alnedit/pkg/model"
	"github.com/andrew-torda/alnedit/pkg/tokenset"
)

// defaultGapFrac is about one gap in 80 sites.
const defaultGapFrac = 1. / 81.

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed   int64     // random number seed
	Wrtr    io.Writer // where RandSeqMain writes to
	Nseq    int       // number of sequences
	Len     int       // Length of sequences
	NoGap   bool      // Do not add gaps
	GapFrac float64   // fraction of sites that are gaps, zero for the default
	MkErr   bool      // Make the rows different lengths
}

// letters returns the tokens of set that a random sequence may use,
// leaving out gap and missing data.
func letters(set *tokenset.Chars) ([]byte, error) {
	all, err := set.Tokens()
	if err != nil {
		return nil, err
	}
	var l []byte
	for _, c := range all {
		if c != set.Gap() && c != set.Missing() {
			l = append(l, c)
		}
	}
	if len(l) == 0 {
		return nil, fmt.Errorf("randseq: token set has no tokens besides gap and missing")
	}
	return l, nil
}

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, l []byte, gap byte, gapFrac float64, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := range ret {
		if rnd.Float64() < gapFrac {
			ret[i] = gap
		} else {
			ret[i] = l[rnd.Intn(len(l))]
		}
	}
	return ret
}

// Rows returns random rows made from the tokens of set. A goroutine
// makes the rows and passes them over a channel to be collected.
func Rows(set *tokenset.Chars, args *RandSeqArgs) ([]string, error) {
	l, err := letters(set)
	if err != nil {
		return nil, err
	}
	gapFrac := args.GapFrac
	switch {
	case args.NoGap:
		gapFrac = 0
	case gapFrac == 0:
		gapFrac = defaultGapFrac
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	go func() {
		defer close(sChan)
		for i := 0; i < args.Nseq; i++ {
			n := args.Len
			if args.MkErr && n > 0 {
				n -= rnd.Intn(n/4 + 1)
			}
			sChan <- getseq(n, l, set.Gap(), gapFrac, rnd)
		}
	}()
	rows := make([]string, 0, args.Nseq)
	for s := range sChan {
		rows = append(rows, string(s))
	}
	return rows, nil
}

// Model returns a writable alignment of random rows. Sequences get the
// IDs "s0", "s1", ...
func Model(set *tokenset.Chars, args *RandSeqArgs) (*model.List[byte], error) {
	rows, err := Rows(set, args)
	if err != nil {
		return nil, err
	}
	return model.FromStrings(set, rows...)
}

// writeseq writes rows as they come in, one per line.
func writeseq(sChan <-chan string, w io.Writer, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()
	for s := range sChan {
		if *errp != nil {
			continue
		}
		_, *errp = fmt.Fprintln(w, s)
	}
}

// RandSeqMain writes random protein sequences to args.Wrtr.
func RandSeqMain(args *RandSeqArgs) error {
	rows, err := Rows(tokenset.NewProtein(), args)
	if err != nil {
		return err
	}
	var wg sync.WaitGroup
	var werr error
	sChan := make(chan string)
	wg.Add(1)
	go writeseq(sChan, args.Wrtr, &wg, &werr)
	for _, s := range rows {
		sChan <- s
	}
	close(sChan)
	wg.Wait()
	return werr
}
