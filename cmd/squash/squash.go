// 29 April 2020
// Squash an alignment using some specified sequence as a reference.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/andrew-torda/alnedit/pkg/common"
	"github.com/andrew-torda/alnedit/pkg/squash"
)

// usage
func usage() {
	name := path.Base(os.Args[0])
	fmt.Fprintln(os.Stderr, "usage:", name, "[-n ref] [-u] sequence [sequence ...]")
	flag.PrintDefaults()
}

func main() {
	var opts squash.Options
	log.SetFlags(0)
	log.SetPrefix(path.Base(os.Args[0]) + ": ")
	flag.IntVar(&opts.Ref, "n", 1, "reference sequence, counting from 1")
	flag.BoolVar(&opts.Undo, "u", false, "undo the squash and check the alignment comes back")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "require at least one sequence")
		usage()
		os.Exit(common.ExitUsageError)
	}
	os.Exit(squash.MyMain(os.Stdout, opts, flag.Args()...))
}
