// 9 Oct 2026
// Show how aligned columns map onto sequences without their gaps.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/andrew-torda/alnedit/pkg/common"
	"github.com/andrew-torda/alnedit/pkg/degap"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[-s] [-m] sequence [sequence ...]")
	flag.PrintDefaults()
}

func main() {
	var flags degap.CmdFlag
	log.SetFlags(0)
	flag.BoolVar(&flags.Sequential, "s", false, "use the sequential translator")
	flag.BoolVar(&flags.Mapped, "m", false, "keep translation tables in mapped memory")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(common.ExitUsageError)
	}
	os.Exit(degap.Mymain(os.Stdout, &flags, flag.Args()...))
}
