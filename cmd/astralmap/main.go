// 12 Mar 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/astral_map/pkg/astralmap"
	. "github.com/andrew-torda/astral_map/pkg/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[options] input-dir output-map")
	flag.PrintDefaults()
}

func main() {
	var args astralmap.CmdArgs
	flag.StringVar(&args.GroupFname, "g", "", "csv/tsv table with taxon,group columns")
	flag.StringVar(&args.OutTaxaFname, "t", "", "also write the sorted taxon list to this file")
	flag.StringVar(&args.Pattern, "p", astralmap.DfltPattern, "comma separated glob patterns")
	flag.StringVar(&args.DfltGroup, "d", "species", "group for taxa not in the table: species, NA or none")
	flag.BoolVar(&args.Strict, "s", false, "any unreadable or unknown file stops the run")
	flag.BoolVar(&args.Verbose, "v", false, "chatter on stderr while scanning")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Expected two arguments. Got", flag.NArg())
		usage()
		os.Exit(ExitUsageError)
	}
	args.InDir = flag.Arg(0)
	args.OutMapFname = flag.Arg(1)

	if err := astralmap.Mymain(&args, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
