// 11 Mar 2026

// Package astralmap turns a directory of alignments into the two
// column map file that astral uses to tie samples to species. Taxon
// labels come from every nexus and fasta file under the input
// directory, are made unique and sorted, and each gets a group from
// an optional table or a default rule.
package astralmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrew-torda/astral_map/pkg/groups"
)

// DfltPattern is what we scan for when the caller does not say.
const DfltPattern = "*.nex,*.nexus,*.fasta,*.fa,*.fas"

var (
	ErrNoFiles = errors.New("no files matched the given patterns")
	ErrNoTaxa  = errors.New("no taxon labels found, check your alignment files")
)

// CmdArgs holds everything from the command line.
type CmdArgs struct {
	InDir        string // directory with the alignments
	OutMapFname  string // the map file to write
	GroupFname   string // optional taxon,group table
	OutTaxaFname string // optional plain list of taxa
	Pattern      string // comma separated globs
	DfltGroup    string // species, NA or none
	Strict       bool
	Verbose      bool
}

// splitPatterns breaks the comma separated pattern list up.
func splitPatterns(s string) []string {
	var pats []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			pats = append(pats, p)
		}
	}
	return pats
}

// WriteMap writes one "taxon tab group" line per taxon.
func WriteMap(w io.Writer, labels []string, rslvr *groups.Resolver) error {
	for _, t := range labels {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", t, rslvr.Group(t)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTaxa writes the bare labels, one per line.
func WriteTaxa(w io.Writer, labels []string) error {
	for _, t := range labels {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

// wrtFile wraps a writer function with create, buffer and close.
func wrtFile(fname string, wrt func(io.Writer) error) error {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fp)
	if err := wrt(bw); err != nil {
		fp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

// Mymain is the top level main, after parsing the command line.
// Chatter and complaints go to diag, which is os.Stderr outside of
// testing. Nothing is written until the whole scan has succeeded,
// so a strict mode abort leaves no half done map file behind.
func Mymain(args *CmdArgs, diag io.Writer) error {
	dflt, err := groups.PolicyFromString(args.DfltGroup)
	if err != nil {
		return err
	}
	if fi, err := os.Stat(args.InDir); err != nil {
		return fmt.Errorf("input directory: %w", err)
	} else if !fi.IsDir() {
		return fmt.Errorf("input \"%s\" is not a directory", args.InDir)
	}

	patterns := splitPatterns(args.Pattern)
	if len(patterns) == 0 {
		patterns = splitPatterns(DfltPattern)
	}
	files, err := matchfiles(args.InDir, patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ErrNoFiles
	}
	if args.Verbose {
		fmt.Fprintf(diag, "scanning %d file(s)\n", len(files))
	}

	set, fails, err := Scan(files, args.Strict, args.Verbose, diag)
	if err != nil {
		return err
	}
	for _, f := range fails {
		fmt.Fprintf(diag, "warning: skipped %s: %s\n", f.Path, f.Reason)
	}
	if set.Len() == 0 {
		return ErrNoTaxa
	}
	if args.Verbose {
		fmt.Fprintf(diag, "%d unique taxon label(s)\n", set.Len())
	}

	rslvr := groups.NewResolver(dflt)
	if args.GroupFname != "" {
		if err := rslvr.ReadTableFile(args.GroupFname, diag); err != nil {
			return err
		}
		if args.Verbose {
			fmt.Fprintf(diag, "%d group mapping(s) loaded\n", rslvr.Len())
		}
	}

	labels := set.Sorted()
	if err := wrtFile(args.OutMapFname, func(w io.Writer) error {
		return WriteMap(w, labels, rslvr)
	}); err != nil {
		return err
	}
	if args.OutTaxaFname != "" {
		if err := wrtFile(args.OutTaxaFname, func(w io.Writer) error {
			return WriteTaxa(w, labels)
		}); err != nil {
			return err
		}
	}
	if args.Verbose {
		fmt.Fprintln(diag, "map written to", args.OutMapFname)
		if args.OutTaxaFname != "" {
			fmt.Fprintln(diag, "taxon list written to", args.OutTaxaFname)
		}
	}
	return nil
}
