// 11 Mar 2026
// Walking the directory and getting labels out of each file.

package astralmap

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/astral_map/pkg/taxa"
)

type format byte

const (
	fmtUnknown format = iota
	fmtNexus
	fmtFasta
)

// classify binds a file extension to an extractor.
func classify(fname string) format {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".nex", ".nexus":
		return fmtNexus
	case ".fasta", ".fa", ".fas":
		return fmtFasta
	}
	return fmtUnknown
}

// sniff looks at the first fifty non-blank lines for something that
// gives the format away. It only runs when the extension tells us
// nothing, so a .nex file is always nexus no matter what is in it.
func sniff(text string) format {
	nline := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			return fmtFasta
		}
		if strings.HasPrefix(strings.ToUpper(line), "#NEXUS") {
			return fmtNexus
		}
		if nline++; nline >= 50 {
			break
		}
	}
	return fmtUnknown
}

// A Failure remembers a file we could not use and why. They are
// reported at the end of a run, never silently dropped.
type Failure struct {
	Path   string
	Reason string
}

// slurp reads a whole file by mapping it. A zero length file cannot
// be mapped, but its contents are not in doubt.
func slurp(fname string) (string, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer fp.Close()
	if fi, err := fp.Stat(); err != nil {
		return "", err
	} else if fi.Size() == 0 {
		return "", nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return "", err
	}
	defer mm.Unmap()
	return string(mm), nil
}

// matchfiles walks root and keeps every file whose base name matches
// one of the glob patterns. The list comes back sorted, so a rerun
// sees the files in the same order and writes the same bytes.
func matchfiles(root string, patterns []string) ([]string, error) {
	var files []string
	walkfn := func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		base := filepath.Base(p)
		for _, pat := range patterns {
			hit, err := path.Match(pat, base)
			if err != nil {
				return fmt.Errorf("pattern \"%s\": %w", pat, err)
			}
			if hit {
				files = append(files, p)
				break
			}
		}
		return nil
	}
	if err := filepath.WalkDir(root, walkfn); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// extract gets the labels from one file. A reason string instead of
// an error, since "unknown format" and an os error get the same
// treatment from the caller.
func extract(fname string) (labels []string, reason string) {
	text, err := slurp(fname)
	if err != nil {
		return nil, err.Error()
	}
	f := classify(fname)
	if f == fmtUnknown {
		f = sniff(text)
	}
	switch f {
	case fmtNexus:
		return taxa.FromNexus(text), ""
	case fmtFasta:
		return taxa.FromFasta(text), ""
	}
	return nil, "unknown format"
}

// Scan parses every file into one set of labels. In strict mode the
// first file we cannot use stops everything, so nothing gets
// written. Otherwise bad files are remembered and we move on.
func Scan(files []string, strict, verbose bool, diag io.Writer) (*taxa.Set, []Failure, error) {
	set := taxa.NewSet()
	var fails []Failure
	for _, fname := range files {
		labels, reason := extract(fname)
		if reason != "" {
			if strict {
				return nil, nil, fmt.Errorf("%s: %s", fname, reason)
			}
			fails = append(fails, Failure{Path: fname, Reason: reason})
			continue
		}
		set.AddSlice(labels)
		if verbose {
			fmt.Fprintf(diag, "[ok] %s -> %d label(s)\n", fname, len(labels))
		}
	}
	return set, fails, nil
}
