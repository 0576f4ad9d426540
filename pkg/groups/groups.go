// 10 Mar 2026

// Package groups answers the question, which group does this taxon
// belong to. The answer comes from an optional csv/tsv table and,
// for taxa the table does not know, from a default policy.
package groups

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// A Policy says what to do with a taxon that is not in the table.
type Policy byte

const (
	Species Policy = iota // the taxon maps to itself
	NA                    // the literal string "NA"
	None                  // an empty group column
)

// PolicyFromString turns the command line word into a Policy.
func PolicyFromString(s string) (Policy, error) {
	switch s {
	case "species":
		return Species, nil
	case "NA":
		return NA, nil
	case "none":
		return None, nil
	}
	return Species, fmt.Errorf("default group \"%s\" is not one of species, NA, none", s)
}

// A Resolver owns the taxon to group table. It is filled once and
// only read afterwards.
type Resolver struct {
	table map[string]string
	dflt  Policy
}

func NewResolver(dflt Policy) *Resolver {
	return &Resolver{table: make(map[string]string), dflt: dflt}
}

// Len returns the number of table entries.
func (r *Resolver) Len() int {
	return len(r.table)
}

// ReadTable reads a two column table, taxon then group. The
// delimiter may be a comma or a tab, whichever the text has more of
// wins. A first row whose first cell is "taxon" (any case) is a
// header and skipped. Rows with fewer than two columns get a
// complaint on diag and are skipped. A taxon listed twice keeps the
// later group.
func (r *Resolver) ReadTable(rdr io.Reader, diag io.Writer) error {
	buf, err := io.ReadAll(rdr)
	if err != nil {
		return err
	}
	sample := string(buf)
	crdr := csv.NewReader(strings.NewReader(sample))
	if strings.Count(sample, "\t") > strings.Count(sample, ",") {
		crdr.Comma = '\t'
	}
	crdr.FieldsPerRecord = -1
	crdr.LazyQuotes = true
	rows, err := crdr.ReadAll()
	if err != nil {
		return fmt.Errorf("group table: %w", err)
	}
	start := 0
	if len(rows) > 0 && len(rows[0]) > 0 &&
		strings.EqualFold(strings.TrimSpace(rows[0][0]), "taxon") {
		start = 1
	}
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 {
			fmt.Fprintf(diag, "group table row %d: want 2 columns, got %d, skipping\n",
				i+1, len(row))
			continue
		}
		taxon := strings.TrimSpace(row[0])
		if taxon == "" {
			continue
		}
		r.table[taxon] = strings.TrimSpace(row[1])
	}
	return nil
}

// ReadTableFile is ReadTable on a named file.
func (r *Resolver) ReadTableFile(fname string, diag io.Writer) error {
	fp, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := r.ReadTable(fp, diag); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

// Group returns the group to print for a taxon. A table entry wins,
// then the default policy applies.
func (r *Resolver) Group(taxon string) string {
	if g, ok := r.table[taxon]; ok {
		return g
	}
	switch r.dflt {
	case NA:
		return "NA"
	case None:
		return ""
	}
	return taxon
}
