// 10 Mar 2026

package groups_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/astral_map/pkg/common"
	. "github.com/andrew-torda/astral_map/pkg/groups"
)

func TestPolicyFromString(t *testing.T) {
	for _, s := range []string{"species", "NA", "none"} {
		if _, err := PolicyFromString(s); err != nil {
			t.Error("choked on", s, err)
		}
	}
	if _, err := PolicyFromString("na"); err == nil {
		t.Error("\"na\" should not be accepted, the spelling is NA")
	}
}

func TestDefaults(t *testing.T) {
	tsts := []struct {
		dflt Policy
		want string
	}{
		{Species, "Mus_musculus"},
		{NA, "NA"},
		{None, ""},
	}
	for _, tst := range tsts {
		r := NewResolver(tst.dflt)
		if got := r.Group("Mus_musculus"); got != tst.want {
			t.Errorf("policy %v: want %q got %q", tst.dflt, tst.want, got)
		}
	}
}

// A table entry beats the default, and a taxon the table does not
// know still falls back to the default.
func TestTableWins(t *testing.T) {
	r := NewResolver(Species)
	var diag bytes.Buffer
	if err := r.ReadTable(strings.NewReader("Homo_sapiens,Primates\n"), &diag); err != nil {
		t.Fatal(err)
	}
	if got := r.Group("Homo_sapiens"); got != "Primates" {
		t.Errorf("want Primates, got %q", got)
	}
	if got := r.Group("Mus_musculus"); got != "Mus_musculus" {
		t.Errorf("fallback broken, got %q", got)
	}
}

func TestHeaderAndTabs(t *testing.T) {
	const table = "Taxon\tGroup\nHomo_sapiens\tPrimates\nMus_musculus\tRodentia\n"
	r := NewResolver(NA)
	var diag bytes.Buffer
	if err := r.ReadTable(strings.NewReader(table), &diag); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 {
		t.Errorf("header should have been skipped, table has %d entries", r.Len())
	}
	if got := r.Group("Mus_musculus"); got != "Rodentia" {
		t.Errorf("want Rodentia, got %q", got)
	}
}

func TestReadTableFile(t *testing.T) {
	fname, err := common.WrtTemp("Homo_sapiens,Primates\nMus_musculus,Rodentia\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	r := NewResolver(Species)
	var diag bytes.Buffer
	if err := r.ReadTableFile(fname, &diag); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 {
		t.Errorf("want 2 entries, got %d", r.Len())
	}
	if err := r.ReadTableFile(fname+"_not_there", &diag); err == nil {
		t.Error("missing table file should be an error")
	}
}

// A short row is complained about and skipped, everything else is kept.
// A repeated taxon keeps the later group.
func TestShortAndRepeatedRows(t *testing.T) {
	const table = "lonely_column\nA,G1\nA,G2\n"
	r := NewResolver(Species)
	var diag bytes.Buffer
	if err := r.ReadTable(strings.NewReader(table), &diag); err != nil {
		t.Fatal(err)
	}
	if diag.Len() == 0 {
		t.Error("expected a complaint about the one column row")
	}
	if r.Len() != 1 {
		t.Errorf("want 1 entry, got %d", r.Len())
	}
	if got := r.Group("A"); got != "G2" {
		t.Errorf("later row should win, got %q", got)
	}
}
