// 9 Mar 2026

// Package taxa extracts taxon labels from alignment files in nexus
// or fasta format and collects them in a set. The same taxon
// usually appears in many files, so the set is what downstream
// tools want.
package taxa

import (
	"sort"
)

// A Set holds each taxon label once. It grows while files are being
// read and is frozen with Sorted when the scan is done.
type Set struct {
	seen map[string]bool
}

func NewSet() *Set {
	return &Set{seen: make(map[string]bool)}
}

func (s *Set) Add(label string) {
	s.seen[label] = true
}

// AddSlice adds every label from one file's worth of parsing.
func (s *Set) AddSlice(labels []string) {
	for _, l := range labels {
		s.seen[l] = true
	}
}

func (s *Set) Has(label string) bool {
	return s.seen[label]
}

func (s *Set) Len() int {
	return len(s.seen)
}

// Sorted returns the labels in lexicographic order. This is the
// order the output files use, so reruns give identical bytes.
func (s *Set) Sorted() []string {
	labels := make([]string, 0, len(s.seen))
	for l := range s.seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
