// 9 Mar 2026

package taxa

import (
	"strings"
)

// FromFasta returns the taxon labels from the text of one fasta
// file, one per ">" header line. The label is the first word of the
// header, anything after it is a description we do not want. A bare
// ">" with nothing behind it yields no label.
func FromFasta(text string) []string {
	var labels []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, ">") {
			continue
		}
		flds := strings.Fields(line[1:])
		if len(flds) == 0 {
			continue
		}
		labels = append(labels, flds[0])
	}
	return labels
}
