// 9 Mar 2026
// Pull taxon labels out of a nexus file. The trustworthy place to
// look is a TAXLABELS block. Files without one usually still have a
// MATRIX block, where each line starts with a label. In an
// interleaved matrix the same label turns up on several lines, which
// does not matter since everything lands in a set later.

package taxa

import (
	"strings"
)

// stripComments removes every bracketed [ ... ] region, which is how
// nexus files carry comments. Comments may span lines and do not
// nest, the first "]" closes. An unterminated comment swallows the
// rest of the text.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inCmmt := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inCmmt {
			if c == ']' {
				inCmmt = false
			}
			continue
		}
		if c == '[' {
			inCmmt = true
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// lowerASCII folds only the bytes 'A'..'Z'. strings.ToLower is no
// good here, some unicode characters change byte length when
// lowered, and then an index into the lowered copy points at the
// wrong place in the original. The keywords we look for are ascii.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// blockAfter looks for keyword (case does not matter) and returns
// the text from just after it up to the ";" which ends the block.
// With no ";" the block runs to the end of the text.
func blockAfter(s, keyword string) (string, bool) {
	ndx := strings.Index(lowerASCII(s), keyword)
	if ndx == -1 {
		return "", false
	}
	sub := s[ndx+len(keyword):]
	if end := strings.IndexByte(sub, ';'); end != -1 {
		sub = sub[:end]
	}
	return sub, true
}

// matrixNoise says if a line inside a MATRIX block is format
// furniture rather than data. Some files repeat these keywords
// inside the block.
func matrixNoise(line string) bool {
	lc := strings.ToLower(line)
	for _, kw := range []string{"matrix", "format", "dimensions", "end", "begin"} {
		if strings.HasPrefix(lc, kw) {
			return true
		}
	}
	return false
}

// cleanLabel trims stray whitespace and trailing semicolons from a label.
func cleanLabel(tok string) string {
	return strings.TrimRight(strings.TrimSpace(tok), ";")
}

// FromNexus returns the taxon labels from the text of one nexus
// file, in order of appearance. No labels is not an error, the
// caller sees an empty slice and decides what to make of it.
func FromNexus(text string) []string {
	clean := stripComments(text)

	var labels []string
	if sub, ok := blockAfter(clean, "taxlabels"); ok {
		for _, tok := range Split(sub) {
			if tok = cleanLabel(tok); tok != "" {
				labels = append(labels, tok)
			}
		}
	}
	if len(labels) > 0 {
		return labels
	}
	// No taxlabels, or an empty block. Fall back to the matrix and
	// take the first word of each line.
	sub, ok := blockAfter(clean, "matrix")
	if !ok {
		return labels
	}
	for _, raw := range strings.Split(sub, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || matrixNoise(line) {
			continue
		}
		toks := Split(line)
		if len(toks) == 0 {
			continue
		}
		if tok := cleanLabel(toks[0]); tok != "" {
			labels = append(labels, tok)
		}
	}
	return labels
}
