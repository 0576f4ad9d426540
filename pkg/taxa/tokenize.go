// Split a line at spaces and quotes. Nexus files quote labels which
// contain spaces, with either single or double quotes, so we cannot
// just use strings.Fields.

package taxa

const (
	squote byte = '\''
	dquote byte = '"'
)

// eot is sent once after the last real byte so the final token,
// quoted or not, gets flushed.
const eot byte = 0

// iswhite only works for ascii spaces
var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// iswhite returns true if a byte is on the list of white space characters.
func iswhite(b byte) bool {
	return asciiSpace[b]
}

// isquote not only checks if we have a quote character, but also
func isquote(b byte, qtype *byte) bool { // stores its type
	if b == squote || b == dquote { //     (single or double) so we can
		*qtype = b  //                      look for the corresponding
		return true //                      closing quote
	}
	return false
}

type sInfo struct { // Holds the state of the state functions
	ret     []string
	strIn   string
	nxtIndx int
	qtype   byte // type of quote
}
type sfn func(i int, c byte, s *sInfo) sfn // state function

func sfnInQuote(i int, c byte, sInfo *sInfo) sfn { // in quoted region
	if c == sInfo.qtype || c == eot { // a quote left hanging at the end
		t := sInfo.strIn[sInfo.nxtIndx:i] // of the input still gives us
		sInfo.ret = append(sInfo.ret, t)  // a usable label
		return sfnWhite
	}
	return sfnInQuote // newlines are ordinary here, quoted labels may span lines
}

func sfnInText(i int, c byte, sInfo *sInfo) sfn {
	if iswhite(c) || c == eot {
		t := sInfo.strIn[sInfo.nxtIndx:i]
		sInfo.ret = append(sInfo.ret, t)
		return sfnWhite
	}
	return sfnInText
}

func sfnWhite(i int, c byte, sInfo *sInfo) sfn { // in white space region
	switch {
	case iswhite(c) || c == eot:
		return sfnWhite
	case isquote(c, &sInfo.qtype):
		sInfo.nxtIndx = i + 1
		return sfnInQuote
	default:
		sInfo.nxtIndx = i
		return sfnInText
	}
}

// Split breaks a string into the whitespace separated words, except
// that a run delimited by matching single or double quotes is one
// word with the quotes removed.
// We have a small finite state machine with three states. When we
// leave text or a quoted region, we save the word and append it to
// "ret".
func Split(strIn string) []string {
	if len(strIn) < 1 {
		return nil
	}
	var sInfo = sInfo{strIn: strIn}
	state := sfnWhite
	for i := 0; i < len(strIn); i++ {
		state = state(i, strIn[i], &sInfo)
	}
	state(len(strIn), eot, &sInfo)
	return sInfo.ret
}
