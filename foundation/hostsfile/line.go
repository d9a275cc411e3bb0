package hostsfile

import (
	"strings"
)

// commentMark prefixes comment lines and trailing entry comments.
const commentMark = "#"

// Line represents the raw tokens extracted from one hosts file line before
// any deep validation takes place.
type Line struct {
	Addr    string
	Host    string
	Comment string
}

// ParseLine classifies a single raw line of hosts file text. Blank lines,
// comment lines and lines without both an address and a hostname token
// report false; the caller skips them silently. The first #-prefixed
// trailing run becomes the comment; any bare token between the hostname and
// that run is discarded.
func ParseLine(raw string) (Line, bool) {
	line := Clean(raw)

	if line == "" || strings.HasPrefix(line, commentMark) {
		return Line{}, false
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Line{}, false
	}

	l := Line{
		Addr: fields[0],
		Host: fields[1],
	}

	for i := 2; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], commentMark) {
			comment := strings.Join(fields[i:], " ")
			l.Comment = strings.TrimSpace(strings.TrimPrefix(comment, commentMark))
			break
		}
	}

	return l, true
}

// Clean normalizes one raw line: control characters are stripped and the
// result is trimmed of surrounding whitespace.
func Clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		if r < ' ' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}
