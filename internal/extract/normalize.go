package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
	lineEndingRe = regexp.MustCompile(`\r\n?`)
)

// Normalize cleans extracted text into a canonical form: all line endings
// become \n, control characters other than newline and tab are stripped,
// whitespace runs within a line collapse to a single space, lines are
// trimmed, and runs of three or more newlines collapse to exactly two.
// Normalize is idempotent: applying it to already-normalized text is a no-op.
func Normalize(s string) string {
	s = lineEndingRe.ReplaceAllString(s, "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRunRe.ReplaceAllString(line, " "))
	}

	out := strings.Join(lines, "\n")
	out = blankRunRe.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
