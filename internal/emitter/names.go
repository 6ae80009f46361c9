package emitter

import (
	"regexp"
	"strings"
)

var (
	spaceRe = regexp.MustCompile(`\s+`)
	dashRe  = regexp.MustCompile(`-+`)
	digitRe = regexp.MustCompile(`^\d+$`)
)

// MakeStem derives the cut-file name stem from a work-order number and a
// line index: whitespace dropped, dash runs collapsed, numeric lines
// zero-padded to two digits.
func MakeStem(woNumber, line string) string {
	num := spaceRe.ReplaceAllString(strings.TrimSpace(woNumber), "")
	num = dashRe.ReplaceAllString(num, "-")

	line = strings.TrimSpace(line)
	if line == "" {
		line = "01"
	}
	if digitRe.MatchString(line) && len(line) < 2 {
		line = "0" + line
	}
	return num + "-" + line
}
