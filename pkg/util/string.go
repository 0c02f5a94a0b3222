package util

import (
	"regexp"
	"strings"
)

var colorMarker = regexp.MustCompile("\x1b\\[([0-9\\;]*[A-Za-z])")

func RemoveColors(input string) string {
	return colorMarker.ReplaceAllString(input, "")
}

// CollapseReturns normalises CRLF line endings, as produced when running
// commands under a pseudo-terminal.
func CollapseReturns(input string) string {
	return strings.ReplaceAll(input, "\r\n", "\n")
}
