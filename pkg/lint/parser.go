package lint

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/elseano/ccft-pymarkdown/pkg/util"
)

// Failure is a single rule violation reported by the linter.
type Failure struct {
	File        string
	Line        int
	Column      int
	RuleID      string
	Description string
	RuleName    string
}

// PragmaError is a problem with an inline linter directive.
type PragmaError struct {
	File    string
	Line    int
	Message string
}

var (
	failureMatcher = regexp.MustCompile(`^(.+?):(\d+):(\d+): ([A-Za-z]+\d+): (.*?)(?: \(([^()]+)\))?$`)
	pragmaMatcher  = regexp.MustCompile(`^(.+?):(\d+): INLINE: (.*)$`)
)

// ParseLine recognises linter output lines. At most one of the results is
// non-nil; both are nil for lines that are neither.
func ParseLine(line string) (*Failure, *PragmaError) {
	line = strings.TrimSuffix(util.CollapseReturns(util.RemoveColors(line)), "\n")

	if matches := pragmaMatcher.FindStringSubmatch(line); matches != nil {
		lineNo, _ := strconv.Atoi(matches[2])
		return nil, &PragmaError{File: matches[1], Line: lineNo, Message: matches[3]}
	}

	if matches := failureMatcher.FindStringSubmatch(line); matches != nil {
		lineNo, _ := strconv.Atoi(matches[2])
		column, _ := strconv.Atoi(matches[3])

		return &Failure{
			File:        matches[1],
			Line:        lineNo,
			Column:      column,
			RuleID:      matches[4],
			Description: matches[5],
			RuleName:    matches[6],
		}, nil
	}

	return nil, nil
}
