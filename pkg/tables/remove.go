package tables

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var (
	tableLine       = regexp.MustCompile(`^\|(?:( .+)|[-:|]+)\|`)
	customTableLine = regexp.MustCompile(`^\| .+<br/?>\* .`)
)

// Remove drops every table containing a custom-formatted row, along with the
// blank line directly above it. Other tables are left untouched.
type Remove struct{}

func NewRemove() *Remove {
	return &Remove{}
}

func (Remove) Transform(r io.Reader, w io.Writer) (Stats, error) {
	var (
		stats   Stats
		block   []string
		custom  bool
		pending string
		werr    error
	)

	out := bufio.NewWriter(w)
	write := func(s string) {
		if werr == nil && s != "" {
			_, werr = out.WriteString(s)
		}
	}

	flush := func() {
		switch {
		case len(block) == 0:
			write(pending)
		case custom:
			stats.LinesRemoved += len(block)
			if pending != "" {
				stats.LinesRemoved++
			}
		default:
			write(pending)
			for _, line := range block {
				write(line)
			}
		}

		block = block[:0]
		custom = false
		pending = ""
	}

	err := eachLine(r, func(line string) error {
		stats.Lines++

		if tableLine.MatchString(line) {
			block = append(block, line)
			if customTableLine.MatchString(line) {
				custom = true
			}
			return werr
		}

		flush()

		if strings.TrimRight(line, "\r\n") == "" {
			pending = line
			return werr
		}

		write(line)
		return werr
	})

	if err != nil {
		return stats, err
	}

	flush()

	if werr != nil {
		return stats, werr
	}

	return stats, out.Flush()
}
