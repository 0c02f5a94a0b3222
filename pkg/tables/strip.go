package tables

import (
	"bufio"
	"io"
	"strings"
)

// Replacement is a literal substitution applied to every line.
type Replacement struct {
	From string
	To   string
}

// DefaultReplacements drop the bullet marker that follows a line break or
// opens a table cell. Order matters: they are applied one after another.
var DefaultReplacements = []Replacement{
	{From: "<br>* ", To: "<br> "},
	{From: "<br/>* ", To: "<br/> "},
	{From: "| * ", To: "| "},
}

// Strip removes custom bullet markers from table cells while keeping the
// tables themselves.
type Strip struct {
	Replacements []Replacement
}

func NewStrip() *Strip {
	return &Strip{Replacements: DefaultReplacements}
}

func (s *Strip) Transform(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	out := bufio.NewWriter(w)

	err := eachLine(r, func(line string) error {
		stats.Lines++

		replaced := line
		for _, rep := range s.Replacements {
			if n := strings.Count(replaced, rep.From); n > 0 {
				stats.Replacements += n
				replaced = strings.ReplaceAll(replaced, rep.From, rep.To)
			}
		}

		if replaced != line {
			stats.LinesChanged++
		}

		_, err := out.WriteString(replaced)
		return err
	})

	if err != nil {
		return stats, err
	}

	return stats, out.Flush()
}
