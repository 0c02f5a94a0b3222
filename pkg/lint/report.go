package lint

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/logrusorgru/aurora"
	"github.com/muesli/reflow/wordwrap"
	"github.com/olekukonko/tablewriter"
)

// Report renders the result as a table, pragma errors first. Paths are shown
// relative to root when possible.
func Report(w io.Writer, result *Result, root string, width int, colors aurora.Aurora) {
	if len(result.Failures) == 0 && len(result.PragmaErrors) == 0 {
		fmt.Fprintf(w, "%s\n", colors.Green("No markdown problems found."))
		return
	}

	descWidth := width - 40
	if descWidth < 30 {
		descWidth = 30
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Location", "Rule", "Description"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)

	for _, pragma := range result.PragmaErrors {
		location := relative(root, pragma.File) + ":" + strconv.Itoa(pragma.Line)
		table.Append([]string{location, "INLINE", wordwrap.String(pragma.Message, descWidth)})
	}

	for _, failure := range result.Failures {
		location := fmt.Sprintf("%s:%d:%d", relative(root, failure.File), failure.Line, failure.Column)
		rule := failure.RuleID
		if failure.RuleName != "" {
			rule = rule + " (" + failure.RuleName + ")"
		}
		table.Append([]string{location, rule, wordwrap.String(failure.Description, descWidth)})
	}

	table.Render()

	fmt.Fprintf(w, "\n%s\n", colors.Red(fmt.Sprintf("%d problem(s) found.", len(result.Failures)+len(result.PragmaErrors))))
}

func relative(root string, path string) string {
	if root == "" || !filepath.IsAbs(path) {
		return path
	}

	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}

	return path
}
