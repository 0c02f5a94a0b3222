package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/elseano/ccft-pymarkdown/pkg/ccft"
	"github.com/elseano/ccft-pymarkdown/pkg/discover"
	"github.com/elseano/ccft-pymarkdown/pkg/errs"
	"github.com/elseano/ccft-pymarkdown/pkg/markdown"
	"github.com/elseano/ccft-pymarkdown/pkg/util"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [PATH]...",
		Short: "List table cells which use custom formatting",
		Long:  `Reports custom-formatted table cells without changing any files.`,
		RunE:  runCheck,
	}

	cmd.Flags().StringVar(&flagExclusion, "exclusion", "git", "How directories are searched for Markdown files (git, hidden, none)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := loadProject(cmd, args)
	if err != nil {
		return err
	}

	files, err := checkFiles(p, p.paths(args))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colors := util.Colors(out)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Location", "Marker", "Cell"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)

	count := 0

	for _, file := range files {
		findings, err := markdown.CheckFile(file)
		if err != nil {
			return &errs.FileError{Op: "check", Path: file, Err: err}
		}

		for _, finding := range findings {
			location := fmt.Sprintf("%s:%d:%d", p.display(finding.Path), finding.Line, finding.Column)
			table.Append([]string{location, fmt.Sprintf("%q", finding.Marker), finding.Cell})
		}

		count += len(findings)
	}

	if count == 0 {
		fmt.Fprintf(out, "%s\n", colors.Green("No custom-formatted table cells found."))
		return nil
	}

	table.Render()

	fmt.Fprintf(out, "\n%s\n", colors.Yellow(fmt.Sprintf("%d custom-formatted cell(s) in %d file(s) checked.", count, len(files))))

	return nil
}

func checkFiles(p *project, paths []string) ([]string, error) {
	files := ccft.NewFileSet()

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(abs)
		if err != nil {
			return nil, &errs.FileError{Op: "check", Path: abs, Err: errs.ErrNotFound}
		}

		if info.IsDir() {
			found, err := discover.MarkdownFiles(abs, p.Config.Exclusion)
			if err != nil {
				return nil, err
			}

			files.Merge(ccft.NewFileSet(found...))
			continue
		}

		if !discover.IsMarkdown(abs) {
			return nil, &errs.FileError{Op: "check", Path: abs, Err: errs.ErrNotMarkdown}
		}

		files.Add(abs)
	}

	return files.Paths(), nil
}
