package lint

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/elseano/ccft-pymarkdown/pkg/errs"
	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineFailure(t *testing.T) {
	failure, pragma := ParseLine("docs/guide.md:12:1: MD013: Line length [Expected: 80, Actual: 95] (line-length)\n")

	assert.Nil(t, pragma)
	require.NotNil(t, failure)
	assert.Equal(t, Failure{
		File:        "docs/guide.md",
		Line:        12,
		Column:      1,
		RuleID:      "MD013",
		Description: "Line length [Expected: 80, Actual: 95]",
		RuleName:    "line-length",
	}, *failure)
}

func TestParseLineFailureWithoutRuleName(t *testing.T) {
	failure, _ := ParseLine("\x1b[31ma.md:3:7: PML101: Something odd\x1b[0m\r\n")

	require.NotNil(t, failure)
	assert.Equal(t, "a.md", failure.File)
	assert.Equal(t, "PML101", failure.RuleID)
	assert.Equal(t, "Something odd", failure.Description)
	assert.Equal(t, "", failure.RuleName)
}

func TestParseLinePragma(t *testing.T) {
	failure, pragma := ParseLine("README.md:4: INLINE: Inline configuration command 'foo' not understood.")

	assert.Nil(t, failure)
	require.NotNil(t, pragma)
	assert.Equal(t, PragmaError{File: "README.md", Line: 4, Message: "Inline configuration command 'foo' not understood."}, *pragma)
}

func TestParseLineOther(t *testing.T) {
	failure, pragma := ParseLine("BadTokenizationError encountered while scanning")

	assert.Nil(t, failure)
	assert.Nil(t, pragma)
}

func fakeLinter(script string) *Runner {
	return &Runner{Command: []string{"sh", "-c", script, "pymarkdown"}, Logger: zerolog.Nop()}
}

func TestRunCollectsFailures(t *testing.T) {
	runner := fakeLinter(`echo "$1:1:1: MD041: First line in file should be a top level heading (first-line-heading)"
echo "$1:2: INLINE: bad pragma"
echo "just noise"
exit 1`)

	var out bytes.Buffer
	result, err := runner.Run(context.Background(), []string{"a.md"}, &out)

	var execErr *errs.ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, 1, execErr.ExitCode)

	require.NotNil(t, result)
	assert.True(t, result.Failed())
	assert.Equal(t, 1, result.ExitCode)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "a.md", result.Failures[0].File)
	assert.Equal(t, "MD041", result.Failures[0].RuleID)
	require.Len(t, result.PragmaErrors, 1)
	assert.Equal(t, 2, result.PragmaErrors[0].Line)

	assert.Contains(t, out.String(), "just noise\n")
}

func TestRunReportsSignalledLinter(t *testing.T) {
	runner := fakeLinter(`echo "$1:1:1: MD041: First line (first-line-heading)"; kill -9 $$`)

	result, err := runner.Run(context.Background(), []string{"a.md"}, nil)

	var execErr *errs.ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, 128+9, execErr.ExitCode)
	assert.Equal(t, 128+9, result.ExitCode)
	assert.Len(t, result.Failures, 1)
}

func TestRunPassesPathsAndDir(t *testing.T) {
	dir := t.TempDir()
	runner := fakeLinter(`pwd; echo "$@"`)
	runner.Dir = dir

	var out bytes.Buffer
	result, err := runner.Run(context.Background(), []string{"one.md", "two.md"}, &out)
	require.NoError(t, err)
	assert.False(t, result.Failed())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "one.md two.md", lines[1])
}

func TestRunLinterNotFound(t *testing.T) {
	runner := &Runner{Command: []string{"ccft-no-such-linter-binary"}, Logger: zerolog.Nop()}

	_, err := runner.Run(context.Background(), nil, nil)
	assert.True(t, errors.Is(err, errs.ErrLinterNotFound))
}

func TestRunWithoutCommand(t *testing.T) {
	_, err := (&Runner{}).Run(context.Background(), nil, nil)
	assert.True(t, errors.Is(err, errs.ErrInvalidConfig))
}

func TestReport(t *testing.T) {
	result := &Result{
		ExitCode: 1,
		Failures: []Failure{
			{File: "/repo/docs/a.md", Line: 3, Column: 1, RuleID: "MD022", Description: "Headings should be surrounded by blank lines", RuleName: "blanks-around-headings"},
		},
		PragmaErrors: []PragmaError{
			{File: "/repo/b.md", Line: 1, Message: "bad pragma"},
		},
	}

	var out bytes.Buffer
	Report(&out, result, "/repo", 120, aurora.NewAurora(false))

	report := out.String()
	assert.Contains(t, report, "docs/a.md:3:1")
	assert.Contains(t, report, "MD022 (blanks-around-headings)")
	assert.Contains(t, report, "b.md:1")
	assert.Contains(t, report, "2 problem(s) found.")
	assert.Less(t, strings.Index(report, "bad pragma"), strings.Index(report, "MD022"))
	assert.NotContains(t, report, "/repo/")
}

func TestReportClean(t *testing.T) {
	var out bytes.Buffer
	Report(&out, &Result{}, "", 80, aurora.NewAurora(false))

	assert.Equal(t, "No markdown problems found.\n", out.String())
}
