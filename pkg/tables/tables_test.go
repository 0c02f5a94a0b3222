package tables

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/elseano/ccft-pymarkdown/pkg/errs"
	"github.com/elseano/ccft-pymarkdown/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transform(t *testing.T, tr Transformer, source string) (string, Stats) {
	t.Helper()

	var out bytes.Buffer
	stats, err := tr.Transform(strings.NewReader(source), &out)
	require.NoError(t, err)

	return out.String(), stats
}

func TestStripRemovesBulletMarkers(t *testing.T) {
	source := strings.Join([]string{
		"# Title",
		"",
		"| Name | Items |",
		"|------|-------|",
		"| a | * one<br>* two<br/>* three |",
		"| b | plain |",
		"",
	}, "\n")

	expected := strings.Join([]string{
		"# Title",
		"",
		"| Name | Items |",
		"|------|-------|",
		"| a | one<br> two<br/> three |",
		"| b | plain |",
		"",
	}, "\n")

	actual, stats := transform(t, NewStrip(), source)

	assert.Equal(t, expected, actual)
	assert.Equal(t, 6, stats.Lines)
	assert.Equal(t, 1, stats.LinesChanged)
	assert.Equal(t, 3, stats.Replacements)
	assert.True(t, stats.Changed())
}

func TestStripPreservesLineEndings(t *testing.T) {
	source := "| * a |\r\nno newline at end<br>* x"

	actual, stats := transform(t, NewStrip(), source)

	assert.Equal(t, "| a |\r\nno newline at end<br> x", actual)
	assert.Equal(t, 2, stats.Lines)
}

func TestStripLeavesOtherContentAlone(t *testing.T) {
	source := "* a list item\n\n|* no space after pipe |\n<br>*emphasis*\n"

	actual, stats := transform(t, NewStrip(), source)

	assert.Equal(t, source, actual)
	assert.False(t, stats.Changed())
}

func TestStripEmptyInput(t *testing.T) {
	actual, stats := transform(t, NewStrip(), "")

	assert.Equal(t, "", actual)
	assert.Equal(t, 0, stats.Lines)
}

func TestRemoveDropsCustomTables(t *testing.T) {
	source := strings.Join([]string{
		"# Title",
		"",
		"| Name | Items |",
		"|:-----|------:|",
		"| a | one<br/>* two |",
		"",
		"Between",
		"",
		"| Plain | Table |",
		"|-------|-------|",
		"| x | y |",
		"",
		"End",
		"",
	}, "\n")

	expected := strings.Join([]string{
		"# Title",
		"",
		"Between",
		"",
		"| Plain | Table |",
		"|-------|-------|",
		"| x | y |",
		"",
		"End",
		"",
	}, "\n")

	actual, stats := transform(t, NewRemove(), source)

	testutil.AssertLines(t, expected, actual)
	assert.Equal(t, 4, stats.LinesRemoved)
	assert.True(t, stats.Changed())
}

func TestRemoveKeepsDocumentsWithoutCustomTables(t *testing.T) {
	source := "Text\n\n\n| a | b |\n|:--|--:|\n| 1 | 2 |\n"

	actual, stats := transform(t, NewRemove(), source)

	assert.Equal(t, source, actual)
	assert.False(t, stats.Changed())
}

func TestRemoveTableAtEndOfFile(t *testing.T) {
	source := "Text\n\n| a | b |\n|---|---|\n| 1 | x<br>* y |"

	actual, _ := transform(t, NewRemove(), source)

	assert.Equal(t, "Text\n", actual)
}

func TestParseMode(t *testing.T) {
	tr, err := ParseMode("")
	require.NoError(t, err)
	assert.IsType(t, &Strip{}, tr)

	tr, err = ParseMode(" Remove ")
	require.NoError(t, err)
	assert.IsType(t, &Remove{}, tr)

	_, err = ParseMode("shred")
	assert.True(t, errors.Is(err, errs.ErrInvalidConfig))
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTransformReportsWriteErrors(t *testing.T) {
	large := strings.Repeat("| * cell |\n", 1000)

	_, err := NewStrip().Transform(strings.NewReader(large), failingWriter{})
	assert.EqualError(t, err, "disk full")

	_, err = NewRemove().Transform(strings.NewReader(large+"text\n"), failingWriter{})
	assert.EqualError(t, err, "disk full")
}
