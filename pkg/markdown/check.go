// Package markdown locates custom-formatted table cells using a real
// Markdown parser, so tables inside code blocks are not reported.
package markdown

import (
	"bytes"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

const (
	MarkerBreak      = "<br>* "
	MarkerSelfClosed = "<br/>* "
	MarkerLeading    = "| * "
)

// Finding is one custom-formatting marker inside a table cell.
type Finding struct {
	Path   string
	Line   int
	Column int
	Cell   string
	Marker string
}

func PrepareMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.Table))
}

var md = PrepareMarkdown()

func CheckFile(path string) ([]Finding, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Check(path, source), nil
}

// Check reports every custom-formatting marker found in the table cells of
// source.
func Check(path string, source []byte) []Finding {
	doc := md.Parser().Parse(text.NewReader(source))
	findings := []Finding{}

	ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		cell, ok := node.(*extast.TableCell)
		if !ok {
			return ast.WalkContinue, nil
		}

		content, start, found := cellSource(cell, source)
		if !found {
			return ast.WalkSkipChildren, nil
		}

		line := bytes.Count(source[:start], []byte("\n")) + 1
		column := start - bytes.LastIndexByte(source[:start], '\n')

		for _, marker := range markersIn(content) {
			findings = append(findings, Finding{Path: path, Line: line, Column: column, Cell: content, Marker: marker})
		}

		return ast.WalkSkipChildren, nil
	})

	return findings
}

func markersIn(content string) []string {
	markers := []string{}

	if strings.Contains(content, MarkerBreak) {
		markers = append(markers, MarkerBreak)
	}

	if strings.Contains(content, MarkerSelfClosed) {
		markers = append(markers, MarkerSelfClosed)
	}

	if strings.HasPrefix(content, "* ") {
		markers = append(markers, MarkerLeading)
	}

	return markers
}

// cellSource returns the cell's trimmed source text and where it starts.
func cellSource(cell *extast.TableCell, source []byte) (string, int, bool) {
	if lines := cell.Lines(); lines.Len() > 0 {
		first, last := lines.At(0), lines.At(lines.Len()-1)
		if last.Stop > first.Start {
			return strings.TrimSpace(string(source[first.Start:last.Stop])), first.Start, true
		}
	}

	var b strings.Builder
	start := -1

	collectInline(cell, source, &b, &start)

	if start < 0 {
		return "", 0, false
	}

	return strings.TrimSpace(b.String()), start, true
}

func collectInline(node ast.Node, source []byte, b *strings.Builder, start *int) {
	mark := func(pos int) {
		if *start < 0 || pos < *start {
			*start = pos
		}
	}

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			mark(n.Segment.Start)
			b.Write(n.Segment.Value(source))
		case *ast.RawHTML:
			for i := 0; i < n.Segments.Len(); i++ {
				segment := n.Segments.At(i)
				mark(segment.Start)
				b.Write(segment.Value(source))
			}
		case *ast.String:
			b.Write(n.Value)
		default:
			collectInline(child, source, b, start)
		}
	}
}
