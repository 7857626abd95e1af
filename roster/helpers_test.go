package roster

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/tsawler/rollcall/grid"
	"github.com/tsawler/rollcall/layout"
)

// classify builds and classifies the first table in src.
func classify(t *testing.T, src string) (*grid.Grid, *layout.Layout) {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("NewDocumentFromReader() failed: %v", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		t.Fatal("no <table> in source")
	}
	g := grid.Build(table.Nodes[0])
	l, err := layout.Classify(g)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	return g, l
}

// rows wraps a header row and data rows into a table.
func rows(header string, data ...string) string {
	var sb strings.Builder
	sb.WriteString("<table><tr>")
	sb.WriteString(header)
	sb.WriteString("</tr>")
	for _, d := range data {
		sb.WriteString("<tr>")
		sb.WriteString(d)
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
	return sb.String()
}
