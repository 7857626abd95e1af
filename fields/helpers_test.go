package fields

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// parseCell parses inner as the content of a single <td> and returns the
// cell node.
func parseCell(t *testing.T, inner string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader("<table><tr><td>" + inner + "</td></tr></table>"))
	if err != nil {
		t.Fatalf("html.Parse() failed: %v", err)
	}
	var find func(n *html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "td" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := find(c); found != nil {
				return found
			}
		}
		return nil
	}
	cell := find(doc)
	if cell == nil {
		t.Fatal("no <td> in parsed fragment")
	}
	return cell
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
