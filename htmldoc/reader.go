// Package htmldoc reads HTML pages and exposes their tables.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/tsawler/rollcall/fields"
)

// DefaultTableClass is the CSS class carried by roster tables on
// encyclopedic reference pages.
const DefaultTableClass = "wikitable"

// Reader provides access to the tables of one HTML page
type Reader struct {
	doc    *goquery.Document
	title  string
	tables []*Table
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader with the default navigation
// exclusion mode.
func OpenReader(r io.Reader) (*Reader, error) {
	return OpenReaderWithMode(r, NavigationExclusionStandard)
}

// OpenReaderWithMode parses HTML from an io.Reader, skipping boilerplate
// tables according to mode.
func OpenReaderWithMode(r io.Reader, mode NavigationExclusionMode) (*Reader, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	doc := goquery.NewDocumentFromNode(node)

	reader := &Reader{
		doc:   doc,
		title: strings.TrimSpace(doc.Find("title").First().Text()),
	}
	reader.collectTables(newExclusionChecker(mode))

	return reader, nil
}

// collectTables records every top-level table in document order
func (r *Reader) collectTables(checker *exclusionChecker) {
	index := 0
	r.doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		// Nested tables belong to their enclosing cell
		if s.ParentsFiltered("table").Length() > 0 {
			return
		}
		idx := index
		index++

		node := s.Nodes[0]
		if checker.shouldExclude(node) {
			return
		}

		caption := ""
		if c := s.ChildrenFiltered("caption").First(); c.Length() > 0 {
			caption = fields.NodeText(c.Nodes[0])
		}

		r.tables = append(r.tables, &Table{
			Index:   idx,
			Node:    node,
			Caption: caption,
			Classes: strings.Fields(s.AttrOr("class", "")),
		})
	})
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Title returns the page title
func (r *Reader) Title() string {
	return r.title
}

// Tables returns all content tables of the page in document order.
func (r *Reader) Tables() []*Table {
	return r.tables
}

// TablesWithClass returns the content tables carrying the CSS class.
// An empty class returns every content table.
func (r *Reader) TablesWithClass(class string) []*Table {
	if class == "" {
		return r.tables
	}
	var out []*Table
	for _, t := range r.tables {
		if t.HasClass(class) {
			out = append(out, t)
		}
	}
	return out
}
