package htmldoc

import (
	"strings"
	"sync"

	"golang.org/x/net/html"

	"github.com/tsawler/rollcall/grid"
)

// NavigationExclusionMode controls which tables are treated as page
// furniture and skipped.
type NavigationExclusionMode int

const (
	// NavigationExclusionNone keeps every table.
	NavigationExclusionNone NavigationExclusionMode = iota

	// NavigationExclusionExplicit skips tables inside <nav>, <aside> and
	// elements with role="navigation" or role="complementary".
	NavigationExclusionExplicit

	// NavigationExclusionStandard (default) also skips tables whose own or
	// enclosing class/id marks them as navboxes, infoboxes, sidebars or
	// maintenance banners.
	NavigationExclusionStandard
)

// Table is one top-level <table> element of a page
type Table struct {
	// Index is the table's position among all top-level tables of the
	// page, counting excluded ones.
	Index   int
	Node    *html.Node
	Caption string
	Classes []string

	gridOnce sync.Once
	grid     *grid.Grid
}

// HasClass reports whether the table carries the CSS class c
// (case-insensitive).
func (t *Table) HasClass(c string) bool {
	for _, class := range t.Classes {
		if strings.EqualFold(class, c) {
			return true
		}
	}
	return false
}

// Grid returns the table's logical grid, building it on first use. The
// grid is shared by all callers and must not be modified.
func (t *Table) Grid() *grid.Grid {
	t.gridOnce.Do(func() {
		t.grid = grid.Build(t.Node)
	})
	return t.grid
}

// HeaderTexts returns the cleaned texts of the <th> cells of the first row
func (t *Table) HeaderTexts() []string {
	return t.Grid().HeaderTexts()
}

// DataRowCount returns the number of rows after the header row
func (t *Table) DataRowCount() int {
	return t.Grid().DataRowCount()
}
