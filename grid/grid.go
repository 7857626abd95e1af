package grid

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/rollcall/fields"
)

// WidthHeadroom is the number of spare columns added to the widest row so
// that rows whose spans overrun the nominal width still fit.
const WidthHeadroom = 5

// Upper bounds for span attributes, as in the HTML table model.
const (
	MaxColSpan = 1000
	MaxRowSpan = 65534
)

// Cell is one physical <td> or <th> element
type Cell struct {
	// ID is unique within a grid and increases in document order
	ID int

	Node     *html.Node
	Text     string
	IsHeader bool

	// Parsed spans (always >= 1) and the attribute values they came from
	RowSpan    int
	ColSpan    int
	RawRowSpan string
	RawColSpan string

	// Logical position of the top-left corner
	Row int
	Col int
}

// Style returns the cell's inline style attribute
func (c *Cell) Style() string {
	return fields.Attr(c.Node, "style")
}

// Grid is the logical layout of a table. Positions no cell reaches are nil.
type Grid struct {
	Rows int
	Cols int

	positions [][]*Cell
	cells     []*Cell
	rowNodes  []*html.Node
}

// Build resolves the rows of table into a Grid. Rows of nested tables are
// not included.
func Build(table *html.Node) *Grid {
	rows := TableRows(table)

	width := 0
	for _, tr := range rows {
		sum := 0
		for _, td := range rowCells(tr) {
			sum += ParseSpan(fields.Attr(td, "colspan"), MaxColSpan)
		}
		if sum > width {
			width = sum
		}
	}

	g := &Grid{
		Rows:      len(rows),
		Cols:      width + WidthHeadroom,
		positions: make([][]*Cell, len(rows)),
		rowNodes:  rows,
	}
	for i := range g.positions {
		g.positions[i] = make([]*Cell, g.Cols)
	}

	for r, tr := range rows {
		col := 0
		for _, td := range rowCells(tr) {
			for col < g.Cols && g.positions[r][col] != nil {
				col++
			}
			if col >= g.Cols {
				break
			}

			cell := &Cell{
				ID:         len(g.cells),
				Node:       td,
				Text:       fields.NodeText(td),
				IsHeader:   td.Data == "th",
				RawRowSpan: fields.Attr(td, "rowspan"),
				RawColSpan: fields.Attr(td, "colspan"),
				Row:        r,
				Col:        col,
			}
			cell.RowSpan = ParseSpan(cell.RawRowSpan, MaxRowSpan)
			cell.ColSpan = ParseSpan(cell.RawColSpan, MaxColSpan)
			g.cells = append(g.cells, cell)

			for dr := 0; dr < cell.RowSpan && r+dr < g.Rows; dr++ {
				for dc := 0; dc < cell.ColSpan && col+dc < g.Cols; dc++ {
					g.positions[r+dr][col+dc] = cell
				}
			}
			col += cell.ColSpan
		}
	}

	return g
}

// ParseSpan converts a rowspan/colspan attribute value to a span of at
// least 1 and at most limit. Non-digit characters are ignored.
func ParseSpan(raw string, limit int) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 1
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 1
	}
	if limit > 0 && n > limit {
		return limit
	}
	return n
}

// At returns the cell covering (row, col), or nil when the position is
// empty or out of range.
func (g *Grid) At(row, col int) *Cell {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return nil
	}
	return g.positions[row][col]
}

// Row returns the positions of one logical row
func (g *Grid) Row(row int) []*Cell {
	if row < 0 || row >= g.Rows {
		return nil
	}
	return g.positions[row]
}

// Cells returns every physical cell in document order
func (g *Grid) Cells() []*Cell {
	return g.cells
}

// HeaderRow returns the first logical row
func (g *Grid) HeaderRow() []*Cell {
	return g.Row(0)
}

// HeaderTexts returns the cleaned text of the <th> cells in the table's
// first row, in document order. A first row without <th> cells yields nil.
func (g *Grid) HeaderTexts() []string {
	if len(g.rowNodes) == 0 {
		return nil
	}
	var texts []string
	for _, td := range rowCells(g.rowNodes[0]) {
		if td.Data == "th" {
			texts = append(texts, fields.NodeText(td))
		}
	}
	return texts
}

// DataRowCount returns the number of physical rows after the header row
func (g *Grid) DataRowCount() int {
	if g.Rows == 0 {
		return 0
	}
	return g.Rows - 1
}

// TableRows returns the <tr> elements of table in document order, looking
// through thead, tbody and tfoot but not into nested tables.
func TableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	if table == nil {
		return rows
	}
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "tr":
			rows = append(rows, c)
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					rows = append(rows, tr)
				}
			}
		}
	}
	return rows
}

func rowCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, c)
		}
	}
	return cells
}
