// Package grid recovers the logical row/column structure of an HTML table.
//
// HTML tables describe merged cells with rowspan and colspan attributes, so
// the markup for row N does not say which logical column each of its cells
// lands in. [Build] resolves the spans into a dense [Grid] in which every
// position refers to the cell that covers it:
//
//	g := grid.Build(tableNode)
//	for r := 1; r < g.Rows; r++ {
//	    cell := g.At(r, 0)
//	    ...
//	}
//
// # Cell identity
//
// A cell that spans several positions appears at each of them. Every cell
// carries a sequence number ([Cell.ID]) assigned in document order, so a
// row-span continuation is recognized by comparing IDs rather than
// pointers.
//
// # Malformed spans
//
// Span attributes in the wild contain junk such as "2;" or "3 ". Non-digit
// characters are discarded and anything unusable becomes 1; a table is
// never rejected because of its span attributes.
package grid
