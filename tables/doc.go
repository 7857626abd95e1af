// Package tables picks the officeholder roster out of the tables of a page.
//
// Every candidate is scored by a [Selector]. Tables are disqualified when
// they are election-result matrices, party summaries, or have no name
// column. The remaining tables score one point per data row, plus bonuses
// for a term column, a party column and a caption naming the office. The
// highest score wins; ties go to the earlier table.
//
//	sel := tables.NewSelector(tables.DefaultConfig())
//	best, err := sel.Select(reader.TablesWithClass("wikitable"))
//	if errors.Is(err, tables.ErrNoTable) {
//		// page has no roster
//	}
//
// [Selector.Evaluate] returns the full scoring of every candidate, which
// is what the "tables" command prints.
package tables
