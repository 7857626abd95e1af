// Package roster turns the data rows of a classified officeholder table
// into records.
//
// A [Parser] walks the rows below the header of a [grid.Grid], reading the
// columns named by a [layout.Layout]. Rows are skipped when they are
// vacancy banners, continuation rows of a name cell spanning several rows,
// footnotes or party names in the name column, or carry no year at all.
// Terms that ended before the cutoff year are dropped, as are open terms
// that started before it unless the table marks them as ongoing.
//
//	p := roster.NewParser(roster.Options{Cutoff: 1960, Jurisdiction: "OH"})
//	records := roster.Dedupe(p.Parse(g, l))
//
// [Dedupe] removes repeated (name, start year) pairs, keeping the first.
package roster
