// Package layout infers the semantic role of each column of an
// officeholder table from its header row.
//
// Header cells are matched against an ordered rule table ([Rules]); the
// first rule whose pattern matches the lowercased, footnote-free header
// text assigns the role. Multi-column headers are split:
//
//   - a name header spanning several columns puts the name in the last
//     sub-column and a portrait in the first ([RoleNameImage])
//   - a party header spanning several columns puts the party color swatch
//     in the first sub-column ([RolePartyColor]) and the party in the last
//   - a term header spanning several columns becomes separate start and
//     end columns
//
// # Usage
//
//	l, err := layout.Classify(g)
//	if errors.Is(err, layout.ErrNoNameColumn) {
//		// not an officeholder table
//	}
//	nameCol, _ := l.Column(layout.RoleName)
//
// A [Layout] is immutable once Classify returns.
package layout
