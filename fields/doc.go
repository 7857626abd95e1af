// Package fields provides the field extractors used to turn roster table
// cells into record values.
//
// Each extractor is an independent, pure function over cell text or cell
// markup, so they can be composed freely by the row parser and tested in
// isolation.
//
// # Text
//
// [CleanText] is the common normalization step: Unicode NFKC (which also
// turns non-breaking spaces into plain spaces), removal of footnote markers
// such as "[3]" and whitespace collapsing. [NodeText] extracts the text of
// an HTML node with a space between text runs.
//
// # Names
//
// [ExtractName] prefers bold link text, then any link text, then the plain
// cell text. [CleanName] strips footnotes and "Acting"/"Interim" qualifiers.
//
// # Parties
//
// Party names are normalized through an ordered rule table ([PartyTable])
// embedded as parties.yaml:
//
//	code := fields.NormalizeParty("Democratic Party[2]") // "D"
//
// Exact matches are tried first, then the first rule whose key appears
// inside the text. Unknown short text is returned as-is; unknown long text
// is treated as prose and discarded.
//
// # Dates
//
// [ParseTerm] reads a combined term cell such as "January 3, 1995 –
// January 5, 1999" or "2019–", and [ParseBound] reads a single start or end
// cell. Incumbent terms ("present", "incumbent", a trailing dash) never
// produce an end year or end date.
package fields
