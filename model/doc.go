// Package model provides the output representation for extracted
// officeholder data.
//
// Every extraction in rollcall ends in a slice of [Record] values. A record
// is a flat, immutable description of one term of office: who held it, for
// which party, and when it began and ended.
//
// # Records
//
// Optional fields are pointers so that "unknown" is distinct from a zero
// value:
//
//	r := model.Record{State: "CA", Name: "Jane Smith"}
//	r.StartYear = model.Int(2019)
//	r.StartDate = model.String("2019-01-07")
//
// # Invariants
//
// A record always carries at least one of StartYear or EndYear. IsIncumbent
// is true exactly when EndYear is nil and StartYear is not, and an incumbent
// record never carries an EndDate. [Record.Validate] checks all three.
//
// # Serialization
//
// Records marshal to the flat JSON shape consumed by the persistence layer:
//
//	{"state":"CA","name":"Jane Smith","party":"D","start_year":2019,
//	 "end_year":null,"start_date":"2019-01-07","end_date":null,
//	 "is_acting":false,"is_incumbent":true}
package model
