// Package sink writes extracted records to local storage.
//
// Two writers implement [Writer]:
//
//   - [JSONL] writes one JSON object per line
//   - [SQLite] upserts into the officeholder_terms table, keyed by
//     (state, name, start_year)
//
// [Open] picks the writer from the output path's extension. Both writers
// are safe for concurrent use.
package sink
