package roster

import "github.com/tsawler/rollcall/model"

// Dedupe removes records whose name and start year were already seen,
// keeping the first occurrence. Records without a start year share one key
// per name. The input is not modified.
func Dedupe(records []model.Record) []model.Record {
	seen := make(map[string]bool, len(records))
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		k := r.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}
