package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tsawler/rollcall"
	"github.com/tsawler/rollcall/model"
)

// Summary counts the records of one or more pages
type Summary struct {
	Regular   int
	Acting    int
	Incumbent int

	// IncumbentName is the first incumbent seen
	IncumbentName string

	// Parties counts regular officeholders by party code ("Unknown" when
	// the party is not known).
	Parties map[string]int
}

// Summarize counts records
func Summarize(records []model.Record) Summary {
	s := Summary{Parties: make(map[string]int)}
	for _, r := range records {
		if r.IsActing {
			s.Acting++
		} else {
			s.Regular++
			s.Parties[r.PartyOr("Unknown")]++
		}
		if r.IsIncumbent {
			s.Incumbent++
			if s.IncumbentName == "" {
				s.IncumbentName = r.Name
			}
		}
	}
	return s
}

// Line formats the summary as "10 officeholders + 1 acting (incumbent: X)"
func (s Summary) Line() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d officeholders", s.Regular)
	if s.Acting > 0 {
		fmt.Fprintf(&sb, " + %d acting", s.Acting)
	}
	if s.IncumbentName != "" {
		fmt.Fprintf(&sb, " (incumbent: %s)", s.IncumbentName)
	}
	return sb.String()
}

// PartyBreakdown lists party counts, largest first, ties by code
func (s Summary) PartyBreakdown() string {
	codes := make([]string, 0, len(s.Parties))
	for code := range s.Parties {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		ci, cj := s.Parties[codes[i]], s.Parties[codes[j]]
		if ci != cj {
			return ci > cj
		}
		return codes[i] < codes[j]
	})

	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = fmt.Sprintf("%s=%d", code, s.Parties[code])
	}
	return strings.Join(parts, " ")
}

func pageLabel(r pageResult) string {
	if r.page.Jurisdiction != "" {
		return r.page.Jurisdiction
	}
	return r.page.File
}

// printSummary writes one line per page and a total block
func printSummary(w io.Writer, results []pageResult) {
	var all []model.Record
	empty := 0

	for _, r := range results {
		if r.page.File == "" {
			// never started
			continue
		}
		switch {
		case errors.Is(r.err, rollcall.ErrNoTable):
			fmt.Fprintf(w, "  %s: no officeholder table found\n", pageLabel(r))
		case errors.Is(r.err, rollcall.ErrNoNameColumn):
			fmt.Fprintf(w, "  %s: could not identify name column\n", pageLabel(r))
		case r.err != nil:
			fmt.Fprintf(w, "  %s: %v\n", pageLabel(r), r.err)
		default:
			fmt.Fprintf(w, "  %s: %s\n", pageLabel(r), Summarize(r.records).Line())
		}
		if len(r.records) == 0 {
			empty++
		}
		all = append(all, r.records...)
	}

	total := Summarize(all)
	fmt.Fprintf(w, "\nTotal: %d officeholders + %d acting\n", total.Regular, total.Acting)
	fmt.Fprintf(w, "Incumbents: %d\n", total.Incumbent)
	fmt.Fprintf(w, "Pages with 0 records: %d\n", empty)
	if len(total.Parties) > 0 {
		fmt.Fprintf(w, "Party breakdown: %s\n", total.PartyBreakdown())
	}
}
