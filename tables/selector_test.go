package tables

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tsawler/rollcall/htmldoc"
)

// pageTables parses the given table markup as one page and returns its
// tables.
func pageTables(t *testing.T, tables ...string) []*htmldoc.Table {
	t.Helper()
	src := "<html><body>" + strings.Join(tables, "\n") + "</body></html>"
	r, err := htmldoc.OpenReaderWithMode(strings.NewReader(src), htmldoc.NavigationExclusionNone)
	if err != nil {
		t.Fatalf("OpenReaderWithMode() failed: %v", err)
	}
	return r.Tables()
}

// table builds a table with the given caption, header cells and number of
// data rows.
func table(caption string, headers []string, rows int) string {
	var sb strings.Builder
	sb.WriteString(`<table class="wikitable">`)
	if caption != "" {
		fmt.Fprintf(&sb, "<caption>%s</caption>", caption)
	}
	sb.WriteString("<tr>")
	for _, h := range headers {
		fmt.Fprintf(&sb, "<th>%s</th>", h)
	}
	sb.WriteString("</tr>")
	for i := 0; i < rows; i++ {
		sb.WriteString("<tr>")
		for range headers {
			sb.WriteString("<td>x</td>")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
	return sb.String()
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		office    string
		tables    []string
		wantIndex int
	}{
		{
			name: "roster among noise",
			tables: []string{
				table("", []string{"Year", "Democratic", "Republican"}, 40),
				table("", []string{"Party", "Seats"}, 3),
				table("", []string{"Name", "Party", "Term"}, 3),
			},
			wantIndex: 2,
		},
		{
			name: "party column outweighs rows",
			tables: []string{
				table("", []string{"Name", "Term"}, 150),
				table("", []string{"Name", "Party", "Term"}, 2),
			},
			wantIndex: 1,
		},
		{
			name: "tie goes to first",
			tables: []string{
				table("", []string{"Name", "Party", "Term"}, 4),
				table("", []string{"Name", "Party", "Term"}, 4),
			},
			wantIndex: 0,
		},
		{
			name:   "caption names the office",
			office: "Governor",
			tables: []string{
				table("Governors of Ohio Territory", []string{"Name", "Party", "Term"}, 10),
				table("Governors of Ohio", []string{"Name", "Party", "Term"}, 5),
			},
			wantIndex: 1,
		},
		{
			name: "caption ignored without office hint",
			tables: []string{
				table("Governors of Ohio Territory", []string{"Name", "Party", "Term"}, 10),
				table("Governors of Ohio", []string{"Name", "Party", "Term"}, 5),
			},
			wantIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Office = tt.office
			got, err := NewSelector(cfg).Select(pageTables(t, tt.tables...))
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if got.Index != tt.wantIndex {
				t.Errorf("Select() picked table %d, want %d", got.Index, tt.wantIndex)
			}
		})
	}
}

func TestSelect_NoTable(t *testing.T) {
	tests := []struct {
		name   string
		tables []string
	}{
		{"no tables", nil},
		{"election results only", []string{table("", []string{"Election", "Democratic", "Republican"}, 5)}},
		{"no name column", []string{table("", []string{"Year", "Winner", "Term"}, 5)}},
		{"headerless", []string{`<table class="wikitable"><tr><td>Name</td></tr></table>`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSelector(DefaultConfig()).Select(pageTables(t, tt.tables...))
			if !errors.Is(err, ErrNoTable) {
				t.Errorf("Select() error = %v, want ErrNoTable", err)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := DefaultConfig()
	cfg.Logger = zap.New(core)
	sel := NewSelector(cfg)

	candidates := sel.Evaluate(pageTables(t,
		table("", []string{"Year", "Democratic", "Republican"}, 1),
		table("", []string{"Party", "Officeholders"}, 1),
		table("", []string{"Portrait", "Title"}, 1),
		table("", []string{"Treasurer", "Party", "Took office", "Left office"}, 7),
		table("", []string{"Lieutenant Governor", "Notes"}, 2),
	))

	type result struct {
		Score  int
		Reason string
	}
	var got []result
	for _, c := range candidates {
		got = append(got, result{c.Score, c.Reason})
	}
	want := []result{
		{0, ReasonElectionResults},
		{0, ReasonPartySummary},
		{0, ReasonNoNameColumn},
		{7 + TermColumnBonus + PartyColumnBonus, ""},
		{2, ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Evaluate() mismatch (-want +got):\n%s", diff)
	}

	if n := logs.FilterMessage("skipping table").Len(); n != 3 {
		t.Errorf("logged %d skipped tables, want 3", n)
	}
	skipped := logs.FilterMessage("skipping table").All()
	if len(skipped) > 0 {
		if reason := skipped[0].ContextMap()["reason"]; reason != ReasonElectionResults {
			t.Errorf("first skip reason = %v, want %q", reason, ReasonElectionResults)
		}
	}
}

func TestSelect_LogsWinner(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := DefaultConfig()
	cfg.Logger = zap.New(core)

	_, err := NewSelector(cfg).Select(pageTables(t, table("", []string{"Name", "Party"}, 1), table("", []string{"Name", "Term"}, 3)))
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	entries := logs.FilterMessage("selected table").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d selections, want 1", len(entries))
	}
	if score := entries[0].ContextMap()["score"]; score != int64(3+TermColumnBonus) {
		t.Errorf("logged score = %v, want %d", score, 3+TermColumnBonus)
	}
}
