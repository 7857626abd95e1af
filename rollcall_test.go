package rollcall

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tsawler/rollcall/fields"
	"github.com/tsawler/rollcall/htmldoc"
	"github.com/tsawler/rollcall/layout"
)

const treasurerPage = `<html><body>
<div class="navbox"><table class="wikitable"><tr><th>Name</th><th>Term</th></tr>
<tr><td>Nav Entry</td><td>1990–1994</td></tr></table></div>
<table class="wikitable">
<caption>Treasurers of Ohio</caption>
<tr><th>#</th><th>Name</th><th>Party</th><th>Term</th></tr>
<tr><td>1</td><td>Ann Bell</td><td>Republican</td><td>1951–1959</td></tr>
<tr><td>2</td><td>Bo Cole</td><td>Democratic</td><td>1983–1991</td></tr>
<tr><td colspan="4">Vacant</td></tr>
<tr><td>3</td><td>Cy Dunn (acting)</td><td>Prohibition</td><td>1991–1992</td></tr>
<tr><td>3</td><td>Cy Dunn (acting)</td><td>Prohibition</td><td>1991–1992</td></tr>
<tr><td>4</td><td>Eve Fox</td><td>Democratic</td><td>1992–present</td></tr>
</table>
</body></html>`

func names(t *testing.T, e *Extractor) []string {
	t.Helper()
	records, _, err := e.Records()
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestOpen(t *testing.T) {
	_, _, err := Open("nonexistent.html").Records()
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestRecords(t *testing.T) {
	records, warnings, err := FromHTML(treasurerPage).Jurisdiction("OH").Records()
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}

	got := make([]string, len(records))
	for i, r := range records {
		got[i] = r.Name
		if r.State != "OH" {
			t.Errorf("%s: State = %q, want OH", r.Name, r.State)
		}
		if err := r.Validate(); err != nil {
			t.Errorf("%s: Validate() error = %v", r.Name, err)
		}
	}
	if want := "Bo Cole,Cy Dunn,Eve Fox"; strings.Join(got, ",") != want {
		t.Errorf("names = %v, want %s", got, want)
	}

	if !records[1].IsActing {
		t.Error("Cy Dunn should be acting")
	}
	if !records[2].IsIncumbent {
		t.Error("Eve Fox should be the incumbent")
	}

	msg := FormatWarnings(warnings)
	for _, want := range []string{"vacancy row skipped", `unrecognized party "Prohibition"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("warnings %q missing %q", msg, want)
		}
	}
}

func TestRecords_Errors(t *testing.T) {
	tests := []struct {
		name string
		page string
		want error
	}{
		{
			name: "no tables",
			page: `<html><body><p>Nothing here</p></body></html>`,
			want: ErrNoTable,
		},
		{
			name: "no name column header",
			page: `<table class="wikitable"><tr><th>Candidate</th><th>Votes</th><th>%</th></tr>
<tr><td>A</td><td>100</td><td>50</td></tr></table>`,
			want: ErrNoTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := FromHTML(tt.page).Records()
			if !errors.Is(err, tt.want) {
				t.Errorf("Records() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTable(t *testing.T) {
	g, l, warnings, err := FromHTML(treasurerPage).Table()
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if got, want := l.String(), "number=0 name=1 party=2 term=3"; got != want {
		t.Errorf("layout = %q, want %q", got, want)
	}
	if got := g.DataRowCount(); got != 6 {
		t.Errorf("DataRowCount() = %d, want 6", got)
	}
}

func TestTable_NoDateColumn(t *testing.T) {
	page := `<table class="wikitable"><tr><th>Name</th><th>Party</th><th>Notes</th></tr>
<tr><td>Al Lee</td><td>Whig</td><td>First</td></tr></table>`

	_, l, warnings, err := FromHTML(page).Table()
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	if !l.Has(layout.RoleName) {
		t.Errorf("layout %s has no name column", l)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0].Message, "no date column") {
		t.Errorf("warnings = %v, want a missing date column warning", warnings)
	}

	records, _, err := FromHTML(page).Records()
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestOptionsAreImmutable(t *testing.T) {
	base := FromHTML(treasurerPage)
	early := base.Cutoff(1900)

	if got := names(t, base); len(got) != 3 {
		t.Errorf("base: got %v, want 3 records", got)
	}
	if got := names(t, early); len(got) != 4 {
		t.Errorf("Cutoff(1900): got %v, want 4 records", got)
	}
	if got := names(t, base.Jurisdiction("MN")); len(got) != 3 {
		t.Errorf("derived: got %v, want 3 records", got)
	}
}

func TestCutoff(t *testing.T) {
	tests := []struct {
		cutoff int
		want   int
	}{
		{0, 4},
		{1, 4},
		{1900, 4},
		{1960, 3},
		{1993, 1},
	}

	prev := -1
	for _, tt := range tests {
		got := names(t, FromHTML(treasurerPage).Cutoff(tt.cutoff))
		if len(got) != tt.want {
			t.Errorf("Cutoff(%d): got %v, want %d records", tt.cutoff, got, tt.want)
		}
		if prev >= 0 && len(got) > prev {
			t.Errorf("Cutoff(%d) returned more records than a lower cutoff", tt.cutoff)
		}
		prev = len(got)
	}
}

func TestForFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "treasurer_oh.html")
	if err := os.WriteFile(path, []byte(treasurerPage), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	template := New().Cutoff(1900)
	if got := names(t, template.ForFile(path)); len(got) != 4 {
		t.Errorf("ForFile(): got %v, want 4 records", got)
	}

	if _, _, err := template.Records(); err == nil {
		t.Error("Records() on an Extractor without a source should fail")
	}
}

func TestTableClass(t *testing.T) {
	page := strings.ReplaceAll(treasurerPage, `class="wikitable"`, `class="sortable"`)

	if _, _, err := FromHTML(page).Records(); !errors.Is(err, ErrNoTable) {
		t.Errorf("default class: error = %v, want ErrNoTable", err)
	}
	if got := names(t, FromHTML(page).TableClass("")); len(got) != 3 {
		t.Errorf(`TableClass(""): got %v, want 3 records`, got)
	}
}

func TestNavigationExclusion(t *testing.T) {
	page := `<div class="navbox"><table class="wikitable"><tr><th>Name</th><th>Term</th></tr>
<tr><td>Nav Entry</td><td>1990–1994</td></tr></table></div>`

	if _, _, err := FromHTML(page).Records(); !errors.Is(err, ErrNoTable) {
		t.Errorf("standard exclusion: error = %v, want ErrNoTable", err)
	}
	got := names(t, FromHTML(page).NavigationExclusion(htmldoc.NavigationExclusionNone))
	if len(got) != 1 || got[0] != "Nav Entry" {
		t.Errorf("no exclusion: got %v, want [Nav Entry]", got)
	}
}

func TestParties(t *testing.T) {
	parties := fields.NewPartyTable([]fields.PartyRule{
		{Key: "prohibition", Code: "P"},
		{Key: "democratic", Code: "D"},
		{Key: "republican", Code: "R"},
	})

	records, warnings, err := FromHTML(treasurerPage).Parties(parties).Records()
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if got := records[1].PartyOr(""); got != "P" {
		t.Errorf("party = %q, want P", got)
	}
	for _, w := range warnings {
		if strings.Contains(w.Message, "unrecognized party") {
			t.Errorf("unexpected party warning: %v", w)
		}
	}

	_, warnings, err = FromHTML(treasurerPage).Cutoff(1900).Parties(fields.NewPartyTable([]fields.PartyRule{
		{Key: "prohibition", Code: "P"},
	})).Records()
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if msg := FormatWarnings(warnings); !strings.Contains(msg, `Ann Bell: unrecognized party "Republican"`) {
		t.Errorf("warnings %q should report the Republican row", msg)
	}
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, _, err := FromHTML(treasurerPage).
		Jurisdiction("OH").
		Logger(zap.New(core)).
		Records()
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}

	selected := logs.FilterMessage("selected table").All()
	if len(selected) != 1 {
		t.Fatalf("got %d selected table entries, want 1", len(selected))
	}
	if got := selected[0].ContextMap()["jurisdiction"]; got != "OH" {
		t.Errorf("jurisdiction field = %v, want OH", got)
	}
	if logs.FilterMessage("dropped duplicate records").Len() != 1 {
		t.Error("expected the duplicate Cy Dunn row to be logged")
	}

	// A nil logger must not panic.
	if _, _, err := FromHTML(treasurerPage).Logger(nil).Records(); err != nil {
		t.Errorf("Logger(nil): error = %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestFromReader(t *testing.T) {
	got := names(t, FromReader(strings.NewReader(treasurerPage)))
	if len(got) != 3 {
		t.Errorf("got %v, want 3 records", got)
	}

	_, _, err := FromReader(failingReader{}).Cutoff(1900).Records()
	if err == nil || !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("error = %v, want the read error", err)
	}
}

func TestFromDocument(t *testing.T) {
	doc, err := htmldoc.OpenReader(strings.NewReader(treasurerPage))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	ext := FromDocument(doc)
	if got := names(t, ext); len(got) != 3 {
		t.Errorf("got %v, want 3 records", got)
	}
	candidates, err := ext.Candidates()
	if err != nil {
		t.Fatalf("Candidates() error = %v", err)
	}
	if len(candidates) != 1 {
		t.Errorf("got %d candidates, want 1", len(candidates))
	}
}

func TestFromDocument_Concurrent(t *testing.T) {
	doc, err := htmldoc.OpenReader(strings.NewReader(treasurerPage))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	base := FromDocument(doc)

	var wg sync.WaitGroup
	counts := make([]int, 8)
	for i := range counts {
		i := i // per-iteration copy (go directive is 1.21)
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, _, err := base.Cutoff(1900 + i*10).Records()
			if err != nil {
				t.Errorf("Records() error = %v", err)
				return
			}
			counts[i] = len(records)
		}()
	}
	wg.Wait()

	if counts[0] != 4 || counts[7] != 3 {
		t.Errorf("counts = %v, want 4 first and 3 last", counts)
	}
}

func TestRejectsNonHTML(t *testing.T) {
	_, _, err := FromHTML("SQLite format 3\x00rest of the database").Records()
	if err == nil || !strings.Contains(err.Error(), "not HTML") {
		t.Errorf("error = %v, want non-HTML rejection", err)
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Message: "table has no date column"},
		{Row: 3, Message: "vacancy row skipped"},
	}
	want := "table has no date column; row 3: vacancy row skipped"
	if got := FormatWarnings(warnings); got != want {
		t.Errorf("FormatWarnings() = %q, want %q", got, want)
	}
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q, want empty", got)
	}
}

func TestMust(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRecords() should panic on error")
		}
	}()
	records := MustRecords(FromHTML(treasurerPage).Records())
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
	Must(FromHTML("").Candidates())
	MustRecords(FromHTML("<p>none</p>").Records())
}
