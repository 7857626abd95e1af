package roster

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/rollcall/fields"
	"github.com/tsawler/rollcall/grid"
	"github.com/tsawler/rollcall/layout"
	"github.com/tsawler/rollcall/model"
)

// DefaultCutoff is the cutoff used by the rollcall facade and the CLI
const DefaultCutoff = 1960

// Name-column prefixes of footnote and source rows
var garbagePrefixes = []string{"notes:", "note:", "source:", "reference"}

// Options configures a Parser
type Options struct {
	// Cutoff is the earliest year of interest. Zero and negative values
	// keep every dated row.
	Cutoff int

	// Jurisdiction is copied into Record.State
	Jurisdiction string

	// Parties normalizes party text. Nil means the embedded table.
	Parties *fields.PartyTable

	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger
}

// Notice describes a row that was skipped or only partly understood
type Notice struct {
	// Row is the logical row index in the grid
	Row     int
	Name    string
	Message string
}

// String formats the notice as "row 4 (Jane Doe): message"
func (n Notice) String() string {
	if n.Name == "" {
		return fmt.Sprintf("row %d: %s", n.Row, n.Message)
	}
	return fmt.Sprintf("row %d (%s): %s", n.Row, n.Name, n.Message)
}

// Result is the output of Parser.ParseResult
type Result struct {
	Records []model.Record
	Notices []Notice
}

// Parser converts table rows to records. A Parser holds no per-table state
// and may be shared.
type Parser struct {
	cutoff       int
	jurisdiction string
	parties      *fields.PartyTable
	logger       *zap.Logger
}

// NewParser creates a parser from opts
func NewParser(opts Options) *Parser {
	p := &Parser{
		cutoff:       opts.Cutoff,
		jurisdiction: opts.Jurisdiction,
		parties:      opts.Parties,
		logger:       opts.Logger,
	}
	if p.parties == nil {
		p.parties = fields.DefaultPartyTable()
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

// Cutoff returns the cutoff year
func (p *Parser) Cutoff() int {
	return p.cutoff
}

// Parse returns the records of g in row order
func (p *Parser) Parse(g *grid.Grid, l *layout.Layout) []model.Record {
	return p.ParseResult(g, l).Records
}

// ParseResult returns the records of g in row order together with notices
// about skipped rows and unrecognized party text.
func (p *Parser) ParseResult(g *grid.Grid, l *layout.Layout) Result {
	var res Result

	nameCol, ok := l.Column(layout.RoleName)
	if !ok {
		p.logger.Warn("no name column in layout",
			zap.String("jurisdiction", p.jurisdiction),
			zap.Stringer("layout", l))
		return res
	}

	prevID := -1
	for row := 1; row < g.Rows; row++ {
		nameCell := g.At(row, nameCol)
		if nameCell == nil {
			continue
		}

		if nameCell.ColSpan > 2 && isVacancy(nameCell.Text) {
			p.logger.Debug("skipping vacancy row",
				zap.Int("row", row),
				zap.String("text", truncate(nameCell.Text, 60)))
			res.notice(row, "", "vacancy row skipped")
			continue
		}

		// Continuation of a name cell spanning several rows
		if nameCell.ID == prevID {
			continue
		}
		prevID = nameCell.ID

		raw := fields.ExtractName(nameCell.Node)
		if raw == "" {
			continue
		}
		name := fields.CleanName(raw)
		if name == "" {
			continue
		}

		lower := fields.Lower(name)
		if hasAnyPrefix(lower, garbagePrefixes) {
			p.logger.Debug("skipping footnote row", zap.Int("row", row), zap.String("name", name))
			res.notice(row, name, "footnote row skipped")
			continue
		}
		if p.parties.IsPartyName(lower) {
			p.logger.Debug("skipping party-as-name row", zap.Int("row", row), zap.String("name", name))
			res.notice(row, name, "party name in name column skipped")
			continue
		}

		acting := fields.IsActing(raw) || fields.IsActing(nameCell.Text)

		party, partyText, known := p.party(g, l, row)
		if partyText != "" && !known {
			res.notice(row, name, fmt.Sprintf("unrecognized party %q", partyText))
		}

		term := p.term(g, l, row)
		if !term.HasYear() {
			p.logger.Debug("skipping row without dates", zap.Int("row", row), zap.String("name", name))
			continue
		}
		if !p.inRange(term, p.ongoingText(g, l, row)) {
			continue
		}

		rec := model.Record{
			State:     p.jurisdiction,
			Name:      name,
			Party:     party,
			StartYear: term.StartYear,
			EndYear:   term.EndYear,
			StartDate: term.StartDate,
			EndDate:   term.EndDate,
			IsActing:  acting,
		}
		rec.IsIncumbent = rec.EndYear == nil && rec.StartYear != nil
		if rec.StartDate == nil && rec.StartYear != nil {
			rec.StartDate = model.String(fmt.Sprintf("%04d-01-01", *rec.StartYear))
		}
		if rec.IsIncumbent {
			rec.EndDate = nil
		} else {
			rec.EndReason = p.endReason(g, l, row)
		}

		p.logger.Debug("record",
			zap.String("name", rec.Name),
			zap.String("party", rec.PartyOr("")),
			zap.Intp("start_year", rec.StartYear),
			zap.Intp("end_year", rec.EndYear),
			zap.Bool("acting", rec.IsActing))
		res.Records = append(res.Records, rec)
	}

	return res
}

func (r *Result) notice(row int, name, msg string) {
	r.Notices = append(r.Notices, Notice{Row: row, Name: name, Message: msg})
}

// cell returns the cell of row in the column holding role
func cell(g *grid.Grid, l *layout.Layout, row int, role layout.Role) *grid.Cell {
	col, ok := l.Column(role)
	if !ok {
		return nil
	}
	return g.At(row, col)
}

// party reads the party column. An empty color swatch is skipped in favor
// of the column to its right.
func (p *Parser) party(g *grid.Grid, l *layout.Layout, row int) (party *string, text string, known bool) {
	col, ok := l.Column(layout.RoleParty)
	if !ok {
		return nil, "", false
	}
	c := g.At(row, col)
	if c == nil {
		return nil, "", false
	}

	text = c.Text
	if text == "" && strings.Contains(fields.Lower(c.Style()), "background") {
		if next := g.At(row, col+1); next != nil {
			text = next.Text
		}
	}
	party, known = p.parties.Lookup(text)
	return party, text, known
}

// term reads the dates of row from the term column, or else from the start
// and end columns.
func (p *Parser) term(g *grid.Grid, l *layout.Layout, row int) fields.Term {
	if c := cell(g, l, row, layout.RoleTerm); c != nil {
		return fields.ParseTermCell(c.Node)
	}

	start := cell(g, l, row, layout.RoleStart)
	end := cell(g, l, row, layout.RoleEnd)

	// One cell spanning both columns holds the whole range
	if start != nil && end != nil && start.ID == end.ID {
		return fields.ParseTermCell(start.Node)
	}

	var term fields.Term
	if start != nil {
		term.StartYear, term.StartDate = fields.ParseBound(start.Text, false)
	}
	if end != nil {
		term.EndYear, term.EndDate = fields.ParseBound(end.Text, true)
	}
	return term
}

// ongoingText returns the text checked for an incumbency marker: the term
// cell, or else the end cell.
func (p *Parser) ongoingText(g *grid.Grid, l *layout.Layout, row int) string {
	if c := cell(g, l, row, layout.RoleTerm); c != nil {
		return c.Text
	}
	if c := cell(g, l, row, layout.RoleEnd); c != nil {
		return c.Text
	}
	return ""
}

// inRange applies the cutoff. Terms that ended before it are dropped. Open
// terms that began before it are dropped unless marked as ongoing.
func (p *Parser) inRange(term fields.Term, ongoingText string) bool {
	if term.EndYear != nil && *term.EndYear < p.cutoff {
		return false
	}
	if term.EndYear == nil && term.StartYear != nil && *term.StartYear < p.cutoff {
		return fields.IsIncumbent(ongoingText)
	}
	return true
}

// endReason classifies the first term, end or extra cell that describes
// how the term ended.
func (p *Parser) endReason(g *grid.Grid, l *layout.Layout, row int) string {
	var texts []string
	if c := cell(g, l, row, layout.RoleTerm); c != nil {
		texts = append(texts, c.Text)
	}
	if c := cell(g, l, row, layout.RoleEnd); c != nil {
		texts = append(texts, c.Text)
	}
	for _, col := range l.Extra() {
		if c := g.At(row, col); c != nil {
			texts = append(texts, c.Text)
		}
	}
	for _, text := range texts {
		if reason := fields.ClassifyEndReason(text); reason != "" {
			return reason
		}
	}
	return ""
}

func isVacancy(text string) bool {
	t := fields.Lower(text)
	return strings.Contains(t, "vacant") || strings.Contains(t, "abolished")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
