package rollcall

import (
	"bytes"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tsawler/rollcall/fields"
	"github.com/tsawler/rollcall/format"
	"github.com/tsawler/rollcall/grid"
	"github.com/tsawler/rollcall/htmldoc"
	"github.com/tsawler/rollcall/layout"
	"github.com/tsawler/rollcall/model"
	"github.com/tsawler/rollcall/roster"
	"github.com/tsawler/rollcall/tables"
)

// Extractor provides a fluent interface for extracting officeholder records
// from one HTML page. Each configuration method returns a new Extractor
// instance, so a partly configured Extractor can be reused as a template.
type Extractor struct {
	// Source (exactly one is set)
	filename string
	data     []byte
	doc      *htmldoc.Reader

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// The page data is never modified and is shared.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		doc:      e.doc,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// ForFile returns a copy of e with the same options reading filename.
func (e *Extractor) ForFile(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  e.options.clone(),
	}
}

// Cutoff sets the earliest year of interest (default 1960). Terms that
// ended before it are dropped, as are open terms that began before it and
// are not marked as ongoing.
//
// Example:
//
//	records, _, err := rollcall.Open("page.html").Cutoff(1900).Records()
func (e *Extractor) Cutoff(year int) *Extractor {
	newExt := e.clone()
	newExt.options.cutoff = year
	return newExt
}

// Jurisdiction sets the label copied into every record's State field.
func (e *Extractor) Jurisdiction(label string) *Extractor {
	newExt := e.clone()
	newExt.options.jurisdiction = label
	return newExt
}

// Office sets a hint such as "governor". Tables whose caption mentions the
// office score higher during table selection.
func (e *Extractor) Office(office string) *Extractor {
	newExt := e.clone()
	newExt.options.office = office
	return newExt
}

// TableClass restricts candidate tables to those carrying a CSS class
// (default "wikitable"). An empty class considers every table.
//
// Example:
//
//	records, _, err := rollcall.FromHTML(page).TableClass("").Records()
func (e *Extractor) TableClass(class string) *Extractor {
	newExt := e.clone()
	newExt.options.tableClass = class
	return newExt
}

// NavigationExclusion sets which boilerplate tables are ignored
// (default htmldoc.NavigationExclusionStandard).
func (e *Extractor) NavigationExclusion(mode htmldoc.NavigationExclusionMode) *Extractor {
	newExt := e.clone()
	newExt.options.navMode = mode
	return newExt
}

// Parties replaces the embedded party table.
func (e *Extractor) Parties(t *fields.PartyTable) *Extractor {
	newExt := e.clone()
	newExt.options.parties = t
	return newExt
}

// Logger sets the logger for debug diagnostics. A nil logger disables
// logging.
func (e *Extractor) Logger(l *zap.Logger) *Extractor {
	newExt := e.clone()
	if l == nil {
		l = zap.NewNop()
	}
	newExt.options.logger = l
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Records extracts the officeholder records of the page, in table order
// with duplicates removed.
//
// Returns the records, any warnings encountered during processing, and an
// error if extraction failed. Warnings describe skipped rows and
// unrecognized party text.
//
// Example:
//
//	records, warnings, err := rollcall.Open("page.html").Jurisdiction("OH").Records()
//	if errors.Is(err, rollcall.ErrNoTable) {
//	    // page has no roster table
//	}
func (e *Extractor) Records() ([]model.Record, []Warning, error) {
	g, l, warnings, err := e.Table()
	if err != nil {
		return nil, warnings, err
	}

	p := roster.NewParser(roster.Options{
		Cutoff:       e.options.cutoff,
		Jurisdiction: e.options.jurisdiction,
		Parties:      e.options.parties,
		Logger:       e.logger(),
	})
	res := p.ParseResult(g, l)
	for _, n := range res.Notices {
		warnings = append(warnings, noticeWarning(n))
	}

	records := roster.Dedupe(res.Records)
	if dropped := len(res.Records) - len(records); dropped > 0 {
		e.logger().Debug("dropped duplicate records", zap.Int("count", dropped))
	}
	return records, warnings, nil
}

// Table selects the roster table of the page and classifies its columns.
//
// Example:
//
//	g, l, _, err := rollcall.Open("page.html").Table()
//	fmt.Println(l)
//	fmt.Println(g.ToMarkdown())
func (e *Extractor) Table() (*grid.Grid, *layout.Layout, []Warning, error) {
	doc, err := e.document()
	if err != nil {
		return nil, nil, nil, err
	}

	table, err := e.selector().Select(doc.TablesWithClass(e.options.tableClass))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("finding roster table: %w", err)
	}

	g := table.Grid()
	l, err := layout.Classify(g)
	if err != nil {
		return g, l, nil, fmt.Errorf("classifying table %d: %w", table.Index, err)
	}
	e.logger().Debug("classified columns",
		zap.Int("table", table.Index),
		zap.Stringer("layout", l))

	var warnings []Warning
	if !l.Has(layout.RoleTerm) && !l.Has(layout.RoleStart) && !l.Has(layout.RoleEnd) {
		warnings = append(warnings, Warning{Message: "table has no date column; no rows can be dated"})
	}
	return g, l, warnings, nil
}

// Candidates scores every candidate table of the page without selecting
// one.
func (e *Extractor) Candidates() ([]tables.Candidate, error) {
	doc, err := e.document()
	if err != nil {
		return nil, err
	}
	return e.selector().Evaluate(doc.TablesWithClass(e.options.tableClass)), nil
}

// ============================================================================
// Helpers
// ============================================================================

func (e *Extractor) logger() *zap.Logger {
	if e.options.jurisdiction == "" {
		return e.options.logger
	}
	return e.options.logger.With(zap.String("jurisdiction", e.options.jurisdiction))
}

func (e *Extractor) selector() *tables.Selector {
	cfg := tables.DefaultConfig()
	cfg.Office = e.options.office
	cfg.Logger = e.logger()
	return tables.NewSelector(cfg)
}

// document parses the page. Parsing happens on every terminal call, except
// for FromDocument sources, whose parsed page and grids are read-only and
// shared.
func (e *Extractor) document() (*htmldoc.Reader, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.doc != nil {
		return e.doc, nil
	}

	data := e.data
	if e.filename != "" {
		b, err := os.ReadFile(e.filename)
		if err != nil {
			return nil, fmt.Errorf("opening file: %w", err)
		}
		data = b
	}
	if f := format.DetectFromMagic(data); f != format.Unknown && f != format.HTML {
		return nil, fmt.Errorf("reading page: content is %s, not HTML", f)
	}

	doc, err := htmldoc.OpenReaderWithMode(bytes.NewReader(data), e.options.navMode)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
