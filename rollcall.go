// Package rollcall extracts officeholder records from HTML roster tables.
//
// Basic usage:
//
//	records, warnings, err := rollcall.Open("attorney_general_oh.html").
//	    Jurisdiction("OH").
//	    Records()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", rollcall.FormatWarnings(warnings))
//	}
//
// With options:
//
//	records, _, err := rollcall.FromHTML(page).
//	    Cutoff(1900).
//	    Jurisdiction("MN").
//	    Office("governor").
//	    Logger(logger).
//	    Records()
//
// A page without a roster table, or whose best table has no name column,
// yields an error wrapping [ErrNoTable] or [ErrNoNameColumn]. Batch callers
// can log these and move on to the next page.
//
// The lower-level packages (htmldoc, grid, tables, layout, roster, fields)
// are available for finer control.
package rollcall

import (
	"fmt"
	"io"

	"github.com/tsawler/rollcall/htmldoc"
	"github.com/tsawler/rollcall/layout"
	"github.com/tsawler/rollcall/tables"
)

// Structural errors returned by the terminal operations
var (
	ErrNoTable      = tables.ErrNoTable
	ErrNoNameColumn = layout.ErrNoNameColumn
)

// Open returns an Extractor for an HTML file. The file is read by the
// terminal operation.
//
// Example:
//
//	records, warnings, err := rollcall.Open("page.html").Records()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// New returns an Extractor without a source. Configure it once and derive
// per-page Extractors with ForFile.
//
// Example:
//
//	base := rollcall.New().Cutoff(1900).Office("governor")
//	records, _, err := base.ForFile("governor_oh.html").Jurisdiction("OH").Records()
func New() *Extractor {
	return &Extractor{options: defaultOptions()}
}

// FromHTML returns an Extractor for a page held in memory.
func FromHTML(page string) *Extractor {
	return &Extractor{
		data:    []byte(page),
		options: defaultOptions(),
	}
}

// FromReader reads r to the end and returns an Extractor for its content.
// A read error is reported by the terminal operation.
func FromReader(r io.Reader) *Extractor {
	data, err := io.ReadAll(r)
	e := &Extractor{
		data:    data,
		options: defaultOptions(),
	}
	if err != nil {
		e.err = fmt.Errorf("reading page: %w", err)
	}
	return e
}

// FromDocument returns an Extractor over an already parsed page. The
// NavigationExclusion option has no effect because the page is already
// parsed.
func FromDocument(doc *htmldoc.Reader) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	candidates := rollcall.Must(rollcall.Open("page.html").Candidates())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRecords is a helper that wraps a call to Records() and panics if the
// error is non-nil. It discards warnings.
//
// Example:
//
//	records := rollcall.MustRecords(rollcall.FromHTML(page).Records())
func MustRecords[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
