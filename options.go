package rollcall

import (
	"go.uber.org/zap"

	"github.com/tsawler/rollcall/fields"
	"github.com/tsawler/rollcall/htmldoc"
	"github.com/tsawler/rollcall/roster"
)

// ExtractOptions holds configuration for record extraction.
type ExtractOptions struct {
	// Filtering
	cutoff int

	// Labels
	jurisdiction string
	office       string // caption hint for table selection

	// Table discovery
	tableClass string
	navMode    htmldoc.NavigationExclusionMode

	// Normalization
	parties *fields.PartyTable

	// Diagnostics
	logger *zap.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		cutoff:     roster.DefaultCutoff,
		tableClass: htmldoc.DefaultTableClass,
		navMode:    htmldoc.NavigationExclusionStandard,
		parties:    nil, // nil means the embedded party table
		logger:     zap.NewNop(),
	}
}

// clone creates a copy of ExtractOptions. The party table and logger are
// read-only and shared.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		cutoff:       o.cutoff,
		jurisdiction: o.jurisdiction,
		office:       o.office,
		tableClass:   o.tableClass,
		navMode:      o.navMode,
		parties:      o.parties,
		logger:       o.logger,
	}
}
