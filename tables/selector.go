package tables

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/rollcall/fields"
	"github.com/tsawler/rollcall/htmldoc"
	"github.com/tsawler/rollcall/layout"
)

// ErrNoTable is returned when no candidate table qualifies
var ErrNoTable = errors.New("no officeholder table")

// Score bonuses applied by DefaultConfig
const (
	TermColumnBonus  = 100
	PartyColumnBonus = 200
	CaptionBonus     = 50
)

// Disqualification reasons reported in Candidate.Reason
const (
	ReasonElectionResults = "election results"
	ReasonPartySummary    = "party summary"
	ReasonNoNameColumn    = "no name column"
)

var (
	electionPattern = regexp.MustCompile(`(year|election).*?(democratic|republican)`)
	termPattern     = regexp.MustCompile(`term|office|took|start|tenure|served|year`)
	partyPattern    = regexp.MustCompile(`part`)
)

// Config holds the table scoring policy
type Config struct {
	// TermColumnBonus is added when a header looks like a term or date column
	TermColumnBonus int

	// PartyColumnBonus is added when a header mentions a party
	PartyColumnBonus int

	// CaptionBonus is added when Office is set and the caption contains it,
	// unless the caption is about a territory or colonial office.
	CaptionBonus int

	// Office is an optional hint such as "governor"
	Office string

	// Logger receives debug output for every decision. Nil disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns the default scoring policy
func DefaultConfig() Config {
	return Config{
		TermColumnBonus:  TermColumnBonus,
		PartyColumnBonus: PartyColumnBonus,
		CaptionBonus:     CaptionBonus,
	}
}

// Candidate is the evaluation of one table
type Candidate struct {
	Table   *htmldoc.Table
	Headers []string
	Score   int

	// Reason is set when the table was disqualified
	Reason string
}

// Qualified reports whether the table may be selected
func (c Candidate) Qualified() bool {
	return c.Reason == ""
}

// Selector chooses the roster table of a page
type Selector struct {
	config Config
	logger *zap.Logger
}

// NewSelector creates a selector with the given policy
func NewSelector(cfg Config) *Selector {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{config: cfg, logger: logger}
}

// Config returns the selector's policy
func (s *Selector) Config() Config {
	return s.config
}

// Evaluate scores every table in order
func (s *Selector) Evaluate(candidates []*htmldoc.Table) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, t := range candidates {
		out = append(out, s.evaluate(t))
	}
	return out
}

// Select returns the highest-scoring qualified table. Ties go to the table
// that appears first.
func (s *Selector) Select(candidates []*htmldoc.Table) (*htmldoc.Table, error) {
	var best *Candidate
	evaluated := s.Evaluate(candidates)
	for i := range evaluated {
		c := &evaluated[i]
		if !c.Qualified() {
			continue
		}
		if best == nil || c.Score > best.Score {
			best = c
		}
	}
	if best == nil {
		return nil, fmt.Errorf("selecting table among %d candidates: %w", len(candidates), ErrNoTable)
	}

	s.logger.Debug("selected table",
		zap.Int("table", best.Table.Index),
		zap.Int("score", best.Score),
		zap.Strings("headers", head(best.Headers, 6)))
	return best.Table, nil
}

func (s *Selector) evaluate(t *htmldoc.Table) Candidate {
	headers := t.HeaderTexts()
	c := Candidate{Table: t, Headers: headers}

	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = fields.Lower(h)
	}
	joined := strings.Join(lowered, " ")

	switch {
	case electionPattern.MatchString(joined):
		c.Reason = ReasonElectionResults
	case len(headers) <= 2 && strings.Contains(joined, "party"):
		c.Reason = ReasonPartySummary
	case !anyMatch(layout.NamePattern, lowered):
		c.Reason = ReasonNoNameColumn
	}
	if c.Reason != "" {
		s.logger.Debug("skipping table",
			zap.Int("table", t.Index),
			zap.String("reason", c.Reason),
			zap.Strings("headers", head(headers, 5)))
		return c
	}

	c.Score = t.DataRowCount()
	if anyMatch(termPattern, lowered) {
		c.Score += s.config.TermColumnBonus
	}
	if anyMatch(partyPattern, lowered) {
		c.Score += s.config.PartyColumnBonus
	}
	if s.captionMatches(t.Caption) {
		c.Score += s.config.CaptionBonus
	}
	return c
}

func (s *Selector) captionMatches(caption string) bool {
	office := fields.Lower(strings.TrimSpace(s.config.Office))
	if office == "" || caption == "" {
		return false
	}
	text := fields.Lower(caption)
	if strings.Contains(text, "territory") || strings.Contains(text, "colonial") {
		return false
	}
	return strings.Contains(text, office)
}

func anyMatch(re *regexp.Regexp, texts []string) bool {
	for _, t := range texts {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
