package fields

import (
	_ "embed"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// MaxPartyLength is the longest unrecognized text still returned as a party
// name. Longer text is treated as prose.
const MaxPartyLength = 20

//go:embed parties.yaml
var defaultPartyRules []byte

var partySuffixPattern = regexp.MustCompile(`(?i)\s+party\s*$`)

// PartyRule maps a lowercase party name to a short code
type PartyRule struct {
	Key  string `yaml:"key"`
	Code string `yaml:"code"`
}

// PartyTable is an ordered, read-only set of party rules
type PartyTable struct {
	rules []PartyRule
	exact map[string]string
}

// NewPartyTable builds a table from rules. For duplicate keys the first rule
// wins. Rules with an empty key are ignored.
func NewPartyTable(rules []PartyRule) *PartyTable {
	t := &PartyTable{
		rules: make([]PartyRule, 0, len(rules)),
		exact: make(map[string]string, len(rules)),
	}
	for _, r := range rules {
		key := Lower(strings.TrimSpace(r.Key))
		if key == "" {
			continue
		}
		if _, dup := t.exact[key]; dup {
			continue
		}
		t.exact[key] = r.Code
		t.rules = append(t.rules, PartyRule{Key: key, Code: r.Code})
	}
	return t
}

// LoadPartyTable decodes a YAML rule list of the form
//
//	parties:
//	  - {key: democratic, code: D}
func LoadPartyTable(r io.Reader) (*PartyTable, error) {
	var doc struct {
		Parties []PartyRule `yaml:"parties"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding party rules: %w", err)
	}
	if len(doc.Parties) == 0 {
		return nil, fmt.Errorf("decoding party rules: no rules")
	}
	return NewPartyTable(doc.Parties), nil
}

var defaultPartyTable = sync.OnceValue(func() *PartyTable {
	t, err := LoadPartyTable(strings.NewReader(string(defaultPartyRules)))
	if err != nil {
		panic(err)
	}
	return t
})

// DefaultPartyTable returns the embedded party table
func DefaultPartyTable() *PartyTable {
	return defaultPartyTable()
}

// Rules returns a copy of the rules in match order
func (t *PartyTable) Rules() []PartyRule {
	return append([]PartyRule(nil), t.rules...)
}

// Lookup normalizes party text. It returns the party code (nil for no
// party) and whether the text was recognized by a rule.
func (t *PartyTable) Lookup(text string) (*string, bool) {
	cleaned := CleanText(text)
	// Some names end in "party" themselves ("A Connecticut Party").
	if code, ok := t.exact[Lower(cleaned)]; ok {
		return codeOrNil(code), true
	}
	cleaned = strings.TrimSpace(partySuffixPattern.ReplaceAllString(cleaned, ""))
	key := Lower(cleaned)
	if key == "" {
		return nil, false
	}

	if code, ok := t.exact[key]; ok {
		return codeOrNil(code), true
	}
	for _, r := range t.rules {
		if strings.Contains(key, r.Key) {
			return codeOrNil(r.Code), true
		}
	}

	if RuneLen(key) > MaxPartyLength {
		return nil, false
	}
	return &cleaned, false
}

// Normalize returns the party code for text, the cleaned text itself when
// no rule matches, or nil.
func (t *PartyTable) Normalize(text string) *string {
	code, _ := t.Lookup(text)
	return code
}

// IsPartyName reports whether text, or text without a plural "s", is a
// party name in the table.
func (t *PartyTable) IsPartyName(text string) bool {
	key := Lower(strings.TrimSpace(text))
	if key == "" {
		return false
	}
	if _, ok := t.exact[key]; ok {
		return true
	}
	_, ok := t.exact[strings.TrimRight(key, "s")]
	return ok
}

// NormalizeParty normalizes text with the default party table
func NormalizeParty(text string) *string {
	return DefaultPartyTable().Normalize(text)
}

// IsPartyName reports whether text names a party in the default table
func IsPartyName(text string) bool {
	return DefaultPartyTable().IsPartyName(text)
}

func codeOrNil(code string) *string {
	if code == "" {
		return nil
	}
	return &code
}
