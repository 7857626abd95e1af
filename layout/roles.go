package layout

import "regexp"

// Role is the meaning assigned to a column
type Role int

const (
	RoleNone       Role = iota
	RoleNumber          // running number ("#", "No.")
	RoleImage           // portrait
	RoleName            // officeholder name
	RoleNameImage       // portrait sub-column of a spanning name header
	RoleParty           // party name
	RolePartyColor      // color swatch sub-column of a spanning party header
	RoleStart           // term start
	RoleEnd             // term end
	RoleTerm            // combined term range
	RoleExtra           // notes and other free text
)

// String returns the role name used in logs and debug output
func (r Role) String() string {
	switch r {
	case RoleNumber:
		return "number"
	case RoleImage:
		return "image"
	case RoleName:
		return "name"
	case RoleNameImage:
		return "name_image"
	case RoleParty:
		return "party"
	case RolePartyColor:
		return "party_color"
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	case RoleTerm:
		return "term"
	case RoleExtra:
		return "extra"
	default:
		return "none"
	}
}

// Rule assigns Role to headers matching Pattern, unless they also match
// Exclude. A header whose first matching rule is excluded gets no role.
type Rule struct {
	Role    Role
	Pattern *regexp.Regexp
	Exclude *regexp.Regexp
}

// Matches reports whether the rule claims the lowercased header text
func (r Rule) Matches(header string) bool {
	return r.Pattern.MatchString(header)
}

// Excluded reports whether a matching header is rejected by the rule
func (r Rule) Excluded(header string) bool {
	return r.Exclude != nil && r.Exclude.MatchString(header)
}

// NamePattern matches headers of the officeholder name column. Table
// selection uses it to reject tables without one.
var NamePattern = regexp.MustCompile(`attorney|lieutenant|secretary|treasurer|comptroller|auditor|name`)

// Rules is the header rule table in priority order.
var Rules = []Rule{
	{Role: RoleNumber, Pattern: regexp.MustCompile(`^#$|^no\.?$|^number$`)},
	{Role: RoleImage, Pattern: regexp.MustCompile(`portrait|image|picture|photo`)},
	{Role: RoleName, Pattern: NamePattern},
	{Role: RoleParty, Pattern: regexp.MustCompile(`^party$|political\s*party`)},
	{Role: RoleStart, Pattern: regexp.MustCompile(`took\s+office|start|assumed|began|^from$`)},
	{Role: RoleEnd, Pattern: regexp.MustCompile(`left\s+office|end(?:ed)?$|^to$`)},
	{
		Role:    RoleTerm,
		Pattern: regexp.MustCompile(`term|office|served|tenure|in office`),
		// "Years in office" is a duration, not a date range.
		Exclude: regexp.MustCompile(`years?\s+in`),
	},
	{Role: RoleExtra, Pattern: regexp.MustCompile(`note|comment|source|county|school|experience|governor`)},
}

// MatchHeader returns the role of a lowercased header text, or RoleNone
func MatchHeader(header string) Role {
	for _, r := range Rules {
		if !r.Matches(header) {
			continue
		}
		if r.Excluded(header) {
			return RoleNone
		}
		return r.Role
	}
	return RoleNone
}
