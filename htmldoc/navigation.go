package htmldoc

import (
	"regexp"

	"golang.org/x/net/html"

	"github.com/tsawler/rollcall/fields"
)

// boilerplatePattern matches class/id values of tables that are page
// furniture rather than content: navigation boxes, infoboxes, sidebars and
// maintenance banners.
var boilerplatePattern = regexp.MustCompile(
	`(?i)(^|[^a-z-])(navbox|navbox-inner|vertical-navbox|infobox|sidebar|metadata|ambox|mbox-small|toc|nav|navbar|navigation|menu|footer)([^a-z-]|$)`)

// exclusionChecker decides which tables are boilerplate for a given mode
type exclusionChecker struct {
	mode NavigationExclusionMode
}

func newExclusionChecker(mode NavigationExclusionMode) *exclusionChecker {
	return &exclusionChecker{mode: mode}
}

// shouldExclude reports whether n, or any element enclosing it, is
// boilerplate under the checker's mode.
func (ec *exclusionChecker) shouldExclude(n *html.Node) bool {
	if ec.mode == NavigationExclusionNone {
		return false
	}
	for p := n; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		if ec.shouldExcludeExplicit(p) {
			return true
		}
		if ec.mode >= NavigationExclusionStandard && ec.shouldExcludeByPattern(p) {
			return true
		}
	}
	return false
}

// shouldExcludeExplicit checks semantic HTML5 elements and ARIA roles
func (ec *exclusionChecker) shouldExcludeExplicit(n *html.Node) bool {
	switch n.Data {
	case "nav", "aside":
		return true
	}
	switch fields.Attr(n, "role") {
	case "navigation", "complementary":
		return true
	}
	return false
}

// shouldExcludeByPattern checks class and id attributes
func (ec *exclusionChecker) shouldExcludeByPattern(n *html.Node) bool {
	if class := fields.Attr(n, "class"); class != "" && boilerplatePattern.MatchString(class) {
		return true
	}
	if id := fields.Attr(n, "id"); id != "" && boilerplatePattern.MatchString(id) {
		return true
	}
	return false
}
