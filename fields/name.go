package fields

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	trailingQualifierPattern = regexp.MustCompile(`(?i)(?:acting|interim)\s*$`)
	parenQualifierPattern    = regexp.MustCompile(`(?i)\s*\((?:acting|interim)\)\s*`)
	actingPattern            = regexp.MustCompile(`(?i)acting|interim|temporary`)
)

// ExtractName returns the officeholder name found in a table cell. Bold link
// text is preferred, then bold text, then the first link with usable text,
// then the whole cell text. Candidates of one character or less are
// ignored. The result still carries any "Acting" qualifier; pass it to
// CleanName for display.
func ExtractName(cell *html.Node) string {
	if cell == nil {
		return ""
	}
	sel := goquery.NewDocumentFromNode(cell).Selection

	if bold := sel.Find("b").First(); bold.Length() > 0 {
		if text := selectionText(bold.Find("a").First()); RuneLen(text) > 1 {
			return text
		}
		if text := selectionText(bold); RuneLen(text) > 1 {
			return text
		}
	}

	name := ""
	sel.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if text := selectionText(a); RuneLen(text) > 1 {
			name = text
			return false
		}
		return true
	})
	if name != "" {
		return name
	}

	if text := NodeText(cell); RuneLen(text) > 1 {
		return text
	}
	return ""
}

// selectionText joins the text of sel without separators, so inline markup
// inside a link or bold run does not split words.
func selectionText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return CleanText(sel.Text())
}

// CleanName strips footnotes and acting/interim qualifiers from a raw name,
// both trailing ("Jane Doe Acting") and parenthetical ("Jane Doe (Acting)").
func CleanName(raw string) string {
	name := CleanText(raw)
	name = trailingQualifierPattern.ReplaceAllString(name, "")
	name = strings.TrimRight(name, " ,")
	name = parenQualifierPattern.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// IsActing reports whether text marks an acting, interim or temporary
// officeholder.
func IsActing(text string) bool {
	return actingPattern.MatchString(text)
}
