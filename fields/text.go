package fields

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	footnotePattern   = regexp.MustCompile(`\[.*?\]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanText normalizes cell text: NFKC, footnote markers removed, runs of
// whitespace collapsed to one space, trimmed.
func CleanText(s string) string {
	s = norm.NFKC.String(s)
	s = footnotePattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// StripFootnotes removes footnote markers such as "[1]" or "[note 2]".
func StripFootnotes(s string) string {
	return footnotePattern.ReplaceAllString(s, "")
}

// Lower lowercases s using Unicode case rules.
func Lower(s string) string {
	// A Caser is stateful, so one is built per call.
	return cases.Lower(language.Und).String(s)
}

// RuneLen returns the number of characters in s
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// NodeText returns the cleaned text content of n, with text runs separated
// by a space. Script and style content is skipped.
func NodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	nodeTextRecursive(n, &sb)
	return CleanText(sb.String())
}

func nodeTextRecursive(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		sb.WriteString(" ")
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		case "br":
			sb.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		nodeTextRecursive(c, sb)
	}
}

// Attr returns the value of attribute key on n, or "" when absent.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
