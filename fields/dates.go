package fields

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	fullDatePattern = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2}),?\s+(\d{4})`)
	yearPattern     = regexp.MustCompile(`\d{4}`)
	sortKeyPattern  = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)

	incumbentPattern = regexp.MustCompile(`(?i)incumbent|present|current`)
	openRangePattern = regexp.MustCompile(`\d{4}\s*[-–—]\s*$`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// Term holds the dates recovered from one or two cells. Unknown values are nil.
type Term struct {
	StartYear *int
	EndYear   *int
	StartDate *string
	EndDate   *string
}

// HasYear reports whether either year is known
func (t Term) HasYear() bool {
	return t.StartYear != nil || t.EndYear != nil
}

// FindFullDates returns every "Month D, YYYY" date in text as an ISO date,
// in order. Dates that do not exist on the calendar are skipped.
func FindFullDates(text string) []string {
	var dates []string
	for _, m := range fullDatePattern.FindAllStringSubmatch(text, -1) {
		if iso, ok := isoDate(m[3], monthsByName[strings.ToLower(m[1])], m[2]); ok {
			dates = append(dates, iso)
		}
	}
	return dates
}

// FullDate returns the first full date in text
func FullDate(text string) *string {
	dates := FindFullDates(text)
	if len(dates) == 0 {
		return nil
	}
	return &dates[0]
}

// FindYears returns every 4-digit number in text, in order
func FindYears(text string) []int {
	var years []int
	for _, s := range yearPattern.FindAllString(text, -1) {
		y, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		years = append(years, y)
	}
	return years
}

// Year returns the first 4-digit year in text
func Year(text string) *int {
	years := FindYears(text)
	if len(years) == 0 {
		return nil
	}
	return &years[0]
}

// IsIncumbent reports whether term text describes an ongoing term:
// "incumbent", "present", "current", or a year followed by a dangling dash.
func IsIncumbent(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return false
	}
	return incumbentPattern.MatchString(t) || openRangePattern.MatchString(t)
}

// ParseTerm reads a combined term cell. With two or more full dates the
// first and last become start and end; with one it is the start. Years come
// from the first and last 4-digit numbers unless the term is ongoing.
func ParseTerm(text string) Term {
	var term Term
	incumbent := IsIncumbent(text)

	dates := FindFullDates(text)
	switch {
	case len(dates) >= 2:
		term.StartDate = &dates[0]
		if !incumbent {
			term.EndDate = &dates[len(dates)-1]
		}
	case len(dates) == 1:
		term.StartDate = &dates[0]
	}

	years := FindYears(text)
	if len(years) > 0 {
		term.StartYear = &years[0]
		if len(years) >= 2 && !incumbent {
			term.EndYear = &years[len(years)-1]
		}
	}
	return term
}

// ParseTermCell reads a combined term cell from markup. When the text holds
// no full date, ISO dates from data-sort-value attributes are used instead.
func ParseTermCell(cell *html.Node) Term {
	text := NodeText(cell)
	term := ParseTerm(text)
	if term.StartDate != nil || term.EndDate != nil {
		return term
	}

	keys := SortKeyDates(cell)
	if len(keys) == 0 {
		return term
	}
	term.StartDate = &keys[0]
	if term.StartYear == nil {
		term.StartYear = Year(keys[0])
	}
	if len(keys) >= 2 && !IsIncumbent(text) {
		term.EndDate = &keys[len(keys)-1]
		if term.EndYear == nil {
			term.EndYear = Year(keys[len(keys)-1])
		}
	}
	return term
}

// SortKeyDates returns the ISO dates carried in data-sort-value attributes
// inside cell, in document order.
func SortKeyDates(cell *html.Node) []string {
	if cell == nil {
		return nil
	}
	var dates []string
	goquery.NewDocumentFromNode(cell).Find("[data-sort-value]").Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("data-sort-value")
		m := sortKeyPattern.FindStringSubmatch(v)
		if m == nil {
			return
		}
		month, err := strconv.Atoi(m[2])
		if err != nil {
			return
		}
		if iso, ok := isoDate(m[1], time.Month(month), m[3]); ok {
			dates = append(dates, iso)
		}
	})
	return dates
}

// ParseBound reads a cell holding a single start or end date. An ongoing
// marker ("present", "incumbent") yields no date when isEnd is true.
func ParseBound(text string, isEnd bool) (year *int, date *string) {
	if isEnd && IsIncumbent(text) {
		return nil, nil
	}
	return Year(text), FullDate(text)
}

func isoDate(year string, month time.Month, day string) (string, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return "", false
	}
	d, err := strconv.Atoi(day)
	if err != nil || month < time.January || month > time.December {
		return "", false
	}
	t := time.Date(y, month, d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || t.Month() != month {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, int(month), d), true
}
