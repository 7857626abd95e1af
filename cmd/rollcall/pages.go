package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/rollcall/format"
	"github.com/tsawler/rollcall/internal/config"
)

// Saved pages are named <office>_<xx>.html, xx being the jurisdiction
var jurisdictionSuffix = regexp.MustCompile(`(?i)_([a-z]{2})$`)

// JurisdictionFromFilename returns the upper-cased two-letter suffix of a
// page's base name ("governor_oh.html" → "OH"), or "".
func JurisdictionFromFilename(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	m := jurisdictionSuffix.FindStringSubmatch(base)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1])
}

// expandPages turns command-line paths into pages. Directories contribute
// their HTML files in name order. A jurisdiction given on the command line
// applies to every page; otherwise it is taken from the file name.
func expandPages(args []string, jurisdiction string) ([]config.Page, error) {
	var pages []config.Page
	add := func(path string) {
		j := jurisdiction
		if j == "" {
			j = JurisdictionFromFilename(path)
		}
		pages = append(pages, config.Page{File: path, Jurisdiction: j})
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		var files []string
		for _, e := range entries {
			if !e.IsDir() && format.Detect(e.Name()) == format.HTML {
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
		sort.Strings(files)
		for _, f := range files {
			add(f)
		}
	}
	return pages, nil
}
