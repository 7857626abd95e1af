// Package format detects the file formats rollcall reads and writes.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates an HTML page (input).
	HTML
	// JSONL indicates line-delimited JSON records (output).
	JSONL
	// SQLite indicates a SQLite database (output).
	SQLite
)

// sqliteMagic is the header string of every SQLite 3 database file.
var sqliteMagic = []byte("SQLite format 3\x00")

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case JSONL:
		return "JSONL"
	case SQLite:
		return "SQLite"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return ".html"
	case JSONL:
		return ".jsonl"
	case SQLite:
		return ".db"
	default:
		return ""
	}
}

// IsOutput reports whether records can be written in the format.
func (f Format) IsOutput() bool {
	return f == JSONL || f == SQLite
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm":
		return HTML
	case ".jsonl", ".ndjson", ".json":
		return JSONL
	case ".db", ".sqlite", ".sqlite3":
		return SQLite
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// Returns Unknown if the format cannot be determined from the content alone.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, sqliteMagic) {
		return SQLite
	}
	if detectHTMLMagic(data) {
		return HTML
	}
	if detectJSONLMagic(data) {
		return JSONL
	}
	return Unknown
}

// DetectFromReader reads the first bytes of r to determine its format.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	// Check for common HTML signatures (case-insensitive)
	upper := strings.ToUpper(string(data[:min(len(data), 512)]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}
	// Saved page fragments often start with a comment or a head element
	if strings.HasPrefix(upper, "<!--") || strings.HasPrefix(upper, "<HEAD") {
		return strings.Contains(upper, "<TABLE") || strings.Contains(upper, "<BODY") || strings.Contains(upper, "<HTML")
	}
	return false
}

// detectJSONLMagic checks if the data starts with a JSON object.
func detectJSONLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	return len(data) > 0 && data[0] == '{'
}
