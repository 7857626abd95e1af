package rollcall

import (
	"fmt"
	"strings"

	"github.com/tsawler/rollcall/roster"
)

// Warning is a non-fatal problem found while extracting a page: a skipped
// row, unrecognized party text, or a table missing a date column.
type Warning struct {
	// Row is the table row the warning refers to, or 0 for the table as a
	// whole.
	Row     int
	Message string
}

// String formats the warning with its row, if any
func (w Warning) String() string {
	if w.Row == 0 {
		return w.Message
	}
	return fmt.Sprintf("row %d: %s", w.Row, w.Message)
}

// FormatWarnings joins warnings into one line separated by "; "
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

func noticeWarning(n roster.Notice) Warning {
	msg := n.Message
	if n.Name != "" {
		msg = n.Name + ": " + msg
	}
	return Warning{Row: n.Row, Message: msg}
}
