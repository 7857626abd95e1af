package fields

import "strings"

// End reasons reported by ClassifyEndReason.
const (
	EndReasonRemoved            = "removed"
	EndReasonResigned           = "resigned"
	EndReasonDied               = "died"
	EndReasonLostElection       = "lost_election"
	EndReasonTermExpired        = "term_expired"
	EndReasonAppointedElsewhere = "appointed_elsewhere"
)

var termExpiredPhrases = []string{
	"term-limited", "term limited", "did not run", "did not seek",
	"retired", "withdrew", "successor took office",
}

// ClassifyEndReason maps free text describing how a term ended to one of
// the EndReason constants, or "" when nothing is recognized.
func ClassifyEndReason(text string) string {
	t := Lower(text)
	switch {
	case t == "":
		return ""
	case strings.Contains(t, "recalled"),
		strings.Contains(t, "impeach"),
		strings.Contains(t, "removed"):
		return EndReasonRemoved
	case strings.Contains(t, "resign"):
		return EndReasonResigned
	case strings.Contains(t, "died"):
		return EndReasonDied
	case strings.Contains(t, "lost election"),
		strings.Contains(t, "lost nomination"):
		return EndReasonLostElection
	case containsAny(t, termExpiredPhrases):
		return EndReasonTermExpired
	case strings.Contains(t, "appointed"),
		strings.Contains(t, "elected to"):
		return EndReasonAppointedElsewhere
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
