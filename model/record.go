package model

import (
	"errors"
	"fmt"
)

// Record describes one term of office extracted from a roster table
type Record struct {
	State       string  `json:"state"`
	Name        string  `json:"name"`
	Party       *string `json:"party"`
	StartYear   *int    `json:"start_year"`
	EndYear     *int    `json:"end_year"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsActing    bool    `json:"is_acting"`
	IsIncumbent bool    `json:"is_incumbent"`

	// EndReason is a coarse reason the term ended (resigned, died, ...),
	// empty when the table does not say.
	EndReason string `json:"end_reason,omitempty"`
}

// Record invariant violations reported by Validate.
var (
	ErrNoYears            = errors.New("record has neither start nor end year")
	ErrIncumbentMismatch  = errors.New("incumbent flag does not match year fields")
	ErrIncumbentHasEndDay = errors.New("incumbent record has an end date")
)

// Validate checks the record invariants
func (r Record) Validate() error {
	if r.StartYear == nil && r.EndYear == nil {
		return fmt.Errorf("%s: %w", r.Name, ErrNoYears)
	}
	want := r.EndYear == nil && r.StartYear != nil
	if r.IsIncumbent != want {
		return fmt.Errorf("%s: %w", r.Name, ErrIncumbentMismatch)
	}
	if r.IsIncumbent && r.EndDate != nil {
		return fmt.Errorf("%s: %w", r.Name, ErrIncumbentHasEndDay)
	}
	return nil
}

// Key returns the identity used for deduplication: the name and the start
// year, with an unknown start year rendered as "?".
func (r Record) Key() string {
	if r.StartYear == nil {
		return r.Name + "\x00?"
	}
	return fmt.Sprintf("%s\x00%d", r.Name, *r.StartYear)
}

// PartyOr returns the party code, or def when the party is unknown
func (r Record) PartyOr(def string) string {
	if r.Party == nil {
		return def
	}
	return *r.Party
}

// Int returns a pointer to v
func Int(v int) *int { return &v }

// String returns a pointer to v
func String(v string) *string { return &v }
