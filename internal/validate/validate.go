// Package validate holds the pure field validation rules. Presentation
// (highlight colors) is mapped from these results by the caller, so the rules
// are testable without a UI surface.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"incidententry/internal/catalog"
	"incidententry/internal/timemath"
)

// Status is the outcome of validating a single field.
type Status int

const (
	// Neutral means the field has not been judged: empty input in live mode.
	Neutral Status = iota
	// Pass means the field parsed.
	Pass
	// Fail means the field is present but unparseable, or empty in
	// authoritative mode.
	Fail
)

// Mode selects between the cosmetic focus-loss check and the submit-time
// check that gates the pipeline.
type Mode int

const (
	// Live validation runs on focus loss; an empty field stays Neutral.
	Live Mode = iota
	// Authoritative validation runs on submit; every field is required.
	Authoritative
)

// daysInMonth uses 29 for February: the entered date carries no year, so a
// leap day can never be ruled out.
var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DateResult carries the parsed month and day alongside the status.
type DateResult struct {
	Status Status
	Month  int
	Day    int
}

// Date validates an mm/dd string. The month also routes the submission to its
// monthly table.
func Date(s string, mode Mode) DateResult {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateResult{Status: statusForEmpty(mode)}
	}
	mm, dd, ok := strings.Cut(s, "/")
	if !ok {
		return DateResult{Status: Fail}
	}
	month, err := strconv.Atoi(mm)
	if err != nil || month < 1 || month > 12 {
		return DateResult{Status: Fail}
	}
	day, err := strconv.Atoi(dd)
	if err != nil || day < 1 || day > daysInMonth[month] {
		return DateResult{Status: Fail}
	}
	return DateResult{Status: Pass, Month: month, Day: day}
}

// FormatDate renders a passing date as YYYY/MM/DD using the processing year.
func (r DateResult) FormatDate(year int) string {
	return fmt.Sprintf("%d/%02d/%02d", year, r.Month, r.Day)
}

// Clock validates an HHMM time field. The length check enforces a full HHMM
// before colon-insensitive parsing, so "930" is rejected where "0930" passes.
func Clock(s string, mode Mode) Status {
	s = strings.TrimSpace(s)
	if s == "" {
		return statusForEmpty(mode)
	}
	if len(s) < 4 {
		return Fail
	}
	if _, err := timemath.ParseClock(s); err != nil {
		return Fail
	}
	return Pass
}

// CallTypeResult carries the canonical catalog string to force back into the
// field when a highlighted suggestion matched.
type CallTypeResult struct {
	Status Status
	// Canonical is non-empty when the field text should be replaced with the
	// exact catalog entry.
	Canonical string
}

// CallType validates the service call type. A highlighted suggestion that is
// exactly a catalog entry wins and is written back verbatim; otherwise the
// field text itself must match a catalog entry exactly, case included.
func CallType(text, highlighted string, mode Mode) CallTypeResult {
	if h := strings.TrimSpace(highlighted); catalog.Contains(h) {
		return CallTypeResult{Status: Pass, Canonical: h}
	}
	text = strings.TrimSpace(text)
	if catalog.Contains(text) {
		return CallTypeResult{Status: Pass}
	}
	if text == "" && mode == Live {
		return CallTypeResult{Status: Neutral}
	}
	return CallTypeResult{Status: Fail}
}

func statusForEmpty(mode Mode) Status {
	if mode == Authoritative {
		return Fail
	}
	return Neutral
}

// State tracks the five required-field flags. The zero value fails every
// field, matching the default-fail contract.
type State struct {
	Date         Status
	CallReceived Status
	Arrival      Status
	Completion   Status
	CallType     Status
}

// Passed reports whether every required field passed, gating submission.
func (s State) Passed() bool {
	return s.Date == Pass &&
		s.CallReceived == Pass &&
		s.Arrival == Pass &&
		s.Completion == Pass &&
		s.CallType == Pass
}
