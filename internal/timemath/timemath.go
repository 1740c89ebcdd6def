// Package timemath parses 24-hour clock strings and computes elapsed time
// between two of them without a date component.
package timemath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// Clock is a time of day in minutes since midnight.
type Clock int

// ParseClock parses an HHMM-style string, colon optional. Whitespace is
// trimmed and a missing colon is inserted two characters from the end, so
// "2350" and "23:50" are equivalent.
func ParseClock(s string) (Clock, error) {
	s = Colonize(strings.TrimSpace(s))
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return Clock(hour*60 + minute), nil
}

// Colonize inserts a colon two characters from the end when none is present:
// "2350" becomes "23:50". Already-colonized input is returned unchanged.
func Colonize(s string) string {
	if strings.Contains(s, ":") || len(s) < 3 {
		return s
	}
	return s[:len(s)-2] + ":" + s[len(s)-2:]
}

// Elapsed is a duration between two clock readings.
type Elapsed struct {
	// minutes of the base wraparound interval, 0..1439
	base int
	// the explicit over-24-hours correction was applied
	corrected bool
}

// Between computes the elapsed time from t1 to t2. When t2 is numerically
// earlier than t1 it is treated as the following day, which captures an
// ordinary midnight-crossing shift. overDay adds exactly 24 hours on top of
// that and must only be passed for durations eligible for the correction
// (call to arrival never is).
func Between(t1, t2 string, overDay bool) (Elapsed, error) {
	c1, err := ParseClock(t1)
	if err != nil {
		return Elapsed{}, err
	}
	c2, err := ParseClock(t2)
	if err != nil {
		return Elapsed{}, err
	}
	base := (int(c2) - int(c1) + minutesPerDay) % minutesPerDay
	return Elapsed{base: base, corrected: overDay}, nil
}

// Seconds returns the elapsed time in whole seconds.
func (e Elapsed) Seconds() int {
	s := e.base * 60
	if e.corrected {
		s += minutesPerDay * 60
	}
	return s
}

// Minutes returns the elapsed time in whole minutes.
func (e Elapsed) Minutes() int {
	m := e.base
	if e.corrected {
		m += minutesPerDay
	}
	return m
}

// Hours returns the elapsed time in hours rounded to one decimal place.
func (e Elapsed) Hours() float64 {
	h := float64(e.base) / 60
	h = math.Round(h*10) / 10
	if e.corrected {
		h += 24
	}
	return h
}

// Human renders the elapsed time as "<H> hours, <M> minutes". Singular forms
// are used when a count is exactly 1, the hour segment is omitted when the
// base interval is under an hour and no correction applies, and the minute
// segment is omitted when the minutes are 0. A sub-hour interval with the
// correction still renders as "24 hours, <M> minutes".
func (e Elapsed) Human() string {
	hours := e.base / 60
	minutes := e.base % 60

	if hours == 0 && !e.corrected {
		return fmt.Sprintf("%d %s", minutes, plural("minute", minutes))
	}

	if e.corrected {
		hours += 24
	}
	if minutes == 0 {
		return fmt.Sprintf("%d %s", hours, plural("hour", hours))
	}
	return fmt.Sprintf("%d %s, %d %s", hours, plural("hour", hours), minutes, plural("minute", minutes))
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
