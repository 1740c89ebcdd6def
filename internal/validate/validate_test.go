package validate

import "testing"

func TestDateAcceptsLeapDayWithoutYear(t *testing.T) {
	r := Date("02/29", Authoritative)
	if r.Status != Pass {
		t.Fatalf("expected 02/29 to pass, got %v", r.Status)
	}
	if r.Month != 2 || r.Day != 29 {
		t.Fatalf("unexpected parse: month=%d day=%d", r.Month, r.Day)
	}
}

func TestDateRejectsInvalidMonthAndDay(t *testing.T) {
	for _, s := range []string{"13/45", "0/10", "12/32", "02/30", "1-15", "foo", "5/"} {
		if r := Date(s, Authoritative); r.Status != Fail {
			t.Fatalf("expected %q to fail, got %v", s, r.Status)
		}
	}
}

func TestDateSingleDigitsAndFormatting(t *testing.T) {
	r := Date(" 3/7 ", Live)
	if r.Status != Pass {
		t.Fatalf("expected 3/7 to pass, got %v", r.Status)
	}
	if got := r.FormatDate(2026); got != "2026/03/07" {
		t.Fatalf("FormatDate = %q", got)
	}
}

func TestDateEmptyByMode(t *testing.T) {
	if r := Date("", Live); r.Status != Neutral {
		t.Fatalf("live empty date should stay neutral, got %v", r.Status)
	}
	if r := Date("  ", Authoritative); r.Status != Fail {
		t.Fatalf("authoritative empty date should fail, got %v", r.Status)
	}
}

func TestClockLengthAndParse(t *testing.T) {
	cases := []struct {
		in   string
		want Status
	}{
		{"2350", Pass},
		{"23:50", Pass},
		{" 0800 ", Pass},
		{"930", Fail}, // too short, even though parseable after the colon insert
		{"23:5", Pass},
		{"24:00", Fail},
		{"abcd", Fail},
	}
	for _, tc := range cases {
		if got := Clock(tc.in, Authoritative); got != tc.want {
			t.Fatalf("Clock(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClockEmptyByMode(t *testing.T) {
	if got := Clock("", Live); got != Neutral {
		t.Fatalf("live empty clock should stay neutral, got %v", got)
	}
	if got := Clock("", Authoritative); got != Fail {
		t.Fatalf("authoritative empty clock should fail, got %v", got)
	}
}

func TestCallTypeHighlightedSuggestionWins(t *testing.T) {
	r := CallType("ala", "Alarm", Authoritative)
	if r.Status != Pass {
		t.Fatalf("expected highlighted match to pass, got %v", r.Status)
	}
	if r.Canonical != "Alarm" {
		t.Fatalf("expected canonical write-back Alarm, got %q", r.Canonical)
	}
}

func TestCallTypeVerbatimMatch(t *testing.T) {
	r := CallType("Patrol Duties", "", Authoritative)
	if r.Status != Pass {
		t.Fatalf("expected verbatim match to pass, got %v", r.Status)
	}
	if r.Canonical != "" {
		t.Fatalf("verbatim match should not rewrite the field, got %q", r.Canonical)
	}
}

func TestCallTypeCaseSensitiveAtSubmit(t *testing.T) {
	// "patrol duties" shows up in the live filter but fails the
	// authoritative exact match.
	if r := CallType("patrol duties", "", Authoritative); r.Status != Fail {
		t.Fatalf("expected lowercase variant to fail, got %v", r.Status)
	}
}

func TestCallTypeEmptyByMode(t *testing.T) {
	if r := CallType("", "", Live); r.Status != Neutral {
		t.Fatalf("live empty call type should stay neutral, got %v", r.Status)
	}
	if r := CallType("", "", Authoritative); r.Status != Fail {
		t.Fatalf("authoritative empty call type should fail, got %v", r.Status)
	}
}

func TestStateGate(t *testing.T) {
	var s State
	if s.Passed() {
		t.Fatalf("zero state must not pass")
	}
	s = State{Date: Pass, CallReceived: Pass, Arrival: Pass, Completion: Pass, CallType: Pass}
	if !s.Passed() {
		t.Fatalf("all-pass state must pass")
	}
	s.Completion = Fail
	if s.Passed() {
		t.Fatalf("one failing field must block the gate")
	}
}
