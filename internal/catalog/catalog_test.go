package catalog

import (
	"strings"
	"testing"
)

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	got := Filter("fall")
	want := []string{"Fall No Injuries", "Fall Unknown Injuries", "Fall With Injuries", "Staff Falls"}
	if len(got) != len(want) {
		t.Fatalf("Filter(fall) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Filter(fall)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterTrimsQuery(t *testing.T) {
	got := Filter("  camera ")
	if len(got) != 4 {
		t.Fatalf("expected 4 camera entries, got %v", got)
	}
	if got[0] != "Camera Audit" || got[3] != "Monitor Camera" {
		t.Fatalf("catalog order not preserved: %v", got)
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	got := Filter("   ")
	if len(got) != len(Entries()) {
		t.Fatalf("expected full catalog, got %d of %d", len(got), len(Entries()))
	}
	if got[0] != "NONE" {
		t.Fatalf("expected NONE sentinel first, got %q", got[0])
	}
}

func TestContainsIsCaseSensitive(t *testing.T) {
	if !Contains("Alarm") {
		t.Fatalf("expected Alarm to match")
	}
	// The live filter accepts "alarm" as a substring, but the authoritative
	// match does not. This mismatch is intentional: selecting a suggestion
	// writes the canonical string back into the field.
	if Contains("alarm") {
		t.Fatalf("did not expect lowercase alarm to match")
	}
	if Contains("") {
		t.Fatalf("did not expect empty string to match")
	}
	if len(Filter("alarm")) == 0 {
		t.Fatalf("expected live filter to still suggest Alarm")
	}
}

func TestEveryEntryFindableByItsOwnText(t *testing.T) {
	for _, entry := range Entries() {
		matches := Filter(entry)
		found := false
		for _, m := range matches {
			if m == entry {
				found = true
			}
		}
		if !found {
			t.Fatalf("entry %q not found by its own text", entry)
		}
		if !Contains(entry) {
			t.Fatalf("entry %q failed exact match", entry)
		}
		if strings.TrimSpace(entry) != entry {
			t.Fatalf("entry %q carries surrounding whitespace", entry)
		}
	}
}
