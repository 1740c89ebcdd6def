package tui

import (
	"testing"

	"github.com/mattn/go-runewidth"

	"incidententry/internal/model"
)

func TestDraftRowTruncatesToColumnWidths(t *testing.T) {
	d := model.Draft{
		Identifier: "a very long identifying string that overflows",
		Entry: model.Entry{
			Date:         "03/05",
			Shift:        model.ShiftNight,
			CallReceived: "19:50",
			Arrival:      "20:05",
			CallType:     "Visitor - Security Presence/Assistance",
			RequestedBy:  "Nurse Adams",
			Contact:      "555-0102",
		},
	}
	row := draftRow(d)
	if len(row) != len(draftColumns) {
		t.Fatalf("expected %d cells, got %d", len(draftColumns), len(row))
	}
	for i, cell := range row {
		if w := runewidth.StringWidth(cell); w > draftColumns[i].Width {
			t.Fatalf("cell %d %q wider than column (%d > %d)", i, cell, w, draftColumns[i].Width)
		}
	}
	if row[6] != "No" || row[8] != "No" {
		t.Fatalf("expected No checkbox answers, got %q and %q", row[6], row[8])
	}
}

func TestDraftTableHeightClamps(t *testing.T) {
	if got := draftTableHeight(0); got != 1 {
		t.Fatalf("expected min height 1, got %d", got)
	}
	if got := draftTableHeight(3); got != 3 {
		t.Fatalf("expected height 3, got %d", got)
	}
	if got := draftTableHeight(25); got != 10 {
		t.Fatalf("expected capped height 10, got %d", got)
	}
}
