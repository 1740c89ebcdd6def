package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteCreatesTimestampNamedFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 5, 20, 15, 42, 0, time.Local)
	fields := Fields{
		Date:                 "2026/03/05",
		Shift:                "19:30 - 7:30",
		CallReceived:         "19:50",
		Arrival:              "20:05",
		Completion:           "20:40",
		CallType:             "Alarm",
		PhysicalIntervention: "No",
		RestraintUsed:        "No",
		PoliceInvolved:       "Yes",
		RequestedBy:          "Nurse Adams",
		Contact:              "555-0102",
		Notes:                "first line\nsecond line",
	}
	if err := Write(dir, fields, now); err != nil {
		t.Fatalf("Write: %v", err)
	}

	path := filepath.Join(dir, "2026-03-05 20-15-42 Incident Report Entry.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file at %s: %v", path, err)
	}
	content := string(data)
	for _, want := range []string{
		"record submitted on: 2026-03-05 20:15:42",
		"Date:",
		"2026/03/05",
		"Police Involved:",
		"Yes",
		"Notes:",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("log content missing %q:\n%s", want, content)
		}
	}
	// Multi-line notes keep their indentation.
	if !strings.Contains(content, "\n   first line\n   second line") {
		t.Fatalf("notes not indented:\n%s", content)
	}
}

func TestTrimBelowCapDeletesNothing(t *testing.T) {
	dir := t.TempDir()
	writeDummy(t, dir, 5)
	if err := Trim(dir, 10, 3); err != nil {
		t.Fatalf("Trim: %v", err)
	}
	if got := countFiles(t, dir); got != 5 {
		t.Fatalf("expected 5 files, got %d", got)
	}
}

func TestTrimDeletesOldestBatch(t *testing.T) {
	dir := t.TempDir()
	writeDummy(t, dir, 12)
	// 12 files, cap 10, margin 3: delete the 5 oldest in one batch.
	if err := Trim(dir, 10, 3); err != nil {
		t.Fatalf("Trim: %v", err)
	}
	if got := countFiles(t, dir); got != 7 {
		t.Fatalf("expected 7 files, got %d", got)
	}
	// The oldest names must be the ones gone.
	if _, err := os.Stat(filepath.Join(dir, dummyName(0))); !os.IsNotExist(err) {
		t.Fatalf("expected oldest file deleted")
	}
	if _, err := os.Stat(filepath.Join(dir, dummyName(11))); err != nil {
		t.Fatalf("expected newest file kept: %v", err)
	}
}

func TestTrimNeverDeletesMoreThanExists(t *testing.T) {
	dir := t.TempDir()
	writeDummy(t, dir, 4)
	if err := Trim(dir, 2, 30); err != nil {
		t.Fatalf("Trim: %v", err)
	}
	if got := countFiles(t, dir); got != 0 {
		t.Fatalf("expected empty directory, got %d files", got)
	}
}

func dummyName(i int) string {
	return fmt.Sprintf("2026-01-%02d 08-00-00 Incident Report Entry.txt", i+1)
}

func writeDummy(t *testing.T, dir string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := os.WriteFile(filepath.Join(dir, dummyName(i)), []byte("x"), 0o644); err != nil {
			t.Fatalf("writeDummy: %v", err)
		}
	}
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("countFiles: %v", err)
	}
	return len(entries)
}
