// Package report writes the per-submission plain-text log and enforces the
// log directory retention cap.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// fileSuffix makes log files recognizable next to anything else that ends up
// in the directory.
const fileSuffix = " Incident Report Entry.txt"

// Fields is the ordered label/value dump written for a submission. Notes are
// handled separately because they span lines.
type Fields struct {
	Date         string
	Shift        string
	CallReceived string
	Arrival      string
	Completion   string
	CallType     string

	PhysicalIntervention string
	RestraintUsed        string
	PoliceInvolved       string

	RequestedBy string
	Contact     string
	Notes       string
}

// Write creates one log file for a submission, named by a sortable timestamp
// so lexical order is chronological order.
func Write(dir string, f Fields, now time.Time) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	name := now.Format("2006-01-02 15-04-05") + fileSuffix
	var b strings.Builder
	fmt.Fprintf(&b, "\n  Below is the information for the record submitted on: %s\n\n",
		now.Format("2006-01-02 15:04:05"))

	line := func(label, value string) {
		fmt.Fprintf(&b, "  %-24s%s\n", label, value)
	}
	line("Date:", f.Date)
	line("Shift:", f.Shift)
	line("Call Received Time:", f.CallReceived)
	line("Arrival Time:", f.Arrival)
	line("Completion Time:", f.Completion)
	line("Service Call Type:", f.CallType)
	line("Physical Intervention:", f.PhysicalIntervention)
	line("Restraint Used:", f.RestraintUsed)
	line("Police Involved:", f.PoliceInvolved)
	line("Requested By:", f.RequestedBy)
	line("Contact Information:", f.Contact)

	fmt.Fprintf(&b, "\n  Notes:\n\n   %s\n", strings.ReplaceAll(f.Notes, "\n", "\n   "))

	if err := os.WriteFile(filepath.Join(dir, name), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write log file: %w", err)
	}
	return nil
}

// Trim deletes old log files once the directory holds more than maxFiles of
// them. The excess plus margin are removed in one batch so the trim does not
// run again on every following submission. Oldest files are picked by sorted
// name, not directory listing order: the timestamp prefix makes the sort
// chronological.
func Trim(dir string, maxFiles, margin int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) <= maxFiles {
		return nil
	}
	sort.Strings(names)

	toDelete := (len(names) - maxFiles) + margin
	if toDelete > len(names) {
		toDelete = len(names)
	}
	for _, name := range names[:toDelete] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("failed to delete log file %s: %w", name, err)
		}
	}
	return nil
}
