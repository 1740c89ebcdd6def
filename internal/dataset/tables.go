package dataset

import (
	"fmt"
	"path/filepath"
	"time"

	"incidententry/internal/model"
)

// recordWidths are the display widths of the 19 report columns, shared by the
// monthly and master tables.
var recordWidths = []float64{15, 17, 16, 21, 16, 21, 40, 24, 18, 19, 25, 25, 44, 30, 43, 43, 30, 43, 45}

// draftWidths are the display widths of the 14 draft columns.
var draftWidths = []float64{20, 15, 16, 21, 16, 21, 40, 24, 18, 19, 25, 23, 44, 30}

// RecordHints returns the column hints for report tables.
func RecordHints() []ColumnHint {
	return hints(recordWidths)
}

// DraftHints returns the column hints for the drafts table.
func DraftHints() []ColumnHint {
	return hints(draftWidths)
}

func hints(widths []float64) []ColumnHint {
	out := make([]ColumnHint, len(widths))
	for i, w := range widths {
		out[i] = ColumnHint{Width: w}
	}
	return out
}

// MonthDirName renders the per-month directory segment, e.g. "03 - March".
func MonthDirName(month int) string {
	return fmt.Sprintf("%02d - %s", month, time.Month(month).String())
}

// MonthlyPath derives the monthly workbook location from the entered date's
// year and month: <reports>/<year>/<NN - Month>/Incident Reports - <year> <Month>.xlsx.
func MonthlyPath(reportsDir string, year, month int) string {
	name := fmt.Sprintf("Incident Reports - %d %s.xlsx", year, time.Month(month).String())
	return filepath.Join(reportsDir, fmt.Sprintf("%d", year), MonthDirName(month), name)
}

// LoadMonthly reads the monthly table, header row included. A missing
// workbook yields a fresh table holding only the fixed header.
func LoadMonthly(path string) ([][]string, error) {
	rows, err := ReadAll(path)
	if err == ErrNotFound {
		return [][]string{model.RecordHeader}, nil
	}
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LoadMaster reads the master table. Unlike the monthly table, a missing
// master is a hard precondition failure: ErrNotFound is returned for the
// caller to report, and nothing is auto-created.
func LoadMaster(path string) ([][]string, error) {
	return ReadAll(path)
}

// SaveMonthly persists the monthly table.
func SaveMonthly(path string, rows [][]string) error {
	return WriteAll(path, "", rows, RecordHints())
}

// SaveMaster persists the master table, then writes a backup copy. The
// backup is best-effort: its failure never fails the save.
func SaveMaster(path, backupPath string, rows [][]string) error {
	if err := WriteAll(path, "", rows, RecordHints()); err != nil {
		return err
	}
	if backupPath != "" {
		if err := WriteAll(backupPath, "", rows, RecordHints()); err != nil {
			// Swallowed: the backup is a non-essential side channel.
			_ = err
		}
	}
	return nil
}
