// Package dataset handles workbook persistence. The monthly, master, and
// drafts tables are Excel workbooks so staff can open them directly; this
// package is the only place that knows about the file format.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ErrNotFound reports that no workbook exists at the requested location.
var ErrNotFound = errors.New("workbook not found")

// ColumnHint carries per-column display hints. They are cosmetic only; the
// stored data is identical with or without them.
type ColumnHint struct {
	// Width is the display width in Excel column units.
	Width float64
}

// ReadAll returns every row of the first sheet as literal cell text. Raw
// values are requested so unvalidated cells like "08:00" or phone numbers are
// not reinterpreted as numbers on the way in.
func ReadAll(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat workbook: %w", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close for a read-only workbook.
			_ = cerr
		}
	}()
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

// WriteAll writes a fresh workbook containing the given rows on a single
// sheet. All cells are stored as text, centered and wrapped, with column
// widths taken from the hints. The write goes through a temp file and rename
// so a crash never leaves a half-written table behind.
func WriteAll(path, sheet string, rows [][]string, hints []ColumnHint) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create workbook directory: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close.
			_ = cerr
		}
	}()
	if sheet != "" && sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	} else {
		sheet = "Sheet1"
	}

	for i, hint := range hints {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheet, col, col, hint.Width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create cell style: %w", err)
	}

	maxCols := 0
	for rowIndex, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
		for colIndex, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex+1)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}
	if len(rows) > 0 && maxCols > 0 {
		last, err := excelize.CoordinatesToCellName(maxCols, len(rows))
		if err != nil {
			return fmt.Errorf("failed to resolve cell range: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", last, styleID); err != nil {
			return fmt.Errorf("failed to apply cell style: %w", err)
		}
	}

	// The temp name keeps the .xlsx extension; excelize refuses to save
	// under any other one.
	tmpPath := path + ".tmp.xlsx"
	if err := f.SaveAs(tmpPath); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		if rerr := os.Remove(tmpPath); rerr != nil {
			// Best-effort temp cleanup.
			_ = rerr
		}
		return fmt.Errorf("failed to replace workbook: %w", err)
	}
	return nil
}
