package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/usagetranslator/internal/types"
)

// =============================================================================
// AUDIT WORKBOOK
// =============================================================================
//
// WORKBOOK STRUCTURE:
//
//   Sheet "RunningTotals"
//   | Product | ItemCount | RunningTotal | RowNo |
//
//   Sheet "Skipped"
//   | Row | Message |
//
// Numbers are written as numeric cells so the sheet can be filtered and
// summed directly.

const (
	// SheetRunningTotals holds the running-total audit trail.
	SheetRunningTotals = "RunningTotals"

	// SheetSkipped holds the skipped rows.
	SheetSkipped = "Skipped"

	// defaultSheet is the sheet every new excelize file starts with.
	defaultSheet = "Sheet1"
)

// WriteWorkbook writes the audit workbook to w.
//
// PARAMETERS:
//   - w: The destination of the XLSX bytes.
//   - totals: The running totals, already in report order.
//   - skipped: The skipped rows, in row order.
//
// RETURNS:
//   - An error if a sheet cannot be built or the workbook cannot be written.
func WriteWorkbook(w io.Writer, totals []types.RunningTotal, skipped []types.SkippedRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetRunningTotals); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSkipped); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetSkipped, err)
	}

	// Running totals.
	if err := setRow(f, SheetRunningTotals, 1, []interface{}{"Product", "ItemCount", "RunningTotal", "RowNo"}); err != nil {
		return err
	}
	for i, t := range totals {
		if err := setRow(f, SheetRunningTotals, i+2, []interface{}{t.Product, t.ItemCount, t.Cumulative, t.RowNo}); err != nil {
			return err
		}
	}

	// Skipped rows.
	if err := setRow(f, SheetSkipped, 1, []interface{}{"Row", "Message"}); err != nil {
		return err
	}
	for i, s := range skipped {
		if err := setRow(f, SheetSkipped, i+2, []interface{}{s.RowNo, s.Message}); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

// setRow writes values into row (1-based) of sheet, starting at column A.
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
	}
	return nil
}
