// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reports

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// Built-in number format 4 is #,##0.00
const moneyNumFmt = 4

// WriteXLSX saves the report as a workbook with one sheet per table
func WriteXLSX(path string, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyNumFmt})
	if err != nil {
		return fmt.Errorf("failed to create money style: %w", err)
	}

	for i, t := range r.Tables() {
		if i == 0 {
			err = f.SetSheetName("Sheet1", t.Name)
		} else {
			_, err = f.NewSheet(t.Name)
		}
		if err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", t.Name, err)
		}

		if err := writeSheet(f, t, bold, money); err != nil {
			return fmt.Errorf("failed to write sheet %s: %w", t.Name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("workbook written", "path", path, "sheets", len(Names))
	return nil
}

func writeSheet(f *excelize.File, t Table, bold, money int) error {
	sheet := t.Name

	header := make([]any, len(t.Columns))
	for j, c := range t.Columns {
		header[j] = c.Title
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(t.Columns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return err
	}

	for j, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, j+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if len(t.Rows) == 0 {
		return nil
	}
	for j, c := range t.Columns {
		if c.Kind != KindMoney {
			continue
		}
		top, _ := excelize.CoordinatesToCellName(j+1, 2)
		bottom, _ := excelize.CoordinatesToCellName(j+1, len(t.Rows)+1)
		if err := f.SetCellStyle(sheet, top, bottom, money); err != nil {
			return err
		}
	}
	return nil
}
