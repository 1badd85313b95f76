package excelpivot

import (
	"archive/zip"
	"fmt"
	"path/filepath"

	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect reads a workbook back into a summary of its sheets, declared
// tables and pivot tables.
func Inspect(path string) (*models.WorkbookSummary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := make(map[string]models.SheetSummary)
	sheetList := f.GetSheetList()

	for _, sheetName := range sheetList {
		rows, err := parser.ExtractCells(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("read cells of %q: %w", sheetName, err)
		}
		sheet := models.SheetSummary{Rows: rows}

		panes, err := f.GetPanes(sheetName)
		if err == nil && panes.Freeze {
			sheet.FrozenAt = panes.TopLeftCell
		}
		sheets[sheetName] = sheet
	}

	// Tables and pivot tables are read from the raw package parts
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	tableData, err := parser.ExtractTables(&r.Reader)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}
	for sheetName, tables := range tableData {
		if sheet, ok := sheets[sheetName]; ok {
			sheet.Tables = tables
			sheets[sheetName] = sheet
		}
	}

	pivotData, err := parser.ExtractPivotTables(&r.Reader)
	if err != nil {
		return nil, fmt.Errorf("read pivot tables: %w", err)
	}
	for sheetName, pivots := range pivotData {
		if sheet, ok := sheets[sheetName]; ok {
			sheet.PivotTables = pivots
			sheets[sheetName] = sheet
		}
	}

	return &models.WorkbookSummary{
		BookName:    filepath.Base(path),
		ActiveSheet: f.GetSheetName(f.GetActiveSheetIndex()),
		SheetOrder:  sheetList,
		Sheets:      sheets,
	}, nil
}
