package models

// WorkbookSummary represents workbook-level container with per-sheet data.
type WorkbookSummary struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// ActiveSheet is the name of the sheet selected on open.
	ActiveSheet string `json:"active_sheet"`
	// SheetOrder lists sheet names in workbook order.
	SheetOrder []string `json:"sheet_order"`
	// Sheets maps sheet name to SheetSummary.
	Sheets map[string]SheetSummary `json:"sheets"`
}
