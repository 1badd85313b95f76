// Package models defines data structures shared by the workbook writer,
// the pivot builder and the read-back parser.
package models

// CellRow represents a single row of cells read back from a sheet.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string) to cell value.
	C map[string]interface{} `json:"c"`
}
