package models

import "github.com/xuri/excelize/v2"

// TableRegion represents cell coordinate bounds of a written table.
type TableRegion struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// NewTableRegion returns the region anchored at A1 spanning rowCount rows
// (header included) and columnCount columns.
func NewTableRegion(rowCount, columnCount int) TableRegion {
	return TableRegion{R1: 1, C1: 1, R2: rowCount, C2: columnCount}
}

// RowCount returns the number of rows in the region, header included.
func (r TableRegion) RowCount() int {
	return r.R2 - r.R1 + 1
}

// ColumnCount returns the number of columns in the region.
func (r TableRegion) ColumnCount() int {
	return r.C2 - r.C1 + 1
}

// TopLeft returns the cell name of the first cell, e.g. "A1".
func (r TableRegion) TopLeft() string {
	cell, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	return cell
}

// BottomRight returns the cell name of the last cell, e.g. "D10".
func (r TableRegion) BottomRight() string {
	cell, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return cell
}

// Ref returns the range reference of the region, e.g. "A1:D10".
func (r TableRegion) Ref() string {
	return r.TopLeft() + ":" + r.BottomRight()
}

// AbsoluteRef returns the sheet-qualified absolute reference, e.g.
// DATA!$A$1:$D$10.
func (r TableRegion) AbsoluteRef(sheet string) string {
	tl, _ := excelize.CoordinatesToCellName(r.C1, r.R1, true)
	br, _ := excelize.CoordinatesToCellName(r.C2, r.R2, true)
	return sheet + "!" + tl + ":" + br
}
