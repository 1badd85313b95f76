package models

// TableSummary describes a structured table declared on a sheet.
type TableSummary struct {
	// ID is the workbook-wide table id.
	ID int `json:"id"`
	// Name is the table name.
	Name string `json:"name"`
	// DisplayName is the name shown to users and used in formulas.
	DisplayName string `json:"display_name"`
	// Region is the table range.
	Region TableRegion `json:"region"`
	// AutoFilter is the autofilter range reference, empty if none.
	AutoFilter string `json:"auto_filter,omitempty"`
	// StyleName is the built-in table style name.
	StyleName string `json:"style_name,omitempty"`
	// Columns lists the table column names in order.
	Columns []string `json:"columns"`
}

// PivotFieldSummary describes one pivot field and its cached items.
type PivotFieldSummary struct {
	// Name is the source column name.
	Name string `json:"name"`
	// Axis is the field axis (axisRow, axisCol, axisPage) or empty.
	Axis string `json:"axis,omitempty"`
	// SharedItems lists the cache shared items in index order.
	SharedItems []string `json:"shared_items,omitempty"`
}

// PivotDataFieldSummary describes one value-area field.
type PivotDataFieldSummary struct {
	// Name is the caption of the data field.
	Name string `json:"name"`
	// Field is the source column name.
	Field string `json:"field"`
	// Subtotal is the aggregation function.
	Subtotal string `json:"subtotal"`
}

// PivotTableSummary describes a pivot table found on a sheet.
type PivotTableSummary struct {
	// Name is the pivot table name.
	Name string `json:"name"`
	// Source is the sheet-qualified source range.
	Source string `json:"source"`
	// Style is the pivot table style name.
	Style string `json:"style,omitempty"`
	// Fields lists every pivot field in cache order.
	Fields []PivotFieldSummary `json:"fields"`
	// RowFields lists the row axis field names in order.
	RowFields []string `json:"row_fields,omitempty"`
	// ColumnFields lists the column axis field names in order.
	ColumnFields []string `json:"column_fields,omitempty"`
	// PageFields lists the report filter field names in order.
	PageFields []string `json:"page_fields,omitempty"`
	// DataFields lists the value area fields in order.
	DataFields []PivotDataFieldSummary `json:"data_fields,omitempty"`
}

// SheetSummary represents structured data for a single sheet.
type SheetSummary struct {
	// Rows contains rows with cell values.
	Rows []CellRow `json:"rows,omitempty"`
	// Tables contains structured tables declared on the sheet.
	Tables []TableSummary `json:"tables,omitempty"`
	// PivotTables contains pivot tables hosted on the sheet.
	PivotTables []PivotTableSummary `json:"pivot_tables,omitempty"`
	// FrozenAt is the top-left cell of the scrolling pane, e.g. "B3", empty if none.
	FrozenAt string `json:"frozen_at,omitempty"`
}
