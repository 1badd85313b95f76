package writer

import (
	"fmt"
	"unicode/utf8"

	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/ooxml"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/source"
	"github.com/xuri/excelize/v2"
)

// Structured table identity written to the data sheet.
const (
	TableID          = 1
	TableName        = "Data"
	TableDisplayName = "MYTABLE"
	TableStyle       = "TableStyleMedium16"
)

// Table is the result of writing the record stream to a sheet.
type Table struct {
	// Sheet is the data sheet name.
	Sheet string
	// Columns is the schema with final width estimates.
	Columns []models.Column
	// Region covers the header row and every record row.
	Region models.TableRegion
	// Records is the number of data rows written.
	Records int

	// texts holds the written text of every non-blank data cell, per column.
	texts [][]string
}

// ColumnIndex returns the position of the column named name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for _, c := range t.Columns {
		if c.Name == name {
			return c.Position
		}
	}
	return -1
}

// ColumnNames returns the header texts in column order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// ColumnValues returns the text of every non-blank data cell in column i,
// in row order. Cells left blank by nil values are omitted; empty strings
// are kept.
func (t *Table) ColumnValues(i int) []string {
	if i < 0 || i >= len(t.texts) {
		return nil
	}
	return t.texts[i]
}

// BuildTable writes the header and one row per record of r to sheet,
// declares the structured table over the written region and sizes the
// columns. columns is updated in place with the width estimates.
func BuildTable(f *excelize.File, sheet string, r source.Reader, columns []models.Column, styles *StyleCache, registry Registry) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrNoWritableColumns
	}

	table := &Table{
		Sheet:   sheet,
		Columns: columns,
		texts:   make([][]string, len(columns)),
	}

	if err := writeHeader(f, sheet, columns, styles); err != nil {
		return nil, err
	}

	row := 1
	for r.Next() {
		values, err := r.Values()
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", table.Records+1, err)
		}
		row++
		for i := range columns {
			col := &columns[i]
			var raw any
			if col.Source < len(values) {
				raw = values[col.Source]
			}
			cell, _ := excelize.CoordinatesToCellName(col.Position+1, row)

			v, ok, err := Classify(raw)
			if err != nil {
				return nil, &ValueError{Cell: sheet + "!" + cell, Type: fmt.Sprintf("%T", raw), Err: err}
			}
			if !ok {
				continue
			}
			if err := registry.Set(f, sheet, cell, v, styles); err != nil {
				return nil, fmt.Errorf("set %s: %w", cell, err)
			}
			text := v.String()
			table.texts[i] = append(table.texts[i], text)
			col.Grow(utf8.RuneCountInString(text) + ValuePadding)
		}
		table.Records++
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	table.Region = models.NewTableRegion(1+table.Records, len(columns))

	if err := declareTable(f, sheet, table); err != nil {
		return nil, err
	}
	if err := sizeColumns(f, sheet, columns); err != nil {
		return nil, err
	}
	return table, nil
}

// writeHeader writes the column names as text cells in row 1.
func writeHeader(f *excelize.File, sheet string, columns []models.Column, styles *StyleCache) error {
	var styleID int
	if styles != nil {
		id, err := styles.Get(KindText)
		if err != nil {
			return err
		}
		styleID = id
	}
	for _, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(col.Position+1, 1)
		if err := f.SetCellStr(sheet, cell, col.Name); err != nil {
			return fmt.Errorf("header %s: %w", cell, err)
		}
		if styles == nil {
			continue
		}
		if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return fmt.Errorf("header %s: %w", cell, err)
		}
	}
	return nil
}

// declareTable registers the table with excelize, which wires the sheet
// relationship and content type, then replaces the generated part with the
// table definition rendered here.
func declareTable(f *excelize.File, sheet string, table *Table) error {
	before := ooxml.PartNames(f, ooxml.TablePrefix)
	showStripes := true
	if err := f.AddTable(sheet, &excelize.Table{
		Range:          table.Region.Ref(),
		Name:           TableName,
		StyleName:      TableStyle,
		ShowRowStripes: &showStripes,
	}); err != nil {
		return fmt.Errorf("add table: %w", err)
	}
	added := ooxml.AddedParts(f, ooxml.TablePrefix, before)
	if len(added) != 1 {
		return fmt.Errorf("add table: expected one new table part, found %d", len(added))
	}
	return ooxml.StorePart(f, added[0], TablePart(table))
}

// TablePart renders the table definition for table.
//
// A table needs at least one body row, so a table without records still
// declares the empty row below the header.
func TablePart(table *Table) ooxml.Table {
	region := table.Region
	if region.RowCount() < 2 {
		region.R2 = region.R1 + 1
	}
	ref := region.Ref()
	totals := false

	part := ooxml.Table{
		Xmlns:          ooxml.NamespaceMain,
		ID:             TableID,
		Name:           TableName,
		DisplayName:    TableDisplayName,
		Ref:            ref,
		TotalsRowShown: &totals,
		AutoFilter:     &ooxml.AutoFilter{Ref: ref},
		TableStyleInfo: &ooxml.TableStyleInfo{
			Name:              TableStyle,
			ShowRowStripes:    true,
			ShowColumnStripes: false,
		},
	}
	for _, col := range table.Columns {
		part.TableColumns.TableColumn = append(part.TableColumns.TableColumn, ooxml.TableColumn{
			ID:   col.Position + 1,
			Name: col.Name,
		})
	}
	part.TableColumns.Count = len(part.TableColumns.TableColumn)
	return part
}

// sizeColumns applies the final width estimate of every column.
func sizeColumns(f *excelize.File, sheet string, columns []models.Column) error {
	for _, col := range columns {
		name, err := excelize.ColumnNumberToName(col.Position + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, UnitsToChars(WidthUnits(col.Width))); err != nil {
			return fmt.Errorf("width of column %s: %w", name, err)
		}
	}
	return nil
}
