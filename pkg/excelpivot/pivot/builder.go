package pivot

import (
	"fmt"

	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/ooxml"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/writer"
	"github.com/xuri/excelize/v2"
)

// Result describes a pivot sheet added to a workbook.
type Result struct {
	Sheet      string
	Definition *Definition
	// TablePart and CachePart are the package part names written.
	TablePart string
	CachePart string
}

// Build adds a sheet holding a pivot table over table, laid out by
// settings, and makes it the active sheet.
func Build(f *excelize.File, table *writer.Table, settings models.PivotSettings, opts Options) (*Result, error) {
	settings = settings.WithDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if index, _ := f.GetSheetIndex(settings.SheetName); index >= 0 {
		return nil, fmt.Errorf("create sheet %s: %w", settings.SheetName, ErrSheetExists)
	}
	if _, err := f.NewSheet(settings.SheetName); err != nil {
		return nil, fmt.Errorf("create sheet %s: %w", settings.SheetName, err)
	}

	def := NewDefinition(settings.TableName, table.ColumnNames(), table.Records)
	def.Style = settings.TableStyle
	if err := AssignAxes(def, table, settings, opts); err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	result := &Result{Sheet: settings.SheetName, Definition: def}
	if err := write(f, table, def, result); err != nil {
		return nil, err
	}

	col, row := def.FreezeCell()
	if err := freeze(f, settings.SheetName, col, row); err != nil {
		return nil, err
	}

	index, err := f.GetSheetIndex(settings.SheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	opts.logger().Debug("pivot table added",
		"sheet", settings.SheetName,
		"rows", len(def.RowFields()),
		"columns", len(def.ColumnFields()),
		"filters", len(def.PageFields()),
		"values", len(def.DataFields()))
	return result, nil
}

// sourceRegion is the range the cache reads. Like the table part, it spans
// at least one row below the header.
func sourceRegion(table *writer.Table) models.TableRegion {
	region := table.Region
	if region.RowCount() < 2 {
		region.R2 = region.R1 + 1
	}
	return region
}

// write lets excelize wire the pivot package parts (relationships,
// workbook pivot cache entry, content types), then replaces the generated
// pivot table and cache definitions with the ones rendered from def.
func write(f *excelize.File, table *writer.Table, def *Definition, result *Result) error {
	tablesBefore := ooxml.PartNames(f, ooxml.PivotTablePrefix)
	cachesBefore := ooxml.PartNames(f, ooxml.PivotCachePrefix)

	region := sourceRegion(table)
	loc := def.Location()
	if err := f.AddPivotTable(&excelize.PivotTableOptions{
		DataRange:           table.Sheet + "!" + region.Ref(),
		PivotTableRange:     result.Sheet + "!" + loc.Region.Ref(),
		Name:                def.Name,
		PivotTableStyleName: def.Style,
	}); err != nil {
		return fmt.Errorf("add pivot table: %w", err)
	}

	tables := ooxml.AddedParts(f, ooxml.PivotTablePrefix, tablesBefore)
	caches := ooxml.AddedParts(f, ooxml.PivotCachePrefix, cachesBefore)
	if len(tables) != 1 || len(caches) != 1 {
		return fmt.Errorf("add pivot table: expected one table and one cache part, found %d and %d", len(tables), len(caches))
	}
	result.TablePart, result.CachePart = tables[0], caches[0]

	var generated ooxml.PivotTableDefinition
	if err := ooxml.LoadPart(f, result.TablePart, &generated); err != nil {
		return err
	}
	if err := ooxml.StorePart(f, result.TablePart, def.RenderTable(generated.CacheID)); err != nil {
		return err
	}
	return ooxml.StorePart(f, result.CachePart, def.RenderCache(table.Sheet, region))
}

func freeze(f *excelize.File, sheet string, col, row int) error {
	topLeft, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      col,
		YSplit:      row,
		TopLeftCell: topLeft,
		ActivePane:  "bottomRight",
	})
}
