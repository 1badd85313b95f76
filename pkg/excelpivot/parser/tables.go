package parser

import (
	"archive/zip"

	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/ooxml"
)

// ExtractTables reads the structured tables declared on each sheet.
// Returns a map of sheet name to tables in relationship order.
func ExtractTables(r *zip.Reader) (map[string][]models.TableSummary, error) {
	partsBySheet, err := sheetParts(r, relTable)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.TableSummary)
	for sheetName, parts := range partsBySheet {
		for _, part := range parts {
			var table ooxml.Table
			if err := readPart(r, part, &table); err != nil {
				return nil, err
			}
			result[sheetName] = append(result[sheetName], tableSummary(table))
		}
	}

	return result, nil
}

func tableSummary(t ooxml.Table) models.TableSummary {
	summary := models.TableSummary{
		ID:          t.ID,
		Name:        t.Name,
		DisplayName: t.DisplayName,
	}
	if region, ok := parseRangeToRegion(t.Ref); ok {
		summary.Region = region
	}
	if t.AutoFilter != nil {
		summary.AutoFilter = t.AutoFilter.Ref
	}
	if t.TableStyleInfo != nil {
		summary.StyleName = t.TableStyleInfo.Name
	}
	for _, col := range t.TableColumns.TableColumn {
		summary.Columns = append(summary.Columns, col.Name)
	}
	return summary
}
