package parser

import (
	"archive/zip"
	"fmt"

	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/ooxml"
)

// valuesField is the field index of the values pseudo-field.
const valuesField = -2

// ExtractPivotTables reads the pivot tables hosted on each sheet together
// with their cache definitions.
// Returns a map of sheet name to pivot tables in relationship order.
func ExtractPivotTables(r *zip.Reader) (map[string][]models.PivotTableSummary, error) {
	partsBySheet, err := sheetParts(r, relPivotTable)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.PivotTableSummary)
	for sheetName, parts := range partsBySheet {
		for _, part := range parts {
			summary, err := readPivotTable(r, part)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", sheetName, err)
			}
			result[sheetName] = append(result[sheetName], summary)
		}
	}

	return result, nil
}

// readPivotTable decodes a pivot table part and the cache definition it
// points to.
func readPivotTable(r *zip.Reader, part string) (models.PivotTableSummary, error) {
	var def ooxml.PivotTableDefinition
	if err := readPart(r, part, &def); err != nil {
		return models.PivotTableSummary{}, err
	}

	rels, err := readRelationships(r, part)
	if err != nil {
		return models.PivotTableSummary{}, err
	}
	var cache ooxml.PivotCacheDefinition
	if target := rels.PivotCacheTarget(); target != "" {
		if err := readPart(r, ooxml.ResolveTarget(part, target), &cache); err != nil {
			return models.PivotTableSummary{}, err
		}
	}

	return pivotSummary(def, cache), nil
}

func pivotSummary(def ooxml.PivotTableDefinition, cache ooxml.PivotCacheDefinition) models.PivotTableSummary {
	summary := models.PivotTableSummary{Name: def.Name}
	if ws := cache.CacheSource.WorksheetSource; ws != nil {
		if ws.Name != "" {
			summary.Source = ws.Name
		} else {
			summary.Source = qualifiedRef(ws.Sheet, ws.Ref)
		}
	}
	if def.PivotTableStyleInfo != nil {
		summary.Style = def.PivotTableStyleInfo.Name
	}

	names := make([]string, len(def.PivotFields.PivotField))
	for i, pf := range def.PivotFields.PivotField {
		field := models.PivotFieldSummary{Axis: pf.Axis}
		if i < len(cache.CacheFields.CacheField) {
			cf := cache.CacheFields.CacheField[i]
			field.Name = cf.Name
			if cf.SharedItems != nil {
				for _, s := range cf.SharedItems.S {
					field.SharedItems = append(field.SharedItems, s.V)
				}
			}
		}
		if field.Name == "" {
			field.Name = pf.Name
		}
		names[i] = field.Name
		summary.Fields = append(summary.Fields, field)
	}

	fieldName := func(x int) string {
		if x == valuesField {
			return "Values"
		}
		if x >= 0 && x < len(names) {
			return names[x]
		}
		return ""
	}
	if def.RowFields != nil {
		for _, f := range def.RowFields.Field {
			summary.RowFields = append(summary.RowFields, fieldName(f.X))
		}
	}
	if def.ColFields != nil {
		for _, f := range def.ColFields.Field {
			summary.ColumnFields = append(summary.ColumnFields, fieldName(f.X))
		}
	}
	if def.PageFields != nil {
		for _, f := range def.PageFields.PageField {
			summary.PageFields = append(summary.PageFields, fieldName(f.Fld))
		}
	}
	if def.DataFields != nil {
		for _, df := range def.DataFields.DataField {
			subtotal := df.Subtotal
			if subtotal == "" {
				subtotal = "sum"
			}
			summary.DataFields = append(summary.DataFields, models.PivotDataFieldSummary{
				Name:     df.Name,
				Field:    fieldName(df.Fld),
				Subtotal: subtotal,
			})
		}
	}

	return summary
}
