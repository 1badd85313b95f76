package pivot

import (
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/ooxml"
)

// Versions stamped on rendered parts.
const (
	createdVersion        = 3
	updatedVersion        = 8
	minRefreshableVersion = 3
)

// Location is the placement of the pivot table on its sheet. The table is
// anchored at A1; Excel recomputes the extent on the refresh that opening
// the document triggers.
type Location struct {
	Region         models.TableRegion
	FirstHeaderRow int
	FirstDataRow   int
	FirstDataCol   int
}

// Location returns the initial placement of the pivot table.
func (d *Definition) Location() Location {
	width := 1 + max(1, len(d.dataFields))
	height := 2 + len(d.colFields)
	return Location{
		Region:         models.NewTableRegion(height, width),
		FirstHeaderRow: 1,
		FirstDataRow:   1,
		FirstDataCol:   1,
	}
}

// FreezeCell returns the 0-based column and row offsets of the freeze pane:
// the first data column, and the first data row below the column labels.
func (d *Definition) FreezeCell() (col, row int) {
	loc := d.Location()
	return loc.FirstDataCol, loc.FirstDataRow + len(d.colFields)
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

// RenderTable renders the pivot table part referencing cache cacheID.
func (d *Definition) RenderTable(cacheID int) ooxml.PivotTableDefinition {
	loc := d.Location()
	pt := ooxml.PivotTableDefinition{
		Xmlns:                 ooxml.NamespaceMain,
		Name:                  d.Name,
		CacheID:               cacheID,
		DataCaption:           "Values",
		UpdatedVersion:        updatedVersion,
		MinRefreshableVersion: minRefreshableVersion,
		CreatedVersion:        createdVersion,
		UseAutoFormatting:     true,
		ItemPrintTitles:       true,
		Indent:                intPtr(0),
		Compact:               boolPtr(true),
		CompactData:           boolPtr(true),
		Outline:               true,
		OutlineData:           true,
		MultipleFieldFilters:  boolPtr(false),
		Location: ooxml.Location{
			Ref:            loc.Region.Ref(),
			FirstHeaderRow: loc.FirstHeaderRow,
			FirstDataRow:   loc.FirstDataRow,
			FirstDataCol:   loc.FirstDataCol,
		},
		RowItems: &ooxml.ItemRows{Count: 1, I: []ooxml.ItemRow{{X: []ooxml.ItemRX{{}}}}},
		ColItems: &ooxml.ItemRows{Count: 1, I: []ooxml.ItemRow{{}}},
		PivotTableStyleInfo: &ooxml.PivotTableStyleInfo{
			Name:           d.Style,
			ShowRowHeaders: true,
			ShowColHeaders: true,
			ShowLastColumn: true,
		},
	}
	if len(d.pageFields) > 0 {
		pt.Location.RowPageCount = len(d.pageFields)
		pt.Location.ColPageCount = 1
	}

	for _, f := range d.fields {
		pt.PivotFields.PivotField = append(pt.PivotFields.PivotField, renderField(f))
	}
	pt.PivotFields.Count = len(pt.PivotFields.PivotField)

	pt.RowFields = renderFieldList(d.rowFields)
	pt.ColFields = renderFieldList(d.colFields)

	if len(d.pageFields) > 0 {
		pt.PageFields = &ooxml.PageFields{Count: len(d.pageFields)}
		for _, i := range d.pageFields {
			pt.PageFields.PageField = append(pt.PageFields.PageField, ooxml.PageField{Fld: i, Hier: -1})
		}
	}
	if len(d.dataFields) > 0 {
		pt.DataFields = &ooxml.DataFields{Count: len(d.dataFields)}
		for _, df := range d.dataFields {
			pt.DataFields.DataField = append(pt.DataFields.DataField, ooxml.DataField{
				Name:     df.Name,
				Fld:      df.Field,
				Subtotal: string(df.Aggregation),
			})
		}
	}
	return pt
}

func renderField(f Field) ooxml.PivotField {
	pf := ooxml.PivotField{
		Axis:        f.Axis.String(),
		DataField:   f.DataField,
		Compact:     boolPtr(true),
		Outline:     boolPtr(true),
		ShowAll:     boolPtr(f.ShowAll),
		TopAutoShow: boolPtr(false),
	}
	if f.Axis == AxisRow || f.Axis == AxisColumn {
		pf.SortType = string(f.SortOrder)
	}
	if f.Items == nil {
		return pf
	}
	pf.Items = &ooxml.Items{Count: len(f.Items)}
	for _, it := range f.Items {
		item := ooxml.Item{}
		if it.Type == ItemData {
			item.X = intPtr(it.X)
		} else {
			item.T = string(it.Type)
		}
		if !it.ShowDetails {
			item.SD = boolPtr(false)
		}
		pf.Items.Item = append(pf.Items.Item, item)
	}
	return pf
}

func renderFieldList(fields []int) *ooxml.FieldList {
	if len(fields) == 0 {
		return nil
	}
	list := &ooxml.FieldList{Count: len(fields)}
	for _, i := range fields {
		list.Field = append(list.Field, ooxml.Field{X: i})
	}
	return list
}

// RenderCache renders the cache definition over region of sheet.
func (d *Definition) RenderCache(sheet string, region models.TableRegion) ooxml.PivotCacheDefinition {
	pc := ooxml.PivotCacheDefinition{
		Xmlns:                 ooxml.NamespaceMain,
		SaveData:              boolPtr(false),
		RefreshOnLoad:         true,
		CreatedVersion:        createdVersion,
		RefreshedVersion:      updatedVersion,
		MinRefreshableVersion: minRefreshableVersion,
		CacheSource: ooxml.CacheSource{
			Type:            "worksheet",
			WorksheetSource: &ooxml.WorksheetSource{Ref: region.Ref(), Sheet: sheet},
		},
	}
	for _, f := range d.fields {
		shared := &ooxml.SharedItems{}
		if len(f.Shared) > 0 {
			shared.Count = intPtr(len(f.Shared))
			for _, v := range f.Shared {
				shared.S = append(shared.S, ooxml.SharedText{V: v})
			}
		}
		pc.CacheFields.CacheField = append(pc.CacheFields.CacheField, ooxml.CacheField{
			Name:        f.Name,
			SharedItems: shared,
		})
	}
	pc.CacheFields.Count = len(pc.CacheFields.CacheField)
	return pc
}
