package ooxml

import "encoding/xml"

// PivotTableDefinition is the pivot table part
// (xl/pivotTables/pivotTableN.xml). Child element order follows the
// schema sequence and must not change.
type PivotTableDefinition struct {
	XMLName               xml.Name             `xml:"pivotTableDefinition"`
	Xmlns                 string               `xml:"xmlns,attr"`
	Name                  string               `xml:"name,attr"`
	CacheID               int                  `xml:"cacheId,attr"`
	DataCaption           string               `xml:"dataCaption,attr"`
	UpdatedVersion        int                  `xml:"updatedVersion,attr,omitempty"`
	MinRefreshableVersion int                  `xml:"minRefreshableVersion,attr,omitempty"`
	CreatedVersion        int                  `xml:"createdVersion,attr,omitempty"`
	UseAutoFormatting     bool                 `xml:"useAutoFormatting,attr,omitempty"`
	ItemPrintTitles       bool                 `xml:"itemPrintTitles,attr,omitempty"`
	Indent                *int                 `xml:"indent,attr"`
	Compact               *bool                `xml:"compact,attr"`
	CompactData           *bool                `xml:"compactData,attr"`
	Outline               bool                 `xml:"outline,attr,omitempty"`
	OutlineData           bool                 `xml:"outlineData,attr,omitempty"`
	MultipleFieldFilters  *bool                `xml:"multipleFieldFilters,attr"`
	Location              Location             `xml:"location"`
	PivotFields           PivotFields          `xml:"pivotFields"`
	RowFields             *FieldList           `xml:"rowFields"`
	RowItems              *ItemRows            `xml:"rowItems"`
	ColFields             *FieldList           `xml:"colFields"`
	ColItems              *ItemRows            `xml:"colItems"`
	PageFields            *PageFields          `xml:"pageFields"`
	DataFields            *DataFields          `xml:"dataFields"`
	PivotTableStyleInfo   *PivotTableStyleInfo `xml:"pivotTableStyleInfo"`
}

// Location places the pivot table on its sheet.
type Location struct {
	Ref            string `xml:"ref,attr"`
	FirstHeaderRow int    `xml:"firstHeaderRow,attr"`
	FirstDataRow   int    `xml:"firstDataRow,attr"`
	FirstDataCol   int    `xml:"firstDataCol,attr"`
	RowPageCount   int    `xml:"rowPageCount,attr,omitempty"`
	ColPageCount   int    `xml:"colPageCount,attr,omitempty"`
}

// PivotFields holds one pivot field per cache field.
type PivotFields struct {
	Count      int          `xml:"count,attr"`
	PivotField []PivotField `xml:"pivotField"`
}

// PivotField is the pivot view of one source column.
type PivotField struct {
	Name            string `xml:"name,attr,omitempty"`
	Axis            string `xml:"axis,attr,omitempty"`
	DataField       bool   `xml:"dataField,attr,omitempty"`
	Compact         *bool  `xml:"compact,attr"`
	Outline         *bool  `xml:"outline,attr"`
	ShowAll         *bool  `xml:"showAll,attr"`
	SortType        string `xml:"sortType,attr,omitempty"`
	TopAutoShow     *bool  `xml:"topAutoShow,attr"`
	DefaultSubtotal *bool  `xml:"defaultSubtotal,attr"`
	Items           *Items `xml:"items"`
}

// Items is the item list of a pivot field.
type Items struct {
	Count int    `xml:"count,attr"`
	Item  []Item `xml:"item"`
}

// Item is one pivot field item. X indexes the shared items of the
// matching cache field and is only meaningful for data items.
type Item struct {
	T  string `xml:"t,attr,omitempty"`
	SD *bool  `xml:"sd,attr"`
	X  *int   `xml:"x,attr"`
}

// FieldList is a rowFields or colFields list of field indexes.
type FieldList struct {
	Count int     `xml:"count,attr"`
	Field []Field `xml:"field"`
}

// Field references a pivot field by index. -2 is the values pseudo-field.
type Field struct {
	X int `xml:"x,attr"`
}

// ItemRows is a rowItems or colItems block.
type ItemRows struct {
	Count int       `xml:"count,attr"`
	I     []ItemRow `xml:"i"`
}

// ItemRow is one row or column item.
type ItemRow struct {
	T string   `xml:"t,attr,omitempty"`
	X []ItemRX `xml:"x"`
}

// ItemRX is a member reference inside an ItemRow.
type ItemRX struct {
	V int `xml:"v,attr,omitempty"`
}

// PageFields is the report filter list.
type PageFields struct {
	Count     int         `xml:"count,attr"`
	PageField []PageField `xml:"pageField"`
}

// PageField places a field in the report filter area.
type PageField struct {
	Fld  int `xml:"fld,attr"`
	Hier int `xml:"hier,attr"`
}

// DataFields is the value area.
type DataFields struct {
	Count     int         `xml:"count,attr"`
	DataField []DataField `xml:"dataField"`
}

// DataField aggregates one field in the value area.
type DataField struct {
	Name      string `xml:"name,attr,omitempty"`
	Fld       int    `xml:"fld,attr"`
	Subtotal  string `xml:"subtotal,attr,omitempty"`
	BaseField int    `xml:"baseField,attr"`
	BaseItem  int    `xml:"baseItem,attr"`
}

// PivotTableStyleInfo selects the pivot table style.
type PivotTableStyleInfo struct {
	Name           string `xml:"name,attr"`
	ShowRowHeaders bool   `xml:"showRowHeaders,attr"`
	ShowColHeaders bool   `xml:"showColHeaders,attr"`
	ShowRowStripes bool   `xml:"showRowStripes,attr"`
	ShowColStripes bool   `xml:"showColStripes,attr"`
	ShowLastColumn bool   `xml:"showLastColumn,attr"`
}
