package ooxml

import "encoding/xml"

// PivotCacheDefinition is the pivot cache part
// (xl/pivotCache/pivotCacheDefinitionN.xml).
type PivotCacheDefinition struct {
	XMLName               xml.Name    `xml:"pivotCacheDefinition"`
	Xmlns                 string      `xml:"xmlns,attr"`
	SaveData              *bool       `xml:"saveData,attr"`
	RefreshOnLoad         bool        `xml:"refreshOnLoad,attr,omitempty"`
	CreatedVersion        int         `xml:"createdVersion,attr,omitempty"`
	RefreshedVersion      int         `xml:"refreshedVersion,attr,omitempty"`
	MinRefreshableVersion int         `xml:"minRefreshableVersion,attr,omitempty"`
	RecordCount           int         `xml:"recordCount,attr,omitempty"`
	CacheSource           CacheSource `xml:"cacheSource"`
	CacheFields           CacheFields `xml:"cacheFields"`
}

// CacheSource points the cache at its source range.
type CacheSource struct {
	Type            string           `xml:"type,attr"`
	WorksheetSource *WorksheetSource `xml:"worksheetSource"`
}

// WorksheetSource is a range on a sheet, or a table name.
type WorksheetSource struct {
	Ref   string `xml:"ref,attr,omitempty"`
	Name  string `xml:"name,attr,omitempty"`
	Sheet string `xml:"sheet,attr,omitempty"`
}

// CacheFields holds one cache field per source column.
type CacheFields struct {
	Count      int          `xml:"count,attr"`
	CacheField []CacheField `xml:"cacheField"`
}

// CacheField describes one source column.
type CacheField struct {
	Name        string       `xml:"name,attr"`
	NumFmtID    int          `xml:"numFmtId,attr"`
	SharedItems *SharedItems `xml:"sharedItems"`
}

// SharedItems is the distinct value list of a cache field.
type SharedItems struct {
	ContainsBlank bool         `xml:"containsBlank,attr,omitempty"`
	Count         *int         `xml:"count,attr"`
	S             []SharedText `xml:"s"`
}

// SharedText is a text shared item.
type SharedText struct {
	V string `xml:"v,attr"`
}
