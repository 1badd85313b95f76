package ooxml

import "encoding/xml"

// Table is the table part (xl/tables/tableN.xml).
type Table struct {
	XMLName        xml.Name        `xml:"table"`
	Xmlns          string          `xml:"xmlns,attr"`
	ID             int             `xml:"id,attr"`
	Name           string          `xml:"name,attr"`
	DisplayName    string          `xml:"displayName,attr"`
	Ref            string          `xml:"ref,attr"`
	TotalsRowShown *bool           `xml:"totalsRowShown,attr"`
	AutoFilter     *AutoFilter     `xml:"autoFilter"`
	TableColumns   TableColumns    `xml:"tableColumns"`
	TableStyleInfo *TableStyleInfo `xml:"tableStyleInfo"`
}

// AutoFilter is the filter range of a table.
type AutoFilter struct {
	Ref string `xml:"ref,attr"`
}

// TableColumns lists the table columns in sheet order.
type TableColumns struct {
	Count       int           `xml:"count,attr"`
	TableColumn []TableColumn `xml:"tableColumn"`
}

// TableColumn names one table column. Ids start at 1.
type TableColumn struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// TableStyleInfo selects the table style and its banding.
type TableStyleInfo struct {
	Name              string `xml:"name,attr"`
	ShowFirstColumn   bool   `xml:"showFirstColumn,attr"`
	ShowLastColumn    bool   `xml:"showLastColumn,attr"`
	ShowRowStripes    bool   `xml:"showRowStripes,attr"`
	ShowColumnStripes bool   `xml:"showColumnStripes,attr"`
}
