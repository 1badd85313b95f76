package ooxml

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func TestRelsPath(t *testing.T) {
	tests := []struct {
		part     string
		expected string
	}{
		{"xl/workbook.xml", "xl/_rels/workbook.xml.rels"},
		{"xl/pivotTables/pivotTable1.xml", "xl/pivotTables/_rels/pivotTable1.xml.rels"},
		{"workbook.xml", "_rels/workbook.xml.rels"},
	}

	for _, tt := range tests {
		if got := RelsPath(tt.part); got != tt.expected {
			t.Errorf("RelsPath(%q) = %q, expected %q", tt.part, got, tt.expected)
		}
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		owner    string
		target   string
		expected string
	}{
		{"xl/workbook.xml", "worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"xl/pivotTables/pivotTable1.xml", "../pivotCache/pivotCacheDefinition1.xml", "xl/pivotCache/pivotCacheDefinition1.xml"},
		{"xl/worksheets/sheet2.xml", "/xl/pivotTables/pivotTable1.xml", "xl/pivotTables/pivotTable1.xml"},
		{"workbook.xml", "sheet.xml", "sheet.xml"},
	}

	for _, tt := range tests {
		if got := ResolveTarget(tt.owner, tt.target); got != tt.expected {
			t.Errorf("ResolveTarget(%q, %q) = %q, expected %q", tt.owner, tt.target, got, tt.expected)
		}
	}
}

func TestRelationshipsFind(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/pivotCacheDefinition" Target="../pivotCache/pivotCacheDefinition1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/table" Target="../tables/table1.xml"/>
</Relationships>`)

	var rels Relationships
	if err := Decode(data, &rels); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := rels.PivotCacheTarget(); got != "../pivotCache/pivotCacheDefinition1.xml" {
		t.Errorf("PivotCacheTarget() = %q", got)
	}
	if diff := cmp.Diff([]string{"../tables/table1.xml"}, rels.Find("/table")); diff != "" {
		t.Errorf("Find mismatch (-want +got):\n%s", diff)
	}
	if got := rels.Find("/chart"); got != nil {
		t.Errorf("Find(/chart) = %v, expected nil", got)
	}
}

func TestStoreAndLoadPart(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	before := PartNames(f, TablePrefix)
	in := Table{
		Xmlns:       NamespaceMain,
		ID:          1,
		Name:        "Data",
		DisplayName: "MYTABLE",
		Ref:         "A1:B2",
	}
	if err := StorePart(f, TablePrefix+"1.xml", in); err != nil {
		t.Fatalf("StorePart failed: %v", err)
	}
	if diff := cmp.Diff([]string{TablePrefix + "1.xml"}, AddedParts(f, TablePrefix, before)); diff != "" {
		t.Errorf("AddedParts mismatch (-want +got):\n%s", diff)
	}

	var out Table
	if err := LoadPart(f, TablePrefix+"1.xml", &out); err != nil {
		t.Fatalf("LoadPart failed: %v", err)
	}
	if out.Name != "Data" || out.DisplayName != "MYTABLE" || out.Ref != "A1:B2" {
		t.Errorf("LoadPart = %+v", out)
	}

	if err := LoadPart(f, TablePrefix+"9.xml", &out); err == nil {
		t.Error("expected ErrPartNotFound")
	}
}
