package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/ooxml"
)

// Relationship type suffixes of the sheet level parts read back here.
const (
	relTable      = "/table"
	relPivotTable = "/pivotTable"
)

// sheetParts returns, per sheet name, the resolved part names of the
// sheet relationships whose type ends with suffix.
func sheetParts(r *zip.Reader, suffix string) (map[string][]string, error) {
	result := make(map[string][]string)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result, err
	}
	sheetsInfo := parseWorkbookSheets(workbookXML)
	if len(sheetsInfo) == 0 {
		return result, nil
	}

	wbRelsXML, err := readZipFile(r, ooxml.RelsPath("xl/workbook.xml"))
	if err != nil || wbRelsXML == nil {
		return result, err
	}

	for sheetName, sheetPath := range parseWorkbookRels(wbRelsXML, sheetsInfo) {
		rels, err := readRelationships(r, sheetPath)
		if err != nil {
			return nil, err
		}
		for _, target := range rels.Find(suffix) {
			result[sheetName] = append(result[sheetName], ooxml.ResolveTarget(sheetPath, target))
		}
	}

	return result, nil
}

// readRelationships reads the relationships part of owner. A part without
// relationships yields an empty set.
func readRelationships(r *zip.Reader, owner string) (ooxml.Relationships, error) {
	var rels ooxml.Relationships
	data, err := readZipFile(r, ooxml.RelsPath(owner))
	if err != nil || data == nil {
		return rels, err
	}
	err = ooxml.Decode(data, &rels)
	return rels, err
}

// readPart decodes the named part into v, reporting ErrPartNotFound when
// it is absent.
func readPart(r *zip.Reader, name string, v any) error {
	data, err := readZipFile(r, name)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("%s: %w", name, ooxml.ErrPartNotFound)
	}
	return ooxml.Decode(data, v)
}

// readZipFile reads a file from the zip archive. A missing file yields nil
// data and no error.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// parseWorkbookSheets returns a map of relationship id to sheet name.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

// parseWorkbookRels maps sheet names to their worksheet part names.
func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string)

	var rels ooxml.Relationships
	if err := ooxml.Decode(data, &rels); err != nil {
		return result
	}
	for _, rel := range rels.Relationships {
		if sheetName, ok := sheetsInfo[rel.ID]; ok && strings.Contains(strings.ToLower(rel.Target), "worksheet") {
			result[sheetName] = ooxml.ResolveTarget("xl/workbook.xml", rel.Target)
		}
	}

	return result
}
