// Package ooxml holds the SpreadsheetML part models this module renders
// itself, and helpers to swap them into an excelize package.
package ooxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XML namespaces used by the rendered parts.
const (
	NamespaceMain          = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	NamespaceRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Part name prefixes inside the package.
const (
	TablePrefix           = "xl/tables/table"
	PivotTablePrefix      = "xl/pivotTables/pivotTable"
	PivotCachePrefix      = "xl/pivotCache/pivotCacheDefinition"
	relationshipPivotType = "/pivotCacheDefinition"
)

// ErrPartNotFound indicates a part name missing from the package.
var ErrPartNotFound = errors.New("part not found")

// Marshal renders v as a standalone XML part.
func Marshal(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

// StorePart replaces the part at path with the rendering of v. excelize
// writes package parts verbatim when the workbook is saved.
func StorePart(f *excelize.File, path string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	f.Pkg.Store(path, data)
	return nil
}

// LoadPart decodes the part at path into v.
func LoadPart(f *excelize.File, path string, v any) error {
	content, ok := f.Pkg.Load(path)
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrPartNotFound)
	}
	data, ok := content.([]byte)
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrPartNotFound)
	}
	return Decode(data, v)
}

// Decode unmarshals a part body into v.
func Decode(data []byte, v any) error {
	return xml.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// PartNames returns the sorted names of all parts starting with prefix.
func PartNames(f *excelize.File, prefix string) []string {
	var names []string
	f.Pkg.Range(func(k, _ any) bool {
		if name, ok := k.(string); ok && strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return true
	})
	slices.Sort(names)
	return names
}

// AddedParts returns the parts with prefix that are not in before.
func AddedParts(f *excelize.File, prefix string, before []string) []string {
	var added []string
	for _, name := range PartNames(f, prefix) {
		if !slices.Contains(before, name) {
			added = append(added, name)
		}
	}
	return added
}

// Relationship is one entry of a .rels part.
type Relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// Relationships is the root of a .rels part.
type Relationships struct {
	XMLName       xml.Name       `xml:"Relationships"`
	Relationships []Relationship `xml:"Relationship"`
}

// Find returns the targets of relationships whose type ends with suffix.
func (r Relationships) Find(suffix string) []string {
	var targets []string
	for _, rel := range r.Relationships {
		if strings.HasSuffix(rel.Type, suffix) {
			targets = append(targets, rel.Target)
		}
	}
	return targets
}

// PivotCacheTarget returns the cache definition target of a pivot table
// relationships part.
func (r Relationships) PivotCacheTarget() string {
	if targets := r.Find(relationshipPivotType); len(targets) > 0 {
		return targets[0]
	}
	return ""
}

// RelsPath returns the relationships part name of a part.
func RelsPath(part string) string {
	dir, file := "", part
	if i := strings.LastIndex(part, "/"); i >= 0 {
		dir, file = part[:i+1], part[i+1:]
	}
	return dir + "_rels/" + file + ".rels"
}

// ResolveTarget resolves a relationship target against the part that owns
// the relationship.
func ResolveTarget(owner, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	dir := ""
	if i := strings.LastIndex(owner, "/"); i >= 0 {
		dir = owner[:i]
	}
	for strings.HasPrefix(target, "../") {
		target = strings.TrimPrefix(target, "../")
		if i := strings.LastIndex(dir, "/"); i >= 0 {
			dir = dir[:i]
		} else {
			dir = ""
		}
	}
	if dir == "" {
		return target
	}
	return dir + "/" + target
}
