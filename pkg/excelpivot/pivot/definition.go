// Package pivot builds the pivot sheet: an owned pivot definition whose
// operations keep fields, axis lists and cache items consistent, the axis
// assignment from settings, and the rendering into the workbook package.
package pivot

import (
	"fmt"
	"slices"

	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
)

// ValuesField is the field index of the values pseudo-field.
const ValuesField = -2

// FieldAxis is the axis a pivot field is placed on.
type FieldAxis int

const (
	AxisNone FieldAxis = iota
	AxisRow
	AxisColumn
	AxisPage
)

func (a FieldAxis) String() string {
	switch a {
	case AxisRow:
		return "axisRow"
	case AxisColumn:
		return "axisCol"
	case AxisPage:
		return "axisPage"
	default:
		return ""
	}
}

// ItemType is the type of a pivot field item.
type ItemType string

const (
	ItemData    ItemType = "data"
	ItemDefault ItemType = "default"
)

// Item is one pivot field item slot.
type Item struct {
	Type ItemType
	// X indexes the field's shared items. Only set on data items.
	X int
	// ShowDetails is false when the item is collapsed.
	ShowDetails bool
}

// Field is the pivot view of one table column together with its cache
// field.
type Field struct {
	Name      string
	Axis      FieldAxis
	DataField bool
	SortOrder models.SortOrder
	ShowAll   bool
	// Items is nil until the field is placed on an axis.
	Items []Item
	// Shared is the distinct value list of the cache field.
	Shared []string
}

// DataField aggregates a field in the value area.
type DataField struct {
	Name        string
	Field       int
	Aggregation models.Aggregation
}

// Definition is a pivot table definition. Counts are derived from slice
// lengths, and every mutation keeps the field axis attributes and the
// row, column and page lists in agreement.
type Definition struct {
	Name  string
	Style string

	fields     []Field
	rowFields  []int
	colFields  []int
	pageFields []int
	dataFields []DataField
	dataRows   int
}

// NewDefinition returns a definition with one field per column name and no
// field on any axis. dataRows is the number of source records.
func NewDefinition(name string, columns []string, dataRows int) *Definition {
	d := &Definition{Name: name, dataRows: dataRows}
	d.fields = make([]Field, len(columns))
	for i, c := range columns {
		d.fields[i] = Field{Name: c}
	}
	return d
}

// Fields returns a copy of the fields in source column order.
func (d *Definition) Fields() []Field {
	out := make([]Field, len(d.fields))
	for i, f := range d.fields {
		f.Items = slices.Clone(f.Items)
		f.Shared = slices.Clone(f.Shared)
		out[i] = f
	}
	return out
}

// Field returns a copy of field i.
func (d *Definition) Field(i int) (Field, error) {
	if err := d.checkIndex(i); err != nil {
		return Field{}, err
	}
	f := d.fields[i]
	f.Items = slices.Clone(f.Items)
	f.Shared = slices.Clone(f.Shared)
	return f, nil
}

// FieldIndex returns the index of the field named name, or -1.
func (d *Definition) FieldIndex(name string) int {
	for i, f := range d.fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// RowFields returns the row axis field indexes in order.
func (d *Definition) RowFields() []int { return slices.Clone(d.rowFields) }

// ColumnFields returns the column axis field indexes in order, including
// the values pseudo-field.
func (d *Definition) ColumnFields() []int { return slices.Clone(d.colFields) }

// PageFields returns the report filter field indexes in order.
func (d *Definition) PageFields() []int { return slices.Clone(d.pageFields) }

// DataFields returns the value area in order.
func (d *Definition) DataFields() []DataField { return slices.Clone(d.dataFields) }

// DataRows returns the number of source records.
func (d *Definition) DataRows() int { return d.dataRows }

func (d *Definition) checkIndex(i int) error {
	if i < 0 || i >= len(d.fields) {
		return invariantf("field index %d out of range [0,%d)", i, len(d.fields))
	}
	return nil
}

func (d *Definition) place(i int, axis FieldAxis) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	f := &d.fields[i]
	if f.Axis != AxisNone {
		return fmt.Errorf("%w: %s is on %s", ErrFieldOnAxis, f.Name, f.Axis)
	}
	f.Axis = axis
	f.ShowAll = false
	if f.SortOrder == "" {
		f.SortOrder = models.SortAscending
	}
	if f.Items == nil {
		// one default slot per source row, header included
		f.Items = make([]Item, d.dataRows+1)
		for k := range f.Items {
			f.Items[k] = Item{Type: ItemDefault, X: -1, ShowDetails: true}
		}
	}
	return nil
}

// AddRowField appends field i to the row axis.
func (d *Definition) AddRowField(i int) error {
	if err := d.place(i, AxisRow); err != nil {
		return err
	}
	d.rowFields = append(d.rowFields, i)
	return nil
}

// AddPageField appends field i to the report filter area.
func (d *Definition) AddPageField(i int) error {
	if err := d.place(i, AxisPage); err != nil {
		return err
	}
	d.pageFields = append(d.pageFields, i)
	return nil
}

// MoveFieldToColumnAxis moves field i from the row axis to the end of the
// column axis, ahead of the values pseudo-field when present.
func (d *Definition) MoveFieldToColumnAxis(i int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	pos := slices.Index(d.rowFields, i)
	if pos < 0 || d.fields[i].Axis != AxisRow {
		return invariantf("field %s is not on the row axis", d.fields[i].Name)
	}
	d.rowFields = slices.Delete(d.rowFields, pos, pos+1)
	if v := slices.Index(d.colFields, ValuesField); v >= 0 {
		d.colFields = slices.Insert(d.colFields, v, i)
	} else {
		d.colFields = append(d.colFields, i)
	}
	d.fields[i].Axis = AxisColumn
	return nil
}

// SetSortOrder sets the item sort order of field i.
func (d *Definition) SetSortOrder(i int, order models.SortOrder) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	if order == "" {
		order = models.SortAscending
	}
	d.fields[i].SortOrder = order
	return nil
}

// AddDataField aggregates field i in the value area. From the second data
// field on, the values pseudo-field sits on the column axis.
func (d *Definition) AddDataField(i int, agg models.Aggregation, caption string) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	if agg == "" {
		agg = models.AggregationCount
	}
	if caption == "" {
		caption = models.ColumnLabel{Name: d.fields[i].Name, Aggregation: agg}.DisplayName()
	}
	d.fields[i].DataField = true
	d.dataFields = append(d.dataFields, DataField{Name: caption, Field: i, Aggregation: agg})
	if len(d.dataFields) > 1 && !slices.Contains(d.colFields, ValuesField) {
		d.colFields = append(d.colFields, ValuesField)
	}
	return nil
}

// RegisterDistinctValue adds value to the shared items of field i unless it is
// already there, and returns its index.
func (d *Definition) RegisterDistinctValue(i int, value string) (int, error) {
	if err := d.checkIndex(i); err != nil {
		return -1, err
	}
	f := &d.fields[i]
	if k := slices.Index(f.Shared, value); k >= 0 {
		return k, nil
	}
	f.Shared = append(f.Shared, value)
	return len(f.Shared) - 1, nil
}

// Validate checks that the linked collections agree.
func (d *Definition) Validate() error {
	lists := []struct {
		axis   FieldAxis
		fields []int
	}{
		{AxisRow, d.rowFields},
		{AxisColumn, d.colFields},
		{AxisPage, d.pageFields},
	}
	placed := make(map[int]FieldAxis)
	for _, l := range lists {
		for _, i := range l.fields {
			if i == ValuesField && l.axis == AxisColumn {
				continue
			}
			if err := d.checkIndex(i); err != nil {
				return err
			}
			if prev, ok := placed[i]; ok {
				return invariantf("field %s listed on %s and %s", d.fields[i].Name, prev, l.axis)
			}
			placed[i] = l.axis
			if d.fields[i].Axis != l.axis {
				return invariantf("field %s listed on %s but marked %s", d.fields[i].Name, l.axis, d.fields[i].Axis)
			}
		}
	}
	for i, f := range d.fields {
		if f.Axis != AxisNone && placed[i] != f.Axis {
			return invariantf("field %s marked %s but not listed", f.Name, f.Axis)
		}
		if err := d.validateItems(i); err != nil {
			return err
		}
	}
	hasValues := slices.Contains(d.colFields, ValuesField)
	if hasValues != (len(d.dataFields) > 1) {
		return invariantf("values field present=%v with %d data fields", hasValues, len(d.dataFields))
	}
	for _, df := range d.dataFields {
		if err := d.checkIndex(df.Field); err != nil {
			return err
		}
		if !d.fields[df.Field].DataField {
			return invariantf("data field %s refers to %s which is not marked as data field", df.Name, d.fields[df.Field].Name)
		}
	}
	return nil
}

// validateItems checks that the data items of field i index its shared
// items one to one.
func (d *Definition) validateItems(i int) error {
	f := d.fields[i]
	seen := make([]bool, len(f.Shared))
	count := 0
	for _, it := range f.Items {
		if it.Type != ItemData {
			continue
		}
		if it.X < 0 || it.X >= len(f.Shared) {
			return invariantf("field %s item x=%d outside [0,%d)", f.Name, it.X, len(f.Shared))
		}
		if seen[it.X] {
			return invariantf("field %s item x=%d used twice", f.Name, it.X)
		}
		seen[it.X] = true
		count++
	}
	if count != len(f.Shared) {
		return invariantf("field %s has %d data items for %d shared items", f.Name, count, len(f.Shared))
	}
	return nil
}
