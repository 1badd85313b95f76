package pivot

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
)

func TestNewDefinition(t *testing.T) {
	def := NewDefinition("PivotTable", []string{"Region", "Product", "Amount"}, 4)

	if n := len(def.Fields()); n != 3 {
		t.Fatalf("fields = %d, expected 3", n)
	}
	if def.FieldIndex("Product") != 1 || def.FieldIndex("Missing") != -1 {
		t.Errorf("FieldIndex returned unexpected positions")
	}
	if len(def.RowFields())+len(def.ColumnFields())+len(def.PageFields()) != 0 {
		t.Errorf("new definition has fields on an axis")
	}
	if err := def.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestAddRowFieldAllocatesSlots(t *testing.T) {
	def := NewDefinition("p", []string{"A", "B"}, 4)
	if err := def.AddRowField(0); err != nil {
		t.Fatalf("AddRowField failed: %v", err)
	}
	f, _ := def.Field(0)
	if f.Axis != AxisRow || f.ShowAll {
		t.Errorf("field = axis %v showAll %v, expected row axis and showAll false", f.Axis, f.ShowAll)
	}
	if len(f.Items) != 5 {
		t.Errorf("item slots = %d, expected 5", len(f.Items))
	}
	for _, it := range f.Items {
		if it.Type != ItemDefault {
			t.Errorf("slot type = %q, expected default", it.Type)
		}
	}
}

func TestFieldOnOneAxis(t *testing.T) {
	def := NewDefinition("p", []string{"A", "B"}, 2)
	if err := def.AddRowField(0); err != nil {
		t.Fatalf("AddRowField failed: %v", err)
	}

	tests := []struct {
		name string
		add  func() error
	}{
		{"row twice", func() error { return def.AddRowField(0) }},
		{"row then page", func() error { return def.AddPageField(0) }},
	}
	for _, tt := range tests {
		if err := tt.add(); !errors.Is(err, ErrFieldOnAxis) {
			t.Errorf("%s: error = %v, expected ErrFieldOnAxis", tt.name, err)
		}
	}
	if diff := cmp.Diff([]int{0}, def.RowFields()); diff != "" {
		t.Errorf("row fields mismatch (-want +got):\n%s", diff)
	}
	if err := def.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestFieldIndexOutOfRange(t *testing.T) {
	def := NewDefinition("p", []string{"A"}, 1)
	for _, i := range []int{-1, 1, 5} {
		if err := def.AddRowField(i); !errors.Is(err, ErrInvariant) {
			t.Errorf("AddRowField(%d) error = %v, expected ErrInvariant", i, err)
		}
	}
}

func TestMoveFieldToColumnAxis(t *testing.T) {
	def := NewDefinition("p", []string{"A", "B", "C"}, 3)
	for _, i := range []int{0, 1, 2} {
		if err := def.AddRowField(i); err != nil {
			t.Fatalf("AddRowField(%d) failed: %v", i, err)
		}
	}
	rowsBefore, colsBefore := len(def.RowFields()), len(def.ColumnFields())

	if err := def.MoveFieldToColumnAxis(1); err != nil {
		t.Fatalf("MoveFieldToColumnAxis failed: %v", err)
	}

	if len(def.RowFields()) != rowsBefore-1 || len(def.ColumnFields()) != colsBefore+1 {
		t.Errorf("counts = %d/%d, expected %d/%d",
			len(def.RowFields()), len(def.ColumnFields()), rowsBefore-1, colsBefore+1)
	}
	if diff := cmp.Diff([]int{0, 2}, def.RowFields()); diff != "" {
		t.Errorf("row fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, def.ColumnFields()); diff != "" {
		t.Errorf("column fields mismatch (-want +got):\n%s", diff)
	}
	if f, _ := def.Field(1); f.Axis != AxisColumn {
		t.Errorf("field axis = %v, expected column", f.Axis)
	}
	if err := def.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	// a field not on the row axis cannot be moved
	if err := def.MoveFieldToColumnAxis(1); !errors.Is(err, ErrInvariant) {
		t.Errorf("second move error = %v, expected ErrInvariant", err)
	}
}

func TestValuesPseudoField(t *testing.T) {
	def := NewDefinition("p", []string{"A", "B", "C"}, 2)
	if err := def.AddDataField(1, models.AggregationSum, ""); err != nil {
		t.Fatalf("AddDataField failed: %v", err)
	}
	if len(def.ColumnFields()) != 0 {
		t.Errorf("values field added for a single data field")
	}
	if err := def.AddDataField(2, "", "Rows"); err != nil {
		t.Fatalf("AddDataField failed: %v", err)
	}
	if diff := cmp.Diff([]int{ValuesField}, def.ColumnFields()); diff != "" {
		t.Errorf("column fields mismatch (-want +got):\n%s", diff)
	}

	// moved fields go ahead of the values field
	if err := def.AddRowField(0); err != nil {
		t.Fatalf("AddRowField failed: %v", err)
	}
	if err := def.MoveFieldToColumnAxis(0); err != nil {
		t.Fatalf("MoveFieldToColumnAxis failed: %v", err)
	}
	if diff := cmp.Diff([]int{0, ValuesField}, def.ColumnFields()); diff != "" {
		t.Errorf("column fields mismatch (-want +got):\n%s", diff)
	}

	expected := []DataField{
		{Name: "Sum of B", Field: 1, Aggregation: models.AggregationSum},
		{Name: "Rows", Field: 2, Aggregation: models.AggregationCount},
	}
	if diff := cmp.Diff(expected, def.DataFields()); diff != "" {
		t.Errorf("data fields mismatch (-want +got):\n%s", diff)
	}
	if err := def.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestRegisterDistinctValue(t *testing.T) {
	def := NewDefinition("p", []string{"A"}, 3)
	tests := []struct {
		value    string
		expected int
	}{
		{"x", 0},
		{"y", 1},
		{"x", 0},
		{"z", 2},
	}
	for _, tt := range tests {
		got, err := def.RegisterDistinctValue(0, tt.value)
		if err != nil {
			t.Fatalf("RegisterDistinctValue(%q) failed: %v", tt.value, err)
		}
		if got != tt.expected {
			t.Errorf("RegisterDistinctValue(%q) = %d, expected %d", tt.value, got, tt.expected)
		}
	}
}

func TestValidateDetectsMismatch(t *testing.T) {
	def := NewDefinition("p", []string{"A"}, 2)
	if err := def.AddRowField(0); err != nil {
		t.Fatalf("AddRowField failed: %v", err)
	}
	// a shared item without its data item
	if _, err := def.RegisterDistinctValue(0, "orphan"); err != nil {
		t.Fatalf("RegisterDistinctValue failed: %v", err)
	}
	if err := def.Validate(); !errors.Is(err, ErrInvariant) {
		t.Errorf("Validate error = %v, expected ErrInvariant", err)
	}
}
