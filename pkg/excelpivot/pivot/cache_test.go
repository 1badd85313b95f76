package pivot

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollapse(t *testing.T) {
	def := NewDefinition("p", []string{"Letter"}, 4)
	if err := def.AddRowField(0); err != nil {
		t.Fatalf("AddRowField failed: %v", err)
	}
	if err := Collapse(def, 0, []string{"A", "B", "A", "C"}, true); err != nil {
		t.Fatalf("Collapse failed: %v", err)
	}

	f, _ := def.Field(0)
	if diff := cmp.Diff([]string{"A", "B", "C"}, f.Shared); diff != "" {
		t.Errorf("shared items mismatch (-want +got):\n%s", diff)
	}
	expected := []Item{
		{Type: ItemData, X: 0},
		{Type: ItemData, X: 1},
		{Type: ItemData, X: 2},
		{Type: ItemDefault, X: -1},
		{Type: ItemDefault, X: -1},
	}
	if diff := cmp.Diff(expected, f.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if err := def.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestCollapseExpanded(t *testing.T) {
	def := NewDefinition("p", []string{"Letter"}, 2)
	if err := def.AddRowField(0); err != nil {
		t.Fatalf("AddRowField failed: %v", err)
	}
	if err := Collapse(def, 0, []string{"A", "A"}, false); err != nil {
		t.Fatalf("Collapse failed: %v", err)
	}
	f, _ := def.Field(0)
	for i, it := range f.Items {
		if !it.ShowDetails {
			t.Errorf("item %d details hidden, expected shown", i)
		}
	}
}

func TestCollapseKeepsEmptyText(t *testing.T) {
	def := NewDefinition("p", []string{"Letter"}, 3)
	if err := def.AddRowField(0); err != nil {
		t.Fatalf("AddRowField failed: %v", err)
	}
	if err := Collapse(def, 0, []string{"", "A", ""}, true); err != nil {
		t.Fatalf("Collapse failed: %v", err)
	}
	f, _ := def.Field(0)
	if diff := cmp.Diff([]string{"", "A"}, f.Shared); diff != "" {
		t.Errorf("shared items mismatch (-want +got):\n%s", diff)
	}
	if f.Items[0].X != 0 || f.Items[1].X != 1 {
		t.Errorf("items = %+v, expected data items 0 and 1", f.Items)
	}
}

func TestCollapseRequiresAxis(t *testing.T) {
	def := NewDefinition("p", []string{"Letter"}, 1)
	if err := Collapse(def, 0, []string{"A"}, true); err == nil {
		t.Error("Collapse on a field without items succeeded, expected error")
	}
}

func TestCollapsePermutationStable(t *testing.T) {
	orders := [][]string{
		{"north", "south", "east", "north", "west", "east"},
		{"east", "east", "west", "north", "south", "north"},
		{"west", "north", "east", "south", "north", "east"},
	}

	var reference []string
	for i, values := range orders {
		def := NewDefinition("p", []string{"Region"}, len(values))
		if err := def.AddRowField(0); err != nil {
			t.Fatalf("AddRowField failed: %v", err)
		}
		if err := Collapse(def, 0, values, true); err != nil {
			t.Fatalf("Collapse failed: %v", err)
		}
		f, _ := def.Field(0)
		shared := slices.Sorted(slices.Values(f.Shared))
		if i == 0 {
			reference = shared
			continue
		}
		if diff := cmp.Diff(reference, shared); diff != "" {
			t.Errorf("order %d: shared set mismatch (-want +got):\n%s", i, diff)
		}
		if err := def.Validate(); err != nil {
			t.Errorf("order %d: Validate failed: %v", i, err)
		}
	}
}
