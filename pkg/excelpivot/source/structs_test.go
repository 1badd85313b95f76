package source

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type Audit struct {
	CreatedBy string
}

type order struct {
	ID       int `xlsx:"Id"`
	Customer string
	internal string
	Skipped  bool `xlsx:"-"`
	Audit
	Total *float64
}

func TestFromStructs(t *testing.T) {
	total := 9.5
	r, err := FromStructs([]order{
		{ID: 1, Customer: "Acme", internal: "x", Audit: Audit{CreatedBy: "ann"}, Total: &total},
		{ID: 2, Customer: "Globex"},
	})
	if err != nil {
		t.Fatalf("FromStructs failed: %v", err)
	}

	if diff := cmp.Diff([]string{"Id", "Customer", "CreatedBy", "Total"}, FieldNames(r)); diff != "" {
		t.Errorf("field names mismatch (-want +got):\n%s", diff)
	}

	var rows [][]any
	for r.Next() {
		values, err := r.Values()
		if err != nil {
			t.Fatalf("Values failed: %v", err)
		}
		rows = append(rows, values)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}
	if rows[0][0] != 1 || rows[0][1] != "Acme" || rows[0][2] != "ann" || *(rows[0][3].(*float64)) != 9.5 {
		t.Errorf("first row = %v", rows[0])
	}
	if p := rows[1][3].(*float64); p != nil {
		t.Errorf("second row total = %v, expected nil pointer", *p)
	}
}

func TestFromStructsPointers(t *testing.T) {
	r, err := FromStructs([]*order{{ID: 1}, nil})
	if err != nil {
		t.Fatalf("FromStructs failed: %v", err)
	}
	if !r.Next() {
		t.Fatal("Next = false on first item")
	}
	if r.Next() {
		t.Error("Next = true on nil item")
	}
	if r.Err() == nil {
		t.Error("Err = nil after nil item, expected error")
	}
}

func TestFromSeq(t *testing.T) {
	seq := slices.Values([]order{{ID: 1}, {ID: 2}, {ID: 3}})
	r, err := FromSeq(seq)
	if err != nil {
		t.Fatalf("FromSeq failed: %v", err)
	}
	count := 0
	for r.Next() {
		count++
		if count == 2 {
			r.Close()
		}
	}
	if count != 2 {
		t.Errorf("read %d items, expected 2 after Close", count)
	}
}

func TestFromStructsRejectsNonStruct(t *testing.T) {
	if _, err := FromStructs([]int{1, 2}); err == nil {
		t.Error("FromStructs([]int) succeeded, expected error")
	}
}

func TestValuesBeforeNext(t *testing.T) {
	r, _ := FromStructs([]order{{ID: 1}})
	if _, err := r.Values(); err == nil {
		t.Error("Values before Next succeeded, expected error")
	}
}
