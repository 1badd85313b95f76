package pivot

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
)

// memoryTable is an in-memory SourceTable.
type memoryTable struct {
	names  []string
	values [][]string
}

func (m memoryTable) ColumnIndex(name string) int {
	for i, n := range m.names {
		if n == name {
			return i
		}
	}
	return -1
}

func (m memoryTable) ColumnValues(i int) []string { return m.values[i] }

func sampleTable() memoryTable {
	return memoryTable{
		names: []string{"Region", "Product", "Year", "Amount"},
		values: [][]string{
			{"North", "South", "North", "East"},
			{"Tea", "Tea", "Coffee", "Tea"},
			{"2023", "2024", "2024", "2023"},
			{"10", "20", "30", "40"},
		},
	}
}

func TestAssignAxes(t *testing.T) {
	table := sampleTable()
	def := NewDefinition("p", table.names, 4)
	settings := models.PivotSettings{
		RowLabels: []models.RowLabel{
			{Name: "Region"},
			{Name: "Year", Axis: models.AxisColumn, SortOrder: models.SortDescending},
		},
		ColumnLabels: []models.ColumnLabel{{Name: "Amount", Aggregation: models.AggregationSum}},
		FilterLabels: []string{"Product"},
	}

	if err := AssignAxes(def, table, settings, Options{}); err != nil {
		t.Fatalf("AssignAxes failed: %v", err)
	}

	if diff := cmp.Diff([]int{0}, def.RowFields()); diff != "" {
		t.Errorf("row fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2}, def.ColumnFields()); diff != "" {
		t.Errorf("column fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, def.PageFields()); diff != "" {
		t.Errorf("page fields mismatch (-want +got):\n%s", diff)
	}

	region, _ := def.Field(0)
	if diff := cmp.Diff([]string{"North", "South", "East"}, region.Shared); diff != "" {
		t.Errorf("region shared items mismatch (-want +got):\n%s", diff)
	}
	if region.SortOrder != models.SortAscending {
		t.Errorf("region sort = %q, expected ascending", region.SortOrder)
	}
	year, _ := def.Field(2)
	if year.Axis != AxisColumn || year.SortOrder != models.SortDescending {
		t.Errorf("year = axis %v sort %q", year.Axis, year.SortOrder)
	}
	if diff := cmp.Diff([]string{"2023", "2024"}, year.Shared); diff != "" {
		t.Errorf("year shared items mismatch (-want +got):\n%s", diff)
	}

	if df := def.DataFields(); len(df) != 1 || df[0].Name != "Sum of Amount" {
		t.Errorf("data fields = %+v", df)
	}
	if err := def.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestAssignAxesUnresolvedPermissive(t *testing.T) {
	table := sampleTable()
	def := NewDefinition("p", table.names, 4)
	settings := models.PivotSettings{
		RowLabels:    []models.RowLabel{{Name: "Nope"}, {Name: "Nope", Axis: models.AxisColumn}},
		ColumnLabels: []models.ColumnLabel{{Name: "Missing"}},
		FilterLabels: []string{"Gone"},
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	if err := AssignAxes(def, table, settings, Options{Logger: logger}); err != nil {
		t.Fatalf("AssignAxes failed: %v", err)
	}

	if len(def.RowFields())+len(def.ColumnFields())+len(def.PageFields())+len(def.DataFields()) != 0 {
		t.Errorf("unresolved labels changed the definition")
	}
	for _, f := range def.Fields() {
		if f.Items != nil || f.Shared != nil {
			t.Errorf("field %s changed by unresolved labels", f.Name)
		}
	}
	if n := strings.Count(buf.String(), "pivot label skipped"); n != 4 {
		t.Errorf("logged %d skipped labels, expected 4:\n%s", n, buf.String())
	}
}

func TestAssignAxesStrict(t *testing.T) {
	table := sampleTable()
	tests := []struct {
		name     string
		settings models.PivotSettings
		axis     string
		sentinel error
	}{
		{
			name:     "unresolved row",
			settings: models.PivotSettings{RowLabels: []models.RowLabel{{Name: "Nope"}}},
			axis:     "row",
			sentinel: ErrUnresolvedLabel,
		},
		{
			name:     "unresolved value",
			settings: models.PivotSettings{ColumnLabels: []models.ColumnLabel{{Name: "Nope"}}},
			axis:     "value",
			sentinel: ErrUnresolvedLabel,
		},
		{
			name: "row label repeated",
			settings: models.PivotSettings{RowLabels: []models.RowLabel{
				{Name: "Region"}, {Name: "Region", Axis: models.AxisColumn},
			}},
			axis:     "column",
			sentinel: ErrFieldOnAxis,
		},
		{
			name: "filter on a row field",
			settings: models.PivotSettings{
				RowLabels:    []models.RowLabel{{Name: "Region"}},
				FilterLabels: []string{"Region"},
			},
			axis:     "filter",
			sentinel: ErrFieldOnAxis,
		},
	}

	for _, tt := range tests {
		def := NewDefinition("p", table.names, 4)
		err := AssignAxes(def, table, tt.settings, Options{StrictLabels: true})
		if !errors.Is(err, tt.sentinel) {
			t.Errorf("%s: error = %v, expected %v", tt.name, err, tt.sentinel)
			continue
		}
		var labelErr *LabelError
		if !errors.As(err, &labelErr) || labelErr.Axis != tt.axis {
			t.Errorf("%s: LabelError = %+v, expected axis %s", tt.name, labelErr, tt.axis)
		}
	}
}
