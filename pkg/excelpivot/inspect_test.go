package excelpivot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
)

func writeWorkbook(t *testing.T, opts Options) string {
	t.Helper()
	var out bytes.Buffer
	if err := Write(&out, sampleReader(t), opts); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}

func TestInspectTableOnly(t *testing.T) {
	wb, err := Inspect(writeWorkbook(t, DefaultOptions()))
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if wb.BookName != "report.xlsx" {
		t.Errorf("BookName = %q, expected report.xlsx", wb.BookName)
	}
	if wb.ActiveSheet != DefaultDataSheetName {
		t.Errorf("ActiveSheet = %q, expected %q", wb.ActiveSheet, DefaultDataSheetName)
	}

	data := wb.Sheets[DefaultDataSheetName]
	if len(data.Rows) != 4 {
		t.Errorf("rows = %d, expected 4", len(data.Rows))
	}
	if data.Rows[1].C["2"] != 10.5 {
		t.Errorf("B2 = %v (type: %T), expected 10.5", data.Rows[1].C["2"], data.Rows[1].C["2"])
	}

	expected := []models.TableSummary{{
		ID:          1,
		Name:        "Data",
		DisplayName: "MYTABLE",
		Region:      models.NewTableRegion(4, 2),
		AutoFilter:  "A1:B4",
		StyleName:   "TableStyleMedium16",
		Columns:     []string{"NAME", "AMOUNT"},
	}}
	if diff := cmp.Diff(expected, data.Tables); diff != "" {
		t.Errorf("tables mismatch (-want +got):\n%s", diff)
	}
	if len(data.PivotTables) != 0 {
		t.Errorf("pivot tables = %d, expected 0", len(data.PivotTables))
	}
}

func TestInspectPivot(t *testing.T) {
	opts := DefaultOptions()
	opts.Pivot = &models.PivotSettings{
		RowLabels:    []models.RowLabel{{Name: "NAME"}},
		ColumnLabels: []models.ColumnLabel{{Name: "AMOUNT", Aggregation: models.AggregationSum}},
	}
	wb, err := Inspect(writeWorkbook(t, opts))
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if diff := cmp.Diff([]string{DefaultDataSheetName, models.DefaultPivotSheetName}, wb.SheetOrder); diff != "" {
		t.Errorf("sheet order mismatch (-want +got):\n%s", diff)
	}
	if wb.ActiveSheet != models.DefaultPivotSheetName {
		t.Errorf("ActiveSheet = %q, expected %q", wb.ActiveSheet, models.DefaultPivotSheetName)
	}

	sheet := wb.Sheets[models.DefaultPivotSheetName]
	if sheet.FrozenAt != "B2" {
		t.Errorf("FrozenAt = %q, expected B2", sheet.FrozenAt)
	}
	if len(sheet.PivotTables) != 1 {
		t.Fatalf("pivot tables = %d, expected 1", len(sheet.PivotTables))
	}
	p := sheet.PivotTables[0]
	if p.Name != models.DefaultPivotTableName || p.Style != models.DefaultPivotStyle {
		t.Errorf("pivot = %s / %s", p.Name, p.Style)
	}
	if p.Source != "DATA!A1:B4" {
		t.Errorf("Source = %q, expected DATA!A1:B4", p.Source)
	}
	if diff := cmp.Diff([]string{"NAME"}, p.RowFields); diff != "" {
		t.Errorf("row fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Alpha", "Beta"}, p.Fields[0].SharedItems); diff != "" {
		t.Errorf("shared items mismatch (-want +got):\n%s", diff)
	}
	expectedData := []models.PivotDataFieldSummary{{Name: "Sum of AMOUNT", Field: "AMOUNT", Subtotal: "sum"}}
	if diff := cmp.Diff(expectedData, p.DataFields); diff != "" {
		t.Errorf("data fields mismatch (-want +got):\n%s", diff)
	}
}

func TestInspectMissingFile(t *testing.T) {
	if _, err := Inspect(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("expected error for missing file")
	}
}
