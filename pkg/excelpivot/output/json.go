// Package output serializes workbook summaries.
package output

import (
	"encoding/json"

	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
)

// ToJSON serializes a workbook summary.
func ToJSON(wb *models.WorkbookSummary, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet summary.
func SheetToJSON(sheet *models.SheetSummary, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
