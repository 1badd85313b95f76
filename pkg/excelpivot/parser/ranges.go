package parser

import (
	"strings"

	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
	"github.com/xuri/excelize/v2"
)

// parseRangeToRegion parses a range string like $A$1:$D$10 or A1:D10.
// A single cell reference yields a one-cell region.
func parseRangeToRegion(rangeStr string) (models.TableRegion, bool) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.TableRegion{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.TableRegion{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.TableRegion{}, false
	}

	return models.TableRegion{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}

// qualifiedRef joins a sheet name and a range as Sheet!A1:D10, quoting the
// sheet name when it contains spaces or quotes.
func qualifiedRef(sheet, ref string) string {
	if sheet == "" {
		return ref
	}
	if strings.ContainsAny(sheet, " '-") {
		sheet = "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}
	return sheet + "!" + ref
}
