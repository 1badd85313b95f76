// Package excelpivot writes a record stream to an xlsx workbook holding a
// structured table and, optionally, a pivot table over it.
package excelpivot

import (
	"log/slog"

	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/writer"
)

// DefaultDataSheetName is the name of the sheet holding the table.
const DefaultDataSheetName = "DATA"

// Options configures workbook building.
type Options struct {
	// Include lists the fields to write, in order. When empty every field
	// is written except those in Exclude.
	Include []string
	// Exclude lists fields to leave out. Ignored when Include is set.
	Exclude []string
	// Pivot adds a pivot sheet when non-nil.
	Pivot *models.PivotSettings
	// DataSheetName names the table sheet. Empty means DATA.
	DataSheetName string
	// DateTimeFormat is the number format of date-time cells.
	// Empty means dd/mm/yyyy hh:mm.
	DateTimeFormat string
	// LeaveOpen keeps the sink open after Write returns. Otherwise a sink
	// implementing io.Closer is closed on every return path.
	LeaveOpen bool
	// StrictLabels fails the build on pivot labels that name no column or
	// repeat a placed field. Otherwise such labels are logged and skipped.
	StrictLabels bool
	// Logger receives warnings and build summaries. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{
		DataSheetName:  DefaultDataSheetName,
		DateTimeFormat: writer.DefaultDateTimeFormat,
	}
}

// SheetName returns the table sheet name.
func (o Options) SheetName() string {
	if o.DataSheetName != "" {
		return o.DataSheetName
	}
	return DefaultDataSheetName
}

// Registry returns the value format registry.
func (o Options) Registry() writer.Registry {
	reg := writer.DefaultRegistry()
	if o.DateTimeFormat != "" {
		reg.DateTimeFormat = o.DateTimeFormat
	}
	return reg
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
