package pivot

import (
	"errors"
	"log/slog"

	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
)

// SourceTable is the written data table a pivot is built from.
type SourceTable interface {
	// ColumnIndex returns the position of the named column, or -1.
	ColumnIndex(name string) int
	// ColumnValues returns the text of the data cells of column i.
	ColumnValues(i int) []string
}

// Options controls how settings labels are applied.
type Options struct {
	// StrictLabels turns unresolved or duplicate labels into errors.
	// Otherwise they are logged and skipped.
	StrictLabels bool
	// Logger receives skipped labels. Nil means slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// skip reports a label that could not be applied. It returns the error in
// strict mode and logs it otherwise.
func (o Options) skip(axis, name string, err error) error {
	labelErr := &LabelError{Axis: axis, Name: name, Err: err}
	if o.StrictLabels {
		return labelErr
	}
	o.logger().Warn("pivot label skipped",
		slog.String("axis", axis),
		slog.String("label", name),
		slog.String("reason", err.Error()))
	return nil
}

// AssignAxes applies settings to def: row labels first (each moved to the
// column axis on request and synchronised with the cache), then value
// labels, then filter labels. Processing order is list order.
func AssignAxes(def *Definition, table SourceTable, settings models.PivotSettings, opts Options) error {
	for _, label := range settings.RowLabels {
		axis := "row"
		if label.Axis == models.AxisColumn {
			axis = "column"
		}
		index := table.ColumnIndex(label.Name)
		if index < 0 {
			if err := opts.skip(axis, label.Name, ErrUnresolvedLabel); err != nil {
				return err
			}
			continue
		}
		if err := def.AddRowField(index); err != nil {
			if !errors.Is(err, ErrFieldOnAxis) {
				return err
			}
			if err := opts.skip(axis, label.Name, err); err != nil {
				return err
			}
			continue
		}
		if err := def.SetSortOrder(index, label.SortOrder); err != nil {
			return err
		}
		if label.Axis == models.AxisColumn {
			if err := def.MoveFieldToColumnAxis(index); err != nil {
				return err
			}
		}
		if err := Collapse(def, index, table.ColumnValues(index), label.IsCollapsed()); err != nil {
			return err
		}
	}

	for _, label := range settings.ColumnLabels {
		index := table.ColumnIndex(label.Name)
		if index < 0 {
			if err := opts.skip("value", label.Name, ErrUnresolvedLabel); err != nil {
				return err
			}
			continue
		}
		if err := def.AddDataField(index, label.Aggregation, label.DisplayName()); err != nil {
			return err
		}
	}

	for _, name := range settings.FilterLabels {
		index := table.ColumnIndex(name)
		if index < 0 {
			if err := opts.skip("filter", name, ErrUnresolvedLabel); err != nil {
				return err
			}
			continue
		}
		if err := def.AddPageField(index); err != nil {
			if !errors.Is(err, ErrFieldOnAxis) {
				return err
			}
			if err := opts.skip("filter", name, err); err != nil {
				return err
			}
		}
	}
	return nil
}
