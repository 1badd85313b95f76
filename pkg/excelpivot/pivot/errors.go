package pivot

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolvedLabel indicates a label naming no table column.
	ErrUnresolvedLabel = errors.New("label does not name a table column")
	// ErrFieldOnAxis indicates a field that is already placed on an axis.
	ErrFieldOnAxis = errors.New("field already on an axis")
	// ErrInvariant indicates a pivot definition whose linked collections
	// disagree. Such a definition would produce an unreadable document.
	ErrInvariant = errors.New("pivot definition invariant violated")
	// ErrSheetExists indicates a pivot sheet name already used in the workbook.
	ErrSheetExists = errors.New("sheet already exists")
)

// LabelError reports a settings label that could not be applied.
type LabelError struct {
	// Axis is the settings section: "row", "column", "value" or "filter".
	Axis string
	Name string
	Err  error
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("%s label %q: %v", e.Axis, e.Name, e.Err)
}

func (e *LabelError) Unwrap() error {
	return e.Err
}

func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...)
}
