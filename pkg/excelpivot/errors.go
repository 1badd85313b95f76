package excelpivot

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a missing reader or sink.
var ErrInvalidArgument = errors.New("invalid argument")

// Build components reported by BuildError.
const (
	ComponentSchema = "schema"
	ComponentTable  = "table"
	ComponentPivot  = "pivot"
	ComponentSave   = "save"
)

// BuildError represents an error while building the workbook.
type BuildError struct {
	Sheet     string
	Component string // "schema", "table", "pivot", "save"
	Err       error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build error in sheet %q (%s): %v", e.Sheet, e.Component, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(sheet, component string, err error) *BuildError {
	return &BuildError{
		Sheet:     sheet,
		Component: component,
		Err:       err,
	}
}
