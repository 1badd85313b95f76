package writer

import (
	"errors"
	"unicode/utf8"

	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/models"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/source"
)

// ErrNoWritableColumns indicates that schema resolution left no columns.
var ErrNoWritableColumns = errors.New("no writable columns")

// HeaderPadding is added to the header text length for the initial width.
const HeaderPadding = 4

// ResolveColumns builds the ordered column schema for r.
//
// When include is non-empty the schema is exactly the names of include that
// exist in r, in include order. Otherwise it is every field of r in declared
// order minus the names in exclude. Positions are dense from 0.
func ResolveColumns(r source.Reader, include, exclude []string) ([]models.Column, error) {
	names := source.FieldNames(r)
	sourceIndex := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := sourceIndex[name]; !dup {
			sourceIndex[name] = i
		}
	}

	var columns []models.Column
	add := func(name string, src int) {
		columns = append(columns, models.Column{
			Name:     name,
			Position: len(columns),
			Source:   src,
			Width:    utf8.RuneCountInString(name) + HeaderPadding,
		})
	}

	if len(include) > 0 {
		seen := make(map[string]bool, len(include))
		for _, name := range include {
			src, ok := sourceIndex[name]
			if !ok || seen[name] {
				continue
			}
			seen[name] = true
			add(name, src)
		}
	} else {
		skip := make(map[string]bool, len(exclude))
		for _, name := range exclude {
			skip[name] = true
		}
		for i, name := range names {
			if skip[name] {
				continue
			}
			add(name, i)
		}
	}

	if len(columns) == 0 {
		return nil, ErrNoWritableColumns
	}
	return columns, nil
}
