package source

import (
	"database/sql"
	"fmt"
)

// SQLReader adapts *sql.Rows. Values are returned as the driver produced
// them; NULL becomes nil.
type SQLReader struct {
	rows    *sql.Rows
	columns []string
	err     error
}

// FromSQL returns a reader over rows. The caller keeps ownership of rows and
// must close them.
func FromSQL(rows *sql.Rows) (*SQLReader, error) {
	if rows == nil {
		return nil, fmt.Errorf("source: nil rows")
	}
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("source: columns: %w", err)
	}
	return &SQLReader{rows: rows, columns: columns}, nil
}

func (r *SQLReader) FieldCount() int { return len(r.columns) }

func (r *SQLReader) FieldName(i int) string { return r.columns[i] }

func (r *SQLReader) Next() bool {
	if r.err != nil {
		return false
	}
	return r.rows.Next()
}

func (r *SQLReader) Values() ([]any, error) {
	values := make([]any, len(r.columns))
	ptrs := make([]any, len(values))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := r.rows.Scan(ptrs...); err != nil {
		r.err = fmt.Errorf("source: scan: %w", err)
		return nil, r.err
	}
	for i, v := range values {
		// drivers may reuse the buffer behind a []byte after the next Scan
		if b, ok := v.([]byte); ok {
			values[i] = append([]byte(nil), b...)
		}
	}
	return values, nil
}

func (r *SQLReader) Err() error {
	if r.err != nil {
		return r.err
	}
	return r.rows.Err()
}
