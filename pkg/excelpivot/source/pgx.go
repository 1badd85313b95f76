package source

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// PgxReader adapts pgx.Rows. Values are decoded by pgx into Go types
// (int32, float64, pgtype.Numeric, time.Time, [16]byte for uuid, ...).
type PgxReader struct {
	rows  pgx.Rows
	names []string
	err   error
}

// FromPgx returns a reader over rows. The caller keeps ownership of rows.
func FromPgx(rows pgx.Rows) (*PgxReader, error) {
	if rows == nil {
		return nil, fmt.Errorf("source: nil rows")
	}
	fds := rows.FieldDescriptions()
	names := make([]string, len(fds))
	for i, fd := range fds {
		names[i] = fd.Name
	}
	return &PgxReader{rows: rows, names: names}, nil
}

func (r *PgxReader) FieldCount() int { return len(r.names) }

func (r *PgxReader) FieldName(i int) string { return r.names[i] }

func (r *PgxReader) Next() bool {
	if r.err != nil {
		return false
	}
	return r.rows.Next()
}

func (r *PgxReader) Values() ([]any, error) {
	values, err := r.rows.Values()
	if err != nil {
		r.err = fmt.Errorf("source: values: %w", err)
		return nil, r.err
	}
	return values, nil
}

func (r *PgxReader) Err() error {
	if r.err != nil {
		return r.err
	}
	return r.rows.Err()
}
