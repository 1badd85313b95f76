package writer

// recordReader is an in-memory source.Reader over fixed rows.
type recordReader struct {
	names []string
	rows  [][]any
	pos   int
	err   error
}

func newRecordReader(names []string, rows ...[]any) *recordReader {
	return &recordReader{names: names, rows: rows}
}

func (r *recordReader) FieldCount() int        { return len(r.names) }
func (r *recordReader) FieldName(i int) string { return r.names[i] }
func (r *recordReader) Err() error             { return r.err }

func (r *recordReader) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *recordReader) Values() ([]any, error) {
	return r.rows[r.pos-1], nil
}
