// Package source provides forward-only record readers consumed by the
// workbook writer.
package source

// Reader is a forward-only stream of uniformly typed records.
//
// Field names and count are known before the first call to Next. Values
// returns the current record's values by field position; it may return fewer
// values than FieldCount for a short record.
type Reader interface {
	FieldCount() int
	FieldName(i int) string
	Next() bool
	Values() ([]any, error)
	Err() error
}

// FieldNames returns the declared field names of r in order.
func FieldNames(r Reader) []string {
	names := make([]string, r.FieldCount())
	for i := range names {
		names[i] = r.FieldName(i)
	}
	return names
}
