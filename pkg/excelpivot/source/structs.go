package source

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// TagName is the struct tag read by the struct readers. A tag value of "-"
// skips the field; any other non-empty value renames it.
const TagName = "xlsx"

type structField struct {
	name  string
	index []int
}

// StructReader reads exported struct fields in declaration order.
type StructReader[T any] struct {
	fields []structField
	next   func() (T, bool)
	stop   func()
	cur    reflect.Value
	err    error
}

// FromStructs returns a reader over items. T must be a struct or a pointer
// to a struct.
func FromStructs[T any](items []T) (*StructReader[T], error) {
	return FromSeq(func(yield func(T) bool) {
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	})
}

// FromSeq returns a reader pulling from seq. The sequence is consumed once.
func FromSeq[T any](seq iter.Seq[T]) (*StructReader[T], error) {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("source: %s is not a struct type", t)
	}
	fields := structFields(t)
	next, stop := iter.Pull(seq)
	return &StructReader[T]{fields: fields, next: next, stop: stop}, nil
}

func structFields(t reflect.Type) []structField {
	var fields []structField
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup(TagName); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, structField{name: name, index: f.Index})
	}
	return fields
}

func (r *StructReader[T]) FieldCount() int { return len(r.fields) }

func (r *StructReader[T]) FieldName(i int) string { return r.fields[i].name }

// Next advances to the next item. A nil pointer item ends the stream with an
// error.
func (r *StructReader[T]) Next() bool {
	if r.next == nil || r.err != nil {
		return false
	}
	item, ok := r.next()
	if !ok {
		r.Close()
		return false
	}
	v := reflect.ValueOf(&item).Elem()
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			r.err = fmt.Errorf("source: nil %s in sequence", v.Type())
			r.Close()
			return false
		}
		v = v.Elem()
	}
	r.cur = v
	return true
}

func (r *StructReader[T]) Values() ([]any, error) {
	if !r.cur.IsValid() {
		return nil, fmt.Errorf("source: Values called before Next")
	}
	values := make([]any, len(r.fields))
	for i, f := range r.fields {
		fv, err := r.cur.FieldByIndexErr(f.index)
		if err != nil {
			// nil embedded pointer on the path
			continue
		}
		values[i] = fv.Interface()
	}
	return values, nil
}

func (r *StructReader[T]) Err() error { return r.err }

// Close stops the underlying sequence. It is safe to call more than once.
func (r *StructReader[T]) Close() {
	if r.stop != nil {
		r.stop()
		r.next, r.stop = nil, nil
	}
}
