package writer

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ValueKind is the semantic kind of a cell value. Every written value maps
// to exactly one kind.
type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindInteger
	KindFloat
	KindText
	KindBoolean
	KindDateTime
	KindIdentifier
)

var kindNames = [...]string{
	KindUnknown:    "unknown",
	KindInteger:    "integer",
	KindFloat:      "float",
	KindText:       "text",
	KindBoolean:    "boolean",
	KindDateTime:   "datetime",
	KindIdentifier: "identifier",
}

func (k ValueKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "ValueKind(" + strconv.Itoa(int(k)) + ")"
}

// ErrUnclassifiableValue indicates a value whose type has no format mapping
// and no textual fallback.
var ErrUnclassifiableValue = errors.New("unclassifiable value")

// ValueError reports the cell holding an unclassifiable value.
type ValueError struct {
	Cell string
	Type string
	Err  error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("cell %s: %v of type %s", e.Cell, e.Err, e.Type)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// Value is a classified cell value. Exactly one of the typed fields is
// meaningful, selected by Kind.
type Value struct {
	Kind  ValueKind
	Int   int64
	Uint  uint64
	Float float64
	Bool  bool
	Time  time.Time
	Text  string
	// Unsigned marks an Integer held in Uint.
	Unsigned bool
}

// Classify maps a Go value to a Value. It returns ok=false for nil and for
// typed nil pointers, which leave the cell blank. Values that implement
// driver.Valuer are unwrapped first (sql.Null*, pgtype.*); values of other
// unrecognised types fall back to fmt.Stringer as KindText.
func Classify(v any) (val Value, ok bool, err error) {
	for depth := 0; depth < 4; depth++ {
		switch x := v.(type) {
		case nil:
			return val, false, nil
		case int:
			return Value{Kind: KindInteger, Int: int64(x)}, true, nil
		case int8:
			return Value{Kind: KindInteger, Int: int64(x)}, true, nil
		case int16:
			return Value{Kind: KindInteger, Int: int64(x)}, true, nil
		case int32:
			return Value{Kind: KindInteger, Int: int64(x)}, true, nil
		case int64:
			return Value{Kind: KindInteger, Int: x}, true, nil
		case uint:
			return Value{Kind: KindInteger, Uint: uint64(x), Unsigned: true}, true, nil
		case uint8:
			return Value{Kind: KindInteger, Uint: uint64(x), Unsigned: true}, true, nil
		case uint16:
			return Value{Kind: KindInteger, Uint: uint64(x), Unsigned: true}, true, nil
		case uint32:
			return Value{Kind: KindInteger, Uint: uint64(x), Unsigned: true}, true, nil
		case uint64:
			return Value{Kind: KindInteger, Uint: x, Unsigned: true}, true, nil
		case float32:
			return Value{Kind: KindFloat, Float: float64(x)}, true, nil
		case float64:
			return Value{Kind: KindFloat, Float: x}, true, nil
		case decimal.Decimal:
			return Value{Kind: KindFloat, Float: x.InexactFloat64()}, true, nil
		case decimal.NullDecimal:
			if !x.Valid {
				return val, false, nil
			}
			return Value{Kind: KindFloat, Float: x.Decimal.InexactFloat64()}, true, nil
		case bool:
			return Value{Kind: KindBoolean, Bool: x}, true, nil
		case time.Time:
			return Value{Kind: KindDateTime, Time: x}, true, nil
		case string:
			return Value{Kind: KindText, Text: x}, true, nil
		case []byte:
			return Value{Kind: KindText, Text: string(x)}, true, nil
		case uuid.UUID:
			return Value{Kind: KindIdentifier, Text: x.String()}, true, nil
		case uuid.NullUUID:
			if !x.Valid {
				return val, false, nil
			}
			return Value{Kind: KindIdentifier, Text: x.UUID.String()}, true, nil
		case pgtype.Numeric:
			f8, err := x.Float64Value()
			if err != nil {
				return val, false, err
			}
			if !f8.Valid {
				return val, false, nil
			}
			return Value{Kind: KindFloat, Float: f8.Float64}, true, nil
		case pgtype.UUID:
			if !x.Valid {
				return val, false, nil
			}
			return Value{Kind: KindIdentifier, Text: uuid.UUID(x.Bytes).String()}, true, nil
		case [16]byte:
			// pgx decodes uuid columns to [16]byte
			return Value{Kind: KindIdentifier, Text: uuid.UUID(x).String()}, true, nil
		case driver.Valuer:
			inner, err := x.Value()
			if err != nil {
				return val, false, err
			}
			v = inner
			continue
		case fmt.Stringer:
			return Value{Kind: KindText, Text: x.String()}, true, nil
		}
		// named types over basic kinds, and pointers
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Pointer:
			if rv.IsNil() {
				return val, false, nil
			}
			v = rv.Elem().Interface()
			continue
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return Value{Kind: KindInteger, Int: rv.Int()}, true, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return Value{Kind: KindInteger, Uint: rv.Uint(), Unsigned: true}, true, nil
		case reflect.Float32, reflect.Float64:
			return Value{Kind: KindFloat, Float: rv.Float()}, true, nil
		case reflect.Bool:
			return Value{Kind: KindBoolean, Bool: rv.Bool()}, true, nil
		case reflect.String:
			return Value{Kind: KindText, Text: rv.String()}, true, nil
		}
		return val, false, ErrUnclassifiableValue
	}
	return val, false, ErrUnclassifiableValue
}

// String returns the textual form used for width estimation and for the
// pivot cache.
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		if v.Unsigned {
			return strconv.FormatUint(v.Uint, 10)
		}
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindDateTime:
		return v.Time.Format("02/01/2006 15:04:05")
	case KindText, KindIdentifier:
		return v.Text
	default:
		return ""
	}
}

// Format is the number format attached to a kind.
type Format struct {
	// NumFmt is a built-in number format id, used when Custom is empty.
	NumFmt int
	// Custom is a custom number format expression.
	Custom string
}

func (f Format) style() *excelize.Style {
	if f.Custom != "" {
		custom := f.Custom
		return &excelize.Style{CustomNumFmt: &custom}
	}
	return &excelize.Style{NumFmt: f.NumFmt}
}

// Registry maps value kinds to number formats and cell setters.
type Registry struct {
	// DateTimeFormat is the custom format for KindDateTime.
	DateTimeFormat string
}

// DefaultDateTimeFormat is the day-month-year format with time of day.
const DefaultDateTimeFormat = "dd/mm/yyyy hh:mm"

// DefaultRegistry returns the registry used when none is configured.
func DefaultRegistry() Registry {
	return Registry{DateTimeFormat: DefaultDateTimeFormat}
}

// Format returns the number format for kind.
func (r Registry) Format(kind ValueKind) (Format, error) {
	switch kind {
	case KindInteger:
		return Format{NumFmt: 3}, nil // #,##0
	case KindFloat:
		return Format{NumFmt: 4}, nil // #,##0.00
	case KindDateTime:
		layout := r.DateTimeFormat
		if layout == "" {
			layout = DefaultDateTimeFormat
		}
		return Format{Custom: layout}, nil
	case KindText, KindIdentifier:
		return Format{NumFmt: 49}, nil // @
	case KindBoolean:
		return Format{NumFmt: 0}, nil
	default:
		return Format{}, ErrUnclassifiableValue
	}
}

// Set writes v to cell with its native type and attaches the cached style
// for its kind.
func (r Registry) Set(f *excelize.File, sheet, cell string, v Value, styles *StyleCache) error {
	var err error
	switch v.Kind {
	case KindInteger:
		if v.Unsigned {
			err = f.SetCellUint(sheet, cell, v.Uint)
		} else {
			err = f.SetCellInt(sheet, cell, v.Int)
		}
	case KindFloat:
		err = f.SetCellFloat(sheet, cell, v.Float, -1, 64)
	case KindBoolean:
		err = f.SetCellBool(sheet, cell, v.Bool)
	case KindDateTime:
		err = f.SetCellValue(sheet, cell, v.Time)
	case KindText, KindIdentifier:
		err = f.SetCellStr(sheet, cell, v.Text)
	default:
		return ErrUnclassifiableValue
	}
	if err != nil {
		return err
	}
	if styles == nil {
		return nil
	}
	id, err := styles.Get(v.Kind)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, id)
}
