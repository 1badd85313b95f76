package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Axis is the placement requested for a row label.
type Axis string

const (
	// AxisRow keeps the field on the row axis.
	AxisRow Axis = "row"
	// AxisColumn moves the field to the column axis.
	AxisColumn Axis = "column"
)

// SortOrder is the item sort order of an axis field.
type SortOrder string

const (
	// SortAscending sorts items A to Z.
	SortAscending SortOrder = "ascending"
	// SortDescending sorts items Z to A.
	SortDescending SortOrder = "descending"
)

// Aggregation is the consolidation function of a value-area field.
type Aggregation string

// Aggregations accepted in the value area.
const (
	AggregationSum       Aggregation = "sum"
	AggregationAverage   Aggregation = "average"
	AggregationCount     Aggregation = "count"
	AggregationCountNums Aggregation = "countNums"
	AggregationMax       Aggregation = "max"
	AggregationMin       Aggregation = "min"
	AggregationProduct   Aggregation = "product"
	AggregationStdDev    Aggregation = "stdDev"
	AggregationStdDevp   Aggregation = "stdDevp"
	AggregationVar       Aggregation = "var"
	AggregationVarp      Aggregation = "varp"
)

var aggregationCaptions = map[Aggregation]string{
	AggregationSum:       "Sum",
	AggregationAverage:   "Average",
	AggregationCount:     "Count",
	AggregationCountNums: "Count",
	AggregationMax:       "Max",
	AggregationMin:       "Min",
	AggregationProduct:   "Product",
	AggregationStdDev:    "StdDev",
	AggregationStdDevp:   "StdDevp",
	AggregationVar:       "Var",
	AggregationVarp:      "Varp",
}

// ParseAggregation matches s case-insensitively against the known
// aggregations. An empty string yields AggregationCount.
func ParseAggregation(s string) (Aggregation, error) {
	if s == "" {
		return AggregationCount, nil
	}
	for agg := range aggregationCaptions {
		if strings.EqualFold(string(agg), s) {
			return agg, nil
		}
	}
	return "", fmt.Errorf("unknown aggregation %q", s)
}

// Caption returns the label used in default data field names, e.g. "Sum".
func (a Aggregation) Caption() string {
	return aggregationCaptions[a]
}

// Defaults applied by PivotSettings.WithDefaults.
const (
	DefaultPivotSheetName = "PIVOT"
	DefaultPivotTableName = "PivotTable"
	DefaultPivotStyle     = "PivotStyleDark2"
)

// RowLabel places a column on the row axis, or on the column axis when
// Axis is AxisColumn.
type RowLabel struct {
	// Name is the table column name.
	Name string `yaml:"name" json:"name"`
	// Axis is the requested axis (row or column). Empty means row.
	Axis Axis `yaml:"axis,omitempty" json:"axis,omitempty"`
	// SortOrder is the item sort order. Empty means ascending.
	SortOrder SortOrder `yaml:"sort,omitempty" json:"sort,omitempty"`
	// Collapsed hides item details when nil or true.
	Collapsed *bool `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
}

// IsCollapsed reports whether item details are hidden.
func (l RowLabel) IsCollapsed() bool {
	return l.Collapsed == nil || *l.Collapsed
}

// ColumnLabel places a column in the value area.
type ColumnLabel struct {
	// Name is the table column name.
	Name string `yaml:"name" json:"name"`
	// Aggregation is the consolidation function. Empty means count.
	Aggregation Aggregation `yaml:"aggregation,omitempty" json:"aggregation,omitempty"`
	// Caption overrides the data field name, default "<Aggregation> of <Name>".
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty"`
}

// DisplayName returns the data field caption.
func (l ColumnLabel) DisplayName() string {
	if l.Caption != "" {
		return l.Caption
	}
	agg := l.Aggregation
	if agg == "" {
		agg = AggregationCount
	}
	return agg.Caption() + " of " + l.Name
}

// PivotSettings configures the optional pivot sheet.
type PivotSettings struct {
	RowLabels    []RowLabel    `yaml:"rows,omitempty" json:"rows,omitempty"`
	ColumnLabels []ColumnLabel `yaml:"values,omitempty" json:"values,omitempty"`
	FilterLabels []string      `yaml:"filters,omitempty" json:"filters,omitempty"`
	TableStyle   string        `yaml:"style,omitempty" json:"style,omitempty"`
	SheetName    string        `yaml:"sheet,omitempty" json:"sheet,omitempty"`
	TableName    string        `yaml:"name,omitempty" json:"name,omitempty"`
}

// WithDefaults returns a copy with empty names and style filled in.
func (s PivotSettings) WithDefaults() PivotSettings {
	if s.SheetName == "" {
		s.SheetName = DefaultPivotSheetName
	}
	if s.TableName == "" {
		s.TableName = DefaultPivotTableName
	}
	if s.TableStyle == "" {
		s.TableStyle = DefaultPivotStyle
	}
	return s
}

// Validate checks enum values and the style name.
func (s PivotSettings) Validate() error {
	for _, l := range s.RowLabels {
		switch l.Axis {
		case "", AxisRow, AxisColumn:
		default:
			return fmt.Errorf("row label %q: invalid axis %q", l.Name, l.Axis)
		}
		switch l.SortOrder {
		case "", SortAscending, SortDescending:
		default:
			return fmt.Errorf("row label %q: invalid sort order %q", l.Name, l.SortOrder)
		}
	}
	for _, l := range s.ColumnLabels {
		if l.Aggregation == "" {
			continue
		}
		if _, ok := aggregationCaptions[l.Aggregation]; !ok {
			return fmt.Errorf("column label %q: invalid aggregation %q", l.Name, l.Aggregation)
		}
	}
	if s.TableStyle != "" && !IsBuiltInPivotStyle(s.TableStyle) {
		return fmt.Errorf("unknown pivot table style %q", s.TableStyle)
	}
	return nil
}

// IsBuiltInPivotStyle reports whether name is one of PivotStyleLight1-28,
// PivotStyleMedium1-28 or PivotStyleDark1-28.
func IsBuiltInPivotStyle(name string) bool {
	rest, ok := strings.CutPrefix(name, "PivotStyle")
	if !ok {
		return false
	}
	for _, family := range []string{"Light", "Medium", "Dark"} {
		if num, ok := strings.CutPrefix(rest, family); ok {
			n, err := strconv.Atoi(num)
			return err == nil && n >= 1 && n <= 28 && strconv.Itoa(n) == num
		}
	}
	return false
}

// LoadPivotSettings reads pivot settings from a YAML file.
func LoadPivotSettings(path string) (PivotSettings, error) {
	var s PivotSettings
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse pivot settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("pivot settings %s: %w", path, err)
	}
	return s, nil
}
