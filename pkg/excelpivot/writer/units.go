package writer

import "math"

// WidthUnitsPerChar is the number of column width units per character.
// Sheets store column widths in 1/256 of a character.
const WidthUnitsPerChar = 256

// MaxWidthUnits is the largest addressable column width in 1/256 units.
const MaxWidthUnits = 65279

// GlyphFactor widens character counts to approximate average glyph width.
const GlyphFactor = 1.25

// ValuePadding is added to the text length of each written value.
const ValuePadding = 2

// WidthUnits converts a character width estimate to 1/256 width units,
// clamped to MaxWidthUnits.
func WidthUnits(chars int) int {
	units := int(math.Round(float64(chars)*GlyphFactor)) * WidthUnitsPerChar
	return min(units, MaxWidthUnits)
}

// UnitsToChars converts 1/256 width units to the character width accepted
// by excelize.
func UnitsToChars(units int) float64 {
	return float64(units) / WidthUnitsPerChar
}
