package models

// Column describes one column of the written table.
type Column struct {
	// Name is the header text, taken from the record stream field name.
	Name string `json:"name"`
	// Position is the 0-based column position in the written table.
	Position int `json:"position"`
	// Source is the 0-based field position in the record stream.
	Source int `json:"source"`
	// Width is the running width estimate in characters. It only grows.
	Width int `json:"width"`
}

// Grow raises the width estimate to w when w is larger.
func (c *Column) Grow(w int) {
	if w > c.Width {
		c.Width = w
	}
}
