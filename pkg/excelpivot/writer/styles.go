package writer

import "github.com/xuri/excelize/v2"

// StyleCache holds one style id per value kind for a single workbook.
// Style ids are only meaningful inside the file that created them, so a
// cache must never be shared between builds.
type StyleCache struct {
	file     *excelize.File
	registry Registry
	ids      map[ValueKind]int
}

// NewStyleCache returns an empty cache bound to f.
func NewStyleCache(f *excelize.File, registry Registry) *StyleCache {
	return &StyleCache{
		file:     f,
		registry: registry,
		ids:      make(map[ValueKind]int),
	}
}

// Get returns the style id for kind, creating it on first use.
func (c *StyleCache) Get(kind ValueKind) (int, error) {
	if id, ok := c.ids[kind]; ok {
		return id, nil
	}
	format, err := c.registry.Format(kind)
	if err != nil {
		return 0, err
	}
	id, err := c.file.NewStyle(format.style())
	if err != nil {
		return 0, err
	}
	c.ids[kind] = id
	return id, nil
}

// Len returns the number of styles created so far.
func (c *StyleCache) Len() int {
	return len(c.ids)
}
