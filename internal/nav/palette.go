package nav

// PaletteCursor rotates through an explicit list of palettes
type PaletteCursor[T any] struct {
	palettes []T
	sel      Selection
}

// NewPaletteCursor starts at the palette at start, or the first one when
// start is out of range
func NewPaletteCursor[T any](palettes []T, start int) PaletteCursor[T] {
	c := PaletteCursor[T]{palettes: palettes, sel: NewSelection(len(palettes))}
	if start > 0 && start < len(palettes) {
		c.sel.index = start
	}
	return c
}

// Current returns the active palette. ok is false for an empty list.
func (c PaletteCursor[T]) Current() (palette T, ok bool) {
	if c.sel.Empty() {
		return palette, false
	}
	return c.palettes[c.sel.Index()], true
}

// Index returns the position of the active palette
func (c PaletteCursor[T]) Index() int {
	return c.sel.Index()
}

func (c *PaletteCursor[T]) Next() {
	c.sel.Next()
}

func (c *PaletteCursor[T]) Previous() {
	c.sel.Previous()
}
