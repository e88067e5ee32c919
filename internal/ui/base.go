package ui

// Base provides size bookkeeping for component models. Embed it to get
// SetSize and the accessors.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width, or DefaultWidth before any resize.
func (b Base) Width() int {
	if b.width <= 0 {
		return DefaultWidth
	}
	return b.width
}

// Height returns the component height, or DefaultHeight before any resize.
func (b Base) Height() int {
	if b.height <= 0 {
		return DefaultHeight
	}
	return b.height
}

// ListHeight returns the rows left for list content after overhead, never
// less than one.
func (b Base) ListHeight(overhead int) int {
	return max(b.Height()-overhead, 1)
}
