// Package cursor tracks the highlighted row and scroll offset of a list.
package cursor

// Cursor holds a position and scroll offset. The list length and viewport
// height are passed to each call because both change as results arrive.
type Cursor struct {
	pos    int
	offset int // first visible row
	margin int // rows kept visible above/below the cursor
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta, clamped to the list. No-op on an empty list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// JumpStart moves the cursor to the first row.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd moves the cursor to the last row.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}

	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// ClampToBounds keeps the cursor inside a list that may have shrunk.
// Returns true if the cursor was adjusted.
func (c *Cursor) ClampToBounds(listLen, height int) bool {
	oldPos, oldOffset := c.pos, c.offset
	if listLen == 0 {
		c.pos, c.offset = 0, 0
	} else {
		c.pos = clamp(c.pos, listLen-1)
		c.ensureVisible(listLen, height)
	}
	return c.pos != oldPos || c.offset != oldOffset
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, listLen)
	end = min(start+height, listLen)
	return start, end
}

// Reset moves the cursor back to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
