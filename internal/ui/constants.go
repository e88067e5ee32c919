// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// DefaultWidth and DefaultHeight are used before the first WindowSizeMsg.
	DefaultWidth  = 80
	DefaultHeight = 24
)
