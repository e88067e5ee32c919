// Package viewmode tracks which list is displayed and derives the switch and
// reset affordances from it.
package viewmode

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Mode selects which list is displayed.
type Mode int

const (
	Results  Mode = iota // latest search results
	Selected             // records in the selection store
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Results {
		return Selected
	}
	return Results
}

func (m Mode) String() string {
	switch m {
	case Results:
		return "results"
	case Selected:
		return "selected"
	}
	return "unknown"
}

// Affordances describes the mode-dependent controls around the list.
type Affordances struct {
	SwitchLabel   string
	SwitchEnabled bool
	// Count is the size of the list not currently displayed.
	Count        int
	ResetVisible bool
}

// Derive computes the affordances for mode given both list sizes.
func Derive(mode Mode, resultsCount, selectedCount int) Affordances {
	a := Affordances{ResetVisible: selectedCount > 0}

	switch mode {
	case Selected:
		a.Count = resultsCount
		a.SwitchLabel = fmt.Sprintf("Show Results (%s)", humanize.Comma(int64(resultsCount)))
		a.SwitchEnabled = true
	default:
		a.Count = selectedCount
		a.SwitchEnabled = selectedCount > 0
		if a.SwitchEnabled {
			a.SwitchLabel = fmt.Sprintf("Show Selected (%s)", humanize.Comma(int64(selectedCount)))
		} else {
			a.SwitchLabel = "0 Selected"
		}
	}

	return a
}
