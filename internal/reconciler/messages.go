package reconciler

import (
	"github.com/llehouerou/artpick/internal/apperr"
	"github.com/llehouerou/artpick/internal/artic"
)

// SearchCompletedMsg is delivered exactly once for every Search call.
// Superseded is set when a newer Search (or Reset) replaced this one before it
// could be applied; in that case no state was changed.
type SearchCompletedMsg struct {
	Query      string
	Err        *apperr.Error
	Superseded bool
}

// debounceMsg fires when the debounce interval of a search elapses.
type debounceMsg struct {
	gen   uint64
	query string
}

// fetchResultMsg carries the transport response for a search.
type fetchResultMsg struct {
	gen     uint64
	query   string
	artists []artic.Artist
	err     error
}
