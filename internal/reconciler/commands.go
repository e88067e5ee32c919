package reconciler

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debounceCmd waits for the debounce interval, then reports the generation it
// was scheduled for.
func debounceCmd(d time.Duration, gen uint64, query string) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen, query: query}
	})
}

// fetchCmd performs the single transport call for a search.
func fetchCmd(ctx context.Context, t Transport, gen uint64, query string) tea.Cmd {
	return func() tea.Msg {
		artists, err := t.SearchArtists(ctx, query)
		return fetchResultMsg{gen: gen, query: query, artists: artists, err: err}
	}
}

func completedCmd(msg SearchCompletedMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
