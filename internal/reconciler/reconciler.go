// Package reconciler keeps search results, the selection store and the
// displayed list consistent while the user searches, toggles and resets.
//
// A Reconciler is owned by a single bubbletea event loop. Search returns a
// command; the messages it produces must be fed back through Update, which
// applies a response only if no newer Search or Reset happened in between.
package reconciler

import (
	"context"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/artpick/internal/apperr"
	"github.com/llehouerou/artpick/internal/artic"
	"github.com/llehouerou/artpick/internal/artist"
	"github.com/llehouerou/artpick/internal/logging"
	"github.com/llehouerou/artpick/internal/viewmode"
)

const (
	DefaultDebounce    = 400 * time.Millisecond
	DefaultMinQueryLen = 3
)

// Transport fetches the artists matching a query.
type Transport interface {
	SearchArtists(ctx context.Context, query string) ([]artic.Artist, error)
}

// Options configures a Reconciler. Zero values fall back to defaults.
type Options struct {
	Debounce    time.Duration
	MinQueryLen int
	Logger      *log.Logger
}

// Reconciler merges search results with the selection store.
type Reconciler struct {
	transport   Transport
	store       *artist.Store
	logger      *log.Logger
	debounce    time.Duration
	minQueryLen int

	mode    viewmode.Mode
	results []artist.Record
	query   string

	// gen identifies the latest Search; responses tagged with an older
	// generation are dropped.
	gen     uint64
	pending bool
	cancel  context.CancelFunc
}

// New creates a reconciler around an injected transport and store.
func New(transport Transport, store *artist.Store, opts Options) *Reconciler {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.MinQueryLen <= 0 {
		opts.MinQueryLen = DefaultMinQueryLen
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	return &Reconciler{
		transport:   transport,
		store:       store,
		logger:      opts.Logger.WithPrefix("reconciler"),
		debounce:    opts.Debounce,
		minQueryLen: opts.MinQueryLen,
		mode:        viewmode.Results,
	}
}

// IsValidQuery reports whether query is long enough to be sent.
func (r *Reconciler) IsValidQuery(query string) bool {
	return utf8.RuneCountInString(query) >= r.minQueryLen
}

// Search supersedes any pending search and schedules query. Short queries
// clear the results and complete immediately without a network call.
func (r *Reconciler) Search(query string) tea.Cmd {
	r.invalidate()
	r.query = query

	if !r.IsValidQuery(query) {
		r.results = nil
		r.pending = false
		return completedCmd(SearchCompletedMsg{Query: query})
	}

	r.pending = true
	r.logger.Debug("search scheduled", "query", query, "gen", r.gen)
	return debounceCmd(r.debounce, r.gen, query)
}

// Update consumes the messages produced by Search commands. It returns nil for
// messages it does not own.
func (r *Reconciler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case debounceMsg:
		return r.handleDebounce(msg)
	case fetchResultMsg:
		return r.handleFetchResult(msg)
	}
	return nil
}

func (r *Reconciler) handleDebounce(msg debounceMsg) tea.Cmd {
	if msg.gen != r.gen {
		r.logger.Debug("search superseded before fetch", "query", msg.query, "gen", msg.gen)
		return completedCmd(SearchCompletedMsg{Query: msg.query, Superseded: true})
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.logger.Debug("fetching", "query", msg.query, "gen", msg.gen)
	return fetchCmd(ctx, r.transport, msg.gen, msg.query)
}

func (r *Reconciler) handleFetchResult(msg fetchResultMsg) tea.Cmd {
	if msg.gen != r.gen {
		r.logger.Debug("stale response dropped", "query", msg.query, "gen", msg.gen)
		return completedCmd(SearchCompletedMsg{Query: msg.query, Superseded: true})
	}

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.pending = false

	if msg.err != nil {
		appErr := apperr.FromTransport(msg.err)
		r.logger.Warn("search failed", "query", msg.query, "kind", appErr.Kind, "err", msg.err)
		return completedCmd(SearchCompletedMsg{Query: msg.query, Err: appErr})
	}

	records := artist.FromArtists(msg.artists)
	r.markSelected(records)
	r.results = records
	r.logger.Debug("search applied", "query", msg.query, "results", len(records))
	return completedCmd(SearchCompletedMsg{Query: msg.query})
}

// markSelected sets each record's flag from store membership.
func (r *Reconciler) markSelected(records []artist.Record) {
	ids := r.store.IDs()
	for i := range records {
		_, ok := ids[records[i].ID]
		records[i].Selected = ok
	}
}

// UpdateSelectStatus selects or deselects the record with id in the displayed
// list. It returns false, changing nothing, when the list has no such record.
func (r *Reconciler) UpdateSelectStatus(id int, selected bool) bool {
	active := r.Visible()
	i := artist.IndexOf(active, id)
	if i < 0 {
		r.logger.Warn("toggle ignored: artist not in list", "id", id, "mode", r.mode)
		return false
	}

	rec := active[i]
	rec.Selected = selected
	if selected {
		r.store.Save(rec)
	} else {
		r.store.Remove(id)
	}

	if j := artist.IndexOf(r.results, id); j >= 0 {
		r.results[j].Selected = selected
	}
	return true
}

// SwitchMode toggles between the results and selected views.
func (r *Reconciler) SwitchMode() {
	r.mode = r.mode.Toggle()
}

// Reset clears the selection, the results and the query, drops any pending
// search and returns to the results view.
func (r *Reconciler) Reset() {
	r.invalidate()
	r.store.Clear()
	r.results = nil
	r.query = ""
	r.pending = false
	r.mode = viewmode.Results
	r.logger.Info("selection reset")
}

// invalidate makes every outstanding search stale.
func (r *Reconciler) invalidate() {
	r.gen++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// Mode returns the active view mode.
func (r *Reconciler) Mode() viewmode.Mode {
	return r.mode
}

// Visible returns the list to display: the results in Results mode, the
// selection in Selected mode.
func (r *Reconciler) Visible() []artist.Record {
	if r.mode == viewmode.Selected {
		return r.store.List()
	}
	return r.Results()
}

// Results returns a copy of the latest search results.
func (r *Reconciler) Results() []artist.Record {
	out := make([]artist.Record, len(r.results))
	copy(out, r.results)
	return out
}

// Selected returns the selected records in selection order.
func (r *Reconciler) Selected() []artist.Record {
	return r.store.List()
}

// Query returns the latest query passed to Search.
func (r *Reconciler) Query() string {
	return r.query
}

// Pending reports whether a search is waiting on its debounce or its fetch.
func (r *Reconciler) Pending() bool {
	return r.pending
}

// Affordances derives the switch and reset controls for the current state.
func (r *Reconciler) Affordances() viewmode.Affordances {
	return viewmode.Derive(r.mode, len(r.results), r.store.Len())
}
