// Package picker implements the artist search-and-select screen.
package picker

import (
	textcursor "github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/artpick/internal/keymap"
	"github.com/llehouerou/artpick/internal/logging"
	"github.com/llehouerou/artpick/internal/reconciler"
	"github.com/llehouerou/artpick/internal/ui"
	"github.com/llehouerou/artpick/internal/ui/cursor"
)

// Compile-time check that Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// Options configures the picker.
type Options struct {
	Logger *log.Logger
}

// Model is the picker screen. It holds no selection state of its own; every
// render reads the reconciler.
type Model struct {
	ui.Base

	rec    *reconciler.Reconciler
	keys   *keymap.Resolver
	input  textinput.Model
	cursor cursor.Cursor
	logger *log.Logger

	// errText is the formatted error of the last failed search, cleared by
	// the next search that completes without error.
	errText string
}

// New creates a picker driving rec.
func New(rec *reconciler.Reconciler, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	ti := textinput.New()
	ti.Placeholder = "Search artist..."
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Cursor.SetMode(textcursor.CursorStatic)
	ti.Focus()

	return &Model{
		rec:    rec,
		keys:   keymap.NewResolver(keymap.All),
		input:  ti,
		cursor: cursor.New(ui.ScrollMargin),
		logger: opts.Logger.WithPrefix("picker"),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Query returns the text in the search input.
func (m *Model) Query() string {
	return m.input.Value()
}

// Cursor returns the highlighted row index.
func (m *Model) Cursor() int {
	return m.cursor.Pos()
}

// ErrorText returns the error line, empty when the last search succeeded.
func (m *Model) ErrorText() string {
	return m.errText
}

// SetSize updates the layout dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(m.Width()-len(m.input.Prompt)-1, 1)
	m.cursor.ClampToBounds(len(m.rec.Visible()), m.listHeight())
}
