package picker

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/artpick/internal/errmsg"
	"github.com/llehouerou/artpick/internal/keymap"
	"github.com/llehouerou/artpick/internal/reconciler"
	"github.com/llehouerou/artpick/internal/viewmode"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case reconciler.SearchCompletedMsg:
		m.handleSearchCompleted(msg)
		return m, nil
	}

	// Debounce ticks and fetch results belong to the reconciler.
	return m, m.rec.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	listLen := len(m.rec.Visible())

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, listLen, m.listHeight())
		return nil
	case keymap.ActionMoveDown:
		m.cursor.Move(1, listLen, m.listHeight())
		return nil
	case keymap.ActionFirst:
		m.cursor.JumpStart()
		return nil
	case keymap.ActionLast:
		m.cursor.JumpEnd(listLen, m.listHeight())
		return nil
	case keymap.ActionToggle:
		m.toggle()
		return nil
	case keymap.ActionSwitchView:
		m.switchView()
		return nil
	case keymap.ActionReset:
		m.reset()
		return nil
	}

	return m.updateInput(msg)
}

// updateInput feeds a key to the search box and starts a search when the
// text changed.
func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	query := m.input.Value()
	if query == before {
		return cmd
	}

	if m.rec.Mode() == viewmode.Selected {
		m.logger.Debug("typing returns to results")
		m.rec.SwitchMode()
	}
	m.cursor.Reset()
	return tea.Batch(cmd, m.rec.Search(query))
}

func (m *Model) handleSearchCompleted(msg reconciler.SearchCompletedMsg) {
	if msg.Superseded {
		return
	}
	if msg.Err != nil {
		m.errText = errmsg.Format(errmsg.OpSearch, msg.Err)
	} else {
		m.errText = ""
	}
	m.cursor.ClampToBounds(len(m.rec.Visible()), m.listHeight())
}

func (m *Model) toggle() {
	visible := m.rec.Visible()
	pos := m.cursor.Pos()
	if pos >= len(visible) {
		return
	}

	r := visible[pos]
	if !m.rec.UpdateSelectStatus(r.ID, !r.Selected) {
		return
	}

	// The selected view cannot be empty.
	if m.rec.Mode() == viewmode.Selected && len(m.rec.Selected()) == 0 {
		m.logger.Debug("selection emptied, returning to results")
		m.rec.SwitchMode()
		m.cursor.Reset()
	}
	m.cursor.ClampToBounds(len(m.rec.Visible()), m.listHeight())
}

func (m *Model) switchView() {
	if !m.rec.Affordances().SwitchEnabled {
		return
	}
	m.rec.SwitchMode()
	m.cursor.Reset()
}

func (m *Model) reset() {
	if !m.rec.Affordances().ResetVisible {
		return
	}
	m.rec.Reset()
	m.input.Reset()
	m.errText = ""
	m.cursor.Reset()
}
