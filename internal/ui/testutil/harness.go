package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// maxSteps bounds Settle so a model that keeps scheduling commands fails
// the test instead of hanging it.
const maxSteps = 1000

// Harness wraps a tea.Model for testing, providing helpers to simulate
// user input and run the resulting commands.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
	msgs  []tea.Msg
	quit  bool
}

// NewHarness creates a test harness and captures the model's init command.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View returns the model's rendered content without styling.
func (h *Harness) View() string {
	return StripANSI(h.model.View())
}

// SendMsg sends a message to the model and queues the resulting command.
func (h *Harness) SendMsg(msg tea.Msg) {
	h.msgs = append(h.msgs, msg)
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
}

// SendSpecialKey sends a special key (enter, escape, tab, etc.).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) {
	h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Type sends s one rune at a time, as typing would.
func (h *Harness) Type(s string) {
	for _, r := range s {
		if r == ' ' {
			h.SendMsg(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Backspace deletes n characters before the input cursor.
func (h *Harness) Backspace(n int) {
	for range n {
		h.SendSpecialKey(tea.KeyBackspace)
	}
}

func (h *Harness) SendEnter()  { h.SendSpecialKey(tea.KeyEnter) }
func (h *Harness) SendEscape() { h.SendSpecialKey(tea.KeyEscape) }
func (h *Harness) SendUp()     { h.SendSpecialKey(tea.KeyUp) }
func (h *Harness) SendDown()   { h.SendSpecialKey(tea.KeyDown) }
func (h *Harness) SendTab()    { h.SendSpecialKey(tea.KeyTab) }
func (h *Harness) SendCtrlR()  { h.SendSpecialKey(tea.KeyCtrlR) }

// Settle runs queued commands in order, feeding each result back into the
// model, until no commands remain. Batches are flattened. It returns false
// if the model was still producing commands after maxSteps.
func (h *Harness) Settle() bool {
	for range maxSteps {
		if len(h.cmds) == 0 {
			return true
		}
		cmd := h.cmds[0]
		h.cmds = h.cmds[1:]

		switch msg := cmd().(type) {
		case nil:
		case tea.BatchMsg:
			for _, c := range msg {
				if c != nil {
					h.cmds = append(h.cmds, c)
				}
			}
		case tea.QuitMsg:
			h.quit = true
		default:
			h.SendMsg(msg)
		}
	}
	return len(h.cmds) == 0
}

// Pending returns the number of queued commands.
func (h *Harness) Pending() int {
	return len(h.cmds)
}

// Messages returns every message delivered to the model so far.
func (h *Harness) Messages() []tea.Msg {
	return h.msgs
}

// Quit reports whether a command returned tea.QuitMsg.
func (h *Harness) Quit() bool {
	return h.quit
}

// ViewContains checks if the rendered view contains the given substring.
func (h *Harness) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}
