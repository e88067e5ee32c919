package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/artpick/internal/artist"
	"github.com/llehouerou/artpick/internal/keymap"
	"github.com/llehouerou/artpick/internal/ui"
	"github.com/llehouerou/artpick/internal/ui/render"
	"github.com/llehouerou/artpick/internal/ui/styles"
	"github.com/llehouerou/artpick/internal/viewmode"
)

// fixedLines counts the header, input, controls and help lines.
const fixedLines = 4

const (
	markSelected   = "[x]"
	markUnselected = "[ ]"
)

// View implements tea.Model.
func (m *Model) View() string {
	t := styles.T()
	s := t.S()
	width := m.Width()

	header := styles.Gradient("artpick", t.Primary, t.Secondary) +
		s.Muted.Render(" · Art Institute of Chicago artists")

	sections := []string{
		header,
		m.input.View(),
		m.renderStatus(),
		t.Panel(true).Width(max(width-ui.BorderHeight, 1)).Render(m.renderList()),
		m.renderControls(),
		s.Subtle.Render(render.Truncate(keymap.Help(m.keys,
			keymap.ActionToggle, keymap.ActionSwitchView, keymap.ActionReset, keymap.ActionQuit), width)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// statusLines returns the status area content, one entry per line.
func (m *Model) statusLines() []string {
	if m.errText != "" {
		return strings.Split(m.errText, "\n")
	}

	switch {
	case m.rec.Mode() == viewmode.Selected:
		return []string{"Selected artists (" + humanize.Comma(int64(len(m.rec.Selected()))) + ")"}
	case m.rec.Pending():
		return []string{"Searching..."}
	case !m.rec.IsValidQuery(m.rec.Query()):
		return []string{"Type a few more characters to search"}
	}
	n := len(m.rec.Results())
	if n == 1 {
		return []string{"1 artist"}
	}
	return []string{humanize.Comma(int64(n)) + " artists"}
}

func (m *Model) renderStatus() string {
	s := styles.T().S()
	lines := m.statusLines()
	style := s.Muted
	if m.errText != "" {
		style = s.Error
	}
	for i, l := range lines {
		lines[i] = style.Render(render.Truncate(l, m.Width()))
	}
	return strings.Join(lines, "\n")
}

// listHeight returns the rows available inside the panel.
func (m *Model) listHeight() int {
	return m.ListHeight(fixedLines + ui.BorderHeight + len(m.statusLines()))
}

func (m *Model) renderList() string {
	s := styles.T().S()
	records := m.rec.Visible()
	height := m.listHeight()
	// panel border and padding take two columns each side
	inner := max(m.Width()-4, 8)

	lines := make([]string, 0, height)
	if len(records) == 0 && m.rec.Mode() == viewmode.Results &&
		!m.rec.Pending() && m.rec.IsValidQuery(m.rec.Query()) && m.errText == "" {
		lines = append(lines, s.Subtle.Render("No artists found"))
	}

	start, end := m.cursor.VisibleRange(len(records), height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(records[i], i == m.cursor.Pos(), inner))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(r artist.Record, isCursor bool, width int) string {
	s := styles.T().S()

	mark := s.Subtle.Render(markUnselected)
	if r.Selected {
		mark = s.Mark.Render(markSelected)
	}

	prefix := "  "
	titleStyle := s.Base
	if isCursor {
		prefix = "> "
		titleStyle = s.Cursor
	}

	titleWidth := max(width-len(prefix)-len(markSelected)-1, 1)
	return prefix + mark + " " + titleStyle.Render(render.TruncateAndPad(r.Title, titleWidth))
}

func (m *Model) renderControls() string {
	s := styles.T().S()
	aff := m.rec.Affordances()

	switchStyle := s.Disabled
	if aff.SwitchEnabled {
		switchStyle = s.Button
	}
	left := switchStyle.Render("[ " + aff.SwitchLabel + " ]")

	right := ""
	if aff.ResetVisible {
		right = s.Button.Render("[ Reset ]")
	}
	return render.Row(left, right, m.Width())
}
