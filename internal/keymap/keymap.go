package keymap

import "strings"

// Binding maps keys to an action. Keys are tea.KeyMsg strings.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
}

// All contains the picker key bindings. Printable keys are left to the
// search input, so every binding here uses a modifier or a special key.
var All = []Binding{
	{ActionQuit, []string{"esc", "ctrl+c"}, "Quit"},
	{ActionMoveUp, []string{"up", "ctrl+p"}, "Move up"},
	{ActionMoveDown, []string{"down", "ctrl+n"}, "Move down"},
	{ActionFirst, []string{"home"}, "First artist"},
	{ActionLast, []string{"end"}, "Last artist"},
	{ActionToggle, []string{"enter"}, "Select/deselect"},
	{ActionSwitchView, []string{"tab"}, "Switch view"},
	{ActionReset, []string{"ctrl+r"}, "Reset selection"},
}

// Help renders a one-line summary of the given actions, e.g.
// "enter select/deselect · tab switch view".
func Help(r *Resolver, actions ...Action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		keys := r.KeysFor(a)
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, keys[0]+" "+strings.ToLower(r.Describe(a)))
	}
	return strings.Join(parts, " · ")
}
