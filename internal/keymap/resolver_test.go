//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key      string
		expected Action
	}{
		{"esc", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"up", ActionMoveUp},
		{"ctrl+n", ActionMoveDown},
		{"enter", ActionToggle},
		{"tab", ActionSwitchView},
		{"ctrl+r", ActionReset},
		{"a", ""},
		{" ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(All)

	keys := r.KeysFor(ActionQuit)
	if !slices.Equal(keys, []string{"esc", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v, want [esc ctrl+c]", keys)
	}
	if keys := r.KeysFor("missing"); len(keys) != 0 {
		t.Errorf("KeysFor(missing) = %v, want empty", keys)
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionToggle, []string{"enter"}, "Toggle"},
		{ActionToggle, []string{"enter", "ctrl+s"}, "Toggle again"},
	})

	if keys := r.KeysFor(ActionToggle); !slices.Equal(keys, []string{"enter", "ctrl+s"}) {
		t.Errorf("KeysFor(toggle) = %v, want [enter ctrl+s]", keys)
	}
	if d := r.Describe(ActionToggle); d != "Toggle" {
		t.Errorf("Describe(toggle) = %q, want first description", d)
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for _, b := range All {
		if b.Action == "" || len(b.Keys) == 0 || b.Description == "" {
			t.Errorf("incomplete binding: %+v", b)
		}
	}
}

func TestBindingsLeavePrintableKeysToInput(t *testing.T) {
	for _, b := range All {
		for _, k := range b.Keys {
			if len([]rune(k)) == 1 {
				t.Errorf("binding %q uses printable key %q", b.Action, k)
			}
		}
	}
}

func TestHelp(t *testing.T) {
	r := NewResolver(All)

	got := Help(r, ActionToggle, ActionSwitchView, "missing")
	want := "enter select/deselect · tab switch view"
	if got != want {
		t.Errorf("Help() = %q, want %q", got, want)
	}
}
