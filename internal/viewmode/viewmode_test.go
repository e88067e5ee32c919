package viewmode

import "testing"

func TestMode_Toggle(t *testing.T) {
	if got := Results.Toggle(); got != Selected {
		t.Errorf("Results.Toggle() = %v, want Selected", got)
	}
	if got := Selected.Toggle(); got != Results {
		t.Errorf("Selected.Toggle() = %v, want Results", got)
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		results  int
		selected int
		want     Affordances
	}{
		{
			name:     "results with nothing selected",
			mode:     Results,
			results:  4,
			selected: 0,
			want:     Affordances{SwitchLabel: "0 Selected", SwitchEnabled: false, Count: 0, ResetVisible: false},
		},
		{
			name:     "results with selection shows selected count",
			mode:     Results,
			results:  4,
			selected: 2,
			want:     Affordances{SwitchLabel: "Show Selected (2)", SwitchEnabled: true, Count: 2, ResetVisible: true},
		},
		{
			name:     "selected view shows results count",
			mode:     Selected,
			results:  7,
			selected: 2,
			want:     Affordances{SwitchLabel: "Show Results (7)", SwitchEnabled: true, Count: 7, ResetVisible: true},
		},
		{
			name:     "selected view with empty results stays enabled",
			mode:     Selected,
			results:  0,
			selected: 1,
			want:     Affordances{SwitchLabel: "Show Results (0)", SwitchEnabled: true, Count: 0, ResetVisible: true},
		},
		{
			name:     "large counts use separators",
			mode:     Results,
			results:  0,
			selected: 1250,
			want:     Affordances{SwitchLabel: "Show Selected (1,250)", SwitchEnabled: true, Count: 1250, ResetVisible: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.mode, tt.results, tt.selected); got != tt.want {
				t.Errorf("Derive() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
