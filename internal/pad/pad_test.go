package pad

import "testing"

func TestRoleOfTotal(t *testing.T) {
	for p := 0; p < Count; p++ {
		switch RoleOf(ID(p)) {
		case ModeSelector, Action, ProgressCell, Unbound:
		default:
			t.Fatalf("pad %d has no role", p)
		}
	}
}

func TestRoleOf(t *testing.T) {
	tests := []struct {
		p    ID
		want Role
	}{
		{0, Action},
		{7, Action},
		{8, ModeSelector},
		{24, ModeSelector},
		{40, ModeSelector},
		{56, ModeSelector},
		{72, Action}, // right column, not a selector
		{9, Unbound}, // no button beyond column 8
		{15, Unbound},
		{112, ProgressCell},
		{119, ProgressCell},
		{120, Action},
		{127, Unbound},
	}
	for _, tt := range tests {
		if got := RoleOf(tt.p); got != tt.want {
			t.Errorf("RoleOf(%d) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestProgressCellsOrdered(t *testing.T) {
	cells := ProgressCells()
	if len(cells) != 8 {
		t.Fatalf("expected 8 progress cells, got %d", len(cells))
	}
	for i := 1; i < len(cells); i++ {
		if cells[i] != cells[i-1]+1 {
			t.Fatalf("progress cells not contiguous at %d", i)
		}
	}
	if cells[0] != 112 {
		t.Fatalf("progress cells start at %d, want 112", cells[0])
	}
}

func TestSelectorsCopy(t *testing.T) {
	s := Selectors()
	s[0] = 0
	if Selectors()[0] != 8 {
		t.Fatal("Selectors returned aliased slice")
	}
}
