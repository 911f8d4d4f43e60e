package menu_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stagekit/stagehand/internal/display"
	"github.com/stagekit/stagehand/internal/menu"
	"github.com/stagekit/stagehand/internal/pad"
)

// gridOutput folds every write into the grid state it produces.
type gridOutput struct {
	mu   sync.Mutex
	grid [pad.Count]pad.Color
}

func (g *gridOutput) SetPad(p pad.ID, c pad.Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.grid[p] = c
	return nil
}

func (g *gridOutput) Reset() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.grid = [pad.Count]pad.Color{}
	return nil
}

func (g *gridOutput) state() [pad.Count]pad.Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.grid
}

func newBoard(t *testing.T) (*menu.Board, *display.Writer, *gridOutput) {
	t.Helper()
	out := &gridOutput{}
	w := display.NewWriter(out)
	t.Cleanup(w.Close)
	reg := menu.NewRegistry(nil)
	return menu.NewBoard(reg, w), w, out
}

// canonical computes the grid the board must show for a mode.
func canonical(b *menu.Board) [pad.Count]pad.Color {
	var want [pad.Count]pad.Color
	for p := 0; p < pad.Count; p++ {
		want[p] = b.CanonicalColor(pad.ID(p))
	}
	return want
}

func TestRedrawMatchesCanonicalState(t *testing.T) {
	b, w, out := newBoard(t)

	b.Redraw()
	w.Flush()
	require.Equal(t, canonical(b), out.state())
}

func TestSwitchRedrawsEveryMenu(t *testing.T) {
	b, w, out := newBoard(t)

	for _, m := range menu.Modes {
		b.Switch(m)
		w.Flush()
		require.Equal(t, m, b.Current())
		require.Equal(t, canonical(b), out.state(), "grid after switching to %s", m)
	}
}

func TestRoundTripReproducesGrid(t *testing.T) {
	b, w, out := newBoard(t)

	b.Switch(menu.Scenes)
	w.Flush()
	first := out.state()

	b.Switch(menu.Music)
	w.Flush()
	require.NotEqual(t, first, out.state())

	b.Switch(menu.Scenes)
	w.Flush()
	require.Equal(t, first, out.state())
}

func TestReselectingCurrentMenuIsNoOpRedraw(t *testing.T) {
	b, w, out := newBoard(t)

	b.Switch(menu.Music)
	w.Flush()
	before := out.state()

	b.Switch(menu.Music)
	w.Flush()
	require.Equal(t, before, out.state())
	require.Equal(t, menu.Music, b.Current())
}

func TestSelectorColorIndependentOfMenu(t *testing.T) {
	b, _, _ := newBoard(t)

	// An idle selector's color must not depend on which menu is current,
	// only on whether its own menu is the current one.
	idle := map[pad.ID]pad.Color{}
	for _, m := range menu.Modes {
		b.Switch(m)
		for _, s := range pad.Selectors() {
			sm, ok := menu.SelectorFor(s)
			require.True(t, ok)
			if sm == m {
				require.Equal(t, pad.RedFull, b.CanonicalColor(s))
				continue
			}
			c := b.CanonicalColor(s)
			if prev, seen := idle[s]; seen {
				require.Equal(t, prev, c, "selector %d idle color changed with menu %s", s, m)
			}
			idle[s] = c
		}
	}
}

func TestCanonicalColorTotal(t *testing.T) {
	b, _, _ := newBoard(t)
	for _, m := range menu.Modes {
		b.Switch(m)
		for p := 0; p < pad.Count; p++ {
			// Must be defined for every pad; unmapped pads are off.
			_ = b.CanonicalColor(pad.ID(p))
		}
	}
}
