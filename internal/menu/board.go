package menu

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/stagekit/stagehand/internal/action"
	"github.com/stagekit/stagehand/internal/display"
	"github.com/stagekit/stagehand/internal/pad"
)

// Board is the menu state machine. It owns the current menu and redraws
// the whole grid on every switch. Reads of the current menu are safe
// from feedback goroutines; switches happen only on the dispatch loop.
type Board struct {
	reg  *Registry
	disp *display.Writer
	log  *logrus.Entry

	mu      sync.RWMutex
	current Mode
}

// NewBoard creates a board starting in the SCENES menu.
func NewBoard(reg *Registry, disp *display.Writer) *Board {
	return &Board{
		reg:     reg,
		disp:    disp,
		log:     logrus.WithField("component", "menu"),
		current: Scenes,
	}
}

// Current returns the active menu.
func (b *Board) Current() Mode {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

// Switch makes m the current menu and redraws the grid. Re-selecting
// the current menu is accepted and performs a plain redraw.
func (b *Board) Switch(m Mode) {
	b.mu.Lock()
	b.current = m
	b.mu.Unlock()
	b.Redraw()
	b.log.Infof("switched to %s menu", m)
}

// ActionFor resolves the binding of p in the current menu.
func (b *Board) ActionFor(p pad.ID) action.Action {
	return b.reg.ActionFor(b.Current(), p)
}

// Redraw repaints the canonical grid state: everything off, selectors
// per the active/inactive rule, then the current menu's color table.
func (b *Board) Redraw() {
	cur := b.Current()
	for p := 0; p < pad.Count; p++ {
		b.disp.Set(pad.ID(p), pad.Off)
	}
	for s, m := range selectorModes {
		if m == cur {
			b.disp.Set(s, selectorActive)
		} else {
			b.disp.Set(s, selectorIdle[s])
		}
	}
	for p, c := range modeColors[cur] {
		b.disp.Set(p, c)
	}
}

// CanonicalColor is the color a pad shows absent any transient effect:
// the selector rule for selectors, the current menu's table otherwise.
func (b *Board) CanonicalColor(p pad.ID) pad.Color {
	cur := b.Current()
	if m, ok := selectorModes[p]; ok {
		if m == cur {
			return selectorActive
		}
		return selectorIdle[p]
	}
	return b.reg.ColorFor(cur, p)
}
