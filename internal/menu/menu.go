// Package menu partitions the pad address space into four mutually
// exclusive binding and color tables and owns the single current-menu
// value.
package menu

import "github.com/stagekit/stagehand/internal/pad"

// Mode is one of the four menus.
type Mode int

const (
	Scenes Mode = iota
	Music
	Effects
	Utility
)

// Modes lists every menu in selector order.
var Modes = []Mode{Scenes, Music, Effects, Utility}

func (m Mode) String() string {
	switch m {
	case Scenes:
		return "SCENES"
	case Music:
		return "MUSIC"
	case Effects:
		return "EFFECTS"
	case Utility:
		return "UTILITY"
	default:
		return "UNKNOWN"
	}
}

// selectorModes maps the round right-column buttons to menus, pairing
// the selector pads with Modes in order.
var selectorModes = func() map[pad.ID]Mode {
	m := make(map[pad.ID]Mode, len(Modes))
	for i, p := range pad.Selectors() {
		m[p] = Modes[i]
	}
	return m
}()

// SelectorFor returns the menu a selector pad switches to.
func SelectorFor(p pad.ID) (Mode, bool) {
	m, ok := selectorModes[p]
	return m, ok
}
