package menu

import (
	"github.com/stagekit/stagehand/internal/action"
	"github.com/stagekit/stagehand/internal/pad"
)

// Bindings maps pads to actions per menu.
type Bindings map[Mode]map[pad.ID]action.Action

// Registry is the immutable lookup structure for the four menus.
type Registry struct {
	bindings Bindings
}

// NewRegistry wraps the given binding tables. Nil menus are valid and
// resolve every pad to no action.
func NewRegistry(b Bindings) *Registry {
	if b == nil {
		b = Bindings{}
	}
	return &Registry{bindings: b}
}

// ActionFor returns the action bound to (m, p), or nil.
func (r *Registry) ActionFor(m Mode, p pad.ID) action.Action {
	return r.bindings[m][p]
}

// ColorFor returns the static color of (m, p); absent pads are off.
func (r *Registry) ColorFor(m Mode, p pad.ID) pad.Color {
	return modeColors[m][p]
}
