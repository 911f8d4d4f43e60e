package menu_test

import (
	"testing"

	"github.com/stagekit/stagehand/internal/action"
	"github.com/stagekit/stagehand/internal/menu"
	"github.com/stagekit/stagehand/internal/pad"
)

type nopAction struct{}

func (nopAction) Invoke() error    { return nil }
func (nopAction) Describe() string { return "nop" }

func TestRegistryLookups(t *testing.T) {
	reg := menu.NewRegistry(menu.Bindings{
		menu.Music: {3: nopAction{}},
	})

	if reg.ActionFor(menu.Music, 3) == nil {
		t.Fatal("bound action not found")
	}
	if got := reg.ActionFor(menu.Music, 4); got != nil {
		t.Fatalf("unbound pad resolved to %v", got)
	}
	if got := reg.ActionFor(menu.Scenes, 3); got != nil {
		t.Fatalf("binding leaked across menus: %v", got)
	}
}

func TestNilRegistryIsTotal(t *testing.T) {
	reg := menu.NewRegistry(nil)
	for _, m := range menu.Modes {
		for p := 0; p < pad.Count; p++ {
			if got := reg.ActionFor(m, pad.ID(p)); got != nil {
				t.Fatalf("empty registry returned action %v", got)
			}
			_ = reg.ColorFor(m, pad.ID(p))
		}
	}
}

// The selector table is derived from the pad address space; the two
// must agree on every pad.
func TestSelectorForMatchesPadRoles(t *testing.T) {
	seen := make(map[menu.Mode]bool)
	for p := 0; p < pad.Count; p++ {
		m, ok := menu.SelectorFor(pad.ID(p))
		if want := pad.RoleOf(pad.ID(p)) == pad.ModeSelector; ok != want {
			t.Fatalf("SelectorFor(%d) = %t, role says %t", p, ok, want)
		}
		if ok {
			seen[m] = true
		}
	}
	for _, m := range menu.Modes {
		if !seen[m] {
			t.Fatalf("no selector pad switches to %s", m)
		}
	}
}

var _ action.Action = nopAction{}
