package pad

// ID addresses one cell of the controller grid. The Launchpad Mini maps
// its 9x8 surface onto MIDI notes 0-127: grid rows at row*16+col, the
// round right-column buttons at col 8 of each row.
type ID uint8

// Count is the size of the pad address space.
const Count = 128

// Color is a Launchpad velocity color code.
type Color uint8

const (
	Off        Color = 0
	RedLow     Color = 1
	RedFull    Color = 3
	GreenLow   Color = 16
	AmberLow   Color = 17
	OrangeFull Color = 35
	GreenFull  Color = 48
	YellowFull Color = 50
	AmberFull  Color = 51
	BlueFull   Color = 79
)

// Role classifies a pad independently of the active menu.
type Role int

const (
	// Unbound pads have no physical button (note columns 9-15).
	Unbound Role = iota
	// ModeSelector pads switch the active menu.
	ModeSelector
	// Action pads may carry a binding in the active menu.
	Action
	// ProgressCell pads render the playback progress bar.
	ProgressCell
)

func (r Role) String() string {
	switch r {
	case ModeSelector:
		return "mode-selector"
	case Action:
		return "action"
	case ProgressCell:
		return "progress-cell"
	default:
		return "unbound"
	}
}

// selectorPads are the first four round buttons of the right column.
var selectorPads = []ID{8, 24, 40, 56}

// progressCells is the bottom grid row, left to right.
var progressCells = []ID{112, 113, 114, 115, 116, 117, 118, 119}

// Selectors returns the mode-selector pads in menu order.
func Selectors() []ID {
	out := make([]ID, len(selectorPads))
	copy(out, selectorPads)
	return out
}

// ProgressCells returns the ordered progress-bar pads.
func ProgressCells() []ID {
	out := make([]ID, len(progressCells))
	copy(out, progressCells)
	return out
}

// RoleOf resolves the role of any pad index. Total over 0-127.
func RoleOf(p ID) Role {
	for _, s := range selectorPads {
		if p == s {
			return ModeSelector
		}
	}
	for _, c := range progressCells {
		if p == c {
			return ProgressCell
		}
	}
	// Note columns beyond the round buttons don't exist on the device.
	if p%16 > 8 {
		return Unbound
	}
	return Action
}
