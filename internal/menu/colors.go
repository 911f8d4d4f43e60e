package menu

import "github.com/stagekit/stagehand/internal/pad"

// selectorActive is shown on the selector of the current menu.
const selectorActive = pad.RedFull

// selectorIdle are the resting colors of the four selectors. They do
// not depend on which menu is current.
var selectorIdle = map[pad.ID]pad.Color{
	8:  pad.BlueFull,
	24: pad.GreenFull,
	40: pad.AmberFull,
	56: pad.OrangeFull,
}

// modeColors are the static per-menu color tables. Pads absent from a
// table rest at off.
var modeColors = map[Mode]map[pad.ID]pad.Color{
	Scenes: {
		0:  pad.YellowFull,
		1:  pad.YellowFull,
		6:  pad.RedFull,
		7:  pad.YellowFull,
		16: pad.GreenFull,
		17: pad.GreenFull,
		18: pad.GreenFull,
		19: pad.GreenFull,
		20: pad.GreenFull,
		21: pad.GreenFull,
		22: pad.GreenFull,
		23: pad.GreenFull,
		32: pad.YellowFull,
		33: pad.YellowFull,
		34: pad.YellowFull,
		35: pad.YellowFull,
		64: pad.RedFull,
		65: pad.YellowFull,
		66: pad.GreenFull,
	},
	Music: {
		0:  pad.GreenFull,
		1:  pad.GreenFull,
		2:  pad.GreenFull,
		3:  pad.AmberFull,
		4:  pad.AmberFull,
		5:  pad.RedFull,
		6:  pad.GreenFull,
		7:  pad.YellowFull,
		32: pad.RedFull,
		33: pad.GreenFull,
		34: pad.RedFull,
		35: pad.OrangeFull,
	},
	Effects: {
		32: pad.YellowFull,
		33: pad.AmberFull,
		34: pad.OrangeFull,
		35: pad.AmberFull,
	},
	Utility: {
		48: pad.RedFull,
		49: pad.BlueFull,
		50: pad.RedFull,
		51: pad.GreenFull,
	},
}
